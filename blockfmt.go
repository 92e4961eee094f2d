package blockfmt

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Sentinel errors for programmatic error handling.
//
// The first group is raised only while constructing a formatter or parsing a
// template; the second group is raised only while formatting a value.
var (
	ErrUnknownFormatter = errors.New("unknown formatter")
	ErrBadArgument      = errors.New("bad formatter argument")
	ErrInvalidTemplate  = errors.New("invalid template")

	ErrTypeMismatch   = errors.New("value type mismatch")
	ErrUnitMismatch   = errors.New("unit mismatch")
	ErrNotImplemented = errors.New("not implemented")
	ErrMissingValue   = errors.New("missing value")
)

// Arg is a single key/value argument from a format specification, e.g.
// ("min_width", "5"). Argument order is insignificant; when a key repeats,
// the last occurrence wins.
type Arg struct {
	Key   string
	Value string
}

// Formatter renders one [Value] into a display string. Instances are
// immutable after construction and safe for concurrent use; they are built
// once per format specification and reused across renders.
type Formatter interface {
	Format(Value) (string, error)
}

// Intervaler is an optional interface for formatters whose output changes
// with time even when the value does not (text rotation). The caller's
// scheduler should re-render at the reported interval. A formatter that does
// not rotate either omits the interface or returns zero.
type Intervaler interface {
	Interval() time.Duration
}

// Interval reports the re-render interval hint of f, if any.
func Interval(f Formatter) (time.Duration, bool) {
	if i, ok := f.(Intervaler); ok {
		if d := i.Interval(); d > 0 {
			return d, true
		}
	}
	return 0, false
}

var formatters = []string{"str", "bar", "eng", "fix"}

// Formatters returns the names accepted by [New].
func Formatters() []string {
	out := make([]string, len(formatters))
	copy(out, formatters)
	return out
}

// New constructs the named formatter from its arguments.
//
// Recognized names are "str", "bar", "eng", and "fix"; any other name fails
// with [ErrUnknownFormatter]. Unrecognized argument keys, malformed values,
// and inconsistent option combinations fail with [ErrBadArgument] naming the
// offending key.
func New(name string, args []Arg) (Formatter, error) {
	switch name {
	case "str":
		f, err := newStrFormatter(args)
		if err != nil {
			return nil, err
		}
		return f, nil
	case "bar":
		f, err := newBarFormatter(args)
		if err != nil {
			return nil, err
		}
		return f, nil
	case "eng":
		cfg, err := parseEngFixArgs(args)
		if err != nil {
			return nil, err
		}
		return engFormatter{cfg}, nil
	case "fix":
		cfg, err := parseEngFixArgs(args)
		if err != nil {
			return nil, err
		}
		return fixFormatter{cfg}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormatter, name)
	}
}

// --- Argument value parsers ---

func parseCountArg(a Arg) (int, error) {
	n, err := strconv.Atoi(a.Value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q must be a positive integer", ErrBadArgument, a.Key)
	}
	return n, nil
}

func parseFloatArg(a Arg) (float64, error) {
	f, err := strconv.ParseFloat(a.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q must be a number", ErrBadArgument, a.Key)
	}
	return f, nil
}

func parseBoolArg(a Arg) (bool, error) {
	b, err := strconv.ParseBool(a.Value)
	if err != nil {
		return false, fmt.Errorf("%w: %q must be true or false", ErrBadArgument, a.Key)
	}
	return b, nil
}

func errBadArg(msg string) error {
	return fmt.Errorf("%w: %s", ErrBadArgument, msg)
}

func unknownArg(formatter string, a Arg) error {
	return fmt.Errorf("%w: unknown argument %q for %q", ErrBadArgument, a.Key, formatter)
}

func typeMismatch(formatter string, v Value) error {
	return fmt.Errorf("%w: a %s value cannot be formatted with %q", ErrTypeMismatch, v.Kind(), formatter)
}
