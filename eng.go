package blockfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const defaultNumberWidth = 2

// engFixConfig is the shared argument surface of the "eng" and "fix"
// formatters.
type engFixConfig struct {
	width        int
	unit         Unit
	unitSet      bool
	unitSpace    bool
	unitHidden   bool
	prefix       Prefix
	prefixSet    bool
	prefixSpace  bool
	prefixHidden bool
	prefixForced bool
}

func parseEngFixArgs(args []Arg) (engFixConfig, error) {
	c := engFixConfig{width: defaultNumberWidth}
	for _, arg := range args {
		var err error
		switch arg.Key {
		case "width", "w":
			c.width, err = parseCountArg(arg)
		case "unit", "u":
			c.unit, err = ParseUnit(arg.Value)
			c.unitSet = true
		case "hide_unit":
			c.unitHidden, err = parseBoolArg(arg)
		case "unit_space":
			c.unitSpace, err = parseBoolArg(arg)
		case "prefix", "p":
			c.prefix, err = ParsePrefix(arg.Value)
			c.prefixSet = true
		case "hide_prefix":
			c.prefixHidden, err = parseBoolArg(arg)
		case "prefix_space":
			c.prefixSpace, err = parseBoolArg(arg)
		case "force_prefix":
			c.prefixForced, err = parseBoolArg(arg)
		default:
			err = unknownArg("eng", arg)
		}
		if err != nil {
			return engFixConfig{}, err
		}
	}
	return c, nil
}

// engFormatter renders a number in engineering notation: an auto-scaled
// numeral filling a fixed digit budget, followed by the chosen prefix letter
// and the unit symbol.
type engFormatter struct {
	cfg engFixConfig
}

func (f engFormatter) Format(v Value) (string, error) {
	if v.Kind() != KindNumber {
		return "", typeMismatch("eng", v)
	}
	val, unit := v.num, v.unit
	if f.cfg.unitSet {
		var err error
		if val, err = unit.Convert(val, f.cfg.unit); err != nil {
			return "", err
		}
		unit = f.cfg.unit
	}

	// The admissible prefix window: a forced prefix pins it, a preferred
	// prefix only bounds it from below.
	lo, hi := minPrefix, maxPrefix
	if f.cfg.prefixSet {
		lo = f.cfg.prefix
		if f.cfg.prefixForced {
			hi = f.cfg.prefix
		}
	}

	var prefix Prefix
	if lo.IsBinary() {
		prefix = EngBinaryPrefix(val)
	} else {
		prefix = EngPrefix(val)
	}
	prefix = unit.clampPrefix(prefix).Clamp(lo, hi)
	val = prefix.Apply(val)

	digits := int(math.Floor(math.Log10(math.Max(val, 1)))) + 1
	if val < 0 {
		digits++ // room for the sign
	}

	var b strings.Builder
	switch budget := f.cfg.width - digits; {
	case budget <= 0:
		b.WriteString(strconv.FormatFloat(math.Floor(val), 'f', -1, 64))
	case budget == 1:
		// One spare character fits neither a decimal point nor a decimal,
		// so it becomes alignment padding.
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(int64(math.Floor(val)), 10))
	default:
		// The decimal point itself spends one character of the budget.
		b.WriteString(strconv.FormatFloat(val, 'f', budget-1, 64))
	}

	displayPrefix := !f.cfg.prefixHidden && !prefix.IsIdentity()
	displayUnit := !f.cfg.unitHidden && unit != UnitNone
	if displayPrefix {
		if f.cfg.prefixSpace {
			b.WriteByte(' ')
		}
		b.WriteString(prefix.String())
	}
	if displayUnit {
		// A suppressed prefix donates its leading space to the unit.
		if f.cfg.unitSpace || (f.cfg.prefixSpace && !displayPrefix) {
			b.WriteByte(' ')
		}
		b.WriteString(unit.String())
	}
	return b.String(), nil
}

// fixFormatter reserves the "fix" name for fixed-point rendering. Formatting
// a number reports [ErrNotImplemented] rather than silently falling back to
// eng behavior; non-numeric input is still a type mismatch.
type fixFormatter struct {
	cfg engFixConfig
}

func (f fixFormatter) Format(v Value) (string, error) {
	if v.Kind() != KindNumber {
		return "", typeMismatch("fix", v)
	}
	return "", fmt.Errorf("%w: the %q formatter", ErrNotImplemented, "fix")
}
