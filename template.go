package blockfmt

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default formatters used for placeholders without an explicit spec,
// matching how a bare "{key}" behaves in block format strings.
var (
	defaultStrFormatter = &strFormatter{maxWidth: defaultStrMaxWidth, now: time.Now}
	defaultEngFormatter = engFormatter{engFixConfig{width: defaultNumberWidth}}
)

// Template is a parsed block format string. Literal text is kept verbatim;
// placeholders name a value key and optionally a formatter spec:
//
//	"updates: {count:eng(w:3)} {status}"
//
// A placeholder without a spec picks a default formatter by value kind: text
// goes through a plain str formatter, numbers through a width-2 eng
// formatter, icons pass through untouched, and flags render as the empty
// string. Double braces escape literal braces.
//
// Template implements [yaml.Unmarshaler] and [encoding.TextUnmarshaler], so
// it can be declared directly as a field of a caller's config struct.
type Template struct {
	src      string
	segments []segment
}

// segment is either literal text (key == "") or a placeholder.
type segment struct {
	lit string
	key string
	f   Formatter // nil selects the per-kind default at render time
}

// ParseTemplate parses a format string into a [Template]. Syntax errors fail
// with [ErrInvalidTemplate]; errors from constructing a placeholder's
// formatter are returned as-is.
func ParseTemplate(src string) (*Template, error) {
	t := &Template{src: src}
	var lit strings.Builder
	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '{':
			if i+1 < len(runes) && runes[i+1] == '{' {
				lit.WriteRune('{')
				i++
				continue
			}
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '}' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed placeholder in %q", ErrInvalidTemplate, src)
			}
			if lit.Len() > 0 {
				t.segments = append(t.segments, segment{lit: lit.String()})
				lit.Reset()
			}
			seg, err := parsePlaceholder(string(runes[i+1 : end]))
			if err != nil {
				return nil, err
			}
			t.segments = append(t.segments, seg)
			i = end
		case '}':
			if i+1 < len(runes) && runes[i+1] == '}' {
				lit.WriteRune('}')
				i++
				continue
			}
			return nil, fmt.Errorf("%w: unmatched %q in %q", ErrInvalidTemplate, "}", src)
		default:
			lit.WriteRune(r)
		}
	}
	if lit.Len() > 0 {
		t.segments = append(t.segments, segment{lit: lit.String()})
	}
	return t, nil
}

// parsePlaceholder parses the inside of a {...}: "key" or "key:name" or
// "key:name(k:v,...)".
func parsePlaceholder(body string) (segment, error) {
	key, spec, hasSpec := strings.Cut(body, ":")
	key = strings.TrimSpace(key)
	if key == "" {
		return segment{}, fmt.Errorf("%w: placeholder with empty key", ErrInvalidTemplate)
	}
	if !hasSpec {
		return segment{key: key}, nil
	}
	name := strings.TrimSpace(spec)
	var args []Arg
	if open := strings.IndexByte(name, '('); open >= 0 {
		if !strings.HasSuffix(name, ")") {
			return segment{}, fmt.Errorf("%w: malformed formatter spec %q", ErrInvalidTemplate, spec)
		}
		argList := name[open+1 : len(name)-1]
		name = strings.TrimSpace(name[:open])
		if argList != "" {
			for _, pair := range strings.Split(argList, ",") {
				k, v, ok := strings.Cut(pair, ":")
				if !ok {
					return segment{}, fmt.Errorf("%w: argument %q is not key:value", ErrInvalidTemplate, pair)
				}
				args = append(args, Arg{Key: strings.TrimSpace(k), Value: strings.TrimSpace(v)})
			}
		}
	}
	f, err := New(name, args)
	if err != nil {
		return segment{}, err
	}
	return segment{key: key, f: f}, nil
}

// String returns the source the template was parsed from.
func (t *Template) String() string { return t.src }

// Render formats values into the template. Every placeholder key must be
// present in values; a missing key fails with [ErrMissingValue].
func (t *Template) Render(values map[string]Value) (string, error) {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.key == "" {
			b.WriteString(seg.lit)
			continue
		}
		v, ok := values[seg.key]
		if !ok {
			return "", fmt.Errorf("%w: no value for placeholder %q", ErrMissingValue, seg.key)
		}
		f := seg.f
		if f == nil {
			switch v.Kind() {
			case KindIcon:
				// Icons bypass formatting and escaping.
				b.WriteString(v.text)
				continue
			case KindNumber:
				f = defaultEngFormatter
			case KindFlag:
				f = theFlagFormatter
			default:
				f = defaultStrFormatter
			}
		}
		s, err := f.Format(v)
		if err != nil {
			return "", fmt.Errorf("placeholder %q: %w", seg.key, err)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Interval returns the smallest re-render interval hint among the template's
// placeholders, if any placeholder reports one.
func (t *Template) Interval() (time.Duration, bool) {
	var best time.Duration
	for _, seg := range t.segments {
		if seg.f == nil {
			continue
		}
		if d, ok := Interval(seg.f); ok && (best == 0 || d < best) {
			best = d
		}
	}
	return best, best > 0
}

// UnmarshalText parses the template from its textual form.
func (t *Template) UnmarshalText(text []byte) error {
	parsed, err := ParseTemplate(string(text))
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// UnmarshalYAML parses the template from a YAML string node.
func (t *Template) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}

// MarshalText returns the template source, making round-trips through config
// files lossless.
func (t *Template) MarshalText() ([]byte, error) { return []byte(t.src), nil }
