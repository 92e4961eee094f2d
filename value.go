package blockfmt

// ValueKind discriminates the variants of [Value].
type ValueKind int

const (
	KindText ValueKind = iota
	KindNumber
	KindIcon
	KindFlag
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindIcon:
		return "icon"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Value is the typed runtime value the engine formats. A Value is immutable
// once constructed and carries no formatting configuration; that lives
// entirely in the formatter. Values are produced fresh per render cycle by
// the data-collecting caller.
type Value struct {
	kind ValueKind
	text string // Text and Icon payload
	num  float64
	unit Unit
}

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number returns a numeric value tagged with its physical unit. Use
// [UnitNone] for dimensionless quantities.
func Number(magnitude float64, unit Unit) Value {
	return Value{kind: KindNumber, num: magnitude, unit: unit}
}

// Icon returns a pre-resolved icon glyph. Icons are never escaped.
func Icon(s string) Value { return Value{kind: KindIcon, text: s} }

// Flag returns a payload-free presence signal.
func Flag() Value { return Value{kind: KindFlag} }

// Kind returns the variant of the value.
func (v Value) Kind() ValueKind { return v.kind }
