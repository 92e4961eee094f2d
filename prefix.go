package blockfmt

import (
	"fmt"
	"math"
)

// Prefix is a metric or binary magnitude scaling factor applied to a numeric
// value before display. The declaration order is the magnitude order, across
// both families, which is what [Prefix.Clamp] relies on. PrefixOne and
// PrefixOneBinary are the no-op identities of their families and render as
// the empty string.
type Prefix int

const (
	PrefixNano Prefix = iota
	PrefixMicro
	PrefixMilli
	PrefixOne
	PrefixOneBinary
	PrefixKilo
	PrefixKibi
	PrefixMega
	PrefixMebi
	PrefixGiga
	PrefixGibi
	PrefixTera
	PrefixTebi
	PrefixPeta
	PrefixPebi
)

const (
	minPrefix = PrefixNano
	maxPrefix = PrefixPebi
)

func (p Prefix) multiplier() float64 {
	switch p {
	case PrefixNano:
		return 1e-9
	case PrefixMicro:
		return 1e-6
	case PrefixMilli:
		return 1e-3
	case PrefixKilo:
		return 1e3
	case PrefixKibi:
		return 1 << 10
	case PrefixMega:
		return 1e6
	case PrefixMebi:
		return 1 << 20
	case PrefixGiga:
		return 1e9
	case PrefixGibi:
		return 1 << 30
	case PrefixTera:
		return 1e12
	case PrefixTebi:
		return 1 << 40
	case PrefixPeta:
		return 1e15
	case PrefixPebi:
		return 1 << 50
	default:
		return 1
	}
}

// String returns the prefix letter(s). Identities render empty.
func (p Prefix) String() string {
	switch p {
	case PrefixNano:
		return "n"
	case PrefixMicro:
		return "u"
	case PrefixMilli:
		return "m"
	case PrefixKilo:
		return "K"
	case PrefixKibi:
		return "Ki"
	case PrefixMega:
		return "M"
	case PrefixMebi:
		return "Mi"
	case PrefixGiga:
		return "G"
	case PrefixGibi:
		return "Gi"
	case PrefixTera:
		return "T"
	case PrefixTebi:
		return "Ti"
	case PrefixPeta:
		return "P"
	case PrefixPebi:
		return "Pi"
	default:
		return ""
	}
}

// ParsePrefix parses a prefix as it appears in a "prefix:" argument. "1"
// selects the decimal identity and "1i" the binary identity; the latter makes
// an eng formatter auto-scale over binary prefixes.
func ParsePrefix(s string) (Prefix, error) {
	switch s {
	case "n":
		return PrefixNano, nil
	case "u":
		return PrefixMicro, nil
	case "m":
		return PrefixMilli, nil
	case "1":
		return PrefixOne, nil
	case "1i":
		return PrefixOneBinary, nil
	case "K":
		return PrefixKilo, nil
	case "Ki":
		return PrefixKibi, nil
	case "M":
		return PrefixMega, nil
	case "Mi":
		return PrefixMebi, nil
	case "G":
		return PrefixGiga, nil
	case "Gi":
		return PrefixGibi, nil
	case "T":
		return PrefixTera, nil
	case "Ti":
		return PrefixTebi, nil
	case "P":
		return PrefixPeta, nil
	case "Pi":
		return PrefixPebi, nil
	default:
		return PrefixOne, fmt.Errorf("%w: %q is not a known prefix", ErrBadArgument, s)
	}
}

// IsBinary reports whether the prefix belongs to the binary family.
func (p Prefix) IsBinary() bool {
	switch p {
	case PrefixOneBinary, PrefixKibi, PrefixMebi, PrefixGibi, PrefixTebi, PrefixPebi:
		return true
	default:
		return false
	}
}

// IsIdentity reports whether the prefix is a no-op scaling.
func (p Prefix) IsIdentity() bool { return p == PrefixOne || p == PrefixOneBinary }

// Apply scales v for display under the prefix: 1536 with [PrefixKibi]
// becomes 1.5.
func (p Prefix) Apply(v float64) float64 { return v / p.multiplier() }

// Clamp bounds p into the closed range [lo, hi].
func (p Prefix) Clamp(lo, hi Prefix) Prefix {
	return min(max(p, lo), hi)
}

// EngPrefix returns the decimal prefix that puts |v| into [1, 1000), the
// engineering step. Zero and values already in range select [PrefixOne]; out
// of ladder values saturate at the ladder ends.
func EngPrefix(v float64) Prefix {
	v = math.Abs(v)
	if v == 0 {
		return PrefixOne
	}
	switch e := math.Floor(math.Log10(v) / 3); {
	case e <= -3:
		return PrefixNano
	case e == -2:
		return PrefixMicro
	case e == -1:
		return PrefixMilli
	case e == 0:
		return PrefixOne
	case e == 1:
		return PrefixKilo
	case e == 2:
		return PrefixMega
	case e == 3:
		return PrefixGiga
	case e == 4:
		return PrefixTera
	default:
		return PrefixPeta
	}
}

// EngBinaryPrefix is the binary-family analogue of [EngPrefix], stepping by
// 1024 instead of 1000.
func EngBinaryPrefix(v float64) Prefix {
	v = math.Abs(v)
	if v == 0 {
		return PrefixOneBinary
	}
	switch e := math.Floor(math.Log2(v) / 10); {
	case e <= 0:
		return PrefixOneBinary
	case e == 1:
		return PrefixKibi
	case e == 2:
		return PrefixMebi
	case e == 3:
		return PrefixGibi
	case e == 4:
		return PrefixTebi
	default:
		return PrefixPebi
	}
}
