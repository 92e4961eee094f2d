package blockfmt

import "fmt"

// Unit is the physical dimension tag of a numeric value.
type Unit int

const (
	UnitNone Unit = iota
	UnitBytes
	UnitBits
	UnitHertz
	UnitPercents
	UnitDegrees
	UnitSeconds
	UnitWatts
)

// String returns the display symbol of the unit. UnitNone renders as the
// empty string.
func (u Unit) String() string {
	switch u {
	case UnitBytes:
		return "B"
	case UnitBits:
		return "b"
	case UnitHertz:
		return "Hz"
	case UnitPercents:
		return "%"
	case UnitDegrees:
		return "°"
	case UnitSeconds:
		return "s"
	case UnitWatts:
		return "W"
	default:
		return ""
	}
}

// ParseUnit parses a unit symbol as it appears in a "unit:" argument.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "", "none":
		return UnitNone, nil
	case "B":
		return UnitBytes, nil
	case "b":
		return UnitBits, nil
	case "Hz":
		return UnitHertz, nil
	case "%":
		return UnitPercents, nil
	case "deg", "°":
		return UnitDegrees, nil
	case "s":
		return UnitSeconds, nil
	case "W":
		return UnitWatts, nil
	default:
		return UnitNone, fmt.Errorf("%w: %q is not a known unit", ErrBadArgument, s)
	}
}

// dimension groups units that are mutually convertible.
type dimension int

const (
	dimNone dimension = iota
	dimData // bits and bytes
	dimFrequency
	dimRatio
	dimAngle
	dimTime
	dimPower
)

func (u Unit) dim() dimension {
	switch u {
	case UnitBytes, UnitBits:
		return dimData
	case UnitHertz:
		return dimFrequency
	case UnitPercents:
		return dimRatio
	case UnitDegrees:
		return dimAngle
	case UnitSeconds:
		return dimTime
	case UnitWatts:
		return dimPower
	default:
		return dimNone
	}
}

// base returns the multiplicative factor of the unit relative to its
// dimension's base unit (bits for the data dimension).
func (u Unit) base() float64 {
	if u == UnitBytes {
		return 8
	}
	return 1
}

// Convert rescales v from u into target. Converting across dimensions fails
// with [ErrUnitMismatch].
func (u Unit) Convert(v float64, target Unit) (float64, error) {
	if u == target {
		return v, nil
	}
	if u.dim() != target.dim() {
		return 0, fmt.Errorf("%w: cannot convert %q to %q", ErrUnitMismatch, u, target)
	}
	return v * u.base() / target.base(), nil
}

// clampPrefix restricts p to the prefixes legal for the unit: data units are
// never scaled below their family identity (no fractional bytes), and
// percents, degrees, and dimensionless values are never prefixed at all.
func (u Unit) clampPrefix(p Prefix) Prefix {
	switch u {
	case UnitBytes, UnitBits:
		if p.IsBinary() {
			return p.Clamp(PrefixOneBinary, maxPrefix)
		}
		return p.Clamp(PrefixOne, maxPrefix)
	case UnitPercents, UnitDegrees, UnitNone:
		if p.IsBinary() {
			return PrefixOneBinary
		}
		return PrefixOne
	default:
		return p
	}
}
