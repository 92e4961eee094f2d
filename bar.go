package blockfmt

import "strings"

const (
	defaultBarWidth    = 5
	defaultBarMaxValue = 100.0
)

// barGlyphs are the nine left-block fill levels, empty through full. Each
// bar cell picks one of them, giving eight sub-levels of resolution per cell.
var barGlyphs = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// barFormatter renders a numeric value as a fixed-width unicode block bar.
// Values outside [0, max_value] saturate rather than error.
type barFormatter struct {
	width    int
	maxValue float64
}

func newBarFormatter(args []Arg) (barFormatter, error) {
	f := barFormatter{width: defaultBarWidth, maxValue: defaultBarMaxValue}
	for _, arg := range args {
		var err error
		switch arg.Key {
		case "width", "w":
			f.width, err = parseCountArg(arg)
		case "max_value":
			f.maxValue, err = parseFloatArg(arg)
		default:
			err = unknownArg("bar", arg)
		}
		if err != nil {
			return barFormatter{}, err
		}
	}
	return f, nil
}

func (f barFormatter) Format(v Value) (string, error) {
	if v.Kind() != KindNumber {
		return "", typeMismatch("bar", v)
	}
	fill := clamp01(v.num/f.maxValue) * float64(f.width)
	var b strings.Builder
	for i := 0; i < f.width; i++ {
		b.WriteRune(barGlyphs[int(clamp01(fill-float64(i))*8)])
	}
	return b.String(), nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
