package blockfmt

import (
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

const (
	defaultStrMinWidth = 0
	defaultStrMaxWidth = math.MaxInt

	// Shorter intervals would busy-redraw the bar.
	minRotInterval = 100 * time.Millisecond

	rotSeparator = '|'
)

// strFormatter renders text values: pad to min_width, clamp to max_width,
// escape for pango unless told the caller already did. When a rot_interval is
// configured and the text overflows max_width, the visible window scrolls
// through the text one character per interval, with rotSeparator marking the
// wrap point.
type strFormatter struct {
	minWidth    int
	maxWidth    int
	pango       bool
	cells       bool
	rotInterval time.Duration // zero when rotation is off

	// Rotation phase is elapsed time since construction. The timestamp is
	// set once and only ever read; now is swapped out in tests.
	initTime time.Time
	now      func() time.Time
}

func newStrFormatter(args []Arg) (*strFormatter, error) {
	f := &strFormatter{
		minWidth: defaultStrMinWidth,
		maxWidth: defaultStrMaxWidth,
		now:      time.Now,
	}
	for _, arg := range args {
		var err error
		switch arg.Key {
		case "min_width", "min_w":
			f.minWidth, err = parseCountArg(arg)
		case "max_width", "max_w":
			f.maxWidth, err = parseCountArg(arg)
		case "pango":
			f.pango, err = parseBoolArg(arg)
		case "cells":
			f.cells, err = parseBoolArg(arg)
		case "rot_interval":
			var secs float64
			if secs, err = parseFloatArg(arg); err == nil {
				f.rotInterval = time.Duration(secs * float64(time.Second))
				if f.rotInterval < minRotInterval {
					return nil, errBadArg("rot_interval must be at least 0.1")
				}
			}
		default:
			err = unknownArg("str", arg)
		}
		if err != nil {
			return nil, err
		}
	}
	if f.maxWidth < f.minWidth {
		return nil, errBadArg("max_width must be greater or equal to min_width")
	}
	f.initTime = f.now()
	return f, nil
}

func (f *strFormatter) Format(v Value) (string, error) {
	if v.Kind() != KindText {
		return "", typeMismatch("str", v)
	}
	text := []rune(v.text)
	if f.rotInterval > 0 && len(text) > f.maxWidth {
		return f.rotate(text), nil
	}
	var out string
	if f.cells {
		out = f.fitCells(v.text)
	} else {
		out = f.fitRunes(text)
	}
	if f.pango {
		return out, nil
	}
	return pangoEscape(out), nil
}

// fitRunes pads and clamps counting characters.
func (f *strFormatter) fitRunes(text []rune) string {
	for len(text) < f.minWidth {
		text = append(text, ' ')
	}
	if len(text) > f.maxWidth {
		text = text[:f.maxWidth]
	}
	return string(text)
}

// fitCells pads and clamps counting terminal display cells, so double-width
// glyphs occupy two units of the budget.
func (f *strFormatter) fitCells(text string) string {
	if runewidth.StringWidth(text) > f.maxWidth {
		text = runewidth.Truncate(text, f.maxWidth, "")
	}
	return runewidth.FillRight(text, f.minWidth)
}

// rotate returns the window of the circular buffer text+separator visible at
// the current phase. The window is always exactly max_width characters and is
// always escaped, pango or not: markup cannot survive being cut mid-span.
func (f *strFormatter) rotate(text []rune) string {
	buf := append(text, rotSeparator)
	phase := int(f.now().Sub(f.initTime)/f.rotInterval) % len(buf)
	var b strings.Builder
	for i := 0; i < f.maxWidth; i++ {
		b.WriteRune(buf[(phase+i)%len(buf)])
	}
	return pangoEscape(b.String())
}

func (f *strFormatter) Interval() time.Duration { return f.rotInterval }
