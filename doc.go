// Package blockfmt renders typed status-bar values into display strings.
//
// A [Value] is text, a numeric quantity tagged with a physical [Unit], an
// icon glyph, or a presence flag. A [Formatter] is an immutable configuration
// built once from a name and key/value arguments via [New], then reused for
// every render of that field:
//
//	f, err := blockfmt.New("eng", []blockfmt.Arg{{Key: "w", Value: "3"}})
//	s, err := f.Format(blockfmt.Number(1536, blockfmt.UnitBytes))
//
// # Formatters
//
// Four formatters are constructible by name:
//
//   - "str" — pads text to min_width, clamps it to max_width, and escapes it
//     for pango markup (set pango:true to pass pre-escaped text through, or
//     cells:true to measure widths in terminal display cells). When
//     rot_interval is set and the text overflows max_width, the window
//     scrolls through the text over time.
//   - "bar" — renders a number as a fixed-width unicode block bar with eight
//     fill sub-levels per cell.
//   - "eng" — engineering notation: the number is auto-scaled by a metric or
//     binary [Prefix], laid out in a fixed digit budget, and suffixed with
//     the prefix letter and unit symbol.
//   - "fix" — reserved for fixed-point rendering; formatting currently fails
//     with [ErrNotImplemented].
//
// Unknown argument keys are a hard error rather than being ignored, so a
// misspelled option surfaces immediately.
//
// # Re-rendering
//
// Formatting is synchronous and side-effect-free except that "str" rotation
// reads the wall clock. A rotating formatter implements [Intervaler]; use
// [Interval] to learn how often a field must be re-rendered without a new
// value. The package never schedules anything itself.
//
// # Templates
//
// [Template] ties the pieces together for callers that describe a whole
// field as one format string:
//
//	t, err := blockfmt.ParseTemplate("updates: {count:eng(w:3)}")
//	s, err := t.Render(map[string]blockfmt.Value{
//		"count": blockfmt.Number(42, blockfmt.UnitNone),
//	})
//
// Templates unmarshal from YAML and plain text, so they can sit directly in
// configuration structs.
//
// # Errors
//
// Construction-time failures wrap [ErrUnknownFormatter], [ErrBadArgument],
// or [ErrInvalidTemplate]. Render-time failures wrap [ErrTypeMismatch],
// [ErrUnitMismatch], [ErrNotImplemented], or [ErrMissingValue]. The two
// families are disjoint: nothing that passed construction fails for
// configuration reasons later.
package blockfmt
