package blockfmt

import "strings"

// pangoReplacer escapes the characters that pango markup assigns meaning to.
// Icon values and pango=true text bypass this sink entirely.
var pangoReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
)

func pangoEscape(s string) string { return pangoReplacer.Replace(s) }
