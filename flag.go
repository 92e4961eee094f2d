package blockfmt

// flagFormatter handles presence/absence signals: a flag renders as the empty
// string. It is not reachable through [New]; [Template] routes Flag values
// here automatically. Receiving anything else means the producing layer broke
// its routing contract, which is reported as a type mismatch rather than a
// panic.
type flagFormatter struct{}

var theFlagFormatter = flagFormatter{}

func (flagFormatter) Format(v Value) (string, error) {
	if v.Kind() != KindFlag {
		return "", typeMismatch("flag", v)
	}
	return "", nil
}
