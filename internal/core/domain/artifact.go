package domain

// Artifact is the generated header produced for one top-level kernel. The
// body is embedded verbatim inside a C++ raw string literal, so it survives
// quotes, backslashes and newlines without per-line escaping.
type Artifact struct {
	Prefix string
	Body   LineSequence
	Year   int
	Holder string
	Since  int
}

// ConstName returns the name of the emitted string constant.
func (a *Artifact) ConstName() string {
	return "source_" + a.Prefix
}
