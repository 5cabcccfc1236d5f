package dom

// QuirksMode is the document-wide compatibility classification decided
// during construction and consumed by downstream rendering logic.
type QuirksMode int

const (
	// NoQuirks is the default, standards-compliant mode.
	NoQuirks QuirksMode = iota

	// LimitedQuirks applies a small set of legacy behaviors.
	LimitedQuirks

	// FullQuirks applies full legacy compatibility behavior.
	FullQuirks
)

func (m QuirksMode) String() string {
	switch m {
	case NoQuirks:
		return "no-quirks"
	case LimitedQuirks:
		return "limited-quirks"
	case FullQuirks:
		return "quirks"
	default:
		return "unknown"
	}
}
