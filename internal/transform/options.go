package transform

// NumberingMode selects which output lines receive a number prefix.
type NumberingMode uint8

const (
	// NumberNone disables line numbering.
	NumberNone NumberingMode = iota
	// NumberAll numbers every output line.
	NumberAll
	// NumberNonBlank numbers only non-blank output lines.
	NumberNonBlank
)

func (m NumberingMode) String() string {
	switch m {
	case NumberNone:
		return "none"
	case NumberAll:
		return "all"
	case NumberNonBlank:
		return "nonblank"
	}
	return "unknown"
}

// Options is the immutable display configuration for one invocation.
// It is computed once, before any source is touched, and shared by every
// source of the run.
type Options struct {
	Numbering       NumberingMode
	ShowEnds        bool
	SqueezeBlank    bool
	ShowTabs        bool
	ShowNonprinting bool
}
