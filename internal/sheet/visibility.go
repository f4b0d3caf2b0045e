package sheet

// Visibility is the sheet's position in its expand/collapse cycle.
type Visibility int

const (
	Collapsed Visibility = iota
	Expanding
	Expanded
	Collapsing
)

func (v Visibility) String() string {
	switch v {
	case Collapsed:
		return "Collapsed"
	case Expanding:
		return "Expanding"
	case Expanded:
		return "Expanded"
	case Collapsing:
		return "Collapsing"
	default:
		return "Unknown"
	}
}

// Settled reports whether v is a resting state.
func (v Visibility) Settled() bool {
	return v == Collapsed || v == Expanded
}
