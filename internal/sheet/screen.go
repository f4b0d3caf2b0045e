// Package sheet holds the bottom-sheet state machine: which screen the sheet
// shows and whether it is collapsed, expanding, expanded or collapsing.
//
// The package has no rendering code. The presentation layer reads
// CurrentVariant and Visible to decide what to draw, and drives the
// controller through Open, Close and SetVisibility.
package sheet

// Screen is one of the closed set of contents the sheet can show.
// A nil Screen means no content is selected.
type Screen interface {
	Kind() Kind
	isScreen()
}

// ScreenOne is the first static screen.
type ScreenOne struct{}

// ScreenTwo is the second static screen.
type ScreenTwo struct{}

// ScreenThree carries a caller supplied argument shown in its body.
type ScreenThree struct {
	Argument string
}

func (ScreenOne) Kind() Kind   { return KindOne }
func (ScreenTwo) Kind() Kind   { return KindTwo }
func (ScreenThree) Kind() Kind { return KindThree }

func (ScreenOne) isScreen()   {}
func (ScreenTwo) isScreen()   {}
func (ScreenThree) isScreen() {}

// Kind identifies a Screen variant without its payload.
type Kind int

const (
	KindNone Kind = iota
	KindOne
	KindTwo
	KindThree
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindOne:
		return "one"
	case KindTwo:
		return "two"
	case KindThree:
		return "three"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of s, KindNone for nil.
func KindOf(s Screen) Kind {
	if s == nil {
		return KindNone
	}
	return s.Kind()
}
