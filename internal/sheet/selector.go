package sheet

// Selector is the mutable cell holding the selected screen.
// It never validates; the controller enforces the collapse rule.
type Selector struct {
	current Screen
}

// Select sets the current screen unconditionally.
func (s *Selector) Select(screen Screen) {
	s.current = screen
}

// Clear resets the selection to none.
func (s *Selector) Clear() {
	s.current = nil
}

// Current returns the selected screen, nil when none.
func (s Selector) Current() Screen {
	return s.current
}
