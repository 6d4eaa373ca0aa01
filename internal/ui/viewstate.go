package ui

// ViewState holds all mutable navigation state for one dashboard session.
// It is created once at session start, mutated once per input cycle, and
// fully reset on a back-to-overview transition.
type ViewState struct {
	CursorRow int
	CursorCol int

	Mode Mode

	// Selected is the index of the pass shown in detail mode, or -1 when
	// no pass is selected.
	Selected int

	// ReturnMode is where an indexing interaction (and its error states)
	// returns to on completion or acknowledgment: the mode 'I' was
	// pressed in.
	ReturnMode Mode

	// Last observed terminal dimensions, compared each cycle to detect a
	// resize.
	LastWidth  int
	LastHeight int
}

// NewViewState returns the session-start state.
func NewViewState() ViewState {
	return ViewState{Selected: -1, Mode: ModeNormal, ReturnMode: ModeNormal}
}

// Reset performs the back-to-overview transition: cursor, selection and
// sub-mode all return to their initial values. Terminal dimensions are
// kept; a reset is not a resize.
func (v *ViewState) Reset() {
	v.CursorRow = 0
	v.CursorCol = 0
	v.Mode = ModeNormal
	v.Selected = -1
	v.ReturnMode = ModeNormal
}

// ObserveSize records the current terminal dimensions and reports whether
// a structural redraw is needed: true on the first observation and
// whenever the dimensions differ from the last observed ones.
func (v *ViewState) ObserveSize(width, height int) bool {
	first := v.LastWidth == 0 && v.LastHeight == 0
	changed := v.LastWidth != width || v.LastHeight != height
	v.LastWidth = width
	v.LastHeight = height
	return first || changed
}
