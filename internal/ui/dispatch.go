package ui

// Bounds is the scrollable extent of the content panel for the current
// frame. Cursor increments clamp against it; it depends on layout, not on
// the state machine, so the render side supplies it.
type Bounds struct {
	MaxRow int
	MaxCol int
}

// Dispatch applies one key to the view state. n is the sequence length.
// Unrecognized keys are no-ops; quit is handled by the caller before
// dispatch. Dispatch never fails and leaves the state fully consistent.
func Dispatch(v *ViewState, key string, n int, bounds Bounds) {
	// Error states swallow one key as acknowledgment and return to
	// wherever indexing was entered from.
	if v.Mode == ModeInvalid || v.Mode == ModeOutOfBounds {
		v.Mode = v.ReturnMode
		return
	}

	switch key {
	case "up":
		v.CursorRow = max(v.CursorRow-1, 0)

	case "left":
		v.CursorCol = max(v.CursorCol-1, 0)

	case "down":
		v.CursorRow = min(v.CursorRow+1, max(bounds.MaxRow, 0))

	case "right":
		v.CursorCol = min(v.CursorCol+1, max(bounds.MaxCol, 0))

	case "i", "I":
		if v.Mode == ModeNormal || v.Mode == ModeDetail {
			v.ReturnMode = v.Mode
			v.Mode = ModeIndexing
		}

	case "n", "N":
		if v.Mode == ModeIndexing || v.Mode == ModeDetail {
			v.Selected = min(v.Selected+1, n-1)
			v.Mode = ModeDetail
		}

	case "p", "P":
		if v.Mode == ModeIndexing || v.Mode == ModeDetail {
			v.Selected = max(v.Selected-1, 0)
			v.Mode = ModeDetail
		}

	case "b", "B":
		v.Reset()
	}
}
