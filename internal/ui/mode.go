package ui

// Mode is the current interactive sub-mode of the dashboard.
type Mode int

const (
	// ModeNormal browses the full pass list.
	ModeNormal Mode = iota
	// ModeIndexing captures a pass index typed into the status line.
	ModeIndexing
	// ModeInvalid shows the malformed-entry message until acknowledged.
	ModeInvalid
	// ModeOutOfBounds shows the out-of-range message until acknowledged.
	ModeOutOfBounds
	// ModeDetail browses one selected pass.
	ModeDetail
)

// String returns a short label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIndexing:
		return "indexing"
	case ModeInvalid:
		return "invalid"
	case ModeOutOfBounds:
		return "out_of_bounds"
	case ModeDetail:
		return "detail"
	default:
		return "normal"
	}
}

// Status-line literals, one per mode. These are stable user-facing strings.
const (
	statusNormal      = " STATUS BAR  | ↑↓ keys: Scrolling | 'I': Index into a pass | 'Q': Exit"
	statusIndexing    = " STATUS BAR  | Enter the index of the pass you want to view : "
	statusInvalid     = " STATUS BAR  | Invalid input entered. Press any key to continue."
	statusOutOfBounds = " STATUS BAR  | Number entered is out of bounds. Press any key to continue."
	statusDetail      = " STATUS BAR  | Arrow keys: Scrolling | 'N/P': Move to next/previous pass | 'I': Index into a pass | 'B': Back to all passes | 'Q': Exit"
)

// statusText maps every mode to its status-line literal.
func statusText(m Mode) string {
	switch m {
	case ModeIndexing:
		return statusIndexing
	case ModeInvalid:
		return statusInvalid
	case ModeOutOfBounds:
		return statusOutOfBounds
	case ModeDetail:
		return statusDetail
	default:
		return statusNormal
	}
}
