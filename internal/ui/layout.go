package ui

// Rect is a panel rectangle in terminal cells.
type Rect struct {
	Row    int
	Col    int
	Width  int
	Height int
}

// Dashboard geometry. The title band sits near the top, the overview block
// below it, the content panel to the overview's right, and the status bar
// on the last row.
const (
	titleStartRow    = 1
	titleRows        = 4
	overviewStartRow = 6
	overviewMargin   = 5
	contentGap       = 5
	minContentWidth  = 5
)

// Layout is the computed panel geometry for one terminal size.
type Layout struct {
	Title    Rect
	Overview Rect
	Content  Rect
	Status   Rect

	// HasContent is false when the terminal is too narrow to fit the
	// content panel; the panel is omitted for the frame instead of
	// failing.
	HasContent bool
}

// Compute derives panel geometry from the terminal size and the overview
// table width. tableWidth comes from the aggregated overview content so
// the content panel can start immediately to its right.
func Compute(width, height, tableWidth int) Layout {
	layout := Layout{
		Title: Rect{Row: titleStartRow, Col: 0, Width: width, Height: titleRows},
	}

	overviewWidth := overviewMargin + tableWidth
	bodyHeight := max(height-overviewStartRow-1, 0)
	layout.Overview = Rect{
		Row:    overviewStartRow,
		Col:    0,
		Width:  overviewWidth,
		Height: bodyHeight,
	}

	contentCol := overviewWidth + contentGap
	contentWidth := width - contentCol - 1
	if contentWidth >= minContentWidth {
		layout.HasContent = true
		layout.Content = Rect{
			Row:    overviewStartRow,
			Col:    contentCol,
			Width:  contentWidth,
			Height: bodyHeight,
		}
	}

	layout.Status = Rect{Row: height - 1, Col: 0, Width: width, Height: 1}
	return layout
}

// CenterOffset returns the left offset that centers text of the given
// length in a field of the given width. Odd lengths get the extra column
// on the left; this tie-break keeps visual parity across panels.
func CenterOffset(width, length int) int {
	return max(0, width/2-length/2-length%2)
}
