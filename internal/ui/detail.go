package ui

import (
	"fmt"
	"strings"

	"github.com/calef/passview/internal/trace"
)

// contentBannerRows is the fixed header band at the top of the content
// panel; only the body below it scrolls.
const contentBannerRows = 4

// renderContentPanel builds the panel to the right of the overview: the
// full pass list while browsing, a single pass in detail mode. Returns ""
// when the current layout omits the panel.
func (m Model) renderContentPanel() string {
	if !m.layout.HasContent {
		return ""
	}
	rect := m.layout.Content
	styles := m.theme.Styles()

	banner := m.contentBannerTitle()
	underline := strings.Repeat("_", max(rect.Width-4, 0))
	lines := []string{
		underline,
		"",
		styles.Heading.Render(centerIn(rect.Width, clip(banner, rect.Width-1))),
		underline,
	}

	body := m.contentBody()
	bodyHeight := max(rect.Height-contentBannerRows, 0)

	// Clamp again here: a resize can shrink the panel after the cursor
	// moved.
	rowOffset := min(m.view.CursorRow, maxRowOffset(body, bodyHeight))
	colOffset := min(m.view.CursorCol, maxColOffset(body, rect.Width))

	for i := rowOffset; i < len(body) && i < rowOffset+bodyHeight; i++ {
		line := []rune(body[i])
		if colOffset < len(line) {
			lines = append(lines, clip(string(line[colOffset:]), rect.Width))
		} else {
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

// contentBannerTitle names the content panel for the active sub-mode.
func (m Model) contentBannerTitle() string {
	if m.view.Mode == ModeDetail && m.view.Selected >= 0 {
		return fmt.Sprintf("Pass %d of %d", m.view.Selected, m.seq.Len())
	}
	return "Transpiler Passes"
}

// contentBody renders the scrollable lines for the active sub-mode.
func (m Model) contentBody() []string {
	if m.view.Mode == ModeDetail && m.view.Selected >= 0 {
		return passDetailLines(m.seq.Step(m.view.Selected))
	}
	return passListLines(m.seq)
}

// contentBounds reports the scroll extent of the content panel for the
// current frame so the dispatcher can clamp downward and rightward moves.
func (m Model) contentBounds() Bounds {
	if !m.layout.HasContent {
		return Bounds{}
	}
	body := m.contentBody()
	bodyHeight := max(m.layout.Content.Height-contentBannerRows, 0)
	return Bounds{
		MaxRow: maxRowOffset(body, bodyHeight),
		MaxCol: maxColOffset(body, m.layout.Content.Width),
	}
}

func maxRowOffset(lines []string, height int) int {
	return max(len(lines)-height, 0)
}

func maxColOffset(lines []string, width int) int {
	longest := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	return max(longest-width, 0)
}

// passListLines renders one row per recorded pass.
func passListLines(seq *trace.Sequence) []string {
	nameWidth := 0
	for _, step := range seq.Steps() {
		if n := len([]rune(step.Name)); n > nameWidth {
			nameWidth = n
		}
	}

	lines := make([]string, 0, seq.Len()+1)
	lines = append(lines, fmt.Sprintf("%4s  %s  %-14s  %12s",
		"#", padRight("Pass Name", nameWidth), "Kind", "Runtime"))
	for i := 0; i < seq.Len(); i++ {
		step := seq.Step(i)
		lines = append(lines, fmt.Sprintf("%4d  %s  %-14s  %12s",
			step.Index,
			padRight(step.Name, nameWidth),
			step.Kind.String(),
			formatMillis(step.Duration)))
	}
	return lines
}

// passDetailLines renders the full record of one pass.
func passDetailLines(step trace.Step) []string {
	stats := step.Stats
	lines := []string{
		step.Name,
		fmt.Sprintf("Kind: %s", step.Kind),
		fmt.Sprintf("Runtime: %s", formatMillis(step.Duration)),
		"",
		"Statistics",
		fmt.Sprintf("  Depth: %d", stats.Depth),
		fmt.Sprintf("  Size:  %d", stats.Size),
		fmt.Sprintf("  Width: %d", stats.Width),
		fmt.Sprintf("  Ops (1q/2q/3q): %d / %d / %d", stats.Ops1Q, stats.Ops2Q, stats.Ops3Q),
		"",
	}

	lines = append(lines, "Properties")
	if len(step.Properties) == 0 {
		lines = append(lines, "  (none)")
	}
	for _, prop := range step.Properties {
		lines = append(lines, fmt.Sprintf("  %s = %s", prop.Name, prop.Value))
	}

	lines = append(lines, "", "Logs")
	if len(step.Logs) == 0 {
		lines = append(lines, "  (none)")
	}
	for _, entry := range step.Logs {
		lines = append(lines, "  "+entry)
	}

	return lines
}
