package ui

import (
	"fmt"
	"strings"
)

const titleString = "Transpiler Pass Inspector"

// renderTitlePanel builds the 4-row title band: rule, centered title,
// rule, centered subtitle assembled from the run metadata pairs.
func (m Model) renderTitlePanel() string {
	rect := m.layout.Title
	styles := m.theme.Styles()
	limit := max(rect.Width-1, 0)

	rule := strings.Repeat("-", max(rect.Width, 0))

	var subtitle strings.Builder
	subtitle.WriteString("| ")
	for _, field := range m.seq.Info().Fields {
		fmt.Fprintf(&subtitle, "%s: %s | ", field.Key, field.Value)
	}

	rows := []string{
		styles.Title.Render(rule),
		styles.TitleBold.Render(centerIn(rect.Width, clip(titleString, limit))),
		styles.Title.Render(rule),
		styles.Title.Render(centerIn(rect.Width, clip(subtitle.String(), limit))),
	}
	return strings.Join(rows, "\n")
}
