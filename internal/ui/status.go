package ui

// renderStatusBar builds the last row of the terminal: the status literal
// for the active sub-mode, background-highlighted across the full width,
// clipped rather than wrapped. During indexing the pending buffer renders
// inline after the prompt.
func (m Model) renderStatusBar() string {
	rect := m.layout.Status
	styles := m.theme.Styles()

	text := statusText(m.view.Mode)
	if m.view.Mode == ModeIndexing {
		text += m.entry.Value()
	}

	return styles.StatusBar.
		Width(max(rect.Width, 0)).
		MaxWidth(max(rect.Width, 0)).
		Render(clip(text, max(rect.Width-1, 0)))
}
