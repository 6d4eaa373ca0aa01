package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calef/passview/internal/prefs"
	"github.com/calef/passview/internal/trace"
)

// Options configures the UI.
type Options struct {
	Sequence  *trace.Sequence
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	seq       *trace.Sequence
	theme     Theme
	prefsPath string

	view  ViewState
	entry Indexer

	// overview is cached per sequence; a resize never recomputes it.
	overview Overview

	layout Layout
	ready  bool

	// Panel buffers reused between frames and rebuilt only on a
	// structural redraw. The status bar is rebuilt every frame.
	titlePanel    string
	overviewPanel string
}

// New creates the dashboard model for a frozen sequence.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	return Model{
		seq:       opts.Sequence,
		theme:     GetTheme(themeName),
		prefsPath: opts.PrefsPath,
		view:      NewViewState(),
		entry:     NewIndexer(),
		overview:  Summarize(opts.Sequence),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		if m.view.ObserveSize(msg.Width, msg.Height) {
			m.rebuildPanels()
		}
		m.ready = true
		return m, nil
	}

	return m, nil
}

// rebuildPanels recomputes geometry and the cached panel buffers for the
// last observed terminal size.
func (m *Model) rebuildPanels() {
	m.layout = Compute(m.view.LastWidth, m.view.LastHeight, m.overview.TableWidth())
	m.titlePanel = m.renderTitlePanel()
	m.overviewPanel = m.renderOverviewPanel()
}

// handleKey processes one keyboard event. Quit is checked before anything
// else so it is honored in every sub-mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		m.rebuildPanels()
		return m, nil
	}

	// While indexing, most keys feed the status-line buffer; commit and
	// the keys with dispatcher meaning pass through.
	if m.view.Mode == ModeIndexing {
		switch key {
		case "enter":
			index, outcome := m.entry.Commit(m.seq.Len())
			m.entry.End()
			switch outcome {
			case CommitDetail:
				m.view.Mode = ModeDetail
				m.view.Selected = index
			case CommitInvalid:
				m.view.Mode = ModeInvalid
			case CommitOutOfBounds:
				m.view.Mode = ModeOutOfBounds
			}
			return m, nil

		case "n", "N", "p", "P", "b", "B", "up", "down", "left", "right":
			// dispatcher keys keep their meaning during capture

		default:
			m.entry.Handle(msg)
			return m, nil
		}
	}

	previous := m.view.Mode
	Dispatch(&m.view, key, m.seq.Len(), m.contentBounds())

	if m.view.Mode == ModeIndexing && previous != ModeIndexing {
		m.entry.Begin()
	}
	if previous == ModeIndexing && m.view.Mode != ModeIndexing {
		m.entry.End()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	styles := m.theme.Styles()
	width := m.view.LastWidth
	height := m.view.LastHeight

	rows := make([]string, 0, height)

	// Row 0: current dimensions, top-left.
	dims := fmt.Sprintf("Width: %d, Height: %d", width, height)
	rows = append(rows, styles.AccentText.Render(clip(dims, max(width-1, 0))))

	// Rows 1-4: title band; row 5: spacer.
	rows = append(rows, strings.Split(m.titlePanel, "\n")...)
	rows = append(rows, "")

	// Body rows, clipped and padded so the status bar lands on the last
	// terminal row.
	available := max(height-overviewStartRow-1, 0)
	body := m.overviewPanel
	if m.layout.HasContent {
		gap := strings.Repeat(" ", contentGap)
		block := lipgloss.NewStyle().Width(m.layout.Overview.Width).Render(m.overviewPanel)
		body = lipgloss.JoinHorizontal(lipgloss.Top, block, gap, m.renderContentPanel())
	}
	bodyLines := strings.Split(body, "\n")
	if len(bodyLines) > available {
		bodyLines = bodyLines[:available]
	}
	for len(bodyLines) < available {
		bodyLines = append(bodyLines, "")
	}
	rows = append(rows, bodyLines...)

	// Last row: status bar, rebuilt every frame.
	rows = append(rows, m.renderStatusBar())

	return strings.Join(rows, "\n")
}

// Run starts the Bubble Tea program and blocks until quit or context
// cancellation. The alt screen and cursor state are restored on exit,
// including abnormal termination.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if ctx.Err() != nil {
		return nil
	}
	return err
}
