package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CommitOutcome is the result of committing a typed pass index.
type CommitOutcome int

const (
	// CommitDetail means the entry parsed and is in range.
	CommitDetail CommitOutcome = iota
	// CommitInvalid means the entry did not parse as an integer.
	CommitInvalid
	// CommitOutOfBounds means the entry parsed but is outside [0, n-1].
	CommitOutOfBounds
)

// Indexer owns the status-line text entry used to index directly into a
// pass. It wraps a textinput so the pending buffer renders inline in the
// status bar while the indexing sub-mode is active.
type Indexer struct {
	input textinput.Model
}

// NewIndexer builds the controller with the fixed indexing prompt.
func NewIndexer() Indexer {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 6
	input.Width = 8
	return Indexer{input: input}
}

// Begin starts a fresh capture.
func (x *Indexer) Begin() {
	x.input.SetValue("")
	x.input.Focus()
}

// End stops the capture, discarding any pending buffer.
func (x *Indexer) End() {
	x.input.Blur()
}

// Active reports whether a capture is in progress.
func (x *Indexer) Active() bool {
	return x.input.Focused()
}

// Handle feeds one key into the pending buffer. Only digits, a leading
// minus, spaces and editing keys are accepted; everything else is ignored
// so navigation keys keep their dispatcher meaning.
func (x *Indexer) Handle(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		x.input, _ = x.input.Update(msg)
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '-' && r != ' ' {
				return
			}
		}
		x.input, _ = x.input.Update(msg)
	}
}

// Value returns the pending buffer as typed.
func (x *Indexer) Value() string {
	return x.input.Value()
}

// Commit parses the pending buffer against a sequence of length n.
// Surrounding whitespace is tolerated; an empty or non-numeric entry is
// invalid; negative values and values >= n are out of bounds. The index
// is only meaningful when the outcome is CommitDetail.
func (x *Indexer) Commit(n int) (int, CommitOutcome) {
	raw := strings.TrimSpace(x.input.Value())
	value, err := strconv.Atoi(raw)
	if err != nil {
		return -1, CommitInvalid
	}
	if value < 0 || value >= n {
		return -1, CommitOutOfBounds
	}
	return value, CommitDetail
}
