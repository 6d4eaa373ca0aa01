// Package ui renders the passview dashboard: a fixed layout of title band,
// run overview, pass content panel and status bar driven by a small
// navigation state machine.
//
// # Architecture
//
// The package separates state from presentation:
//
//   - viewstate.go / mode.go: all mutable navigation state (cursor,
//     sub-mode, selection, last observed dimensions) and the sub-mode
//     enumeration with its status-line literals
//   - dispatch.go: the pure key-to-mutation dispatcher
//   - indexer.go: the status-line text entry used to jump to a pass
//   - layout.go: panel geometry derived from terminal size and content
//   - overview.go: summary statistics aggregated once per sequence
//   - title.go / detail.go / status.go: panel renderers, string in and
//     string out, no terminal I/O
//   - app.go: the Bubble Tea model tying the cycle together
//
// # Navigation
//
// The dashboard starts in the normal sub-mode browsing the full pass list.
// 'I' opens an index entry on the status line; committing a valid index
// switches to detail mode for that pass, where 'N'/'P' step through
// neighboring passes. Malformed or out-of-range entries surface as
// explicit acknowledge-to-dismiss error states. 'B' returns to the
// overview from anywhere; 'Q' quits from anywhere.
//
// Only a dimension change triggers a structural redraw (panel geometry and
// cached panel buffers); the status bar is rebuilt every frame.
package ui
