// Package app provides the orchestration layer for the passview application.
//
// # Overview
//
// This package wires together configuration, preferences, trace loading and
// the UI to create the complete passview TUI experience. It serves as the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load passview configuration from ~/.config/passview/config.toml
//  2. Load user preferences (theme) from ~/.config/passview/prefs.toml
//  3. Resolve and parse the recorded run file, or fall back to the
//     built-in demo run
//  4. Start the TUI and block until the user exits
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - Recorded run file missing, malformed, or empty
//   - Neither a trace path nor the demo flag supplied
//
// Missing configuration and preference files are not errors; defaults
// apply. A corrupt preferences file also falls back to defaults so a bad
// write never blocks startup.
//
// # Design Rationale
//
// The viewer is read-only and fully offline: the run was recorded
// elsewhere and is frozen before the UI starts, so Run performs all I/O
// up front and hands the UI an immutable sequence. Domain logic lives in
// the trace and ui packages; this package only connects them.
package app
