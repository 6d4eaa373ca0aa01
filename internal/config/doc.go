// Package config handles loading and parsing passview configuration files.
//
// # Overview
//
// This package reads passview's TOML configuration to discover where
// recorded run traces live and which theme to start with.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/passview/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/passview/config.toml
//   - Trace directory: ~/.local/share/passview/runs
//   - Theme: Dracula
//
// # TOML Format
//
// Example config.toml:
//
//	trace_dir = "~/.local/share/passview/runs"
//	theme = "Slate"
//
// Both fields are optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors
// (except os.ErrNotExist, which triggers defaults) and TOML parsing
// errors. Missing config files are NOT an error - defaults are used
// instead, so passview works out-of-the-box without configuration.
package config
