package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures passview's settings.
type Config struct {
	TraceDir string
	Theme    string
}

const (
	defaultConfigPath = "~/.config/passview/config.toml"
	defaultTraceDir   = "~/.local/share/passview/runs"
	defaultTheme      = "Dracula"
)

// Load locates and parses the config file, falling back to defaults when
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{TraceDir: defaultTraceDir, Theme: defaultTheme}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.TraceDir = mustExpand(defaultTraceDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		TraceDir string `toml:"trace_dir"`
		Theme    string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.TraceDir = strings.TrimSpace(raw.TraceDir)
	if cfg.TraceDir == "" {
		cfg.TraceDir = defaultTraceDir
	}
	cfg.TraceDir = mustExpand(cfg.TraceDir)

	cfg.Theme = strings.TrimSpace(raw.Theme)
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}

	return cfg, nil
}

// ResolveTrace resolves a trace path against the configured trace
// directory when it is not absolute and does not exist as given.
func (c Config) ResolveTrace(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || filepath.IsAbs(trimmed) {
		return trimmed
	}
	if _, err := os.Stat(trimmed); err == nil {
		return trimmed
	}
	return filepath.Join(c.TraceDir, trimmed)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
