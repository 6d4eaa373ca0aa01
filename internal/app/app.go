package app

import (
	"context"
	"fmt"

	"github.com/calef/passview/internal/config"
	"github.com/calef/passview/internal/prefs"
	"github.com/calef/passview/internal/trace"
	"github.com/calef/passview/internal/ui"
)

// Options configure the passview application.
type Options struct {
	TracePath  string
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/passview/prefs.toml
	Demo       bool
}

// Run boots the passview dashboard until the quit key is pressed or ctx is
// canceled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	var seq *trace.Sequence
	switch {
	case opts.Demo:
		seq = trace.Demo()
	case opts.TracePath != "":
		seq, err = trace.Load(cfg.ResolveTrace(opts.TracePath))
		if err != nil {
			return fmt.Errorf("load trace: %w", err)
		}
	default:
		return fmt.Errorf("no trace to inspect: pass -trace or -demo")
	}

	themeName := userPrefs.Theme
	if themeName == "" {
		themeName = cfg.Theme
	}

	return ui.Run(ctx, ui.Options{
		Sequence:  seq,
		ThemeName: themeName,
		PrefsPath: opts.PrefsPath,
	})
}
