package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/idvorkin/rmux-helper/internal/gitpath"
	"github.com/idvorkin/rmux-helper/internal/logging"
	"github.com/idvorkin/rmux-helper/internal/logging/events"
	"github.com/idvorkin/rmux-helper/internal/menu"
	"github.com/idvorkin/rmux-helper/internal/tmux"
	"github.com/idvorkin/rmux-helper/internal/ui"
)

// Layout names accepted by Config.Layout.
const (
	LayoutSideBySide = string(ui.LayoutSideBySide)
	LayoutStacked    = string(ui.LayoutStacked)
)

const defaultTimeout = 2 * time.Second

// Config describes user-provided application options.
type Config struct {
	SocketPath string
	Width      int
	Height     int
	ShowFooter bool
	Layout     string
	// CaptureTimeout bounds every tmux call made on behalf of the picker.
	CaptureTimeout time.Duration
	// Reopen shows the picker again, with fresh state, after a rename.
	Reopen      bool
	PathAliases map[string]string
	Version     string
}

func (c Config) timeout() time.Duration {
	if c.CaptureTimeout > 0 {
		return c.CaptureTimeout
	}
	return defaultTimeout
}

var (
	resolveSocket = tmux.ResolveSocketPath
	fetchRows     = tmux.FetchPaneRows
	currentPane   = tmux.CurrentPane
	lastPane      = tmux.LastPane
	capturePane   = tmux.PanePreview
	switchClient  = tmux.SwitchClient
	renameSession = tmux.RenameSession
	renameWindow  = tmux.RenameWindow
	shutdownTmux  = tmux.Shutdown
	runPicker     = ui.Run
	userHomeDir   = os.UserHomeDir
)

// Run shows the picker and switches the launching client to the chosen pane.
// After a rename the picker is shown again when cfg.Reopen is set.
func Run(ctx context.Context, cfg Config) error {
	socketPath, err := resolveSocket(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	defer shutdownTmux()

	for {
		entries, err := LoadEntries(ctx, cfg, socketPath)
		if err != nil {
			return err
		}
		renamed := false
		target, err := runPicker(ctx, ui.Options{
			Entries:        entries,
			Width:          cfg.Width,
			Height:         cfg.Height,
			ShowFooter:     cfg.ShowFooter,
			Layout:         ui.Layout(cfg.Layout),
			CaptureTimeout: cfg.timeout(),
			Capture: func(ctx context.Context, target string) ([]string, error) {
				return capturePane(ctx, socketPath, target)
			},
			Rename: func(req menu.RenameRequest) error {
				renamed = true
				return commitRename(ctx, cfg, socketPath, req)
			},
			Version: cfg.Version,
		})
		if err != nil {
			return err
		}
		events.App.Exit(target, renamed)
		if target != "" {
			switchTo(ctx, cfg, socketPath, target)
			return nil
		}
		if !renamed || !cfg.Reopen {
			return nil
		}
	}
}

// LoadEntries queries the pane hierarchy and builds the picker rows.
func LoadEntries(ctx context.Context, cfg Config, socketPath string) ([]menu.Entry, error) {
	qctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()
	rows, err := fetchRows(qctx, socketPath)
	if err != nil {
		return nil, fmt.Errorf("list panes: %w", err)
	}
	current := currentPane(qctx, socketPath)
	last := lastPane(qctx, socketPath, current)
	home, _ := userHomeDir()
	resolver := gitpath.NewResolver(cfg.PathAliases, home)
	entries := menu.BuildEntries(menu.BuildInput{
		Rows:      rows,
		Current:   current,
		Last:      last,
		ShortPath: resolver.ShortPath,
	})
	events.App.Entries(len(entries), current, last)
	return entries, nil
}

func commitRename(ctx context.Context, cfg Config, socketPath string, req menu.RenameRequest) error {
	rctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()
	if req.Kind == menu.RenameWindow {
		return renameWindow(rctx, socketPath, req.Target, req.Name)
	}
	return renameSession(rctx, socketPath, req.Target, req.Name)
}

// switchTo is best effort: a failed switch is logged and the run still
// succeeds.
func switchTo(ctx context.Context, cfg Config, socketPath, target string) {
	sctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()
	if err := switchClient(sctx, socketPath, target); err != nil {
		logging.Error(err)
	}
}
