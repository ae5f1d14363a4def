package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/idvorkin/rmux-helper/internal/app"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Layout != app.LayoutSideBySide {
		t.Fatalf("expected side-by-side default, got %q", cfg.App.Layout)
	}
	if cfg.App.CaptureTimeout != defaultCaptureTimeout {
		t.Fatalf("expected default timeout, got %s", cfg.App.CaptureTimeout)
	}
	if !cfg.App.ShowFooter || !cfg.App.Reopen {
		t.Fatalf("expected footer and reopen enabled by default, got %+v", cfg.App)
	}
	if cfg.App.PathAliases["idvorkin.github.io"] != "blog" {
		t.Fatalf("expected default alias for blog, got %#v", cfg.App.PathAliases)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file without HOME, got %q", cfg.File)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	env := []string{
		envSocketPath + "=/tmp/tmux-1000/default",
		envWidth + "=120",
		envLayout + "=stacked",
		envCaptureTimeout + "=750ms",
		envTrace + "=true",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.SocketPath != "/tmp/tmux-1000/default" {
		t.Fatalf("expected socket from env, got %q", cfg.App.SocketPath)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("expected width 120, got %d", cfg.App.Width)
	}
	if cfg.App.Layout != app.LayoutStacked {
		t.Fatalf("expected stacked layout, got %q", cfg.App.Layout)
	}
	if cfg.App.CaptureTimeout != 750*time.Millisecond {
		t.Fatalf("expected 750ms timeout, got %s", cfg.App.CaptureTimeout)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{envLayout + "=stacked", envWidth + "=50"}
	cfg, err := LoadArgs([]string{"--layout", "side-by-side", "--width", "90"}, env)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Layout != app.LayoutSideBySide {
		t.Fatalf("expected flag to win, got %q", cfg.App.Layout)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected width 90, got %d", cfg.App.Width)
	}
	if cfg.Flags["width"] != "90" {
		t.Fatalf("expected width flag recorded, got %q", cfg.Flags["width"])
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-3"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestConfigFileFillsUnsetValues(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"layout: stacked",
		"capture_timeout: 5s",
		"footer: false",
		"reopen: false",
		"path_aliases:",
		"  dotfiles: dots",
		"  idvorkin: igor",
	}, "\n"))
	cfg, err := LoadArgs([]string{"--config", path}, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Layout != app.LayoutStacked {
		t.Fatalf("expected layout from file, got %q", cfg.App.Layout)
	}
	if cfg.App.CaptureTimeout != 5*time.Second {
		t.Fatalf("expected timeout from file, got %s", cfg.App.CaptureTimeout)
	}
	if cfg.App.ShowFooter || cfg.App.Reopen {
		t.Fatalf("expected footer and reopen disabled by file, got %+v", cfg.App)
	}
	if cfg.App.PathAliases["dotfiles"] != "dots" || cfg.App.PathAliases["idvorkin"] != "igor" {
		t.Fatalf("expected merged aliases, got %#v", cfg.App.PathAliases)
	}
	if cfg.App.PathAliases["idvorkin.github.io"] != "blog" {
		t.Fatalf("expected default alias kept, got %#v", cfg.App.PathAliases)
	}
}

func TestConfigFileLosesToEnvironment(t *testing.T) {
	path := writeConfig(t, "layout: stacked\n")
	cfg, err := LoadArgs(nil, []string{envConfigFile + "=" + path, envLayout + "=side-by-side"})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Layout != app.LayoutSideBySide {
		t.Fatalf("expected env to beat file, got %q", cfg.App.Layout)
	}
}

func TestExplicitMissingConfigFileIsAnError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	if _, err := LoadArgs([]string{"--config", missing}, nil); err == nil {
		t.Fatalf("expected error for explicit missing config")
	}
}

func TestDefaultConfigFileMayBeMissing(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadArgs(nil, []string{"HOME=" + home})
	if err != nil {
		t.Fatalf("expected missing default config to be ignored, got %v", err)
	}
	if cfg.File != filepath.Join(home, ".config", "rmux-helper", "config.yaml") {
		t.Fatalf("unexpected default config path %q", cfg.File)
	}
	if !strings.HasPrefix(cfg.Logging.FilePath, home) {
		t.Fatalf("expected log file under home, got %q", cfg.Logging.FilePath)
	}
}

func TestMalformedConfigFile(t *testing.T) {
	path := writeConfig(t, "layout: [unterminated\n")
	if _, err := LoadArgs([]string{"--config", path}, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateRejectsUnknownLayout(t *testing.T) {
	cfg, err := LoadArgs([]string{"--layout", "diagonal"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error for unknown layout")
	}
	cfg.App.Layout = app.LayoutStacked
	cfg.App.CaptureTimeout = 0
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error for zero timeout")
	}
}
