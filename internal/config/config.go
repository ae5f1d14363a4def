package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/idvorkin/rmux-helper/internal/app"
	"github.com/idvorkin/rmux-helper/internal/logging"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath     = "RMUX_HELPER_SOCKET"
	envWidth          = "RMUX_HELPER_WIDTH"
	envHeight         = "RMUX_HELPER_HEIGHT"
	envShowFooter     = "RMUX_HELPER_FOOTER"
	envLayout         = "RMUX_HELPER_LAYOUT"
	envCaptureTimeout = "RMUX_HELPER_CAPTURE_TIMEOUT"
	envReopen         = "RMUX_HELPER_REOPEN"
	envTrace          = "RMUX_HELPER_TRACE"
	envLogFile        = "RMUX_HELPER_LOG_FILE"
	envConfigFile     = "RMUX_HELPER_CONFIG"
)

const defaultCaptureTimeout = 2 * time.Second

var defaultPathAliases = map[string]string{
	"idvorkin.github.io": "blog",
	"idvorkin":           "me",
}

var readConfigFile = os.ReadFile

// fileConfig mirrors the YAML config file. Pointer fields distinguish
// "absent" from an explicit false.
type fileConfig struct {
	Layout         string            `yaml:"layout"`
	CaptureTimeout string            `yaml:"capture_timeout"`
	Footer         *bool             `yaml:"footer"`
	Reopen         *bool             `yaml:"reopen"`
	Trace          *bool             `yaml:"trace"`
	LogFile        string            `yaml:"log_file"`
	PathAliases    map[string]string `yaml:"path_aliases"`
}

// Options holds flag bindings registered on a flag set until Resolve is called.
type Options struct {
	fs  *pflag.FlagSet
	env map[string]string

	socket         *string
	width          *int
	height         *int
	footer         *bool
	layout         *string
	captureTimeout *time.Duration
	reopen         *bool
	trace          *bool
	logFile        *string
	configFile     *string
}

// Register binds the application flags to fs, using environment values as
// defaults. It is shared by the command tree and LoadArgs.
func Register(fs *pflag.FlagSet, environ []string) *Options {
	env := parseEnv(environ)
	return &Options{
		fs:             fs,
		env:            env,
		socket:         fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)"),
		width:          fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)"),
		height:         fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)"),
		footer:         fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint footer"),
		layout:         fs.String("layout", envOrDefault(env, envLayout, app.LayoutSideBySide), "preferred layout: side-by-side or stacked"),
		captureTimeout: fs.Duration("capture-timeout", envOrDuration(env, envCaptureTimeout, defaultCaptureTimeout), "upper bound for each tmux call made while the picker is open"),
		reopen:         fs.Bool("reopen", envOrBool(env, envReopen, true), "reopen the picker with fresh state after a rename"),
		trace:          fs.Bool("trace", envOrBool(env, envTrace, false), "enable JSON trace logging"),
		logFile:        fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		configFile:     fs.String("config", envOrDefault(env, envConfigFile, ""), "path to a YAML config file"),
	}
}

// explicit reports whether a setting came from a flag or the environment,
// which both take precedence over the config file.
func (o *Options) explicit(flagName, envKey string) bool {
	if o.fs != nil && o.fs.Changed(flagName) {
		return true
	}
	v, ok := o.env[envKey]
	return ok && strings.TrimSpace(v) != ""
}

// Resolve merges parsed flags, environment and the config file.
func (o *Options) Resolve(args []string) (Config, error) {
	if *o.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *o.width)
	}
	if *o.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *o.height)
	}

	path := strings.TrimSpace(*o.configFile)
	required := path != ""
	if path == "" {
		path = defaultConfigPath(o.env)
	}
	file, err := loadFile(path, required)
	if err != nil {
		return Config{}, err
	}

	layout := *o.layout
	if !o.explicit("layout", envLayout) && file.Layout != "" {
		layout = file.Layout
	}
	timeout := *o.captureTimeout
	if !o.explicit("capture-timeout", envCaptureTimeout) && file.CaptureTimeout != "" {
		parsed, err := time.ParseDuration(file.CaptureTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: capture_timeout: %w", path, err)
		}
		timeout = parsed
	}
	footer := *o.footer
	if !o.explicit("footer", envShowFooter) && file.Footer != nil {
		footer = *file.Footer
	}
	reopen := *o.reopen
	if !o.explicit("reopen", envReopen) && file.Reopen != nil {
		reopen = *file.Reopen
	}
	trace := *o.trace
	if !o.explicit("trace", envTrace) && file.Trace != nil {
		trace = *file.Trace
	}
	logFile := *o.logFile
	if !o.explicit("log-file", envLogFile) && file.LogFile != "" {
		logFile = file.LogFile
	}
	if strings.TrimSpace(logFile) == "" {
		logFile = logging.DefaultPath(o.env)
	}

	aliases := make(map[string]string, len(defaultPathAliases)+len(file.PathAliases))
	for k, v := range defaultPathAliases {
		aliases[k] = v
	}
	for k, v := range file.PathAliases {
		aliases[k] = v
	}

	cfg := Config{
		App: app.Config{
			SocketPath:     *o.socket,
			Width:          *o.width,
			Height:         *o.height,
			ShowFooter:     footer,
			Layout:         strings.ToLower(strings.TrimSpace(layout)),
			CaptureTimeout: timeout,
			Reopen:         reopen,
			PathAliases:    aliases,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		File: path,
		Flags: map[string]string{
			"socket":         *o.socket,
			"width":          strconv.Itoa(*o.width),
			"height":         strconv.Itoa(*o.height),
			"footer":         strconv.FormatBool(footer),
			"layout":         layout,
			"captureTimeout": timeout.String(),
			"reopen":         strconv.FormatBool(reopen),
			"trace":          strconv.FormatBool(trace),
			"logFile":        logFile,
			"config":         path,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// LoadArgs parses args against a fresh flag set; used by tests and callers
// that do not go through the command tree.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("rmux-helper", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := Register(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return opts.Resolve(args)
}

// Validate ensures the resolved configuration is usable.
func Validate(cfg Config) error {
	switch cfg.App.Layout {
	case app.LayoutSideBySide, app.LayoutStacked:
	default:
		return fmt.Errorf("unknown layout %q (want %s or %s)", cfg.App.Layout, app.LayoutSideBySide, app.LayoutStacked)
	}
	if cfg.App.CaptureTimeout <= 0 {
		return fmt.Errorf("capture timeout must be positive (got %s)", cfg.App.CaptureTimeout)
	}
	return nil
}

func loadFile(path string, required bool) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := readConfigFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return fc, nil
		}
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

func defaultConfigPath(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_CONFIG_HOME"]); dir != "" {
		return filepath.Join(dir, "rmux-helper", "config.yaml")
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", "rmux-helper", "config.yaml")
	}
	return ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
