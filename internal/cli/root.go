// Package cli wires configuration, logging and the application into the
// rmux-helper command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idvorkin/rmux-helper/internal/app"
	"github.com/idvorkin/rmux-helper/internal/config"
	"github.com/idvorkin/rmux-helper/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit codes returned by Execute.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitConfig = 2
)

var (
	runApp  = app.Run
	listApp = app.List
	// terminalWidth reports the width of stdout, or 0 when it is not a
	// terminal.
	terminalWidth = func() int {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return 0
		}
		w, _, err := term.GetSize(fd)
		if err != nil {
			return 0
		}
		return w
	}
)

// configError marks failures that come from flags, environment or the config
// file rather than from running the picker.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

type runner struct {
	version string
	args    []string
	opts    *config.Options
	cfg     config.Config
}

// NewRootCommand builds the command tree for args. Running it without a
// subcommand opens the picker.
func NewRootCommand(version string, args, environ []string) *cobra.Command {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	r := &runner{version: version, args: args}
	root := &cobra.Command{
		Use:   "rmux-helper",
		Short: "Fuzzy picker for tmux sessions, windows and panes",
		Long: `rmux-helper lists every tmux pane grouped by session and window, previews
the highlighted pane and switches the launching client to the one you pick.

Run it from a tmux popup, for example:
  bind-key p display-popup -E -w 90% -h 80% rmux-helper pick`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: r.setup,
		RunE:              r.pick,
	}
	root.SetArgs(args)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err}
	})
	r.opts = config.Register(root.PersistentFlags(), environ)

	root.AddCommand(
		&cobra.Command{
			Use:     "pick",
			Aliases: []string{"pick-tui"},
			Short:   "Open the interactive pane picker",
			Args:    cobra.NoArgs,
			RunE:    r.pick,
		},
		r.listCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			// version needs no configuration
			PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "rmux-helper "+displayVersion(r.version))
			},
		},
	)
	return root
}

func (r *runner) listCommand() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the pane list as a table",
		Long: `Print every pane the picker would show as an aligned table.

With --query only the panes matching the filter text are printed, using the
same matching rules as the interactive filter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines, err := listApp(cmd.Context(), r.cfg.App, query, terminalWidth())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "only list panes matching this filter text")
	return cmd
}

// setup resolves configuration and logging before any subcommand runs.
func (r *runner) setup(*cobra.Command, []string) error {
	cfg, err := r.opts.Resolve(r.args)
	if err != nil {
		return configError{err}
	}
	if err := config.Validate(cfg); err != nil {
		return configError{err}
	}
	cfg.App.Version = displayVersion(r.version)
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	traceStartup(cfg)
	r.cfg = cfg
	return nil
}

func (r *runner) pick(cmd *cobra.Command, _ []string) error {
	return runApp(cmd.Context(), r.cfg.App)
}

func displayVersion(v string) string {
	if v == "" {
		return "dev"
	}
	return v
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, version string, args, environ []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(version, args, environ)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	var cfgErr configError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return ExitConfig
	}
	logging.Error(err)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitError
}
