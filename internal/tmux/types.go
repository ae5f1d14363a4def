package tmux

import (
	"context"
	"errors"
	"os/exec"
	"sync"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

var (
	// ErrEmptyTarget is returned when an action is asked to address nothing.
	ErrEmptyTarget = errors.New("tmux: empty target")
	// ErrNoSession is returned when a session rename names no session.
	ErrNoSession = errors.New("tmux: no session")
)

// PaneRow is one line of the hierarchy query: a pane together with the names
// of the window and session that own it.
type PaneRow struct {
	Session     string
	WindowIndex int
	PaneIndex   int
	WindowName  string
	PaneTitle   string
	PanePath    string
	PaneID      string
}

// Target returns the session:window.pane address of the row.
func (r PaneRow) Target() string {
	return paneTarget(r.Session, r.WindowIndex, r.PaneIndex)
}

type tmuxClient interface {
	ListPanesFormat(target, filter, format string) ([]string, error)
	ListClients() ([]*gotmux.Client, error)
	DisplayMessage(target, format string) (string, error)
	SwitchClient(*gotmux.SwitchClientOptions) error
	Close() error
}

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}

var (
	clientMu     sync.Mutex
	cachedClient tmuxClient
	cachedSocket string

	newTmux = func(socketPath string) (tmuxClient, error) {
		clientMu.Lock()
		defer clientMu.Unlock()
		if cachedClient != nil && cachedSocket == socketPath {
			return cachedClient, nil
		}
		if cachedClient != nil {
			_ = cachedClient.Close()
			cachedClient = nil
			cachedSocket = ""
		}
		client, err := dialTmux(socketPath)
		if err != nil {
			return nil, err
		}
		cachedClient = client
		cachedSocket = socketPath
		return client, nil
	}

	runExecCommand = func(ctx context.Context, name string, args ...string) commander {
		return realCommander{cmd: exec.CommandContext(ctx, name, args...)}
	}
)

func dialTmux(socketPath string) (tmuxClient, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}

// Shutdown closes the cached control-mode connection, if any.
func Shutdown() {
	clientMu.Lock()
	defer clientMu.Unlock()
	if cachedClient != nil {
		_ = cachedClient.Close()
	}
	cachedClient = nil
	cachedSocket = ""
}

// withContext runs fn and gives up once ctx is done. The control-mode client
// has no per-call deadline, so a stuck call is abandoned rather than awaited.
func withContext[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{value: v, err: err}
	}()
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-done:
		return r.value, r.err
	}
}
