package events

import "github.com/idvorkin/rmux-helper/internal/logging"

type TmuxTracer struct{}

var Tmux = TmuxTracer{}

func (TmuxTracer) Query(rows, skipped int, fallback bool) {
	logging.Trace("tmux.query", map[string]interface{}{"rows": rows, "skipped": skipped, "fallback": fallback})
}

func (TmuxTracer) Switch(client, target string) {
	logging.Trace("tmux.switch", map[string]interface{}{"client": client, "target": target})
}

func (TmuxTracer) RenameSession(session, name string) {
	logging.Trace("tmux.rename-session", map[string]interface{}{"session": session, "name": name})
}

func (TmuxTracer) RenameWindow(target, name string) {
	logging.Trace("tmux.rename-window", map[string]interface{}{"target": target, "name": name})
}
