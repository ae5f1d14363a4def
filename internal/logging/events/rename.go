package events

import "github.com/idvorkin/rmux-helper/internal/logging"

type RenameTracer struct{}

type renameReason string

const (
	RenameReasonEscape renameReason = "escape"
	RenameReasonEmpty  renameReason = "empty"
)

var Rename = RenameTracer{}

func (RenameTracer) Prompt(kind, target, initial string) {
	logging.Trace("rename.prompt", map[string]interface{}{"kind": kind, "target": target, "initial": initial})
}

func (RenameTracer) Cancel(target string, reason renameReason) {
	logging.Trace("rename.cancel", map[string]interface{}{"target": target, "reason": string(reason)})
}

func (RenameTracer) Submit(kind, target, name string) {
	logging.Trace("rename.submit", map[string]interface{}{"kind": kind, "target": target, "name": name})
}

func (RenameTracer) Error(target string, err error) {
	if err == nil {
		return
	}
	logging.Trace("rename.error", map[string]interface{}{"target": target, "error": err.Error()})
}
