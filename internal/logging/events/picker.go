package events

import "github.com/idvorkin/rmux-helper/internal/logging"

type PickerTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	Picker  = PickerTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (PickerTracer) Cursor(cursor int, target string) {
	logging.Trace("picker.cursor", map[string]interface{}{"cursor": cursor, "target": target})
}

func (PickerTracer) Jump(kind, target string) {
	logging.Trace("picker.jump", map[string]interface{}{"kind": kind, "target": target})
}

func (PickerTracer) Layout(layout string) {
	logging.Trace("picker.layout", map[string]interface{}{"layout": layout})
}

func (PickerTracer) Help(open bool) {
	logging.Trace("picker.help", map[string]interface{}{"open": open})
}

func (PickerTracer) Confirm(target string) {
	logging.Trace("picker.confirm", map[string]interface{}{"target": target})
}

func (PickerTracer) Ignore(target, kind string) {
	logging.Trace("picker.confirm.ignored", map[string]interface{}{"target": target, "kind": kind})
}

func (PickerTracer) Cancel() {
	logging.Trace("picker.cancel", nil)
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(filter string, visible int) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter, "visible": visible})
}

func (FilterTracer) Append(filter string, visible int) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter, "visible": visible})
}

func (FilterTracer) Backspace(filter string, visible int) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter, "visible": visible})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
