package events

import "github.com/idvorkin/rmux-helper/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Entries(count int, current, last string) {
	logging.Trace("app.entries", map[string]interface{}{"count": count, "current": current, "last": last})
}

func (AppTracer) Exit(target string, renamed bool) {
	logging.Trace("app.exit", map[string]interface{}{"target": target, "renamed": renamed})
}
