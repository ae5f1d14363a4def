package events

import "github.com/idvorkin/rmux-helper/internal/logging"

type PreviewTracer struct{}

var Preview = PreviewTracer{}

func (PreviewTracer) Request(target string, width, height, seq int) {
	logging.Trace("preview.request", map[string]interface{}{"target": target, "width": width, "height": height, "seq": seq})
}

func (PreviewTracer) CacheHit(target string, width, height int) {
	logging.Trace("preview.cache-hit", map[string]interface{}{"target": target, "width": width, "height": height})
}

func (PreviewTracer) Loaded(target string, lines int, plain bool) {
	logging.Trace("preview.loaded", map[string]interface{}{"target": target, "lines": lines, "plain": plain})
}

func (PreviewTracer) Stale(target string, seq int) {
	logging.Trace("preview.stale", map[string]interface{}{"target": target, "seq": seq})
}

func (PreviewTracer) Error(target string, err error) {
	if err == nil {
		return
	}
	logging.Trace("preview.error", map[string]interface{}{"target": target, "error": err.Error()})
}
