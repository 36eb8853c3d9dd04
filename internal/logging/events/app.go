package events

import "github.com/fermata-io/menunav/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) FocusGained() {
	logging.Trace("app.focus.gained", nil)
}

func (AppTracer) FocusLost() {
	logging.Trace("app.focus.lost", nil)
}
