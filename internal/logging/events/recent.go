package events

import "github.com/fermata-io/menunav/internal/logging"

type RecentTracer struct{}

var Recent = RecentTracer{}

func (RecentTracer) Touch(path string) {
	logging.Trace("recent.touch", map[string]interface{}{"path": path})
}

func (RecentTracer) Updated(count int) {
	logging.Trace("recent.updated", map[string]interface{}{"count": count})
}

func (RecentTracer) Cleared() {
	logging.Trace("recent.cleared", nil)
}
