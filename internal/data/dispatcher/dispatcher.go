// Package dispatcher applies backend events to the in-memory stores.
package dispatcher

import (
	"github.com/fermata-io/menunav/internal/backend"
	"github.com/fermata-io/menunav/internal/logging/events"
	"github.com/fermata-io/menunav/internal/recent"
	"github.com/fermata-io/menunav/internal/state"
)

type Result struct {
	RecentUpdated bool
}

type Dispatcher struct {
	recents state.RecentStore
}

func New(recents state.RecentStore) *Dispatcher {
	return &Dispatcher{recents: recents}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindRecent:
		if entries, ok := evt.Data.([]recent.Entry); ok {
			d.recents.SetEntries(entries)
			events.Recent.Updated(len(entries))
			res.RecentUpdated = true
		}
	}
	return res
}
