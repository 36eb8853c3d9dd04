// Package backend polls persistent stores and publishes change events to the
// UI event loop.
package backend

import (
	"context"
	"sync"
	"time"

	"github.com/fermata-io/menunav/internal/recent"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindRecent Kind = iota
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// RecentLister supplies the recent-files snapshot; *recent.Store satisfies it.
type RecentLister interface {
	List(limit int) ([]recent.Entry, error)
}

// Watcher polls the recent store at a fixed interval and publishes events.
type Watcher struct {
	store    RecentLister
	limit    int
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls the recent store every interval,
// capping snapshots at limit entries.
func NewWatcher(store RecentLister, limit int, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		store:    store,
		limit:    limit,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startRecentPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startRecentPoller() {
	pace := newPacer(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindRecent, func(ctx context.Context) (interface{}, error) {
		pace.wait()
		return w.store.List(w.limit)
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
