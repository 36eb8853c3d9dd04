package backend

import (
	"sync"
	"time"
)

// pacer enforces a minimum gap between successive store polls so a burst
// of wakeups cannot hammer the database.
type pacer struct {
	gap time.Duration

	mu   sync.Mutex
	last time.Time
}

func newPacer(gap time.Duration) *pacer {
	return &pacer{gap: gap}
}

// wait sleeps until at least one gap has elapsed since the previous call.
// The first call returns immediately.
func (p *pacer) wait() {
	if p == nil || p.gap <= 0 {
		return
	}
	p.mu.Lock()
	now := time.Now()
	due := p.last.Add(p.gap)
	if !due.After(now) {
		p.last = now
		p.mu.Unlock()
		return
	}
	p.last = due
	p.mu.Unlock()
	time.Sleep(time.Until(due))
}
