// Package state holds the in-memory stores the UI reads, kept in sync by the
// data dispatcher.
package state

import "github.com/fermata-io/menunav/internal/recent"

type RecentStore interface {
	Entries() []recent.Entry
	SetEntries([]recent.Entry)
}

type recentStore struct {
	entries []recent.Entry
}

func NewRecentStore() RecentStore {
	return &recentStore{}
}

func (s *recentStore) Entries() []recent.Entry {
	return cloneRecentEntries(s.entries)
}

func (s *recentStore) SetEntries(entries []recent.Entry) {
	s.entries = cloneRecentEntries(entries)
}

func cloneRecentEntries(entries []recent.Entry) []recent.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]recent.Entry, len(entries))
	copy(dup, entries)
	return dup
}
