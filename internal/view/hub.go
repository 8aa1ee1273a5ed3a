package view

import (
	"context"
	"sync"
	"time"
)

// canceler is implemented by every *Source.
type canceler interface {
	Cancel()
}

type hubKey struct {
	session string
	view    string
}

type hubEntry struct {
	source  canceler
	touched time.Time
}

// Hub holds one Source per (session, view). Entries not touched for the
// idle period are evicted by Sweep.
type Hub struct {
	idle time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[hubKey]*hubEntry
}

// NewHub creates an empty hub.
func NewHub(idle time.Duration) *Hub {
	return &Hub{
		idle:    idle,
		now:     time.Now,
		entries: make(map[hubKey]*hubEntry),
	}
}

// Get returns the session's source for view, creating it with factory on
// first use. A source of another type under the same name is replaced.
func Get[P, T any](h *Hub, sessionID, view string, factory func() *Source[P, T]) *Source[P, T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	k := hubKey{session: sessionID, view: view}
	if e, ok := h.entries[k]; ok {
		if src, ok := e.source.(*Source[P, T]); ok {
			e.touched = h.now()
			return src
		}
		e.source.Cancel()
	}

	src := factory()
	h.entries[k] = &hubEntry{source: src, touched: h.now()}
	return src
}

// Drop cancels and forgets every source of a session.
func (h *Hub) Drop(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k, e := range h.entries {
		if k.session == sessionID {
			e.source.Cancel()
			delete(h.entries, k)
		}
	}
}

// Sweep evicts idle sources and returns how many were removed.
func (h *Hub) Sweep() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	cutoff := h.now().Add(-h.idle)
	evicted := 0
	for k, e := range h.entries {
		if e.touched.Before(cutoff) {
			e.source.Cancel()
			delete(h.entries, k)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live sources.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Run sweeps periodically until ctx is done.
func (h *Hub) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Sweep()
		}
	}
}
