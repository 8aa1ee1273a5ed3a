// Package view keeps the load state of the console's list and detail views.
//
// A Source owns at most one in-flight load. Starting a new load cancels the
// previous one and bumps a sequence number; a result is applied only while
// its sequence is current, so an older response never overwrites a newer one.
package view

import (
	"context"
	"sync"
	"time"

	"wallet-admin-console/pkg/apperror"
)

// State is the load state of a Source.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}
	return "idle"
}

// Presentation is what the dashboard should render for a view.
type Presentation string

const (
	PresentationLoading Presentation = "loading"
	PresentationEmpty   Presentation = "empty"
	PresentationError   Presentation = "error"
	PresentationReady   Presentation = "ready"
)

// Fetch loads the view data for params.
type Fetch[P, T any] func(ctx context.Context, params P) (T, error)

// Snapshot is a consistent copy of a Source's state.
type Snapshot[T any] struct {
	State    State
	Data     T
	Err      error
	Empty    bool
	Seq      uint64
	LoadedAt time.Time
}

// Presentation derives the render state. Idle counts as loading: a view
// that was never loaded has nothing to show yet.
func (s Snapshot[T]) Presentation() Presentation {
	switch s.State {
	case StateError:
		return PresentationError
	case StateLoaded:
		if s.Empty {
			return PresentationEmpty
		}
		return PresentationReady
	}
	return PresentationLoading
}

// Source is the load state machine of one view.
type Source[P, T any] struct {
	fetch Fetch[P, T]
	empty func(T) bool
	now   func() time.Time

	mu        sync.Mutex
	seq       uint64
	cancel    context.CancelFunc
	params    P
	hasParams bool
	snap      Snapshot[T]
}

// NewSource creates an idle source. empty may be nil, in which case a loaded
// view is never reported as empty.
func NewSource[P, T any](fetch Fetch[P, T], empty func(T) bool) *Source[P, T] {
	return &Source[P, T]{fetch: fetch, empty: empty, now: time.Now}
}

// Load fetches params and applies the result if no newer load started in
// the meantime. A superseded load returns REQ_001 and changes nothing.
func (s *Source[P, T]) Load(ctx context.Context, params P) (T, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.params = params
	s.hasParams = true
	s.snap.State = StateLoading
	s.snap.Seq = seq
	s.mu.Unlock()

	data, err := s.fetch(loadCtx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		var zero T
		return zero, apperror.ErrSuperseded()
	}
	cancel()
	s.cancel = nil

	if err != nil {
		s.snap.State = StateError
		s.snap.Err = err
		var zero T
		return zero, err
	}

	s.snap = Snapshot[T]{
		State:    StateLoaded,
		Data:     data,
		Empty:    s.empty != nil && s.empty(data),
		Seq:      seq,
		LoadedAt: s.now(),
	}
	return data, nil
}

// Reload repeats the last load with the same params. A source that was
// never loaded uses the zero params.
func (s *Source[P, T]) Reload(ctx context.Context) (T, error) {
	s.mu.Lock()
	params := s.params
	s.mu.Unlock()
	return s.Load(ctx, params)
}

// Params returns the params of the most recent load.
func (s *Source[P, T]) Params() (P, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params, s.hasParams
}

// Snapshot returns the current state.
func (s *Source[P, T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Cancel aborts the in-flight load, if any. Its caller sees REQ_001.
func (s *Source[P, T]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.seq++
		if s.snap.State == StateLoading {
			s.snap.State = StateIdle
		}
	}
}
