// Package state implements the resource slice: an independent container for
// one fetched resource, holding the data, a loading flag and an error string,
// mutated only through dispatched fetches.
package state

import (
	"context"
	"sync"
)

// Status is the slice's position in its state machine: Idle, then Loading,
// resolving to Success or Failed.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// State is an observable snapshot of a slice.
type State[T any] struct {
	Status  Status
	Data    T
	Loading bool
	Err     string
}

// Slice is one resource's state machine. The zero value is an Idle slice
// holding T's zero value.
//
// Dispatches do not fence each other: two in-flight fetches race and the
// last one to resolve wins, regardless of dispatch order. Views re-dispatch
// on remount or user retry; the slice itself never retries.
type Slice[T any] struct {
	mu     sync.Mutex
	status Status
	data   T
	err    string
}

// Get returns the current snapshot.
func (s *Slice[T]) Get() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Dispatch transitions the slice to Loading synchronously, before any I/O,
// so an observer reading the slice right after dispatch always sees the
// spinner state. The fetch then runs asynchronously; its resolution performs
// one atomic state update. The returned channel delivers the resolved
// snapshot and may be ignored by fire-and-forget callers.
func (s *Slice[T]) Dispatch(ctx context.Context, fetch func(context.Context) (T, error)) <-chan State[T] {
	s.mu.Lock()
	s.status = Loading
	s.err = ""
	s.mu.Unlock()

	done := make(chan State[T], 1)
	go func() {
		data, err := fetch(ctx)

		s.mu.Lock()
		if err != nil {
			// keep stale data around; views show it alongside the error
			s.status = Failed
			s.err = err.Error()
		} else {
			s.status = Success
			s.data = data
			s.err = ""
		}
		snap := s.snapshot()
		s.mu.Unlock()
		done <- snap
	}()
	return done
}

// Apply replaces the data through fn in one atomic step, without touching
// the loading flag. Used for locally recomputed collections (cart removal
// after server confirmation).
func (s *Slice[T]) Apply(fn func(T) T) State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = fn(s.data)
	return s.snapshot()
}

func (s *Slice[T]) snapshot() State[T] {
	return State[T]{
		Status:  s.status,
		Data:    s.data,
		Loading: s.status == Loading,
		Err:     s.err,
	}
}
