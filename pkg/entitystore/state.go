// Package entitystore tracks the lifecycle of CRUD requests for one entity kind
// and caches the most recent server responses.
//
// State only changes through events: Requested, then exactly one of the
// terminal events for the same Op. Reduce is a pure function of (state, event),
// so any sequence of events can be replayed in tests. Store wraps Reduce with
// locking and one-shot notifications of successful mutations.
package entitystore

import (
	"maps"
	"slices"

	"github.com/yong/moviehub/pkg/client"
)

// Op identifies a CRUD operation.
type Op int

const (
	OpFetchList Op = iota
	OpFetchOne
	OpCreate
	OpUpdate
	OpPartialUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpFetchList:
		return "fetch_list"
	case OpFetchOne:
		return "fetch_one"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpPartialUpdate:
		return "partial_update"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Mutating reports whether o belongs to the create/update/delete category.
func (o Op) Mutating() bool {
	return o >= OpCreate
}

// State is the cached view of one entity kind.
type State[T any] struct {
	// Entities is the current list page, or all pages loaded so far.
	Entities []T
	// Entity is the focused record.
	Entity T

	// Loading is set while a list or detail fetch is in flight.
	Loading bool
	// Updating is set while a create, update or delete is in flight.
	Updating bool
	// UpdateSuccess is set by a successful mutation and cleared by the next request.
	UpdateSuccess bool

	// Err is the last failure, cleared when a new request starts.
	Err error

	TotalItems int
	Links      client.Links
}

// Initial returns the default state.
func Initial[T any]() State[T] {
	var zero T
	return State[T]{
		Entities: []T{},
		Entity:   zero,
		Links:    client.Links{client.RelNext: 0},
	}
}

// clone returns a copy that shares no mutable storage with s.
func (s State[T]) clone() State[T] {
	s.Entities = slices.Clone(s.Entities)
	if s.Entities == nil {
		s.Entities = []T{}
	}
	s.Links = maps.Clone(s.Links)
	return s
}

// setInFlight sets the flag of op's category.
func (s State[T]) setInFlight(op Op, v bool) State[T] {
	if op.Mutating() {
		s.Updating = v
	} else {
		s.Loading = v
	}
	return s
}
