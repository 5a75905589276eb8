package entitystore

import (
	"github.com/google/uuid"

	"github.com/yong/moviehub/pkg/client"
)

// Event is a state transition. The set of events is closed: every event
// type in this package carries its own total transition function.
type Event[T any] interface {
	apply(s State[T]) State[T]
}

// Reduce applies e to s and returns the new state. s is not modified.
func Reduce[T any](s State[T], e Event[T]) State[T] {
	return e.apply(s.clone())
}

// Requested starts an operation.
type Requested[T any] struct {
	Op        Op
	RequestID uuid.UUID
}

func (e Requested[T]) apply(s State[T]) State[T] {
	s.Err = nil
	s.UpdateSuccess = false
	return s.setInFlight(e.Op, true)
}

// Failed finishes an operation with an error. Cached data is left untouched.
type Failed[T any] struct {
	Op        Op
	RequestID uuid.UUID
	Err       error
}

func (e Failed[T]) apply(s State[T]) State[T] {
	s.Err = e.Err
	s.UpdateSuccess = false
	return s.setInFlight(e.Op, false)
}

// ListFetched finishes OpFetchList.
type ListFetched[T any] struct {
	RequestID uuid.UUID
	Params    client.ListParams
	Page      client.Page[T]
}

func (e ListFetched[T]) apply(s State[T]) State[T] {
	s.Loading = false
	s.Entities = mergePage(s.Entities, e.Params, e.Page)
	s.TotalItems = e.Page.TotalItems
	s.Links = e.Page.Links
	if s.Links == nil {
		s.Links = client.Links{}
	}
	return s
}

// EntityFetched finishes OpFetchOne.
type EntityFetched[T any] struct {
	RequestID uuid.UUID
	Entity    T
}

func (e EntityFetched[T]) apply(s State[T]) State[T] {
	s.Loading = false
	s.Entity = e.Entity
	return s
}

// Saved finishes OpCreate, OpUpdate or OpPartialUpdate with the server's copy.
type Saved[T any] struct {
	Op        Op
	RequestID uuid.UUID
	Entity    T
}

func (e Saved[T]) apply(s State[T]) State[T] {
	s.Updating = false
	s.UpdateSuccess = true
	s.Entity = e.Entity
	return s
}

// Deleted finishes OpDelete.
type Deleted[T any] struct {
	RequestID uuid.UUID
	ID        int64
}

func (e Deleted[T]) apply(s State[T]) State[T] {
	var empty T
	s.Updating = false
	s.UpdateSuccess = true
	s.Entity = empty
	return s
}

// AttachmentSet replaces a binary field of the focused entity without
// contacting the server. Entity kinds without attachments are unaffected.
type AttachmentSet[T any] struct {
	Field       string
	Data        []byte
	ContentType string
}

func (e AttachmentSet[T]) apply(s State[T]) State[T] {
	if a, ok := any(s.Entity).(client.Attachable[T]); ok {
		s.Entity = a.WithAttachment(e.Field, e.Data, e.ContentType)
	}
	return s
}

// Reset restores the default state.
type Reset[T any] struct{}

func (Reset[T]) apply(State[T]) State[T] {
	return Initial[T]()
}

// Completed converts the outcome of a single-record operation into its terminal event.
func Completed[T any](op Op, requestID uuid.UUID, id int64, entity T, err error) Event[T] {
	if err != nil {
		return Failed[T]{Op: op, RequestID: requestID, Err: err}
	}

	switch op {
	case OpFetchOne:
		return EntityFetched[T]{RequestID: requestID, Entity: entity}
	case OpDelete:
		return Deleted[T]{RequestID: requestID, ID: id}
	default:
		return Saved[T]{Op: op, RequestID: requestID, Entity: entity}
	}
}

// CompletedList converts the outcome of OpFetchList into its terminal event.
func CompletedList[T any](requestID uuid.UUID, params client.ListParams, page client.Page[T], err error) Event[T] {
	if err != nil {
		return Failed[T]{Op: OpFetchList, RequestID: requestID, Err: err}
	}
	return ListFetched[T]{RequestID: requestID, Params: params, Page: page}
}

// terminal reports the request id and op finished by e, if e is terminal.
func terminal[T any](e Event[T]) (uuid.UUID, Op, bool) {
	switch e := e.(type) {
	case Failed[T]:
		return e.RequestID, e.Op, true
	case ListFetched[T]:
		return e.RequestID, OpFetchList, true
	case EntityFetched[T]:
		return e.RequestID, OpFetchOne, true
	case Saved[T]:
		return e.RequestID, e.Op, true
	case Deleted[T]:
		return e.RequestID, OpDelete, true
	}
	return uuid.Nil, 0, false
}

// mergePage replaces the cached list for first, single or unpaged pages and
// appends otherwise.
func mergePage[T any](current []T, params client.ListParams, page client.Page[T]) []T {
	if !params.Paged() || params.Page == 0 || page.Links.SinglePage() || len(current) == 0 {
		items := make([]T, len(page.Items))
		copy(items, page.Items)
		return items
	}
	return append(current, page.Items...)
}
