package entitystore

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yong/moviehub/pkg/client"
)

// Backend performs the network calls behind each operation.
// *client.Resource satisfies it.
type Backend[T any] interface {
	FetchList(ctx context.Context, params client.ListParams) (client.Page[T], error)
	FetchOne(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) (T, error)
	PartialUpdate(ctx context.Context, record T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Actions issues CRUD intents: each call dispatches Requested immediately,
// runs the backend call in a Task and dispatches its terminal event.
// No retries are attempted.
type Actions[T any] struct {
	store   *Store[T]
	backend Backend[T]

	logger *zap.Logger
}

func NewActions[T any](store *Store[T], backend Backend[T], logger *zap.Logger) *Actions[T] {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Actions[T]{
		store:   store,
		backend: backend,
		logger:  logger,
	}
}

func (a *Actions[T]) Store() *Store[T] {
	return a.store
}

// FetchList loads a page into State.Entities.
func (a *Actions[T]) FetchList(ctx context.Context, params client.ListParams) *Task[client.Page[T]] {
	id := a.request(OpFetchList)

	return Go(ctx, id, func(ctx context.Context) (client.Page[T], error) {
		page, err := a.backend.FetchList(ctx, params)
		a.store.Dispatch(CompletedList(id, params, page, err))
		return page, err
	})
}

// FetchOne loads a record into State.Entity.
func (a *Actions[T]) FetchOne(ctx context.Context, recordID int64) *Task[T] {
	return a.single(ctx, OpFetchOne, recordID, func(ctx context.Context) (T, error) {
		return a.backend.FetchOne(ctx, recordID)
	})
}

func (a *Actions[T]) Create(ctx context.Context, record T) *Task[T] {
	return a.single(ctx, OpCreate, 0, func(ctx context.Context) (T, error) {
		return a.backend.Create(ctx, record)
	})
}

func (a *Actions[T]) Update(ctx context.Context, record T) *Task[T] {
	return a.single(ctx, OpUpdate, 0, func(ctx context.Context) (T, error) {
		return a.backend.Update(ctx, record)
	})
}

func (a *Actions[T]) PartialUpdate(ctx context.Context, record T) *Task[T] {
	return a.single(ctx, OpPartialUpdate, 0, func(ctx context.Context) (T, error) {
		return a.backend.PartialUpdate(ctx, record)
	})
}

// Delete removes a record; on success State.Entity is cleared.
func (a *Actions[T]) Delete(ctx context.Context, recordID int64) *Task[struct{}] {
	id := a.request(OpDelete)

	return Go(ctx, id, func(ctx context.Context) (struct{}, error) {
		var empty T
		err := a.backend.Delete(ctx, recordID)
		a.store.Dispatch(Completed(OpDelete, id, recordID, empty, err))
		return struct{}{}, err
	})
}

// SetAttachment updates a binary field of the focused entity locally.
func (a *Actions[T]) SetAttachment(field string, data []byte, contentType string) State[T] {
	return a.store.Dispatch(AttachmentSet[T]{Field: field, Data: data, ContentType: contentType})
}

// Reset restores the default state.
func (a *Actions[T]) Reset() State[T] {
	return a.store.Dispatch(Reset[T]{})
}

func (a *Actions[T]) single(
	ctx context.Context,
	op Op,
	recordID int64,
	call func(context.Context) (T, error),
) *Task[T] {
	id := a.request(op)

	return Go(ctx, id, func(ctx context.Context) (T, error) {
		entity, err := call(ctx)
		a.store.Dispatch(Completed(op, id, recordID, entity, err))
		if err != nil {
			a.logger.Debug("request failed",
				zap.Stringer("op", op),
				zap.Stringer("request_id", id),
				zap.Error(err))
		}
		return entity, err
	})
}

func (a *Actions[T]) request(op Op) uuid.UUID {
	id := newRequestID()
	a.store.Dispatch(Requested[T]{Op: op, RequestID: id})
	return id
}
