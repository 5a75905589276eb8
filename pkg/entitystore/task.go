package entitystore

import (
	"context"

	"github.com/google/uuid"
)

// Task is the pending result of an operation started by Actions.
type Task[R any] struct {
	requestID uuid.UUID
	done      chan struct{}

	value R
	err   error
}

// Go runs fn in a new goroutine and returns its Task.
func Go[R any](ctx context.Context, requestID uuid.UUID, fn func(context.Context) (R, error)) *Task[R] {
	t := &Task[R]{
		requestID: requestID,
		done:      make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		t.value, t.err = fn(ctx)
	}()

	return t
}

// RequestID identifies the request on Requested, terminal events and notifications.
func (t *Task[R]) RequestID() uuid.UUID {
	return t.requestID
}

// Done is closed once the result is available.
func (t *Task[R]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes or ctx is done. Giving up on a task
// does not stop it; its outcome is still dispatched to the store.
func (t *Task[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

func newRequestID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
