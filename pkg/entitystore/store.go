package entitystore

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultSubscriptionBuffer = 16

// Notification is published once for every successful mutation.
type Notification[T any] struct {
	Op        Op
	RequestID uuid.UUID
	// Entity is the saved record, or the zero value after a delete.
	Entity T
}

type options struct {
	logger *zap.Logger
	buffer int
}

type Option func(*options)

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSubscriptionBuffer sets the channel capacity of new subscriptions.
func WithSubscriptionBuffer(n int) Option {
	return func(o *options) {
		o.buffer = n
	}
}

// Store holds the state of one entity kind. It is safe for concurrent use;
// transitions are applied one at a time in the order Dispatch is called.
type Store[T any] struct {
	mu    sync.Mutex
	state State[T]

	subs    map[int]chan Notification[T]
	nextSub int
	closed  bool

	buffer int
	logger *zap.Logger
}

// New creates a store in the default state.
func New[T any](opts ...Option) *Store[T] {
	o := options{
		logger: zap.NewNop(),
		buffer: defaultSubscriptionBuffer,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store[T]{
		state:  Initial[T](),
		subs:   make(map[int]chan Notification[T]),
		buffer: o.buffer,
		logger: o.logger,
	}
}

// State returns a snapshot of the current state.
func (s *Store[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

// Dispatch applies e and returns the resulting state.
func (s *Store[T]) Dispatch(e Event[T]) State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, e)

	if requestID, op, ok := terminal(e); ok {
		s.logger.Debug("request finished",
			zap.Stringer("op", op),
			zap.Stringer("request_id", requestID),
			zap.Bool("failed", s.state.Err != nil))
	}

	switch e := e.(type) {
	case Saved[T]:
		s.publish(Notification[T]{Op: e.Op, RequestID: e.RequestID, Entity: e.Entity})
	case Deleted[T]:
		s.publish(Notification[T]{Op: OpDelete, RequestID: e.RequestID})
	}

	return s.state.clone()
}

// Subscribe registers for mutation notifications. The returned func
// unsubscribes and closes the channel.
func (s *Store[T]) Subscribe() (<-chan Notification[T], func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Notification[T], s.buffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

// Close closes every subscription. The state remains readable.
func (s *Store[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// publish must be called with s.mu held. Slow subscribers lose notifications
// rather than blocking transitions.
func (s *Store[T]) publish(n Notification[T]) {
	for id, ch := range s.subs {
		select {
		case ch <- n:
		default:
			s.logger.Warn("dropping notification for slow subscriber",
				zap.Int("subscriber", id),
				zap.Stringer("op", n.Op),
				zap.Stringer("request_id", n.RequestID))
		}
	}
}
