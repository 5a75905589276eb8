package entitystore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yong/moviehub/pkg/client"
	"go.uber.org/zap/zaptest"
)

type fakeBackend struct {
	mu      sync.Mutex
	records map[int64]client.Movie
	nextID  int64
	err     error
	release chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{records: map[int64]client.Movie{}, nextID: 1}
}

func (f *fakeBackend) wait(ctx context.Context) error {
	if f.release == nil {
		return nil
	}
	select {
	case <-f.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeBackend) FetchList(ctx context.Context, _ client.ListParams) (client.Page[client.Movie], error) {
	if err := f.wait(ctx); err != nil {
		return client.Page[client.Movie]{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return client.Page[client.Movie]{}, f.err
	}

	items := make([]client.Movie, 0, len(f.records))
	for id := int64(1); id < f.nextID; id++ {
		if m, ok := f.records[id]; ok {
			items = append(items, m)
		}
	}
	return client.Page[client.Movie]{Items: items, TotalItems: len(items), Links: client.Links{}}, nil
}

func (f *fakeBackend) FetchOne(ctx context.Context, id int64) (client.Movie, error) {
	if err := f.wait(ctx); err != nil {
		return client.Movie{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return client.Movie{}, f.err
	}
	m, ok := f.records[id]
	if !ok {
		return client.Movie{}, &client.RequestError{StatusCode: 404, Status: "404 Not Found"}
	}
	return m, nil
}

func (f *fakeBackend) Create(ctx context.Context, record client.Movie) (client.Movie, error) {
	if err := f.wait(ctx); err != nil {
		return client.Movie{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return client.Movie{}, f.err
	}
	id := f.nextID
	f.nextID++
	record.ID = &id
	f.records[id] = record
	return record, nil
}

func (f *fakeBackend) Update(ctx context.Context, record client.Movie) (client.Movie, error) {
	if err := f.wait(ctx); err != nil {
		return client.Movie{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return client.Movie{}, f.err
	}
	f.records[*record.ID] = record
	return record, nil
}

func (f *fakeBackend) PartialUpdate(ctx context.Context, record client.Movie) (client.Movie, error) {
	if err := f.wait(ctx); err != nil {
		return client.Movie{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return client.Movie{}, f.err
	}
	current := f.records[*record.ID]
	if record.Name != nil {
		current.Name = record.Name
	}
	if record.Director != nil {
		current.Director = record.Director
	}
	f.records[*record.ID] = current
	return current, nil
}

func (f *fakeBackend) Delete(ctx context.Context, id int64) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	delete(f.records, id)
	return nil
}

func newActions(t *testing.T, backend Backend[client.Movie]) *Actions[client.Movie] {
	t.Helper()

	logger := zaptest.NewLogger(t)
	return NewActions(New[client.Movie](WithLogger(logger)), backend, logger)
}

func TestActionsCreateThenFetch(t *testing.T) {
	ctx := context.Background()
	actions := newActions(t, newFakeBackend())

	created, err := actions.Create(ctx, movie(0, "A")).Wait(ctx)
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, int64(1), *created.ID)

	state := actions.Store().State()
	assert.True(t, state.UpdateSuccess)
	assert.False(t, state.Updating)
	assert.Equal(t, created, state.Entity)

	page, err := actions.FetchList(ctx, client.ListParams{}).Wait(ctx)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	state = actions.Store().State()
	assert.False(t, state.UpdateSuccess)
	assert.False(t, state.Loading)
	assert.Equal(t, []client.Movie{created}, state.Entities)
	assert.Equal(t, 1, state.TotalItems)
}

func TestActionsRequestedBeforeCompletion(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.release = make(chan struct{})
	actions := newActions(t, backend)

	task := actions.FetchList(ctx, client.ListParams{})
	assert.True(t, actions.Store().State().Loading)

	close(backend.release)
	_, err := task.Wait(ctx)
	require.NoError(t, err)
	assert.False(t, actions.Store().State().Loading)
}

func TestActionsFailure(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	actions := newActions(t, backend)

	created, err := actions.Create(ctx, movie(0, "A")).Wait(ctx)
	require.NoError(t, err)

	conflict := &client.RequestError{StatusCode: 409, Status: "409 Conflict"}
	backend.err = conflict

	_, err = actions.Update(ctx, created).Wait(ctx)
	require.ErrorIs(t, err, client.ErrRequestFailed)

	state := actions.Store().State()
	assert.False(t, state.Updating)
	assert.False(t, state.UpdateSuccess)
	assert.EqualError(t, state.Err, "409 Conflict")
	assert.Equal(t, created, state.Entity)
}

func TestActionsFetchOneNotFoundKeepsEntity(t *testing.T) {
	ctx := context.Background()
	actions := newActions(t, newFakeBackend())

	created, err := actions.Create(ctx, movie(0, "A")).Wait(ctx)
	require.NoError(t, err)

	_, err = actions.FetchOne(ctx, 42).Wait(ctx)
	require.Error(t, err)

	state := actions.Store().State()
	assert.False(t, state.Loading)
	assert.Equal(t, created, state.Entity)
	assert.EqualError(t, state.Err, "404 Not Found")
}

func TestActionsPartialUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	actions := newActions(t, newFakeBackend())
	notifications, unsubscribe := actions.Store().Subscribe()
	defer unsubscribe()

	created, err := actions.Create(ctx, movie(0, "A")).Wait(ctx)
	require.NoError(t, err)

	director := "Varda"
	patched, err := actions.PartialUpdate(ctx, client.Movie{ID: created.ID, Director: &director}).Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", *patched.Name)
	assert.Equal(t, director, *patched.Director)

	deleteTask := actions.Delete(ctx, *created.ID)
	_, err = deleteTask.Wait(ctx)
	require.NoError(t, err)

	state := actions.Store().State()
	assert.Equal(t, client.Movie{}, state.Entity)
	assert.True(t, state.UpdateSuccess)

	require.Len(t, notifications, 3)
	assert.Equal(t, OpCreate, (<-notifications).Op)
	assert.Equal(t, OpPartialUpdate, (<-notifications).Op)
	last := <-notifications
	assert.Equal(t, OpDelete, last.Op)
	assert.Equal(t, deleteTask.RequestID(), last.RequestID)
}

func TestActionsLocal(t *testing.T) {
	actions := newActions(t, newFakeBackend())

	state := actions.SetAttachment(client.FieldImage, []byte("png"), "image/png")
	assert.Equal(t, []byte("png"), state.Entity.Image)

	state = actions.Reset()
	assert.Equal(t, Initial[client.Movie](), state)
}

func TestTaskWaitGivesUp(t *testing.T) {
	backend := newFakeBackend()
	backend.release = make(chan struct{})
	actions := newActions(t, backend)

	task := actions.FetchOne(context.Background(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := task.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(backend.release)
	<-task.Done()
	assert.False(t, actions.Store().State().Loading)
}

func TestTaskCancelled(t *testing.T) {
	backend := newFakeBackend()
	backend.release = make(chan struct{})
	actions := newActions(t, backend)

	ctx, cancel := context.WithCancel(context.Background())
	task := actions.Delete(ctx, 1)
	cancel()

	_, err := task.Wait(context.Background())
	require.True(t, errors.Is(err, context.Canceled))

	state := actions.Store().State()
	assert.False(t, state.Updating)
	assert.ErrorIs(t, state.Err, context.Canceled)
}
