package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yong/moviehub/internal/storage"
	"github.com/yong/moviehub/pkg/badgerfx"
)

const prefix = "review:"

type review struct {
	storage.BaseEntity

	MovieID int64  `json:"movie_id"`
	Text    string `json:"text"`
}

func (r *review) StorageKey() string {
	return storage.Key(prefix, r.ID)
}

func (r *review) StorageIndexes() []string {
	return []string{prefix + "movie:" + storage.Key("", r.MovieID) + ":" + storage.Key("", r.ID)}
}

func (r *review) MarshalStorage() ([]byte, error) {
	return json.Marshal(r)
}

func (r *review) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, r)
}

func newRepository(t *testing.T) *storage.Repository[*review] {
	t.Helper()

	db, err := badger.Open(badgerfx.Config{InMemory: true}.Build().WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return storage.NewRepository(db, prefix, func() *review { return &review{} })
}

func create(t *testing.T, repo *storage.Repository[*review], movieID int64, text string) *review {
	t.Helper()

	created, err := repo.Create(context.Background(), func(base storage.BaseEntity) (*review, error) {
		return &review{BaseEntity: base, MovieID: movieID, Text: text}, nil
	})
	require.NoError(t, err)

	return created
}

func TestKey(t *testing.T) {
	assert.Equal(t, "movie:id:00000000000000000042", storage.Key("movie:", 42))
}

func TestRepositoryCreateAssignsSequentialIDs(t *testing.T) {
	repo := newRepository(t)

	first := create(t, repo, 1, "good")
	second := create(t, repo, 1, "bad")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}

func TestRepositoryCreateBuildError(t *testing.T) {
	repo := newRepository(t)
	invalid := errors.New("invalid")

	_, err := repo.Create(context.Background(), func(storage.BaseEntity) (*review, error) {
		return nil, invalid
	})
	require.ErrorIs(t, err, invalid)

	assert.Equal(t, int64(1), create(t, repo, 1, "x").ID)
}

func TestRepositoryGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	created := create(t, repo, 7, "fine")

	found, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "fine", found.Text)
	assert.Equal(t, int64(7), found.MovieID)

	_, err = repo.Get(ctx, 99)
	require.ErrorIs(t, err, storage.ErrNotFound)

	exists, err := repo.Exists(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 99)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepositoryListAndIndexes(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	for i := range 11 {
		create(t, repo, int64(i%2), "r")
	}

	all, err := repo.List(ctx, storage.Asc)
	require.NoError(t, err)
	require.Len(t, all, 11)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(11), all[10].ID)

	desc, err := repo.List(ctx, storage.Desc)
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		lo.Map(desc, func(r *review, _ int) int64 { return r.ID }))

	odd, err := repo.ListByIndex(ctx, prefix+"movie:"+storage.Key("", 1)+":")
	require.NoError(t, err)
	assert.Len(t, odd, 5)

	_, err = repo.Update(ctx, odd[0].ID, func(old *review, at time.Time) (*review, error) {
		updated := *old
		updated.MovieID = 0
		updated.UpdatedAt = at
		return &updated, nil
	})
	require.NoError(t, err)

	odd, err = repo.ListByIndex(ctx, prefix+"movie:"+storage.Key("", 1)+":")
	require.NoError(t, err)
	assert.Len(t, odd, 4)
}

func TestRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	created := create(t, repo, 1, "draft")

	updated, err := repo.Update(ctx, created.ID, func(old *review, at time.Time) (*review, error) {
		next := *old
		next.Text = "final"
		next.UpdatedAt = at
		return &next, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Text)
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, 0)

	_, err = repo.Update(ctx, created.ID, func(old *review, _ time.Time) (*review, error) {
		next := *old
		next.ID = 500
		return &next, nil
	})
	require.Error(t, err)

	_, err = repo.Update(ctx, 42, func(old *review, _ time.Time) (*review, error) {
		return old, nil
	})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	created := create(t, repo, 3, "gone")

	require.NoError(t, repo.Delete(ctx, created.ID))
	require.ErrorIs(t, repo.Delete(ctx, created.ID), storage.ErrNotFound)

	byMovie, err := repo.ListByIndex(ctx, prefix+"movie:"+storage.Key("", 3)+":")
	require.NoError(t, err)
	assert.Empty(t, byMovie)
}

func TestRepositoryConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	const writers = 40

	ids := make([]int64, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			created, err := repo.Create(ctx, func(base storage.BaseEntity) (*review, error) {
				return &review{BaseEntity: base, MovieID: 1, Text: "r"}, nil
			})
			if assert.NoError(t, err) {
				ids[i] = created.ID
			}
		}()
	}
	wg.Wait()

	assert.ElementsMatch(t, lo.RangeFrom(int64(1), writers), ids)

	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := repo.Update(ctx, 1, func(old *review, at time.Time) (*review, error) {
				next := *old
				next.Text += "+"
				next.UpdatedAt = at
				return &next, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, found.Text, 1+writers)
}
