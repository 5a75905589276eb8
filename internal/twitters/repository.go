package twitters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/yong/moviehub/internal/storage"
)

type Repository struct {
	records *storage.Repository[*postModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		records: storage.NewRepository(db, prefix, func() *postModel { return &postModel{} }),
	}
}

// Create stores post under the next free id. post.ID and timestamps are ignored.
func (r *Repository) Create(ctx context.Context, post *Post) (*Post, error) {
	model, err := r.records.Create(ctx, func(base storage.BaseEntity) (*postModel, error) {
		return newPostModel(base, post), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create twitter: %w", err)
	}

	return newPost(model), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Post, error) {
	model, err := r.records.Get(ctx, id)
	if err != nil {
		return nil, r.mapError(id, err)
	}

	return newPost(model), nil
}

func (r *Repository) List(ctx context.Context, direction storage.Direction) ([]Post, error) {
	models, err := r.records.List(ctx, direction)
	if err != nil {
		return nil, fmt.Errorf("failed to list twitters: %w", err)
	}

	return r.toPosts(models), nil
}

// ListByMovie retrieves the posts linked to a movie.
func (r *Repository) ListByMovie(ctx context.Context, movieID int64) ([]Post, error) {
	models, err := r.records.ListByIndex(ctx, movieIndexPrefix(movieID))
	if err != nil {
		return nil, fmt.Errorf("failed to list twitters by movie: %w", err)
	}

	return r.toPosts(models), nil
}

func (r *Repository) Update(ctx context.Context, id int64, updater func(*Post) error) (*Post, error) {
	model, err := r.records.Update(ctx, id, func(old *postModel, now time.Time) (*postModel, error) {
		post := newPost(old)

		if updErr := updater(post); updErr != nil {
			return nil, updErr
		}

		model := newPostModel(old.BaseEntity, post)
		model.UpdatedAt = now

		return model, nil
	})
	if err != nil {
		return nil, r.mapError(id, err)
	}

	return newPost(model), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.records.Delete(ctx, id); err != nil {
		return r.mapError(id, err)
	}

	return nil
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := r.records.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check twitter: %w", err)
	}

	return exists, nil
}

func (r *Repository) toPosts(models []*postModel) []Post {
	posts := make([]Post, len(models))
	for i, model := range models {
		posts[i] = *newPost(model)
	}

	return posts
}

func (r *Repository) mapError(id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	return err
}
