package movies

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/yong/moviehub/internal/storage"
)

type Repository struct {
	records *storage.Repository[*movieModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		records: storage.NewRepository(db, prefix, func() *movieModel { return &movieModel{} }),
	}
}

// Create stores a new movie under the next free id.
func (r *Repository) Create(ctx context.Context, draft *MovieDraft) (*Movie, error) {
	model, err := r.records.Create(ctx, func(base storage.BaseEntity) (*movieModel, error) {
		return newMovieModel(base, draft), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	return newMovie(model), nil
}

// GetByID retrieves a movie by its ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Movie, error) {
	model, err := r.records.Get(ctx, id)
	if err != nil {
		return nil, r.mapError(id, err)
	}

	return newMovie(model), nil
}

// List retrieves all movies in the given id order.
func (r *Repository) List(ctx context.Context, direction storage.Direction) ([]Movie, error) {
	models, err := r.records.List(ctx, direction)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	movies := make([]Movie, len(models))
	for i, model := range models {
		movies[i] = *newMovie(model)
	}

	return movies, nil
}

// Update replaces a movie with the result of updater.
func (r *Repository) Update(ctx context.Context, id int64, updater func(*Movie) error) (*Movie, error) {
	model, err := r.records.Update(ctx, id, func(old *movieModel, now time.Time) (*movieModel, error) {
		movie := newMovie(old)

		if updErr := updater(movie); updErr != nil {
			return nil, updErr
		}

		model := newMovieModel(old.BaseEntity, &movie.MovieDraft)
		model.UpdatedAt = now

		return model, nil
	})
	if err != nil {
		return nil, r.mapError(id, err)
	}

	return newMovie(model), nil
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
		return false, fmt.Errorf("failed to check movie: %w", err)
	}

	return exists, nil
}

func (r *Repository) mapError(id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	return err
}
