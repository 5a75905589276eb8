package movies

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/yong/moviehub/internal/metrics"
	"github.com/yong/moviehub/internal/storage"
	"go.uber.org/zap"
)

const entityName = "movie"

//nolint:gochecknoglobals //sort table
var comparators = storage.Comparators[Movie]{
	"id":        func(a, b Movie) int { return cmp.Compare(a.ID, b.ID) },
	"name":      func(a, b Movie) int { return storage.CompareFold(a.Name, b.Name) },
	"director":  func(a, b Movie) int { return storage.CompareFold(a.Director, b.Director) },
	"synopsis":  func(a, b Movie) int { return storage.CompareFold(a.Synopsis, b.Synopsis) },
	"comment":   func(a, b Movie) int { return storage.CompareFold(a.Comment, b.Comment) },
	"startDate": func(a, b Movie) int { return storage.CompareTime(a.StartDate, b.StartDate) },
}

//nolint:gochecknoglobals //default sort
var defaultOrder = storage.Order{Property: "id", Direction: storage.Asc}

type Service struct {
	movies *Repository

	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewService(movies *Repository, metrics *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		movies: movies,

		metrics: metrics,
		logger:  logger,
	}
}

// Create stores a new movie.
func (s *Service) Create(ctx context.Context, draft MovieDraft) (*Movie, error) {
	s.logger.Info("creating movie", zap.String("name", draft.Name))

	movie, err := s.create(ctx, draft)
	s.metrics.Observe(entityName, "create", err)
	if err != nil {
		s.logger.Error("failed to create movie", zap.Error(err))
		return nil, err
	}

	s.logger.Info("movie created", zap.Int64("id", movie.ID))
	return movie, nil
}

func (s *Service) create(ctx context.Context, draft MovieDraft) (*Movie, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	return s.movies.Create(ctx, &draft)
}

// Get retrieves a movie by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Movie, error) {
	s.logger.Debug("getting movie", zap.Int64("id", id))

	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug("failed to get movie", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return movie, nil
}

// List returns one page of movies.
func (s *Service) List(ctx context.Context, pageable storage.Pageable) (storage.Page[Movie], error) {
	s.logger.Debug("listing movies", zap.Int("page", pageable.Page), zap.Int("size", pageable.Size))

	all, err := s.movies.List(ctx, storage.ScanDirection(pageable, defaultOrder))
	if err != nil {
		s.logger.Error("failed to list movies", zap.Error(err))
		return storage.Page[Movie]{}, err
	}
	s.metrics.SetRecords(entityName, len(all))

	page, err := storage.Paginate(all, pageable, comparators, defaultOrder)
	if err != nil {
		return storage.Page[Movie]{}, fmt.Errorf("failed to list movies: %w", err)
	}

	return page, nil
}

// Update replaces all fields of a movie.
func (s *Service) Update(ctx context.Context, id int64, draft MovieDraft) (*Movie, error) {
	return s.update(ctx, "update", id, func(movie *Movie) error {
		movie.MovieDraft = draft
		return nil
	})
}

// PartialUpdate changes the fields set in patch.
func (s *Service) PartialUpdate(ctx context.Context, id int64, patch MoviePatch) (*Movie, error) {
	return s.update(ctx, "partial_update", id, func(movie *Movie) error {
		patch.applyTo(&movie.MovieDraft)
		return nil
	})
}

func (s *Service) update(ctx context.Context, operation string, id int64, updater func(*Movie) error) (*Movie, error) {
	s.logger.Info("updating movie", zap.Int64("id", id), zap.String("operation", operation))

	movie, err := s.movies.Update(ctx, id, func(movie *Movie) error {
		if err := updater(movie); err != nil {
			return err
		}
		return movie.validate()
	})
	s.metrics.Observe(entityName, operation, err)
	if err != nil {
		s.logger.Error("failed to update movie", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("movie updated", zap.Int64("id", id))
	return movie, nil
}

// Delete removes a movie. Deleting a missing movie succeeds.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("deleting movie", zap.Int64("id", id))

	err := s.movies.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug("movie already deleted", zap.Int64("id", id))
		err = nil
	}
	s.metrics.Observe(entityName, "delete", err)
	if err != nil {
		s.logger.Error("failed to delete movie", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("movie deleted", zap.Int64("id", id))
	return nil
}

// Exists reports whether a movie with the given ID is stored.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.movies.Exists(ctx, id)
}
