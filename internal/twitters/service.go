package twitters

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/yong/moviehub/internal/metrics"
	"github.com/yong/moviehub/internal/movies"
	"github.com/yong/moviehub/internal/storage"
	"go.uber.org/zap"
)

const entityName = "twitter"

//nolint:gochecknoglobals //sort table
var comparators = storage.Comparators[Post]{
	"id":        func(a, b Post) int { return cmp.Compare(a.ID, b.ID) },
	"content":   func(a, b Post) int { return storage.CompareFold(a.Content, b.Content) },
	"pubDate":   func(a, b Post) int { return storage.CompareTime(a.PubDate, b.PubDate) },
	"publisher": func(a, b Post) int { return storage.CompareFold(a.Publisher, b.Publisher) },
}

//nolint:gochecknoglobals //default sort
var defaultOrder = storage.Order{Property: "id", Direction: storage.Asc}

type Service struct {
	posts *Repository

	moviesSvc *movies.Service

	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewService(posts *Repository, moviesSvc *movies.Service, metrics *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		posts: posts,

		moviesSvc: moviesSvc,

		metrics: metrics,
		logger:  logger,
	}
}

// Create stores a new post, capturing the summary of the linked movie.
func (s *Service) Create(ctx context.Context, draft PostDraft) (*Post, error) {
	s.logger.Info("creating twitter", zap.Int64p("movie_id", draft.MovieID))

	post, err := s.create(ctx, draft)
	s.metrics.Observe(entityName, "create", err)
	if err != nil {
		s.logger.Error("failed to create twitter", zap.Error(err))
		return nil, err
	}

	s.logger.Info("twitter created", zap.Int64("id", post.ID))
	return post, nil
}

func (s *Service) create(ctx context.Context, draft PostDraft) (*Post, error) {
	movie, err := s.resolveMovie(ctx, draft.MovieID)
	if err != nil {
		return nil, err
	}

	post := &Post{
		Content:   draft.Content,
		PubDate:   draft.PubDate,
		Publisher: draft.Publisher,
		Movie:     movie,
	}
	if vErr := post.validate(); vErr != nil {
		return nil, vErr
	}

	return s.posts.Create(ctx, post)
}

func (s *Service) Get(ctx context.Context, id int64) (*Post, error) {
	s.logger.Debug("getting twitter", zap.Int64("id", id))

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug("failed to get twitter", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return post, nil
}

// List returns one page of the posts matching filter.
func (s *Service) List(ctx context.Context, filter Filter, pageable storage.Pageable) (storage.Page[Post], error) {
	s.logger.Debug("listing twitters", zap.Int64p("movie_id", filter.MovieID), zap.Int("page", pageable.Page))

	var (
		posts []Post
		err   error
	)
	if filter.MovieID != nil {
		posts, err = s.posts.ListByMovie(ctx, *filter.MovieID)
	} else {
		posts, err = s.posts.List(ctx, storage.ScanDirection(pageable, defaultOrder))
		if err == nil {
			s.metrics.SetRecords(entityName, len(posts))
		}
	}
	if err != nil {
		s.logger.Error("failed to list twitters", zap.Error(err))
		return storage.Page[Post]{}, err
	}

	page, err := storage.Paginate(posts, pageable, comparators, defaultOrder)
	if err != nil {
		return storage.Page[Post]{}, fmt.Errorf("failed to list twitters: %w", err)
	}

	return page, nil
}

// Update replaces all fields of a post. A post without MovieID is unlinked.
func (s *Service) Update(ctx context.Context, id int64, draft PostDraft) (*Post, error) {
	movie, err := s.resolveMovie(ctx, draft.MovieID)
	if err != nil {
		s.metrics.Observe(entityName, "update", err)
		return nil, err
	}

	return s.update(ctx, "update", id, func(post *Post) {
		post.Content = draft.Content
		post.PubDate = draft.PubDate
		post.Publisher = draft.Publisher
		post.Movie = movie
	})
}

// PartialUpdate changes the fields set in patch.
func (s *Service) PartialUpdate(ctx context.Context, id int64, patch PostPatch) (*Post, error) {
	movie, err := s.resolveMovie(ctx, patch.MovieID)
	if err != nil {
		s.metrics.Observe(entityName, "partial_update", err)
		return nil, err
	}

	return s.update(ctx, "partial_update", id, func(post *Post) {
		if patch.Content != nil {
			post.Content = *patch.Content
		}
		if patch.PubDate != nil {
			post.PubDate = patch.PubDate
		}
		if patch.Publisher != nil {
			post.Publisher = *patch.Publisher
		}
		if movie != nil {
			post.Movie = movie
		}
	})
}

func (s *Service) update(ctx context.Context, operation string, id int64, apply func(*Post)) (*Post, error) {
	s.logger.Info("updating twitter", zap.Int64("id", id), zap.String("operation", operation))

	post, err := s.posts.Update(ctx, id, func(post *Post) error {
		apply(post)
		return post.validate()
	})
	s.metrics.Observe(entityName, operation, err)
	if err != nil {
		s.logger.Error("failed to update twitter", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("twitter updated", zap.Int64("id", id))
	return post, nil
}

// Delete removes a post. Deleting a missing post succeeds.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("deleting twitter", zap.Int64("id", id))

	err := s.posts.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	s.metrics.Observe(entityName, "delete", err)
	if err != nil {
		s.logger.Error("failed to delete twitter", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("twitter deleted", zap.Int64("id", id))
	return nil
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.posts.Exists(ctx, id)
}

func (s *Service) resolveMovie(ctx context.Context, id *int64) (*MovieRef, error) {
	if id == nil {
		return nil, nil //nolint:nilnil //no movie linked
	}

	movie, err := s.moviesSvc.Get(ctx, *id)
	if errors.Is(err, movies.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMovie, *id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	summary := movie.Summary()
	return &MovieRef{ID: summary.ID, Name: summary.Name}, nil
}
