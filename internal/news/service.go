package news

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/yong/moviehub/internal/metrics"
	"github.com/yong/moviehub/internal/storage"
	"go.uber.org/zap"
)

const entityName = "news"

//nolint:gochecknoglobals //sort table
var comparators = storage.Comparators[Article]{
	"id":         func(a, b Article) int { return cmp.Compare(a.ID, b.ID) },
	"headerline": func(a, b Article) int { return storage.CompareFold(a.Headerline, b.Headerline) },
	"url":        func(a, b Article) int { return cmp.Compare(a.URL, b.URL) },
	"pubDate":    func(a, b Article) int { return storage.CompareTime(a.PubDate, b.PubDate) },
}

//nolint:gochecknoglobals //default sort
var defaultOrder = storage.Order{Property: "id", Direction: storage.Asc}

type Service struct {
	articles *Repository

	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewService(articles *Repository, metrics *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		articles: articles,

		metrics: metrics,
		logger:  logger,
	}
}

func (s *Service) Create(ctx context.Context, draft ArticleDraft) (*Article, error) {
	s.logger.Info("creating news", zap.String("headerline", draft.Headerline))

	var (
		article *Article
		err     = draft.validate()
	)
	if err == nil {
		article, err = s.articles.Create(ctx, &draft)
	}
	s.metrics.Observe(entityName, "create", err)
	if err != nil {
		s.logger.Error("failed to create news", zap.Error(err))
		return nil, err
	}

	s.logger.Info("news created", zap.Int64("id", article.ID))
	return article, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Article, error) {
	s.logger.Debug("getting news", zap.Int64("id", id))

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug("failed to get news", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return article, nil
}

// List returns one page of news.
func (s *Service) List(ctx context.Context, pageable storage.Pageable) (storage.Page[Article], error) {
	s.logger.Debug("listing news", zap.Int("page", pageable.Page), zap.Int("size", pageable.Size))

	all, err := s.articles.List(ctx, storage.ScanDirection(pageable, defaultOrder))
	if err != nil {
		s.logger.Error("failed to list news", zap.Error(err))
		return storage.Page[Article]{}, err
	}
	s.metrics.SetRecords(entityName, len(all))

	page, err := storage.Paginate(all, pageable, comparators, defaultOrder)
	if err != nil {
		return storage.Page[Article]{}, fmt.Errorf("failed to list news: %w", err)
	}

	return page, nil
}

func (s *Service) Update(ctx context.Context, id int64, draft ArticleDraft) (*Article, error) {
	return s.update(ctx, "update", id, func(article *Article) {
		article.ArticleDraft = draft
	})
}

func (s *Service) PartialUpdate(ctx context.Context, id int64, patch ArticlePatch) (*Article, error) {
	return s.update(ctx, "partial_update", id, func(article *Article) {
		patch.applyTo(&article.ArticleDraft)
	})
}

func (s *Service) update(ctx context.Context, operation string, id int64, apply func(*Article)) (*Article, error) {
	s.logger.Info("updating news", zap.Int64("id", id), zap.String("operation", operation))

	article, err := s.articles.Update(ctx, id, func(article *Article) error {
		apply(article)
		return article.validate()
	})
	s.metrics.Observe(entityName, operation, err)
	if err != nil {
		s.logger.Error("failed to update news", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("news updated", zap.Int64("id", id))
	return article, nil
}

// Delete removes a news item. Deleting a missing item succeeds.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("deleting news", zap.Int64("id", id))

	err := s.articles.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	s.metrics.Observe(entityName, "delete", err)
	if err != nil {
		s.logger.Error("failed to delete news", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("news deleted", zap.Int64("id", id))
	return nil
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.articles.Exists(ctx, id)
}
