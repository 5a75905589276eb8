package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/yong/moviehub/internal/storage"
)

type Repository struct {
	records *storage.Repository[*articleModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		records: storage.NewRepository(db, prefix, func() *articleModel { return &articleModel{} }),
	}
}

func (r *Repository) Create(ctx context.Context, draft *ArticleDraft) (*Article, error) {
	model, err := r.records.Create(ctx, func(base storage.BaseEntity) (*articleModel, error) {
		return newArticleModel(base, draft), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}

	return newArticle(model), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Article, error) {
	model, err := r.records.Get(ctx, id)
	if err != nil {
		return nil, r.mapError(id, err)
	}

	return newArticle(model), nil
}

func (r *Repository) List(ctx context.Context, direction storage.Direction) ([]Article, error) {
	models, err := r.records.List(ctx, direction)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}

	articles := make([]Article, len(models))
	for i, model := range models {
		articles[i] = *newArticle(model)
	}

	return articles, nil
}

func (r *Repository) Update(ctx context.Context, id int64, updater func(*Article) error) (*Article, error) {
	model, err := r.records.Update(ctx, id, func(old *articleModel, now time.Time) (*articleModel, error) {
		article := newArticle(old)

		if updErr := updater(article); updErr != nil {
			return nil, updErr
		}

		model := newArticleModel(old.BaseEntity, &article.ArticleDraft)
		model.UpdatedAt = now

		return model, nil
	})
	if err != nil {
		return nil, r.mapError(id, err)
	}

	return newArticle(model), nil
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
		return false, fmt.Errorf("failed to check news: %w", err)
	}

	return exists, nil
}

func (r *Repository) mapError(id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	return err
}
