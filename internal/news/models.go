package news

import (
	"encoding/json"
	"time"

	"github.com/yong/moviehub/internal/storage"
)

const (
	prefix = "news:"
)

type articleModel struct {
	storage.BaseEntity

	Headerline string     `json:"headerline"`
	URL        string     `json:"url"`
	PubDate    *time.Time `json:"pub_date,omitempty"`

	Image            []byte `json:"image,omitempty"`
	ImageContentType string `json:"image_content_type,omitempty"`

	User *storage.UserRef `json:"user,omitempty"`
}

func newArticleModel(base storage.BaseEntity, draft *ArticleDraft) *articleModel {
	return &articleModel{
		BaseEntity:       base,
		Headerline:       draft.Headerline,
		URL:              draft.URL,
		PubDate:          draft.PubDate,
		Image:            draft.Image,
		ImageContentType: draft.ImageContentType,
		User:             draft.User,
	}
}

func newArticle(model *articleModel) *Article {
	if model == nil {
		return nil
	}

	return &Article{
		ArticleDraft: ArticleDraft{
			Headerline:       model.Headerline,
			URL:              model.URL,
			PubDate:          model.PubDate,
			Image:            model.Image,
			ImageContentType: model.ImageContentType,
			User:             model.User,
		},
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *articleModel) StorageKey() string {
	return storage.Key(prefix, m.ID)
}

func (m *articleModel) StorageIndexes() []string {
	return nil
}

func (m *articleModel) MarshalStorage() ([]byte, error) {
	return json.Marshal(m)
}

func (m *articleModel) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, m)
}
