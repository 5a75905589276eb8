package movies

import (
	"encoding/json"
	"time"

	"github.com/yong/moviehub/internal/storage"
)

const (
	prefix = "movie:"
)

type movieModel struct {
	storage.BaseEntity

	Name      string     `json:"name"`
	Director  string     `json:"director,omitempty"`
	Synopsis  string     `json:"synopsis,omitempty"`
	Comment   string     `json:"comment,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`

	Image            []byte `json:"image,omitempty"`
	ImageContentType string `json:"image_content_type,omitempty"`

	User *storage.UserRef `json:"user,omitempty"`
}

func newMovieModel(base storage.BaseEntity, draft *MovieDraft) *movieModel {
	return &movieModel{
		BaseEntity:       base,
		Name:             draft.Name,
		Director:         draft.Director,
		Synopsis:         draft.Synopsis,
		Comment:          draft.Comment,
		StartDate:        draft.StartDate,
		Image:            draft.Image,
		ImageContentType: draft.ImageContentType,
		User:             draft.User,
	}
}

func newMovie(model *movieModel) *Movie {
	if model == nil {
		return nil
	}

	return &Movie{
		MovieDraft: MovieDraft{
			Name:             model.Name,
			Director:         model.Director,
			Synopsis:         model.Synopsis,
			Comment:          model.Comment,
			StartDate:        model.StartDate,
			Image:            model.Image,
			ImageContentType: model.ImageContentType,
			User:             model.User,
		},
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *movieModel) StorageKey() string {
	return storage.Key(prefix, m.ID)
}

func (m *movieModel) StorageIndexes() []string {
	return nil
}

func (m *movieModel) MarshalStorage() ([]byte, error) {
	return json.Marshal(m)
}

func (m *movieModel) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, m)
}
