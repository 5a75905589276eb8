package twitters

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yong/moviehub/internal/storage"
)

const (
	prefix = "twitter:"

	prefixByMovie = prefix + "movie:"
)

type movieRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type postModel struct {
	storage.BaseEntity

	Content   string     `json:"content"`
	PubDate   *time.Time `json:"pub_date,omitempty"`
	Publisher string     `json:"publisher,omitempty"`
	Movie     *movieRef  `json:"movie,omitempty"`
}

func newPostModel(base storage.BaseEntity, post *Post) *postModel {
	model := &postModel{
		BaseEntity: base,
		Content:    post.Content,
		PubDate:    post.PubDate,
		Publisher:  post.Publisher,
		Movie:      nil,
	}
	if post.Movie != nil {
		model.Movie = &movieRef{ID: post.Movie.ID, Name: post.Movie.Name}
	}

	return model
}

func newPost(model *postModel) *Post {
	if model == nil {
		return nil
	}

	post := &Post{
		Content:   model.Content,
		PubDate:   model.PubDate,
		Publisher: model.Publisher,
		Movie:     nil,

		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.Movie != nil {
		post.Movie = &MovieRef{ID: model.Movie.ID, Name: model.Movie.Name}
	}

	return post
}

// movieIndexPrefix is the prefix of the `twitter:movie:<movie_id>:<id>` index.
func movieIndexPrefix(movieID int64) string {
	return fmt.Sprintf("%s%020d:", prefixByMovie, movieID)
}

func (m *postModel) StorageKey() string {
	return storage.Key(prefix, m.ID)
}

func (m *postModel) StorageIndexes() []string {
	if m.Movie == nil {
		return nil
	}

	return []string{fmt.Sprintf("%s%020d", movieIndexPrefix(m.Movie.ID), m.ID)}
}

func (m *postModel) MarshalStorage() ([]byte, error) {
	return json.Marshal(m)
}

func (m *postModel) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, m)
}
