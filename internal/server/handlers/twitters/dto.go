package twitters

import (
	"time"

	"github.com/samber/lo"
	"github.com/yong/moviehub/internal/twitters"
)

// MovieRef references the movie a post is about.
type MovieRef struct {
	ID   int64  `json:"id"             validate:"required"`
	Name string `json:"name,omitempty"`
}

func (m *MovieRef) movieID() *int64 {
	if m == nil {
		return nil
	}

	return lo.ToPtr(m.ID)
}

// TwitterRequest represents the request payload for creating or replacing a post.
type TwitterRequest struct {
	ID        *int64     `json:"id"`
	Content   string     `json:"content"   validate:"required,max=4000"`
	PubDate   *time.Time `json:"pubDate"`
	Publisher string     `json:"publisher" validate:"max=255"`
	Movie     *MovieRef  `json:"movie"`
}

func (r *TwitterRequest) toDraft() twitters.PostDraft {
	return twitters.PostDraft{
		Content:   r.Content,
		PubDate:   r.PubDate,
		Publisher: r.Publisher,
		MovieID:   r.Movie.movieID(),
	}
}

// TwitterPatchRequest represents the request payload for a partial update.
type TwitterPatchRequest struct {
	ID        *int64     `json:"id"`
	Content   *string    `json:"content,omitempty"   validate:"omitempty,min=1,max=4000"`
	PubDate   *time.Time `json:"pubDate,omitempty"`
	Publisher *string    `json:"publisher,omitempty" validate:"omitempty,max=255"`
	Movie     *MovieRef  `json:"movie,omitempty"`
}

func (r *TwitterPatchRequest) toPatch() twitters.PostPatch {
	return twitters.PostPatch{
		Content:   r.Content,
		PubDate:   r.PubDate,
		Publisher: r.Publisher,
		MovieID:   r.Movie.movieID(),
	}
}

// TwitterResponse represents the response payload for a post.
type TwitterResponse struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	PubDate   *time.Time `json:"pubDate,omitempty"`
	Publisher string     `json:"publisher,omitempty"`
	Movie     *MovieRef  `json:"movie,omitempty"`
}

func newTwitterResponse(post *twitters.Post) TwitterResponse {
	resp := TwitterResponse{
		ID:        post.ID,
		Content:   post.Content,
		PubDate:   post.PubDate,
		Publisher: post.Publisher,
		Movie:     nil,
	}
	if post.Movie != nil {
		resp.Movie = &MovieRef{ID: post.Movie.ID, Name: post.Movie.Name}
	}

	return resp
}
