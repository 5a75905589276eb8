package twitters

import (
	"fmt"
	"time"
)

// MovieRef is the summary of the movie a post is about, captured when the
// post is written.
type MovieRef struct {
	ID   int64
	Name string
}

type PostDraft struct {
	Content   string
	PubDate   *time.Time
	Publisher string

	// MovieID links the post to a movie when set
	MovieID *int64
}

// PostPatch holds the fields of a partial update. Nil fields are left unchanged.
type PostPatch struct {
	Content   *string
	PubDate   *time.Time
	Publisher *string
	MovieID   *int64
}

// Post is a twitter post.
type Post struct {
	Content   string
	PubDate   *time.Time
	Publisher string
	Movie     *MovieRef

	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Post) validate() error {
	if p.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalid)
	}

	return nil
}

// Filter narrows a listing. Zero value matches every post.
type Filter struct {
	MovieID *int64
}
