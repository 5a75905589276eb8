package movies

import (
	"fmt"
	"time"

	"github.com/yong/moviehub/internal/storage"
)

type MovieDraft struct {
	Name      string
	Director  string
	Synopsis  string
	Comment   string
	StartDate *time.Time

	// Poster image; both fields are set or both are empty
	Image            []byte
	ImageContentType string

	User *storage.UserRef
}

func (d *MovieDraft) validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if (len(d.Image) == 0) != (d.ImageContentType == "") {
		return fmt.Errorf("%w: image and image content type must be set together", ErrInvalid)
	}

	return nil
}

// MoviePatch holds the fields of a partial update. Nil fields are left unchanged.
type MoviePatch struct {
	Name      *string
	Director  *string
	Synopsis  *string
	Comment   *string
	StartDate *time.Time

	Image            []byte
	ImageContentType *string

	User *storage.UserRef
}

func (p *MoviePatch) applyTo(d *MovieDraft) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Director != nil {
		d.Director = *p.Director
	}
	if p.Synopsis != nil {
		d.Synopsis = *p.Synopsis
	}
	if p.Comment != nil {
		d.Comment = *p.Comment
	}
	if p.StartDate != nil {
		d.StartDate = p.StartDate
	}
	if p.Image != nil {
		d.Image = p.Image
	}
	if p.ImageContentType != nil {
		d.ImageContentType = *p.ImageContentType
	}
	if p.User != nil {
		d.User = p.User
	}
}

type Movie struct {
	MovieDraft

	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is the part of a movie embedded in records that reference it.
type Summary struct {
	ID   int64
	Name string
}

func (m *Movie) Summary() Summary {
	return Summary{
		ID:   m.ID,
		Name: m.Name,
	}
}
