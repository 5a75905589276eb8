package news

import (
	"fmt"
	"time"

	"github.com/yong/moviehub/internal/storage"
)

type ArticleDraft struct {
	Headerline string
	URL        string
	PubDate    *time.Time

	Image            []byte
	ImageContentType string

	User *storage.UserRef
}

func (d *ArticleDraft) validate() error {
	switch {
	case d.Headerline == "":
		return fmt.Errorf("%w: headerline is required", ErrInvalid)
	case d.URL == "":
		return fmt.Errorf("%w: url is required", ErrInvalid)
	case (len(d.Image) == 0) != (d.ImageContentType == ""):
		return fmt.Errorf("%w: image and image content type must be set together", ErrInvalid)
	}

	return nil
}

// ArticlePatch holds the fields of a partial update. Nil fields are left unchanged.
type ArticlePatch struct {
	Headerline *string
	URL        *string
	PubDate    *time.Time

	Image            []byte
	ImageContentType *string

	User *storage.UserRef
}

func (p *ArticlePatch) applyTo(d *ArticleDraft) {
	if p.Headerline != nil {
		d.Headerline = *p.Headerline
	}
	if p.URL != nil {
		d.URL = *p.URL
	}
	if p.PubDate != nil {
		d.PubDate = p.PubDate
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

// Article is a news item.
type Article struct {
	ArticleDraft

	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
