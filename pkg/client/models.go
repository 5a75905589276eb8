package client

import "time"

const (
	MoviesPath   = "api/movies"
	NewsPath     = "api/news"
	TwittersPath = "api/twitters"

	// FieldImage is the only attachment field carried by movies and news.
	FieldImage = "image"
)

// Record is implemented by every entity kind served by the API.
type Record[T any] interface {
	// EntityID returns the server-assigned identity, if any.
	EntityID() (int64, bool)
	// Clean returns a copy suitable for sending: relations without identity are dropped.
	Clean() T
}

// Attachable is implemented by records carrying binary attachments.
type Attachable[T any] interface {
	// WithAttachment sets field and field+"ContentType". Unknown fields are ignored.
	WithAttachment(field string, data []byte, contentType string) T
}

// UserRef references an account owning a record.
type UserRef struct {
	ID    int64  `json:"id"`
	Login string `json:"login,omitempty"`
}

// MovieRef references the movie a twitter post is about.
type MovieRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type Movie struct {
	ID               *int64     `json:"id,omitempty"`
	Name             *string    `json:"name,omitempty"`
	Director         *string    `json:"director,omitempty"`
	Synopsis         *string    `json:"synopsis,omitempty"`
	Comment          *string    `json:"comment,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	Image            []byte     `json:"image,omitempty"`
	ImageContentType *string    `json:"imageContentType,omitempty"`
	User             *UserRef   `json:"user,omitempty"`
}

func (m Movie) EntityID() (int64, bool) {
	if m.ID == nil {
		return 0, false
	}
	return *m.ID, true
}

func (m Movie) Clean() Movie {
	if m.User != nil && m.User.ID == 0 {
		m.User = nil
	}
	return m
}

func (m Movie) WithAttachment(field string, data []byte, contentType string) Movie {
	if field == FieldImage {
		m.Image, m.ImageContentType = attachment(data, contentType)
	}
	return m
}

type News struct {
	ID               *int64     `json:"id,omitempty"`
	Headerline       *string    `json:"headerline,omitempty"`
	URL              *string    `json:"url,omitempty"`
	PubDate          *time.Time `json:"pubDate,omitempty"`
	Image            []byte     `json:"image,omitempty"`
	ImageContentType *string    `json:"imageContentType,omitempty"`
	User             *UserRef   `json:"user,omitempty"`
}

func (n News) EntityID() (int64, bool) {
	if n.ID == nil {
		return 0, false
	}
	return *n.ID, true
}

func (n News) Clean() News {
	if n.User != nil && n.User.ID == 0 {
		n.User = nil
	}
	return n
}

func (n News) WithAttachment(field string, data []byte, contentType string) News {
	if field == FieldImage {
		n.Image, n.ImageContentType = attachment(data, contentType)
	}
	return n
}

type Twitter struct {
	ID        *int64     `json:"id,omitempty"`
	Content   *string    `json:"content,omitempty"`
	PubDate   *time.Time `json:"pubDate,omitempty"`
	Publisher *string    `json:"publisher,omitempty"`
	Movie     *MovieRef  `json:"movie,omitempty"`
}

func (t Twitter) EntityID() (int64, bool) {
	if t.ID == nil {
		return 0, false
	}
	return *t.ID, true
}

func (t Twitter) Clean() Twitter {
	if t.Movie != nil && t.Movie.ID == 0 {
		t.Movie = nil
	}
	return t
}

// attachment keeps payload and content type both set or both nil. An empty
// payload clears the attachment.
func attachment(data []byte, contentType string) ([]byte, *string) {
	if len(data) == 0 {
		return nil, nil
	}
	return data, &contentType
}
