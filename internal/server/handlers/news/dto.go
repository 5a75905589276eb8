package news

import (
	"time"

	"github.com/yong/moviehub/internal/news"
	"github.com/yong/moviehub/internal/server/rest"
)

// NewsRequest represents the request payload for creating or replacing a news item.
type NewsRequest struct {
	ID               *int64     `json:"id"`
	Headerline       string     `json:"headerline"       validate:"required,max=255"`
	URL              string     `json:"url"              validate:"required,url"`
	PubDate          *time.Time `json:"pubDate"`
	Image            []byte     `json:"image"            validate:"required_with=ImageContentType"`
	ImageContentType string     `json:"imageContentType" validate:"required_with=Image"`
	User             *rest.User `json:"user"`
}

func (r *NewsRequest) toDraft() news.ArticleDraft {
	return news.ArticleDraft{
		Headerline:       r.Headerline,
		URL:              r.URL,
		PubDate:          r.PubDate,
		Image:            r.Image,
		ImageContentType: r.ImageContentType,
		User:             r.User.ToStorage(),
	}
}

// NewsPatchRequest represents the request payload for a partial update.
type NewsPatchRequest struct {
	ID               *int64     `json:"id"`
	Headerline       *string    `json:"headerline,omitempty"       validate:"omitempty,min=1,max=255"`
	URL              *string    `json:"url,omitempty"              validate:"omitempty,url"`
	PubDate          *time.Time `json:"pubDate,omitempty"`
	Image            []byte     `json:"image,omitempty"`
	ImageContentType *string    `json:"imageContentType,omitempty"`
	User             *rest.User `json:"user,omitempty"`
}

func (r *NewsPatchRequest) toPatch() news.ArticlePatch {
	return news.ArticlePatch{
		Headerline:       r.Headerline,
		URL:              r.URL,
		PubDate:          r.PubDate,
		Image:            r.Image,
		ImageContentType: r.ImageContentType,
		User:             r.User.ToStorage(),
	}
}

// NewsResponse represents the response payload for a news item.
type NewsResponse struct {
	ID               int64      `json:"id"`
	Headerline       string     `json:"headerline"`
	URL              string     `json:"url"`
	PubDate          *time.Time `json:"pubDate,omitempty"`
	Image            []byte     `json:"image,omitempty"`
	ImageContentType string     `json:"imageContentType,omitempty"`
	User             *rest.User `json:"user,omitempty"`
}

func newNewsResponse(article *news.Article) NewsResponse {
	return NewsResponse{
		ID:               article.ID,
		Headerline:       article.Headerline,
		URL:              article.URL,
		PubDate:          article.PubDate,
		Image:            article.Image,
		ImageContentType: article.ImageContentType,
		User:             rest.NewUser(article.User),
	}
}
