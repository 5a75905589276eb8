package movies

import (
	"time"

	"github.com/yong/moviehub/internal/movies"
	"github.com/yong/moviehub/internal/server/rest"
)

// MovieRequest represents the request payload for creating or replacing a movie.
type MovieRequest struct {
	ID               *int64     `json:"id"`
	Name             string     `json:"name"             validate:"required,max=255"`
	Director         string     `json:"director"         validate:"max=255"`
	Synopsis         string     `json:"synopsis"         validate:"max=4000"`
	Comment          string     `json:"comment"          validate:"max=4000"`
	StartDate        *time.Time `json:"startDate"`
	Image            []byte     `json:"image"            validate:"required_with=ImageContentType"`
	ImageContentType string     `json:"imageContentType" validate:"required_with=Image"`
	User             *rest.User `json:"user"`
}

func (r *MovieRequest) toDraft() movies.MovieDraft {
	return movies.MovieDraft{
		Name:             r.Name,
		Director:         r.Director,
		Synopsis:         r.Synopsis,
		Comment:          r.Comment,
		StartDate:        r.StartDate,
		Image:            r.Image,
		ImageContentType: r.ImageContentType,
		User:             r.User.ToStorage(),
	}
}

// MoviePatchRequest represents the request payload for a partial update.
type MoviePatchRequest struct {
	ID               *int64     `json:"id"`
	Name             *string    `json:"name,omitempty"             validate:"omitempty,min=1,max=255"`
	Director         *string    `json:"director,omitempty"         validate:"omitempty,max=255"`
	Synopsis         *string    `json:"synopsis,omitempty"         validate:"omitempty,max=4000"`
	Comment          *string    `json:"comment,omitempty"          validate:"omitempty,max=4000"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	Image            []byte     `json:"image,omitempty"`
	ImageContentType *string    `json:"imageContentType,omitempty"`
	User             *rest.User `json:"user,omitempty"`
}

func (r *MoviePatchRequest) toPatch() movies.MoviePatch {
	return movies.MoviePatch{
		Name:             r.Name,
		Director:         r.Director,
		Synopsis:         r.Synopsis,
		Comment:          r.Comment,
		StartDate:        r.StartDate,
		Image:            r.Image,
		ImageContentType: r.ImageContentType,
		User:             r.User.ToStorage(),
	}
}

// MovieResponse represents the response payload for a movie.
type MovieResponse struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Director         string     `json:"director,omitempty"`
	Synopsis         string     `json:"synopsis,omitempty"`
	Comment          string     `json:"comment,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	Image            []byte     `json:"image,omitempty"`
	ImageContentType string     `json:"imageContentType,omitempty"`
	User             *rest.User `json:"user,omitempty"`
}

func newMovieResponse(movie *movies.Movie) MovieResponse {
	return MovieResponse{
		ID:               movie.ID,
		Name:             movie.Name,
		Director:         movie.Director,
		Synopsis:         movie.Synopsis,
		Comment:          movie.Comment,
		StartDate:        movie.StartDate,
		Image:            movie.Image,
		ImageContentType: movie.ImageContentType,
		User:             rest.NewUser(movie.User),
	}
}
