package movies

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/yong/moviehub/internal/movies"
	"github.com/yong/moviehub/internal/server/rest"
	"github.com/yong/moviehub/internal/server/validation"
	"github.com/yong/moviehub/internal/storage"
	"go.uber.org/zap"
)

const entityName = "movie"

type Handler struct {
	moviesSvc *movies.Service

	config    rest.Config
	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(moviesSvc *movies.Service, config rest.Config, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		moviesSvc: moviesSvc,

		config:    config,
		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/movies")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Put("/:id", validation.DecorateWithBodyEx(h.validator, h.put))
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary		Create a new movie
//	@Description	Create a new movie. The request must not carry an id.
//	@Tags			movies
//	@Accept			json
//	@Produce		json
//	@Param			movie	body		MovieRequest	true	"Movie"
//	@Success		201		{object}	MovieResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/movies [post]
//
// Create a new movie.
func (h *Handler) post(c *fiber.Ctx, req *MovieRequest) error {
	if err := rest.CheckNewID(c, h.config, entityName, req.ID); err != nil {
		return err
	}

	movie, err := h.moviesSvc.Create(c.Context(), req.toDraft())
	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	rest.Alert(c, h.config, entityName, rest.ActionCreated, movie.ID)
	c.Location(strings.TrimSuffix(c.Path(), "/") + "/" + strconv.FormatInt(movie.ID, 10))

	return c.Status(fiber.StatusCreated).JSON(newMovieResponse(movie))
}

//	@Summary		List movies
//	@Description	Retrieve one page of movies. Pagination links are returned in the Link header.
//	@Tags			movies
//	@Produce		json
//	@Param			page	query		int			false	"Zero-based page index"
//	@Param			size	query		int			false	"Page size"
//	@Param			sort	query		[]string	false	"Sort criteria: property[,asc|desc]"	collectionFormat(multi)
//	@Success		200		{array}		MovieResponse
//	@Header			200		{integer}	X-Total-Count	"Total number of movies"
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/movies [get]
//
// List movies.
func (h *Handler) list(c *fiber.Ctx) error {
	pageable, err := rest.ParsePageable(c, h.config)
	if err != nil {
		return err
	}

	page, err := h.moviesSvc.List(c.Context(), pageable)
	if err != nil {
		return fmt.Errorf("failed to list movies: %w", err)
	}

	if linkErr := rest.WritePage(c, pageable, page.Total); linkErr != nil {
		return linkErr
	}

	return c.JSON(lo.Map(page.Items, func(movie movies.Movie, _ int) MovieResponse {
		return newMovieResponse(&movie)
	}))
}

//	@Summary		Get a movie
//	@Tags			movies
//	@Produce		json
//	@Param			id	path		int	true	"Movie ID"
//	@Success		200	{object}	MovieResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/movies/{id} [get]
//
// Get a movie.
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	movie, err := h.moviesSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get movie: %w", err)
	}

	return c.JSON(newMovieResponse(movie))
}

//	@Summary		Replace a movie
//	@Description	Replace all fields of an existing movie. The body id must match the path id.
//	@Tags			movies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Movie ID"
//	@Param			movie	body		MovieRequest	true	"Movie"
//	@Success		200		{object}	MovieResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/movies/{id} [put]
//
// Replace a movie.
func (h *Handler) put(c *fiber.Ctx, req *MovieRequest) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	if checkErr := rest.CheckUpdateID(c, h.config, entityName, id, req.ID, h.moviesSvc.Exists); checkErr != nil {
		return checkErr
	}

	movie, err := h.moviesSvc.Update(c.Context(), id, req.toDraft())
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rest.Alert(c, h.config, entityName, rest.ActionUpdated, movie.ID)
	return c.JSON(newMovieResponse(movie))
}

//	@Summary		Partially update a movie
//	@Description	Update the fields present in the body. Absent and null fields are left unchanged.
//	@Tags			movies
//	@Accept			json,application/merge-patch+json
//	@Produce		json
//	@Param			id		path		int					true	"Movie ID"
//	@Param			movie	body		MoviePatchRequest	true	"Fields to change"
//	@Success		200		{object}	MovieResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/movies/{id} [patch]
//
// Partially update a movie.
func (h *Handler) patch(c *fiber.Ctx, req *MoviePatchRequest) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	if checkErr := rest.CheckUpdateID(c, h.config, entityName, id, req.ID, h.moviesSvc.Exists); checkErr != nil {
		return checkErr
	}

	movie, err := h.moviesSvc.PartialUpdate(c.Context(), id, req.toPatch())
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rest.Alert(c, h.config, entityName, rest.ActionUpdated, movie.ID)
	return c.JSON(newMovieResponse(movie))
}

//	@Summary		Delete a movie
//	@Tags			movies
//	@Param			id	path	int	true	"Movie ID"
//	@Success		204
//	@Router			/movies/{id} [delete]
//
// Delete a movie.
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	if delErr := h.moviesSvc.Delete(c.Context(), id); delErr != nil {
		return fmt.Errorf("failed to delete movie: %w", delErr)
	}

	rest.Alert(c, h.config, entityName, rest.ActionDeleted, id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, movies.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, movies.ErrInvalid), errors.Is(err, storage.ErrInvalidSort):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
