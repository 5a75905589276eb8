package news

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/yong/moviehub/internal/news"
	"github.com/yong/moviehub/internal/server/rest"
	"github.com/yong/moviehub/internal/server/validation"
	"github.com/yong/moviehub/internal/storage"
	"go.uber.org/zap"
)

const entityName = "news"

type Handler struct {
	newsSvc *news.Service

	config    rest.Config
	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(newsSvc *news.Service, config rest.Config, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		newsSvc: newsSvc,

		config:    config,
		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/news")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Put("/:id", validation.DecorateWithBodyEx(h.validator, h.put))
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary		Create a news item
//	@Tags			news
//	@Accept			json
//	@Produce		json
//	@Param			news	body		NewsRequest	true	"News"
//	@Success		201		{object}	NewsResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/news [post]
//
// Create a news item.
func (h *Handler) post(c *fiber.Ctx, req *NewsRequest) error {
	if err := rest.CheckNewID(c, h.config, entityName, req.ID); err != nil {
		return err
	}

	article, err := h.newsSvc.Create(c.Context(), req.toDraft())
	if err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}

	rest.Alert(c, h.config, entityName, rest.ActionCreated, article.ID)
	c.Location(strings.TrimSuffix(c.Path(), "/") + "/" + strconv.FormatInt(article.ID, 10))

	return c.Status(fiber.StatusCreated).JSON(newNewsResponse(article))
}

//	@Summary	List news
//	@Tags		news
//	@Produce	json
//	@Param		page	query		int			false	"Zero-based page index"
//	@Param		size	query		int			false	"Page size"
//	@Param		sort	query		[]string	false	"Sort criteria: property[,asc|desc]"	collectionFormat(multi)
//	@Success	200		{array}		NewsResponse
//	@Header		200		{integer}	X-Total-Count	"Total number of news items"
//	@Failure	400		{object}	fiberfx.ErrorResponse
//	@Router		/news [get]
//
// List news.
func (h *Handler) list(c *fiber.Ctx) error {
	pageable, err := rest.ParsePageable(c, h.config)
	if err != nil {
		return err
	}

	page, err := h.newsSvc.List(c.Context(), pageable)
	if err != nil {
		return fmt.Errorf("failed to list news: %w", err)
	}

	if linkErr := rest.WritePage(c, pageable, page.Total); linkErr != nil {
		return linkErr
	}

	return c.JSON(lo.Map(page.Items, func(article news.Article, _ int) NewsResponse {
		return newNewsResponse(&article)
	}))
}

//	@Summary	Get a news item
//	@Tags		news
//	@Produce	json
//	@Param		id	path		int	true	"News ID"
//	@Success	200	{object}	NewsResponse
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/news/{id} [get]
//
// Get a news item.
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	article, err := h.newsSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get news: %w", err)
	}

	return c.JSON(newNewsResponse(article))
}

//	@Summary	Replace a news item
//	@Tags		news
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int			true	"News ID"
//	@Param		news	body		NewsRequest	true	"News"
//	@Success	200		{object}	NewsResponse
//	@Failure	400		{object}	fiberfx.ErrorResponse
//	@Router		/news/{id} [put]
//
// Replace a news item.
func (h *Handler) put(c *fiber.Ctx, req *NewsRequest) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	if checkErr := rest.CheckUpdateID(c, h.config, entityName, id, req.ID, h.newsSvc.Exists); checkErr != nil {
		return checkErr
	}

	article, err := h.newsSvc.Update(c.Context(), id, req.toDraft())
	if err != nil {
		return fmt.Errorf("failed to update news: %w", err)
	}

	rest.Alert(c, h.config, entityName, rest.ActionUpdated, article.ID)
	return c.JSON(newNewsResponse(article))
}

//	@Summary	Partially update a news item
//	@Tags		news
//	@Accept		json,application/merge-patch+json
//	@Produce	json
//	@Param		id		path		int					true	"News ID"
//	@Param		news	body		NewsPatchRequest	true	"Fields to change"
//	@Success	200		{object}	NewsResponse
//	@Failure	400		{object}	fiberfx.ErrorResponse
//	@Failure	404		{object}	fiberfx.ErrorResponse
//	@Router		/news/{id} [patch]
//
// Partially update a news item.
func (h *Handler) patch(c *fiber.Ctx, req *NewsPatchRequest) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	if checkErr := rest.CheckUpdateID(c, h.config, entityName, id, req.ID, h.newsSvc.Exists); checkErr != nil {
		return checkErr
	}

	article, err := h.newsSvc.PartialUpdate(c.Context(), id, req.toPatch())
	if err != nil {
		return fmt.Errorf("failed to update news: %w", err)
	}

	rest.Alert(c, h.config, entityName, rest.ActionUpdated, article.ID)
	return c.JSON(newNewsResponse(article))
}

//	@Summary	Delete a news item
//	@Tags		news
//	@Param		id	path	int	true	"News ID"
//	@Success	204
//	@Router		/news/{id} [delete]
//
// Delete a news item.
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	if delErr := h.newsSvc.Delete(c.Context(), id); delErr != nil {
		return fmt.Errorf("failed to delete news: %w", delErr)
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
	case errors.Is(err, news.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, news.ErrInvalid), errors.Is(err, storage.ErrInvalidSort):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
