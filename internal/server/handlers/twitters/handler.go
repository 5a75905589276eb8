package twitters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/yong/moviehub/internal/server/rest"
	"github.com/yong/moviehub/internal/server/validation"
	"github.com/yong/moviehub/internal/storage"
	"github.com/yong/moviehub/internal/twitters"
	"go.uber.org/zap"
)

const entityName = "twitter"

type Handler struct {
	twittersSvc *twitters.Service

	config    rest.Config
	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	twittersSvc *twitters.Service,
	config rest.Config,
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		twittersSvc: twittersSvc,

		config:    config,
		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/twitters")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Put("/:id", validation.DecorateWithBodyEx(h.validator, h.put))
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
}

//	@Summary		Create a twitter post
//	@Description	Create a post. When a movie is referenced it must exist.
//	@Tags			twitters
//	@Accept			json
//	@Produce		json
//	@Param			twitter	body		TwitterRequest	true	"Post"
//	@Success		201		{object}	TwitterResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/twitters [post]
//
// Create a twitter post.
func (h *Handler) post(c *fiber.Ctx, req *TwitterRequest) error {
	if err := rest.CheckNewID(c, h.config, entityName, req.ID); err != nil {
		return err
	}

	post, err := h.twittersSvc.Create(c.Context(), req.toDraft())
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	rest.Alert(c, h.config, entityName, rest.ActionCreated, post.ID)
	c.Location(strings.TrimSuffix(c.Path(), "/") + "/" + strconv.FormatInt(post.ID, 10))

	return c.Status(fiber.StatusCreated).JSON(newTwitterResponse(post))
}

//	@Summary	List twitter posts
//	@Tags		twitters
//	@Produce	json
//	@Param		movieId	query		int			false	"Only posts about this movie"
//	@Param		page	query		int			false	"Zero-based page index"
//	@Param		size	query		int			false	"Page size"
//	@Param		sort	query		[]string	false	"Sort criteria: property[,asc|desc]"	collectionFormat(multi)
//	@Success	200		{array}		TwitterResponse
//	@Header		200		{integer}	X-Total-Count	"Total number of posts"
//	@Failure	400		{object}	fiberfx.ErrorResponse
//	@Router		/twitters [get]
//
// List twitter posts.
func (h *Handler) list(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	pageable, err := rest.ParsePageable(c, h.config)
	if err != nil {
		return err
	}

	page, err := h.twittersSvc.List(c.Context(), filter, pageable)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	if linkErr := rest.WritePage(c, pageable, page.Total); linkErr != nil {
		return linkErr
	}

	return c.JSON(lo.Map(page.Items, func(post twitters.Post, _ int) TwitterResponse {
		return newTwitterResponse(&post)
	}))
}

func parseFilter(c *fiber.Ctx) (twitters.Filter, error) {
	raw := c.Query("movieId")
	if raw == "" {
		return twitters.Filter{MovieID: nil}, nil
	}

	movieID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return twitters.Filter{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid movieId %q", raw))
	}

	return twitters.Filter{MovieID: &movieID}, nil
}

//	@Summary	Get a twitter post
//	@Tags		twitters
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	TwitterResponse
//	@Failure	404	{object}	fiberfx.ErrorResponse
//	@Router		/twitters/{id} [get]
//
// Get a twitter post.
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	post, err := h.twittersSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	return c.JSON(newTwitterResponse(post))
}

//	@Summary	Replace a twitter post
//	@Tags		twitters
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Post ID"
//	@Param		twitter	body		TwitterRequest	true	"Post"
//	@Success	200		{object}	TwitterResponse
//	@Failure	400		{object}	fiberfx.ErrorResponse
//	@Router		/twitters/{id} [put]
//
// Replace a twitter post.
func (h *Handler) put(c *fiber.Ctx, req *TwitterRequest) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	if checkErr := rest.CheckUpdateID(c, h.config, entityName, id, req.ID, h.twittersSvc.Exists); checkErr != nil {
		return checkErr
	}

	post, err := h.twittersSvc.Update(c.Context(), id, req.toDraft())
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rest.Alert(c, h.config, entityName, rest.ActionUpdated, post.ID)
	return c.JSON(newTwitterResponse(post))
}

//	@Summary	Partially update a twitter post
//	@Tags		twitters
//	@Accept		json,application/merge-patch+json
//	@Produce	json
//	@Param		id		path		int					true	"Post ID"
//	@Param		twitter	body		TwitterPatchRequest	true	"Fields to change"
//	@Success	200		{object}	TwitterResponse
//	@Failure	400		{object}	fiberfx.ErrorResponse
//	@Failure	404		{object}	fiberfx.ErrorResponse
//	@Router		/twitters/{id} [patch]
//
// Partially update a twitter post.
func (h *Handler) patch(c *fiber.Ctx, req *TwitterPatchRequest) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	if checkErr := rest.CheckUpdateID(c, h.config, entityName, id, req.ID, h.twittersSvc.Exists); checkErr != nil {
		return checkErr
	}

	post, err := h.twittersSvc.PartialUpdate(c.Context(), id, req.toPatch())
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rest.Alert(c, h.config, entityName, rest.ActionUpdated, post.ID)
	return c.JSON(newTwitterResponse(post))
}

//	@Summary	Delete a twitter post
//	@Tags		twitters
//	@Param		id	path	int	true	"Post ID"
//	@Success	204
//	@Router		/twitters/{id} [delete]
//
// Delete a twitter post.
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := rest.ParseID(c)
	if err != nil {
		return err
	}

	if delErr := h.twittersSvc.Delete(c.Context(), id); delErr != nil {
		return fmt.Errorf("failed to delete post: %w", delErr)
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
	case errors.Is(err, twitters.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, twitters.ErrInvalid),
		errors.Is(err, twitters.ErrInvalidMovie),
		errors.Is(err, storage.ErrInvalidSort):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
