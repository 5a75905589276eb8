package rest

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	KeyIDExists   = "idexists"
	KeyIDNull     = "idnull"
	KeyIDInvalid  = "idinvalid"
	KeyIDNotFound = "idnotfound"
)

// ParseID reads the :id path parameter.
func ParseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid id %q", c.Params("id")))
	}

	return id, nil
}

// CheckNewID rejects create requests whose body already carries an id.
func CheckNewID(c *fiber.Ctx, cfg Config, entity string, bodyID *int64) error {
	if bodyID != nil {
		return BadRequest(c, cfg, entity, KeyIDExists, fmt.Sprintf("A new %s cannot already have an ID", entity))
	}

	return nil
}

// CheckUpdateID validates the body id of an update against the path id and
// the stored records.
func CheckUpdateID(
	c *fiber.Ctx,
	cfg Config,
	entity string,
	pathID int64,
	bodyID *int64,
	exists func(context.Context, int64) (bool, error),
) error {
	switch {
	case bodyID == nil:
		return BadRequest(c, cfg, entity, KeyIDNull, "Invalid id")
	case *bodyID != pathID:
		return BadRequest(c, cfg, entity, KeyIDInvalid, "Invalid ID")
	}

	found, err := exists(c.Context(), pathID)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", entity, err)
	}
	if !found {
		return BadRequest(c, cfg, entity, KeyIDNotFound, "Entity not found")
	}

	return nil
}
