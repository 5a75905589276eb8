package rest

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Alert reports a successful mutation through the X-{app}-Alert and
// X-{app}-Params headers.
func Alert(c *fiber.Ctx, cfg Config, entity, action string, id int64) {
	c.Set(fmt.Sprintf("X-%s-Alert", cfg.AppName), fmt.Sprintf("%s.%s.%s", cfg.AppName, entity, action))
	c.Set(fmt.Sprintf("X-%s-Params", cfg.AppName), strconv.FormatInt(id, 10))
}

// BadRequest reports a rejected request through the X-{app}-Error and
// X-{app}-Params headers and returns a 400 error carrying message.
func BadRequest(c *fiber.Ctx, cfg Config, entity, key, message string) error {
	c.Set(fmt.Sprintf("X-%s-Error", cfg.AppName), "error."+key)
	c.Set(fmt.Sprintf("X-%s-Params", cfg.AppName), entity)

	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s: %s", message, key))
}
