// Package validation decodes and validates JSON request bodies for fiber handlers.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validatable is implemented by request types with checks that struct tags
// cannot express.
type Validatable interface {
	Validate() error
}

// DecorateWithBodyEx parses the body into T, validates it with v and the
// optional Validatable hook, then calls h. Malformed or invalid bodies are
// rejected with 400.
func DecorateWithBodyEx[T any](v *validator.Validate, h func(*fiber.Ctx, *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)

		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to parse request: %s", err.Error()))
		}

		if err := v.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, describe(err))
		}

		if validatable, ok := any(req).(Validatable); ok {
			if err := validatable.Validate(); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}

		return h(c, req)
	}
}

func describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	first := validationErrs[0]
	msg := fmt.Sprintf("field %s failed on %q", first.Namespace(), first.Tag())
	if len(validationErrs) > 1 {
		msg += fmt.Sprintf(" and %d more", len(validationErrs)-1)
	}

	return msg
}
