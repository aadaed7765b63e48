package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError maps validator.v10 errors to the field->messages envelope.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string][]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = append(errorsMap[fieldErr.Field()], fieldErr.Tag())
	}
	return JsonValidationError(c, errorsMap)
}
