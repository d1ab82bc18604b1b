package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError menerjemahkan validator.v10 errors ke 422 field map.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		fieldErrors[field] = append(fieldErrors[field], messageForTag(fe))
	}
	return JsonValidationError(c, fieldErrors)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "gte":
		return "Must be greater than or equal to " + fe.Param()
	case "min":
		return "Too short (min " + fe.Param() + ")"
	case "max":
		return "Too long (max " + fe.Param() + ")"
	default:
		return fe.Tag()
	}
}
