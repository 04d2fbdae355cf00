package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var validate = validator.New()

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// ValidatePayload runs struct-tag validation on a request body. It returns
// an empty string when the payload is valid, otherwise a message naming
// the missing fields.
func ValidatePayload(payload any) string {
	err := validate.Struct(payload)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	if len(fields) == 1 {
		return fields[0] + " is required"
	}
	return strings.Join(fields, ", ") + " are required"
}
