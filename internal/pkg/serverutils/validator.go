package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ParseAndValidate binds the request body onto req and runs struct
// validation, writing a 400 response itself on failure. Returns false
// when the caller should stop.
func ParseAndValidate(ctx *fiber.Ctx, req interface{}) bool {
	if err := ctx.BodyParser(req); err != nil {
		_ = ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
		return false
	}

	if err := validate.Struct(req); err != nil {
		var details []string
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range vErrs {
				details = append(details, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
			}
		}
		_ = ValidationErrorResponse(ctx, details)
		return false
	}

	return true
}
