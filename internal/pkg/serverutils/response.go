package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the standard API envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func SuccessResponse(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func SuccessMessageResponse(ctx *fiber.Ctx, status int, message string, data interface{}) error {
	return ctx.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(Response{
		Success: false,
		Message: message,
	})
}

func ValidationErrorResponse(ctx *fiber.Ctx, errs interface{}) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(Response{
		Success: false,
		Message: "validation failed",
		Errors:  errs,
	})
}
