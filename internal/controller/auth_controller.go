package controller

import (
	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/serverutils"
	"github.com/harshil12345000/certifyr-sub001/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	ForgotPassword(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("register", c.Register)
	h.Post("login", c.Login)
	h.Post("forgot-password", c.ForgotPassword)
	h.Post("reset-password", c.ResetPassword)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusCreated, "Registration successful", res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusUnauthorized, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *authController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	if err := c.authService.ForgotPassword(ctx.Context(), &req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusOK, "If the email exists, a reset link has been sent", nil)
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	if err := c.authService.ResetPassword(ctx.Context(), &req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusOK, "Password updated", nil)
}
