package controller

import (
	"errors"

	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/serverutils"
	"github.com/harshil12345000/certifyr-sub001/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("session", c.CreateSession)
	h.Get("sessions", c.GetAllSessions)
	h.Get("session/:id/history", c.GetChatHistory)
	h.Post("message", c.SendMessage)
	h.Delete("session", c.DeleteSession)
}

func (c *assistantController) CreateSession(ctx *fiber.Ctx) error {
	userId := serverutils.AuthUserID(ctx)
	orgId := serverutils.AuthOrganizationID(ctx)

	res, err := c.assistantService.CreateSession(ctx.Context(), userId, orgId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, res)
}

func (c *assistantController) GetAllSessions(ctx *fiber.Ctx) error {
	userId := serverutils.AuthUserID(ctx)

	res, err := c.assistantService.GetAllSessions(ctx.Context(), userId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *assistantController) GetChatHistory(ctx *fiber.Ctx) error {
	userId := serverutils.AuthUserID(ctx)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.assistantService.GetChatHistory(ctx.Context(), userId, sessionId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *assistantController) SendMessage(ctx *fiber.Ctx) error {
	userId := serverutils.AuthUserID(ctx)
	orgId := serverutils.AuthOrganizationID(ctx)

	var req dto.SendMessageRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	res, err := c.assistantService.SendMessage(ctx.Context(), userId, orgId, &req)
	if err != nil {
		var limitErr *dto.LimitExceededError
		if errors.As(err, &limitErr) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(dto.LimitExceededResponse{
				Success:   false,
				Code:      fiber.StatusTooManyRequests,
				Message:   limitErr.Error(),
				ErrorType: "limit_exceeded",
				Data: dto.LimitExceededData{
					Limit:      limitErr.Limit,
					Used:       limitErr.Used,
					ResetAfter: limitErr.ResetAfter,
				},
			})
		}
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *assistantController) DeleteSession(ctx *fiber.Ctx) error {
	userId := serverutils.AuthUserID(ctx)

	var req dto.DeleteSessionRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	if err := c.assistantService.DeleteSession(ctx.Context(), userId, &req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusOK, "Session deleted", nil)
}
