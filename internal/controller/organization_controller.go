package controller

import (
	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/serverutils"
	"github.com/harshil12345000/certifyr-sub001/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrganizationController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type organizationController struct {
	organizationService service.IOrganizationService
}

func NewOrganizationController(organizationService service.IOrganizationService) IOrganizationController {
	return &organizationController{
		organizationService: organizationService,
	}
}

func (c *organizationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/organization/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Show)
	h.Use(serverutils.RequireAdmin)
	h.Put("", c.Update)
}

func (c *organizationController) Show(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	res, err := c.organizationService.Get(ctx.Context(), orgId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *organizationController) Update(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	var req dto.UpdateOrganizationRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	if err := c.organizationService.Update(ctx.Context(), orgId, &req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusOK, "Organization updated", nil)
}
