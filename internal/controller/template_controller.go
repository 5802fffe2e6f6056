package controller

import (
	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/serverutils"
	"github.com/harshil12345000/certifyr-sub001/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITemplateController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type templateController struct {
	templateService service.ITemplateService
}

func NewTemplateController(templateService service.ITemplateService) ITemplateController {
	return &templateController{
		templateService: templateService,
	}
}

func (c *templateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/template/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Use(serverutils.RequireAdmin)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *templateController) Create(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	var req dto.CreateTemplateRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	res, err := c.templateService.Create(ctx.Context(), orgId, &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusCreated, "Template created", res)
}

func (c *templateController) Update(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	templateId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid template id")
	}

	var req dto.UpdateTemplateRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	if err := c.templateService.Update(ctx.Context(), orgId, templateId, &req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusOK, "Template updated", nil)
}

func (c *templateController) Delete(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	templateId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid template id")
	}

	if err := c.templateService.Delete(ctx.Context(), orgId, templateId); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusOK, "Template deleted", nil)
}

func (c *templateController) GetAll(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	res, err := c.templateService.GetAll(ctx.Context(), orgId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *templateController) Show(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	templateId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid template id")
	}

	res, err := c.templateService.GetById(ctx.Context(), orgId, templateId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}
