package controller

import (
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/serverutils"
	"github.com/harshil12345000/certifyr-sub001/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Revoke(ctx *fiber.Ctx) error
	Verify(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	// Public verification by code, no auth
	h.Get("verify/:code", c.Verify)

	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Use(serverutils.RequireAdmin)
	h.Put(":id/revoke", c.Revoke)
}

func (c *documentController) GetAll(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	res, err := c.documentService.GetAll(ctx.Context(), orgId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *documentController) Show(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	documentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid document id")
	}

	res, err := c.documentService.GetById(ctx.Context(), orgId, documentId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *documentController) Revoke(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	documentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid document id")
	}

	if err := c.documentService.Revoke(ctx.Context(), orgId, documentId); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusOK, "Document revoked", nil)
}

func (c *documentController) Verify(ctx *fiber.Ctx) error {
	code := ctx.Params("code")
	if code == "" {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "missing verification code")
	}

	res, err := c.documentService.VerifyByCode(ctx.Context(), code)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}
