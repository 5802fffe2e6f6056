package controller

import (
	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/serverutils"
	"github.com/harshil12345000/certifyr-sub001/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRecordController interface {
	RegisterRoutes(r fiber.Router)
	ImportDataset(ctx *fiber.Ctx) error
	GetAllDatasets(ctx *fiber.Ctx) error
	GetDatasetRecords(ctx *fiber.Ctx) error
	DeleteDataset(ctx *fiber.Ctx) error
}

type recordController struct {
	recordService service.IRecordService
}

func NewRecordController(recordService service.IRecordService) IRecordController {
	return &recordController{
		recordService: recordService,
	}
}

func (c *recordController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dataset/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAllDatasets)
	h.Get(":id/records", c.GetDatasetRecords)
	h.Use(serverutils.RequireAdmin)
	h.Post("", c.ImportDataset)
	h.Delete(":id", c.DeleteDataset)
}

func (c *recordController) ImportDataset(ctx *fiber.Ctx) error {
	userId := serverutils.AuthUserID(ctx)
	orgId := serverutils.AuthOrganizationID(ctx)

	var req dto.ImportDatasetRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	res, err := c.recordService.ImportDataset(ctx.Context(), userId, orgId, &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusCreated, "Dataset imported", res)
}

func (c *recordController) GetAllDatasets(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	res, err := c.recordService.GetAllDatasets(ctx.Context(), orgId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *recordController) GetDatasetRecords(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	datasetId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid dataset id")
	}

	res, err := c.recordService.GetDatasetRecords(ctx.Context(), orgId, datasetId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *recordController) DeleteDataset(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	datasetId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid dataset id")
	}

	if err := c.recordService.DeleteDataset(ctx.Context(), orgId, datasetId); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusOK, "Dataset deleted", nil)
}
