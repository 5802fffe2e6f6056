package controller

import (
	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/serverutils"
	"github.com/harshil12345000/certifyr-sub001/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	Usage(ctx *fiber.Ctx) error
	GetAllMembers(ctx *fiber.Ctx) error
	Invite(ctx *fiber.Ctx) error
	UpdateRole(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("me", c.Profile)
	h.Get("me/usage", c.Usage)
	h.Use(serverutils.RequireAdmin)
	h.Get("members", c.GetAllMembers)
	h.Post("invite", c.Invite)
	h.Put(":id/role", c.UpdateRole)
	h.Delete(":id", c.Remove)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	userId := serverutils.AuthUserID(ctx)

	res, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *userController) Usage(ctx *fiber.Ctx) error {
	userId := serverutils.AuthUserID(ctx)

	res, err := c.userService.GetUsage(ctx.Context(), userId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *userController) GetAllMembers(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	res, err := c.userService.GetAllMembers(ctx.Context(), orgId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *userController) Invite(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	var req dto.InviteUserRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	res, err := c.userService.Invite(ctx.Context(), orgId, &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusCreated, "Invitation sent", res)
}

func (c *userController) UpdateRole(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)

	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	var req dto.UpdateUserRoleRequest
	if !serverutils.ParseAndValidate(ctx, &req) {
		return nil
	}

	if err := c.userService.UpdateRole(ctx.Context(), orgId, userId, &req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusOK, "Role updated", nil)
}

func (c *userController) Remove(ctx *fiber.Ctx) error {
	orgId := serverutils.AuthOrganizationID(ctx)
	actorId := serverutils.AuthUserID(ctx)

	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	if err := c.userService.Remove(ctx.Context(), orgId, actorId, userId); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	return serverutils.SuccessMessageResponse(ctx, fiber.StatusOK, "Member removed", nil)
}
