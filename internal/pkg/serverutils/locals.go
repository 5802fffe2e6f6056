package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AuthUserID reads the authenticated user id set by JwtMiddleware.
func AuthUserID(ctx *fiber.Ctx) uuid.UUID {
	idStr, _ := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(idStr)
	return id
}

// AuthOrganizationID reads the authenticated org id set by JwtMiddleware.
func AuthOrganizationID(ctx *fiber.Ctx) uuid.UUID {
	idStr, _ := ctx.Locals("organization_id").(string)
	id, _ := uuid.Parse(idStr)
	return id
}

// AuthRole reads the authenticated role set by JwtMiddleware.
func AuthRole(ctx *fiber.Ctx) string {
	role, _ := ctx.Locals("role").(string)
	return role
}

// RequireAdmin gates routes to org owners and admins.
func RequireAdmin(ctx *fiber.Ctx) error {
	role := AuthRole(ctx)
	if role != "owner" && role != "admin" {
		return ErrorResponse(ctx, fiber.StatusForbidden, "admin access required")
	}
	return ctx.Next()
}
