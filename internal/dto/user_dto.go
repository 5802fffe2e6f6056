package dto

import (
	"time"

	"github.com/google/uuid"
)

type InviteUserRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin member"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member"`
}

type UserResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UsageResponse struct {
	DailyLimit int       `json:"daily_limit"`
	Used       int       `json:"used"`
	ResetAfter time.Time `json:"reset_after"`
}
