package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"

	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	Email          string
	PasswordHash   *string
	FullName       string
	Role           UserRole
	Status         UserStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Assistant usage gating
	AssistDailyUsage          int
	AssistDailyUsageLastReset time.Time
	AssistDailyLimitOverride  *int // Nullable override
}

type PasswordResetToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
