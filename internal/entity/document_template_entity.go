package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentTemplate struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	Name           string
	Slug           string
	Keywords       []string
	RequiredFields []string
	Body           string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
