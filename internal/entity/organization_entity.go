package entity

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	Id                   uuid.UUID
	Name                 string
	Slug                 string
	Address              string
	Place                string
	Email                string
	Phone                string
	SignatoryName        string
	SignatoryDesignation string
	LogoURL              *string
	OwnerId              uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            *time.Time
	DeletedAt            *time.Time
	IsDeleted            bool
}
