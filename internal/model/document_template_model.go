package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentTemplate struct {
	Id             uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name           string                      `gorm:"type:varchar(255);not null"`
	Slug           string                      `gorm:"type:varchar(100);not null;index"`
	Keywords       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	RequiredFields datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Body           string                      `gorm:"type:text"`
	IsActive       bool                        `gorm:"default:true"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt              `gorm:"index"`
}

func (DocumentTemplate) TableName() string {
	return "document_templates"
}
