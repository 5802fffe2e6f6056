package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GeneratedDocument struct {
	Id               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId   uuid.UUID         `gorm:"type:uuid;not null;index"`
	TemplateId       uuid.UUID         `gorm:"type:uuid;not null;index"`
	ChatSessionId    *uuid.UUID        `gorm:"type:uuid;index"`
	IssuedBy         uuid.UUID         `gorm:"type:uuid;not null"`
	PersonName       string            `gorm:"type:varchar(255);index"`
	Fields           datatypes.JSONMap `gorm:"type:jsonb;not null"`
	Content          string            `gorm:"type:text;not null"`
	Status           string            `gorm:"type:varchar(20);not null;default:'issued'"`
	VerificationCode string            `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt        time.Time         `gorm:"autoCreateTime"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt    `gorm:"index"`
}

func (GeneratedDocument) TableName() string {
	return "generated_documents"
}
