package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	Slug                 string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Address              string    `gorm:"type:text"`
	Place                string    `gorm:"type:varchar(255)"`
	Email                string    `gorm:"type:varchar(255)"`
	Phone                string    `gorm:"type:varchar(50)"`
	SignatoryName        string    `gorm:"type:varchar(255)"`
	SignatoryDesignation string    `gorm:"type:varchar(255)"`
	LogoURL              *string   `gorm:"type:text"`
	OwnerId              uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

func (Organization) TableName() string {
	return "organizations"
}
