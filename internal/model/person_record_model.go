package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PersonDataset struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	FileName       string    `gorm:"type:varchar(255)"`
	RecordCount    int       `gorm:"default:0"`
	UploadedBy     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (PersonDataset) TableName() string {
	return "person_datasets"
}

// PersonRecord keeps the uploaded row as-is in a jsonb column; column
// names vary per upload and are resolved through alias lookup at read
// time.
type PersonRecord struct {
	Id             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId uuid.UUID         `gorm:"type:uuid;not null;index"`
	DatasetId      uuid.UUID         `gorm:"type:uuid;not null;index"`
	Data           datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time         `gorm:"autoCreateTime"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt    `gorm:"index"`
}

func (PersonRecord) TableName() string {
	return "person_records"
}
