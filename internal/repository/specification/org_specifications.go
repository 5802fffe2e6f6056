package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByOrganizationID struct {
	OrganizationID uuid.UUID
}

func (s ByOrganizationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("organization_id = ?", s.OrganizationID)
}

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type ByDatasetID struct {
	DatasetID uuid.UUID
}

func (s ByDatasetID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("dataset_id = ?", s.DatasetID)
}

type ByVerificationCode struct {
	Code string
}

func (s ByVerificationCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("verification_code = ?", s.Code)
}

type ActiveTemplates struct{}

func (s ActiveTemplates) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
