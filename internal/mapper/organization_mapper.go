package mapper

import (
	"time"

	"gorm.io/gorm"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/model"
)

type OrganizationMapper struct{}

func NewOrganizationMapper() *OrganizationMapper {
	return &OrganizationMapper{}
}

func (m *OrganizationMapper) ToEntity(o *model.Organization) *entity.Organization {
	if o == nil {
		return nil
	}

	var deletedAt *time.Time
	if o.DeletedAt.Valid {
		t := o.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.Organization{
		Id:                   o.Id,
		Name:                 o.Name,
		Slug:                 o.Slug,
		Address:              o.Address,
		Place:                o.Place,
		Email:                o.Email,
		Phone:                o.Phone,
		SignatoryName:        o.SignatoryName,
		SignatoryDesignation: o.SignatoryDesignation,
		LogoURL:              o.LogoURL,
		OwnerId:              o.OwnerId,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            updatedAt,
		DeletedAt:            deletedAt,
		IsDeleted:            o.DeletedAt.Valid,
	}
}

func (m *OrganizationMapper) ToModel(o *entity.Organization) *model.Organization {
	if o == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if o.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *o.DeletedAt, Valid: true}
	} else if o.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.Organization{
		Id:                   o.Id,
		Name:                 o.Name,
		Slug:                 o.Slug,
		Address:              o.Address,
		Place:                o.Place,
		Email:                o.Email,
		Phone:                o.Phone,
		SignatoryName:        o.SignatoryName,
		SignatoryDesignation: o.SignatoryDesignation,
		LogoURL:              o.LogoURL,
		OwnerId:              o.OwnerId,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            updatedAt,
		DeletedAt:            deletedAt,
	}
}
