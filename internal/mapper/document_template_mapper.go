package mapper

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/model"
)

type DocumentTemplateMapper struct{}

func NewDocumentTemplateMapper() *DocumentTemplateMapper {
	return &DocumentTemplateMapper{}
}

func (m *DocumentTemplateMapper) ToEntity(t *model.DocumentTemplate) *entity.DocumentTemplate {
	if t == nil {
		return nil
	}

	var deletedAt *time.Time
	if t.DeletedAt.Valid {
		dt := t.DeletedAt.Time
		deletedAt = &dt
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		ut := t.UpdatedAt
		updatedAt = &ut
	}

	return &entity.DocumentTemplate{
		Id:             t.Id,
		OrganizationId: t.OrganizationId,
		Name:           t.Name,
		Slug:           t.Slug,
		Keywords:       []string(t.Keywords),
		RequiredFields: []string(t.RequiredFields),
		Body:           t.Body,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      t.DeletedAt.Valid,
	}
}

func (m *DocumentTemplateMapper) ToModel(t *entity.DocumentTemplate) *model.DocumentTemplate {
	if t == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	} else if t.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.DocumentTemplate{
		Id:             t.Id,
		OrganizationId: t.OrganizationId,
		Name:           t.Name,
		Slug:           t.Slug,
		Keywords:       datatypes.JSONSlice[string](t.Keywords),
		RequiredFields: datatypes.JSONSlice[string](t.RequiredFields),
		Body:           t.Body,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *DocumentTemplateMapper) ToEntities(ts []*model.DocumentTemplate) []*entity.DocumentTemplate {
	entities := make([]*entity.DocumentTemplate, len(ts))
	for i, t := range ts {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
