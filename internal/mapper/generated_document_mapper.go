package mapper

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/model"
)

type GeneratedDocumentMapper struct{}

func NewGeneratedDocumentMapper() *GeneratedDocumentMapper {
	return &GeneratedDocumentMapper{}
}

func (m *GeneratedDocumentMapper) ToEntity(d *model.GeneratedDocument) *entity.GeneratedDocument {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	fields := make(map[string]string, len(d.Fields))
	for k, v := range d.Fields {
		if s, ok := v.(string); ok {
			fields[k] = s
		}
	}

	return &entity.GeneratedDocument{
		Id:               d.Id,
		OrganizationId:   d.OrganizationId,
		TemplateId:       d.TemplateId,
		ChatSessionId:    d.ChatSessionId,
		IssuedBy:         d.IssuedBy,
		PersonName:       d.PersonName,
		Fields:           fields,
		Content:          d.Content,
		Status:           entity.DocumentStatus(d.Status),
		VerificationCode: d.VerificationCode,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
		IsDeleted:        d.DeletedAt.Valid,
	}
}

func (m *GeneratedDocumentMapper) ToModel(d *entity.GeneratedDocument) *model.GeneratedDocument {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	fields := make(datatypes.JSONMap, len(d.Fields))
	for k, v := range d.Fields {
		fields[k] = v
	}

	return &model.GeneratedDocument{
		Id:               d.Id,
		OrganizationId:   d.OrganizationId,
		TemplateId:       d.TemplateId,
		ChatSessionId:    d.ChatSessionId,
		IssuedBy:         d.IssuedBy,
		PersonName:       d.PersonName,
		Fields:           fields,
		Content:          d.Content,
		Status:           string(d.Status),
		VerificationCode: d.VerificationCode,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
	}
}

func (m *GeneratedDocumentMapper) ToEntities(docs []*model.GeneratedDocument) []*entity.GeneratedDocument {
	entities := make([]*entity.GeneratedDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
