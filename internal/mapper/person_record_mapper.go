package mapper

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/model"
	"github.com/harshil12345000/certifyr-sub001/pkg/records"
)

type PersonRecordMapper struct{}

func NewPersonRecordMapper() *PersonRecordMapper {
	return &PersonRecordMapper{}
}

func (m *PersonRecordMapper) ToEntity(r *model.PersonRecord) *entity.PersonRecord {
	if r == nil {
		return nil
	}

	var deletedAt *time.Time
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.PersonRecord{
		Id:             r.Id,
		OrganizationId: r.OrganizationId,
		DatasetId:      r.DatasetId,
		Data:           records.Record(r.Data),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      r.DeletedAt.Valid,
	}
}

func (m *PersonRecordMapper) ToModel(r *entity.PersonRecord) *model.PersonRecord {
	if r == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if r.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *r.DeletedAt, Valid: true}
	} else if r.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.PersonRecord{
		Id:             r.Id,
		OrganizationId: r.OrganizationId,
		DatasetId:      r.DatasetId,
		Data:           datatypes.JSONMap(r.Data),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *PersonRecordMapper) ToEntities(recs []*model.PersonRecord) []*entity.PersonRecord {
	entities := make([]*entity.PersonRecord, len(recs))
	for i, r := range recs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *PersonRecordMapper) ToModels(recs []*entity.PersonRecord) []*model.PersonRecord {
	models := make([]*model.PersonRecord, len(recs))
	for i, r := range recs {
		models[i] = m.ToModel(r)
	}
	return models
}

type PersonDatasetMapper struct{}

func NewPersonDatasetMapper() *PersonDatasetMapper {
	return &PersonDatasetMapper{}
}

func (m *PersonDatasetMapper) ToEntity(d *model.PersonDataset) *entity.PersonDataset {
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

	return &entity.PersonDataset{
		Id:             d.Id,
		OrganizationId: d.OrganizationId,
		Name:           d.Name,
		FileName:       d.FileName,
		RecordCount:    d.RecordCount,
		UploadedBy:     d.UploadedBy,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      d.DeletedAt.Valid,
	}
}

func (m *PersonDatasetMapper) ToModel(d *entity.PersonDataset) *model.PersonDataset {
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

	return &model.PersonDataset{
		Id:             d.Id,
		OrganizationId: d.OrganizationId,
		Name:           d.Name,
		FileName:       d.FileName,
		RecordCount:    d.RecordCount,
		UploadedBy:     d.UploadedBy,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *PersonDatasetMapper) ToEntities(ds []*model.PersonDataset) []*entity.PersonDataset {
	entities := make([]*entity.PersonDataset, len(ds))
	for i, d := range ds {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
