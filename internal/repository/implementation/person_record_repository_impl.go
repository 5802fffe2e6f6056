package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/mapper"
	"github.com/harshil12345000/certifyr-sub001/internal/model"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/contract"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
)

type PersonDatasetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PersonDatasetMapper
}

func NewPersonDatasetRepository(db *gorm.DB) contract.PersonDatasetRepository {
	return &PersonDatasetRepositoryImpl{
		db:     db,
		mapper: mapper.NewPersonDatasetMapper(),
	}
}

func (r *PersonDatasetRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PersonDatasetRepositoryImpl) Create(ctx context.Context, dataset *entity.PersonDataset) error {
	m := r.mapper.ToModel(dataset)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*dataset = *r.mapper.ToEntity(m)
	return nil
}

func (r *PersonDatasetRepositoryImpl) Update(ctx context.Context, dataset *entity.PersonDataset) error {
	m := r.mapper.ToModel(dataset)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*dataset = *r.mapper.ToEntity(m)
	return nil
}

func (r *PersonDatasetRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PersonDataset{}, id).Error
}

func (r *PersonDatasetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PersonDataset, error) {
	var m model.PersonDataset
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PersonDatasetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PersonDataset, error) {
	var models []*model.PersonDataset
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PersonDatasetRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PersonDataset{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type PersonRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PersonRecordMapper
}

func NewPersonRecordRepository(db *gorm.DB) contract.PersonRecordRepository {
	return &PersonRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewPersonRecordMapper(),
	}
}

func (r *PersonRecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PersonRecordRepositoryImpl) Create(ctx context.Context, record *entity.PersonRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *PersonRecordRepositoryImpl) CreateBatch(ctx context.Context, records []*entity.PersonRecord) error {
	if len(records) == 0 {
		return nil
	}
	models := r.mapper.ToModels(records)
	if err := r.db.WithContext(ctx).CreateInBatches(models, 500).Error; err != nil {
		return err
	}
	for i, m := range models {
		*records[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *PersonRecordRepositoryImpl) Update(ctx context.Context, record *entity.PersonRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *PersonRecordRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PersonRecord{}, id).Error
}

func (r *PersonRecordRepositoryImpl) DeleteByDatasetId(ctx context.Context, datasetId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("dataset_id = ?", datasetId).Delete(&model.PersonRecord{}).Error
}

func (r *PersonRecordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PersonRecord, error) {
	var m model.PersonRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PersonRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PersonRecord, error) {
	var models []*model.PersonRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PersonRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PersonRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
