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

type GeneratedDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GeneratedDocumentMapper
}

func NewGeneratedDocumentRepository(db *gorm.DB) contract.GeneratedDocumentRepository {
	return &GeneratedDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewGeneratedDocumentMapper(),
	}
}

func (r *GeneratedDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GeneratedDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.GeneratedDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *GeneratedDocumentRepositoryImpl) Update(ctx context.Context, doc *entity.GeneratedDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *GeneratedDocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GeneratedDocument{}, id).Error
}

func (r *GeneratedDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedDocument, error) {
	var m model.GeneratedDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GeneratedDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedDocument, error) {
	var models []*model.GeneratedDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GeneratedDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.GeneratedDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
