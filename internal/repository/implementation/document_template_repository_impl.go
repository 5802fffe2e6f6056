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

type DocumentTemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentTemplateMapper
}

func NewDocumentTemplateRepository(db *gorm.DB) contract.DocumentTemplateRepository {
	return &DocumentTemplateRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentTemplateMapper(),
	}
}

func (r *DocumentTemplateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentTemplateRepositoryImpl) Create(ctx context.Context, template *entity.DocumentTemplate) error {
	m := r.mapper.ToModel(template)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.ToEntity(m)
	return nil
}

func (r *DocumentTemplateRepositoryImpl) Update(ctx context.Context, template *entity.DocumentTemplate) error {
	m := r.mapper.ToModel(template)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.ToEntity(m)
	return nil
}

func (r *DocumentTemplateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.DocumentTemplate{}, id).Error
}

func (r *DocumentTemplateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentTemplate, error) {
	var m model.DocumentTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DocumentTemplateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentTemplate, error) {
	var models []*model.DocumentTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DocumentTemplateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DocumentTemplate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
