package implementation

import (
	"context"

	"gorm.io/gorm"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/model"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/contract"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SystemLogRepositoryImpl) toModel(e *entity.SystemLog) *model.SystemLog {
	return &model.SystemLog{
		Id:        e.Id,
		Level:     e.Level,
		Module:    e.Module,
		Message:   e.Message,
		Details:   e.Details,
		CreatedAt: e.CreatedAt,
	}
}

func (r *SystemLogRepositoryImpl) toEntity(m *model.SystemLog) *entity.SystemLog {
	return &entity.SystemLog{
		Id:        m.Id,
		Level:     m.Level,
		Module:    m.Module,
		Message:   m.Message,
		Details:   m.Details,
		CreatedAt: m.CreatedAt,
	}
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, logEntry *entity.SystemLog) error {
	m := r.toModel(logEntry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*logEntry = *r.toEntity(m)
	return nil
}

func (r *SystemLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemLog, error) {
	var models []*model.SystemLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SystemLog, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.toEntity(m))
	}
	return entities, nil
}

func (r *SystemLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SystemLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
