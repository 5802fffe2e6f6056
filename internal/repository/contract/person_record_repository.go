package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
)

type PersonDatasetRepository interface {
	Create(ctx context.Context, dataset *entity.PersonDataset) error
	Update(ctx context.Context, dataset *entity.PersonDataset) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PersonDataset, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PersonDataset, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type PersonRecordRepository interface {
	Create(ctx context.Context, record *entity.PersonRecord) error
	CreateBatch(ctx context.Context, records []*entity.PersonRecord) error
	Update(ctx context.Context, record *entity.PersonRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDatasetId(ctx context.Context, datasetId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PersonRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PersonRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
