package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	Update(ctx context.Context, org *entity.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Organization, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Organization, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
