package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
)

type DocumentTemplateRepository interface {
	Create(ctx context.Context, template *entity.DocumentTemplate) error
	Update(ctx context.Context, template *entity.DocumentTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentTemplate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentTemplate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
