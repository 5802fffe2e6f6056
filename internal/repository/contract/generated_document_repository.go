package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
)

type GeneratedDocumentRepository interface {
	Create(ctx context.Context, doc *entity.GeneratedDocument) error
	Update(ctx context.Context, doc *entity.GeneratedDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
