package contract

import (
	"context"

	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
)

type SystemLogRepository interface {
	Create(ctx context.Context, logEntry *entity.SystemLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
