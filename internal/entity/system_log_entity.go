package entity

import (
	"time"

	"github.com/google/uuid"
)

// SystemLog is one persisted audit row, written asynchronously by the
// audit consumer.
type SystemLog struct {
	Id        uuid.UUID
	Level     string
	Module    *string
	Message   string
	Details   *string
	CreatedAt time.Time
}
