package dto

import (
	"time"

	"github.com/google/uuid"
)

type ImportDatasetRequest struct {
	Name    string              `json:"name" validate:"required,min=2"`
	Records []map[string]string `json:"records" validate:"required,min=1,dive,required"`
}

type ImportDatasetResponse struct {
	Id          uuid.UUID `json:"id"`
	RecordCount int       `json:"record_count"`
	SkippedRows int       `json:"skipped_rows"`
}

type DatasetResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	RecordCount int        `json:"record_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type PersonRecordResponse struct {
	Id   uuid.UUID         `json:"id"`
	Data map[string]string `json:"data"`
}
