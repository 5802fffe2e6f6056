package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/harshil12345000/certifyr-sub001/pkg/records"
)

// PersonDataset is one uploaded batch of person rows (an employee or
// student roster). Rows keep whatever column names the upload had.
type PersonDataset struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	Name           string
	FileName       string
	RecordCount    int
	UploadedBy     uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

// PersonRecord is one schema-less row of a dataset. Data is never
// mutated after import; resolution reads it as-is.
type PersonRecord struct {
	Id             uuid.UUID
	OrganizationId uuid.UUID
	DatasetId      uuid.UUID
	Data           records.Record
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
