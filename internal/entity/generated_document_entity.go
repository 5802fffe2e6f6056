package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	DocumentStatusIssued  DocumentStatus = "issued"
	DocumentStatusRevoked DocumentStatus = "revoked"
)

type GeneratedDocument struct {
	Id               uuid.UUID
	OrganizationId   uuid.UUID
	TemplateId       uuid.UUID
	ChatSessionId    *uuid.UUID
	IssuedBy         uuid.UUID
	PersonName       string
	Fields           map[string]string
	Content          string
	Status           DocumentStatus
	VerificationCode string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	DeletedAt        *time.Time
	IsDeleted        bool
}
