package unitofwork

import (
	"context"

	"github.com/harshil12345000/certifyr-sub001/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	OrganizationRepository() contract.OrganizationRepository
	PersonDatasetRepository() contract.PersonDatasetRepository
	PersonRecordRepository() contract.PersonRecordRepository
	DocumentTemplateRepository() contract.DocumentTemplateRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	GeneratedDocumentRepository() contract.GeneratedDocumentRepository
	SystemLogRepository() contract.SystemLogRepository
}
