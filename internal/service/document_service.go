package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/mailer"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/unitofwork"
	"github.com/harshil12345000/certifyr-sub001/pkg/events"
	pktNats "github.com/harshil12345000/certifyr-sub001/pkg/nats"
	"github.com/harshil12345000/certifyr-sub001/pkg/records"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Generate(ctx context.Context, userId, orgId uuid.UUID, sessionId *uuid.UUID, templateId uuid.UUID, fieldValues map[string]string) (*entity.GeneratedDocument, error)
	GetAll(ctx context.Context, orgId uuid.UUID) ([]*dto.DocumentResponse, error)
	GetById(ctx context.Context, orgId, documentId uuid.UUID) (*dto.DocumentResponse, error)
	Revoke(ctx context.Context, orgId, documentId uuid.UUID) error
	VerifyByCode(ctx context.Context, code string) (*dto.VerifyDocumentResponse, error)
}

type documentService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewDocumentService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher) IDocumentService {
	return &documentService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateVerificationCode() (string, error) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		if i == 5 {
			b.WriteByte('-')
		}
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// renderBody substitutes {{field}} placeholders. Unresolved placeholders
// are blanked rather than left in the output.
func renderBody(body string, fieldValues map[string]string) string {
	out := body
	for name, value := range fieldValues {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	for {
		start := strings.Index(out, "{{")
		if start < 0 {
			break
		}
		end := strings.Index(out[start:], "}}")
		if end < 0 {
			break
		}
		out = out[:start] + out[start+end+2:]
	}
	return out
}

func (s *documentService) Generate(ctx context.Context, userId, orgId uuid.UUID, sessionId *uuid.UUID, templateId uuid.UUID, fieldValues map[string]string) (*entity.GeneratedDocument, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.DocumentTemplateRepository().FindOne(ctx,
		specification.ByID{ID: templateId},
		specification.ByOrganizationID{OrganizationID: orgId},
	)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, errors.New("template not found")
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, err
	}

	personName := fieldValues["fullName"]
	if personName == "" {
		personName = records.Name(toRecord(fieldValues))
	}

	doc := &entity.GeneratedDocument{
		Id:               uuid.New(),
		OrganizationId:   orgId,
		TemplateId:       template.Id,
		ChatSessionId:    sessionId,
		IssuedBy:         userId,
		PersonName:       personName,
		Fields:           fieldValues,
		Content:          renderBody(template.Body, fieldValues),
		Status:           entity.DocumentStatusIssued,
		VerificationCode: code,
		CreatedAt:        time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.GeneratedDocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// PUBLISH EVENT
	if s.eventPublisher != nil {
		event := events.NewDocumentGeneratedEvent(doc.Id.String(), orgId.String(), userId.String(), template.Name, doc.PersonName, doc.VerificationCode)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish DOCUMENT_GENERATED event: %v\n", err)
		}
	}

	// Notify the issuer by email, off the request path
	if s.emailService != nil {
		issuer, findErr := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if findErr == nil && issuer != nil {
			go func(email string) {
				if emailErr := s.emailService.SendDocumentIssued(email, template.Name, doc.PersonName, doc.VerificationCode); emailErr != nil {
					fmt.Printf("Error sending document issued email: %v\n", emailErr)
				}
			}(issuer.Email)
		}
	}

	return doc, nil
}

func toRecord(fieldValues map[string]string) records.Record {
	r := make(records.Record, len(fieldValues))
	for k, v := range fieldValues {
		r[k] = v
	}
	return r
}

func (s *documentService) GetAll(ctx context.Context, orgId uuid.UUID) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.GeneratedDocumentRepository().FindAll(ctx,
		specification.ByOrganizationID{OrganizationID: orgId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	templateNames, err := s.templateNames(ctx, uow, orgId)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		response = append(response, s.toResponse(d, templateNames[d.TemplateId]))
	}
	return response, nil
}

func (s *documentService) GetById(ctx context.Context, orgId, documentId uuid.UUID) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.GeneratedDocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.ByOrganizationID{OrganizationID: orgId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("document not found")
	}

	template, err := uow.DocumentTemplateRepository().FindOne(ctx, specification.ByID{ID: doc.TemplateId})
	if err != nil {
		return nil, err
	}
	templateName := ""
	if template != nil {
		templateName = template.Name
	}

	return s.toResponse(doc, templateName), nil
}

func (s *documentService) Revoke(ctx context.Context, orgId, documentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.GeneratedDocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.ByOrganizationID{OrganizationID: orgId},
	)
	if err != nil {
		return err
	}
	if doc == nil {
		return errors.New("document not found")
	}
	if doc.Status == entity.DocumentStatusRevoked {
		return nil
	}

	doc.Status = entity.DocumentStatusRevoked
	return uow.GeneratedDocumentRepository().Update(ctx, doc)
}

// VerifyByCode is the public verification lookup. Revoked documents
// report their status but stay verifiable.
func (s *documentService) VerifyByCode(ctx context.Context, code string) (*dto.VerifyDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.GeneratedDocumentRepository().FindOne(ctx,
		specification.ByVerificationCode{Code: strings.ToUpper(strings.TrimSpace(code))},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return &dto.VerifyDocumentResponse{Valid: false}, nil
	}

	template, _ := uow.DocumentTemplateRepository().FindOne(ctx, specification.ByID{ID: doc.TemplateId})
	org, _ := uow.OrganizationRepository().FindOne(ctx, specification.ByID{ID: doc.OrganizationId})

	resp := &dto.VerifyDocumentResponse{
		Valid:      doc.Status == entity.DocumentStatusIssued,
		PersonName: doc.PersonName,
		Status:     string(doc.Status),
		IssuedAt:   doc.CreatedAt,
	}
	if template != nil {
		resp.TemplateName = template.Name
	}
	if org != nil {
		resp.OrganizationName = org.Name
	}
	return resp, nil
}

func (s *documentService) templateNames(ctx context.Context, uow unitofwork.UnitOfWork, orgId uuid.UUID) (map[uuid.UUID]string, error) {
	templates, err := uow.DocumentTemplateRepository().FindAll(ctx, specification.ByOrganizationID{OrganizationID: orgId})
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(templates))
	for _, t := range templates {
		names[t.Id] = t.Name
	}
	return names, nil
}

func (s *documentService) toResponse(d *entity.GeneratedDocument, templateName string) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:               d.Id,
		TemplateName:     templateName,
		PersonName:       d.PersonName,
		Fields:           d.Fields,
		Content:          d.Content,
		Status:           string(d.Status),
		VerificationCode: d.VerificationCode,
		IssuedAt:         d.CreatedAt,
	}
}
