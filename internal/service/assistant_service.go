package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/harshil12345000/certifyr-sub001/internal/constant"
	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/memory"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/unitofwork"
	"github.com/harshil12345000/certifyr-sub001/pkg/assist"
	"github.com/harshil12345000/certifyr-sub001/pkg/assist/access"
	"github.com/harshil12345000/certifyr-sub001/pkg/assist/fields"
	"github.com/harshil12345000/certifyr-sub001/pkg/assist/response"
	"github.com/harshil12345000/certifyr-sub001/pkg/llm"
	"github.com/harshil12345000/certifyr-sub001/pkg/records"
	"github.com/harshil12345000/certifyr-sub001/pkg/store"

	"github.com/google/uuid"
)

// IAssistantService defines the document assistant interface
type IAssistantService interface {
	CreateSession(ctx context.Context, userId, orgId uuid.UUID) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	SendMessage(ctx context.Context, userId, orgId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) error
}

type assistantService struct {
	uowFactory      unitofwork.RepositoryFactory
	sessionRepo     *memory.SessionRepository
	documentService IDocumentService
	orchestrator    *assist.Orchestrator
	accessVerifier  *access.Verifier
	assistLogger    *log.Logger

	// Turns for the same session are serialized; the resolution core
	// itself is stateless per call.
	locks sync.Map
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	sessionRepo *memory.SessionRepository,
	documentService IDocumentService,
	accessVerifier *access.Verifier,
) IAssistantService {
	assistLogger := initAssistLogger()
	messenger := response.NewAdaptiveMessenger(llmProvider, assistLogger)

	return &assistantService{
		uowFactory:      uowFactory,
		sessionRepo:     sessionRepo,
		documentService: documentService,
		orchestrator:    assist.NewOrchestrator(messenger, assistLogger),
		accessVerifier:  accessVerifier,
		assistLogger:    assistLogger,
	}
}

func initAssistLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "assistant.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[ASSIST] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

func (as *assistantService) sessionLock(sessionId uuid.UUID) *sync.Mutex {
	mu, _ := as.locks.LoadOrStore(sessionId, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (as *assistantService) evictSessionLock(sessionId uuid.UUID) {
	as.locks.Delete(sessionId)
}

// CreateSession creates a new assistant session with a welcome message
func (as *assistantService) CreateSession(ctx context.Context, userId, orgId uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chatSession := entity.ChatSession{
		Id:             uuid.New(),
		UserId:         userId,
		OrganizationId: orgId,
		Title:          "Unnamed session",
		CreatedAt:      now,
	}

	welcome := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       constant.AssistantWelcomeMessage,
		OutcomeType:   string(assist.OutcomeMessage),
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &welcome); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	as.sessionRepo.Save(store.NewSession(chatSession.Id.String(), userId.String(), orgId.String()))

	return &dto.CreateSessionResponse{Id: chatSession.Id}, nil
}

// GetAllSessions retrieves all assistant sessions for a user
func (as *assistantService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, s := range chatSessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:        s.Id,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}

	return response, nil
}

// GetChatHistory retrieves the message history for a session
func (as *assistantService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.GetChatHistoryResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		resp = append(resp, &dto.GetChatHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			Outcome:   msg.OutcomeType,
			Payload:   msg.Payload,
			CreatedAt: msg.CreatedAt,
		})
	}

	return resp, nil
}

// SendMessage processes one user turn through the resolution pipeline
func (as *assistantService) SendMessage(ctx context.Context, userId, orgId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	mu := as.sessionLock(request.ChatSessionId)
	mu.Lock()
	defer mu.Unlock()

	uow := as.uowFactory.NewUnitOfWork(ctx)

	if err := as.accessVerifier.VerifyAccessAndLimits(ctx, uow, userId); err != nil {
		return nil, err
	}

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: request.ChatSessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if chatSession == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	env, err := as.snapshotEnv(ctx, uow, orgId)
	if err != nil {
		return nil, err
	}

	memSession, ok := as.sessionRepo.Get(request.ChatSessionId.String())
	if !ok {
		memSession = store.NewSession(request.ChatSessionId.String(), userId.String(), orgId.String())
	}

	priorMessages, err := uow.ChatMessageRepository().Count(ctx,
		specification.ByChatSessionID{ChatSessionID: request.ChatSessionId},
	)
	if err != nil {
		return nil, err
	}
	updateSessionTitle := priorMessages <= 1

	outcome := as.orchestrator.Step(ctx, memSession.Conversation, request.Message, env)

	// A ready outcome hands the signal straight to document rendering
	var documentId *uuid.UUID
	if outcome.Type == assist.OutcomeReady && outcome.Signal != nil {
		templateId, parseErr := uuid.Parse(outcome.Signal.TemplateID)
		if parseErr != nil {
			outcome = assist.Outcome{Type: assist.OutcomeError, Text: "I could not generate the document, the template reference is invalid."}
		} else {
			sessionId := request.ChatSessionId
			doc, genErr := as.documentService.Generate(ctx, userId, orgId, &sessionId, templateId, outcome.Signal.Fields)
			if genErr != nil {
				as.assistLogger.Printf("assist: document generation failed: %v", genErr)
				outcome = assist.Outcome{Type: assist.OutcomeError, Text: "Something went wrong while generating the document, please try again."}
			} else {
				documentId = &doc.Id
			}
		}
	}

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: request.ChatSessionId,
		Role:          constant.ChatMessageRoleUser,
		Content:       request.Message,
		CreatedAt:     now,
	}
	assistantMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: request.ChatSessionId,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       outcome.Text,
		OutcomeType:   string(outcome.Type),
		Payload:       outcomePayload(outcome, documentId),
		CreatedAt:     now.Add(1 * time.Millisecond),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}

	if updateSessionTitle {
		title := request.Message
		if len(title) > constant.SessionTitleMaxLen {
			title = title[:constant.SessionTitleMaxLen]
		}
		chatSession.Title = title
		if err := uow.ChatSessionRepository().Update(ctx, chatSession); err != nil {
			return nil, err
		}
	}

	if err := as.accessVerifier.IncrementUserUsage(ctx, uow, userId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	memSession.LastMessage = request.Message
	as.sessionRepo.Save(memSession)

	return buildSendMessageResponse(request.ChatSessionId, outcome, documentId), nil
}

// DeleteSession removes an assistant session and its messages
func (as *assistantService) DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) error {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: request.ChatSessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("session not found or access denied")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, request.ChatSessionId); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, request.ChatSessionId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	as.sessionRepo.Delete(request.ChatSessionId.String())
	as.evictSessionLock(request.ChatSessionId)
	return nil
}

// snapshotEnv loads the org's records, active templates and defaults
// for one turn. The orchestrator never sees the database.
func (as *assistantService) snapshotEnv(ctx context.Context, uow unitofwork.UnitOfWork, orgId uuid.UUID) (assist.Env, error) {
	org, err := uow.OrganizationRepository().FindOne(ctx, specification.ByID{ID: orgId})
	if err != nil {
		return assist.Env{}, err
	}
	if org == nil {
		return assist.Env{}, fmt.Errorf("organization not found")
	}

	personRecords, err := uow.PersonRecordRepository().FindAll(ctx,
		specification.ByOrganizationID{OrganizationID: orgId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return assist.Env{}, err
	}

	templates, err := uow.DocumentTemplateRepository().FindAll(ctx,
		specification.ByOrganizationID{OrganizationID: orgId},
		specification.ActiveTemplates{},
	)
	if err != nil {
		return assist.Env{}, err
	}

	env := assist.Env{
		Defaults: fields.Defaults{
			Name:                 org.Name,
			Address:              org.Address,
			Place:                org.Place,
			Email:                org.Email,
			Phone:                org.Phone,
			SignatoryName:        org.SignatoryName,
			SignatoryDesignation: org.SignatoryDesignation,
		},
		IssueDate: time.Now().Format("02/01/2006"),
	}

	env.Records = make([]records.Record, 0, len(personRecords))
	for _, r := range personRecords {
		env.Records = append(env.Records, r.Data)
	}

	env.Templates = make([]assist.Template, 0, len(templates))
	for _, t := range templates {
		env.Templates = append(env.Templates, assist.Template{
			ID:             t.Id.String(),
			Name:           t.Name,
			Keywords:       t.Keywords,
			RequiredFields: t.RequiredFields,
		})
	}

	return env, nil
}

func outcomePayload(outcome assist.Outcome, documentId *uuid.UUID) map[string]interface{} {
	payload := make(map[string]interface{})
	if outcome.TemplateID != "" {
		payload["template_id"] = outcome.TemplateID
	}
	if len(outcome.Matches) > 0 {
		candidates := make([]map[string]interface{}, 0, len(outcome.Matches))
		for _, m := range outcome.Matches {
			candidates = append(candidates, map[string]interface{}{
				"id":         m.ID,
				"name":       m.Name,
				"department": m.Department,
			})
		}
		payload["candidates"] = candidates
	}
	if len(outcome.Known) > 0 {
		known := make([]map[string]interface{}, 0, len(outcome.Known))
		for _, k := range outcome.Known {
			known = append(known, map[string]interface{}{
				"name":   k.Name,
				"label":  k.Label,
				"value":  k.Value,
				"source": string(k.Source),
			})
		}
		payload["known"] = known
	}
	if len(outcome.Missing) > 0 {
		payload["missing"] = outcome.Missing
	}
	if len(outcome.Flagged) > 0 {
		payload["flagged"] = outcome.Flagged
	}
	if documentId != nil {
		payload["document_id"] = documentId.String()
	}
	if len(payload) == 0 {
		return nil
	}
	return payload
}

func buildSendMessageResponse(sessionId uuid.UUID, outcome assist.Outcome, documentId *uuid.UUID) *dto.SendMessageResponse {
	resp := &dto.SendMessageResponse{
		ChatSessionId: sessionId,
		Outcome:       string(outcome.Type),
		Reply:         outcome.Text,
		TemplateId:    outcome.TemplateID,
		Missing:       outcome.Missing,
		Flagged:       outcome.Flagged,
		DocumentId:    documentId,
	}
	for _, m := range outcome.Matches {
		resp.Candidates = append(resp.Candidates, dto.CandidateDTO{
			Id:         m.ID,
			Name:       m.Name,
			Department: m.Department,
		})
	}
	for _, k := range outcome.Known {
		resp.Known = append(resp.Known, dto.KnownFieldDTO{
			Name:   k.Name,
			Label:  k.Label,
			Value:  k.Value,
			Source: string(k.Source),
		})
	}
	return resp
}
