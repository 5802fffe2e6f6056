package service

import (
	"context"
	"errors"
	"time"

	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITemplateService interface {
	Create(ctx context.Context, orgId uuid.UUID, req *dto.CreateTemplateRequest) (*dto.CreateTemplateResponse, error)
	Update(ctx context.Context, orgId, templateId uuid.UUID, req *dto.UpdateTemplateRequest) error
	Delete(ctx context.Context, orgId, templateId uuid.UUID) error
	GetAll(ctx context.Context, orgId uuid.UUID) ([]*dto.TemplateResponse, error)
	GetById(ctx context.Context, orgId, templateId uuid.UUID) (*dto.TemplateResponse, error)
}

type templateService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTemplateService(uowFactory unitofwork.RepositoryFactory) ITemplateService {
	return &templateService{uowFactory: uowFactory}
}

func (s *templateService) Create(ctx context.Context, orgId uuid.UUID, req *dto.CreateTemplateRequest) (*dto.CreateTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug := slugify(req.Name)
	if existing, _ := uow.DocumentTemplateRepository().FindOne(ctx,
		specification.ByOrganizationID{OrganizationID: orgId},
		specification.BySlug{Slug: slug},
	); existing != nil {
		return nil, errors.New("a template with this name already exists")
	}

	template := &entity.DocumentTemplate{
		Id:             uuid.New(),
		OrganizationId: orgId,
		Name:           req.Name,
		Slug:           slug,
		Keywords:       req.Keywords,
		RequiredFields: req.RequiredFields,
		Body:           req.Body,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}

	if err := uow.DocumentTemplateRepository().Create(ctx, template); err != nil {
		return nil, err
	}

	return &dto.CreateTemplateResponse{Id: template.Id}, nil
}

func (s *templateService) Update(ctx context.Context, orgId, templateId uuid.UUID, req *dto.UpdateTemplateRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.DocumentTemplateRepository().FindOne(ctx,
		specification.ByID{ID: templateId},
		specification.ByOrganizationID{OrganizationID: orgId},
	)
	if err != nil {
		return err
	}
	if template == nil {
		return errors.New("template not found")
	}

	if req.Name != "" {
		template.Name = req.Name
		template.Slug = slugify(req.Name)
	}
	if req.Keywords != nil {
		template.Keywords = req.Keywords
	}
	if req.RequiredFields != nil {
		template.RequiredFields = req.RequiredFields
	}
	if req.Body != "" {
		template.Body = req.Body
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	return uow.DocumentTemplateRepository().Update(ctx, template)
}

func (s *templateService) Delete(ctx context.Context, orgId, templateId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.DocumentTemplateRepository().FindOne(ctx,
		specification.ByID{ID: templateId},
		specification.ByOrganizationID{OrganizationID: orgId},
	)
	if err != nil {
		return err
	}
	if template == nil {
		return errors.New("template not found")
	}

	return uow.DocumentTemplateRepository().Delete(ctx, templateId)
}

func (s *templateService) GetAll(ctx context.Context, orgId uuid.UUID) ([]*dto.TemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	templates, err := uow.DocumentTemplateRepository().FindAll(ctx,
		specification.ByOrganizationID{OrganizationID: orgId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		response = append(response, toTemplateResponse(t))
	}
	return response, nil
}

func (s *templateService) GetById(ctx context.Context, orgId, templateId uuid.UUID) (*dto.TemplateResponse, error) {
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
	return toTemplateResponse(template), nil
}

func toTemplateResponse(t *entity.DocumentTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		Id:             t.Id,
		Name:           t.Name,
		Keywords:       t.Keywords,
		RequiredFields: t.RequiredFields,
		Body:           t.Body,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
