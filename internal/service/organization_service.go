package service

import (
	"context"
	"errors"

	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IOrganizationService interface {
	Get(ctx context.Context, orgId uuid.UUID) (*dto.OrganizationResponse, error)
	Update(ctx context.Context, orgId uuid.UUID, req *dto.UpdateOrganizationRequest) error
}

type organizationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewOrganizationService(uowFactory unitofwork.RepositoryFactory) IOrganizationService {
	return &organizationService{uowFactory: uowFactory}
}

func (s *organizationService) Get(ctx context.Context, orgId uuid.UUID) (*dto.OrganizationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	org, err := uow.OrganizationRepository().FindOne(ctx, specification.ByID{ID: orgId})
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, errors.New("organization not found")
	}
	return toOrganizationResponse(org), nil
}

// Update edits the org profile. The defaults set here feed straight
// into field reconciliation on the next assistant turn.
func (s *organizationService) Update(ctx context.Context, orgId uuid.UUID, req *dto.UpdateOrganizationRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	org, err := uow.OrganizationRepository().FindOne(ctx, specification.ByID{ID: orgId})
	if err != nil {
		return err
	}
	if org == nil {
		return errors.New("organization not found")
	}

	if req.Name != "" {
		org.Name = req.Name
	}
	if req.Address != "" {
		org.Address = req.Address
	}
	if req.Place != "" {
		org.Place = req.Place
	}
	if req.Email != "" {
		org.Email = req.Email
	}
	if req.Phone != "" {
		org.Phone = req.Phone
	}
	if req.SignatoryName != "" {
		org.SignatoryName = req.SignatoryName
	}
	if req.SignatoryDesignation != "" {
		org.SignatoryDesignation = req.SignatoryDesignation
	}
	if req.LogoURL != "" {
		logoURL := req.LogoURL
		org.LogoURL = &logoURL
	}

	return uow.OrganizationRepository().Update(ctx, org)
}

func toOrganizationResponse(org *entity.Organization) *dto.OrganizationResponse {
	resp := &dto.OrganizationResponse{
		Id:                   org.Id,
		Name:                 org.Name,
		Slug:                 org.Slug,
		Address:              org.Address,
		Place:                org.Place,
		Email:                org.Email,
		Phone:                org.Phone,
		SignatoryName:        org.SignatoryName,
		SignatoryDesignation: org.SignatoryDesignation,
		CreatedAt:            org.CreatedAt,
		UpdatedAt:            org.UpdatedAt,
	}
	if org.LogoURL != nil {
		resp.LogoURL = *org.LogoURL
	}
	return resp
}
