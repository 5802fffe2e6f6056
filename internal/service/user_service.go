package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/entity"
	"github.com/harshil12345000/certifyr-sub001/internal/pkg/mailer"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/unitofwork"
	"github.com/harshil12345000/certifyr-sub001/pkg/assist/access"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	GetUsage(ctx context.Context, userId uuid.UUID) (*dto.UsageResponse, error)
	GetAllMembers(ctx context.Context, orgId uuid.UUID) ([]*dto.UserResponse, error)
	Invite(ctx context.Context, orgId uuid.UUID, req *dto.InviteUserRequest) (*dto.UserResponse, error)
	UpdateRole(ctx context.Context, orgId, userId uuid.UUID, req *dto.UpdateUserRoleRequest) error
	Remove(ctx context.Context, orgId, actorId, userId uuid.UUID) error
}

type userService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	accessVerifier *access.Verifier
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, accessVerifier *access.Verifier) IUserService {
	return &userService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		accessVerifier: accessVerifier,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return toUserResponse(user), nil
}

func (s *userService) GetUsage(ctx context.Context, userId uuid.UUID) (*dto.UsageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.accessVerifier.Usage(ctx, uow, userId)
}

func (s *userService) GetAllMembers(ctx context.Context, orgId uuid.UUID) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx,
		specification.ByOrganizationID{OrganizationID: orgId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	return response, nil
}

// Invite creates a pending member. The invitee sets a password through
// the reset flow, so the invite email carries a reset token.
func (s *userService) Invite(ctx context.Context, orgId uuid.UUID, req *dto.InviteUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	now := time.Now()
	user := &entity.User{
		Id:                        uuid.New(),
		OrganizationId:            orgId,
		Email:                     req.Email,
		FullName:                  req.Name,
		Role:                      entity.UserRole(req.Role),
		Status:                    entity.UserStatusPending,
		CreatedAt:                 now,
		UpdatedAt:                 now,
		AssistDailyUsageLastReset: now,
	}

	token := uuid.New().String()
	resetToken := &entity.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     token,
		ExpiresAt: now.Add(72 * time.Hour),
		CreatedAt: now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().CreatePasswordResetToken(ctx, resetToken); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendResetToken(user.Email, token); emailErr != nil {
			fmt.Printf("Error sending invite email: %v\n", emailErr)
		}
	}()

	return toUserResponse(user), nil
}

func (s *userService) UpdateRole(ctx context.Context, orgId, userId uuid.UUID, req *dto.UpdateUserRoleRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByID{ID: userId},
		specification.ByOrganizationID{OrganizationID: orgId},
	)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if user.Role == entity.UserRoleOwner {
		return errors.New("owner role cannot be changed")
	}

	user.Role = entity.UserRole(req.Role)
	return uow.UserRepository().Update(ctx, user)
}

func (s *userService) Remove(ctx context.Context, orgId, actorId, userId uuid.UUID) error {
	if actorId == userId {
		return errors.New("cannot remove yourself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByID{ID: userId},
		specification.ByOrganizationID{OrganizationID: orgId},
	)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if user.Role == entity.UserRoleOwner {
		return errors.New("owner cannot be removed")
	}

	return uow.UserRepository().Delete(ctx, userId)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		Id:        u.Id,
		Name:      u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
	if !u.UpdatedAt.IsZero() {
		updatedAt := u.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
