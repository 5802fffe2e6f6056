package access

import (
	"context"
	"fmt"
	"time"

	"github.com/harshil12345000/certifyr-sub001/internal/dto"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/specification"
	"github.com/harshil12345000/certifyr-sub001/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Verifier handles assistant usage limits
type Verifier struct {
	defaultDailyLimit int
}

// NewVerifier creates a new access verifier. A negative default limit means unlimited.
func NewVerifier(defaultDailyLimit int) *Verifier {
	return &Verifier{defaultDailyLimit: defaultDailyLimit}
}

// VerifyAccessAndLimits checks the user's daily assistant quota.
// The usage counter resets on the first call of each calendar day.
func (v *Verifier) VerifyAccessAndLimits(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) error {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return fmt.Errorf("user not found")
	}

	limit := v.defaultDailyLimit
	if user.AssistDailyLimitOverride != nil {
		limit = *user.AssistDailyLimitOverride
	}

	now := time.Now()
	// Check if the last reset was on a different calendar day
	if now.Year() != user.AssistDailyUsageLastReset.Year() || now.Month() != user.AssistDailyUsageLastReset.Month() || now.Day() != user.AssistDailyUsageLastReset.Day() {
		user.AssistDailyUsage = 0
		user.AssistDailyUsageLastReset = now
		if err := uow.UserRepository().UpdateAssistUsage(ctx, user.Id, 0, now); err != nil {
			return err
		}
	}

	// Limit < 0 means unlimited
	if limit >= 0 && user.AssistDailyUsage >= limit {
		resetTime := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		return &dto.LimitExceededError{
			Limit:      limit,
			Used:       user.AssistDailyUsage,
			ResetAfter: resetTime,
		}
	}

	return nil
}

// IncrementUserUsage increments the daily assistant usage counter
func (v *Verifier) IncrementUserUsage(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) error {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return fmt.Errorf("user not found")
	}

	return uow.UserRepository().UpdateAssistUsage(ctx, user.Id, user.AssistDailyUsage+1, user.AssistDailyUsageLastReset)
}

// Usage reports the user's current quota state.
func (v *Verifier) Usage(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*dto.UsageResponse, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return nil, fmt.Errorf("user not found")
	}

	limit := v.defaultDailyLimit
	if user.AssistDailyLimitOverride != nil {
		limit = *user.AssistDailyLimitOverride
	}

	now := time.Now()
	used := user.AssistDailyUsage
	if now.Year() != user.AssistDailyUsageLastReset.Year() || now.Month() != user.AssistDailyUsageLastReset.Month() || now.Day() != user.AssistDailyUsageLastReset.Day() {
		used = 0
	}

	return &dto.UsageResponse{
		DailyLimit: limit,
		Used:       used,
		ResetAfter: time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location()),
	}, nil
}
