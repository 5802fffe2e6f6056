package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id                        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationId            uuid.UUID `gorm:"type:uuid;not null;index"`
	Email                     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash              *string   `gorm:"type:varchar(255)"`
	FullName                  string    `gorm:"type:varchar(255);not null"`
	Role                      string    `gorm:"type:varchar(50);not null;default:'member'"`
	Status                    string    `gorm:"type:varchar(50);not null;default:'pending'"`
	AssistDailyUsage          int       `gorm:"default:0"`
	AssistDailyUsageLastReset time.Time
	AssistDailyLimitOverride  *int
	CreatedAt                 time.Time      `gorm:"autoCreateTime"`
	UpdatedAt                 time.Time      `gorm:"autoUpdateTime"`
	DeletedAt                 gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

type PasswordResetToken struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(255);not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
