package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name           string   `json:"name" validate:"required,min=2"`
	Keywords       []string `json:"keywords" validate:"required,min=1"`
	RequiredFields []string `json:"required_fields" validate:"required,min=1"`
	Body           string   `json:"body" validate:"required"`
}

type CreateTemplateResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateTemplateRequest struct {
	Name           string   `json:"name,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	RequiredFields []string `json:"required_fields,omitempty"`
	Body           string   `json:"body,omitempty"`
	IsActive       *bool    `json:"is_active,omitempty"`
}

type TemplateResponse struct {
	Id             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Keywords       []string   `json:"keywords"`
	RequiredFields []string   `json:"required_fields"`
	Body           string     `json:"body"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}
