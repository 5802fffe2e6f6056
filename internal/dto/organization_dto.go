package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateOrganizationRequest struct {
	Name                  string `json:"name,omitempty"`
	Address               string `json:"address,omitempty"`
	Place                 string `json:"place,omitempty"`
	Email                 string `json:"email,omitempty" validate:"omitempty,email"`
	Phone                 string `json:"phone,omitempty"`
	SignatoryName         string `json:"signatory_name,omitempty"`
	SignatoryDesignation  string `json:"signatory_designation,omitempty"`
	LogoURL               string `json:"logo_url,omitempty"`
}

type OrganizationResponse struct {
	Id                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Slug                 string     `json:"slug"`
	Address              string     `json:"address"`
	Place                string     `json:"place"`
	Email                string     `json:"email"`
	Phone                string     `json:"phone"`
	SignatoryName        string     `json:"signatory_name"`
	SignatoryDesignation string     `json:"signatory_designation"`
	LogoURL              string     `json:"logo_url"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at"`
}
