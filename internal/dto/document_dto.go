package dto

import (
	"time"

	"github.com/google/uuid"
)

type DocumentResponse struct {
	Id               uuid.UUID         `json:"id"`
	TemplateName     string            `json:"template_name"`
	PersonName       string            `json:"person_name"`
	Fields           map[string]string `json:"fields"`
	Content          string            `json:"content"`
	Status           string            `json:"status"`
	VerificationCode string            `json:"verification_code"`
	IssuedAt         time.Time         `json:"issued_at"`
}

type VerifyDocumentResponse struct {
	Valid            bool      `json:"valid"`
	TemplateName     string    `json:"template_name,omitempty"`
	PersonName       string    `json:"person_name,omitempty"`
	OrganizationName string    `json:"organization_name,omitempty"`
	Status           string    `json:"status,omitempty"`
	IssuedAt         time.Time `json:"issued_at,omitempty"`
}

type RevokeDocumentRequest struct {
	Reason string `json:"reason,omitempty"`
}
