package store

import (
	"github.com/harshil12345000/certifyr-sub001/pkg/assist"
)

// Session is the in-memory conversation state for one chat session.
// The resolution core is stateless per turn; this is where the caller
// keeps the state it re-supplies on the next turn.
type Session struct {
	ID             string          `json:"id"` // ChatSessionID
	UserID         string          `json:"user_id"`
	OrganizationID string          `json:"organization_id"`
	Conversation   *assist.Session `json:"conversation"`

	// Metadata for last interaction
	LastMessage string `json:"last_message"`
}

// NewSession returns a session with a fresh conversation state.
func NewSession(id, userID, orgID string) *Session {
	return &Session{
		ID:             id,
		UserID:         userID,
		OrganizationID: orgID,
		Conversation:   assist.NewSession(),
	}
}
