package assist

import (
	"github.com/harshil12345000/certifyr-sub001/pkg/assist/fields"
	"github.com/harshil12345000/certifyr-sub001/pkg/records"
)

// OutcomeType enumerates the structured results a turn can produce.
type OutcomeType string

const (
	OutcomeDisambiguate  OutcomeType = "disambiguate"
	OutcomeMissingFields OutcomeType = "missing_fields"
	OutcomeReady         OutcomeType = "ready"
	OutcomeMessage       OutcomeType = "message"
	OutcomeError         OutcomeType = "error"
)

// GenerationSignal is the terminal payload handed to document rendering
// once every required field is resolved.
type GenerationSignal struct {
	TemplateID string            `json:"templateId"`
	Fields     map[string]string `json:"fields"`
}

// Outcome is the structured result of one conversation turn. Exactly
// one of the payload groups is populated, selected by Type.
type Outcome struct {
	Type       OutcomeType        `json:"type"`
	Text       string             `json:"text,omitempty"`
	TemplateID string             `json:"templateId,omitempty"`
	Matches    []records.Summary  `json:"matches,omitempty"`
	Known      []fields.FieldInfo `json:"known,omitempty"`
	Missing    []string           `json:"missing,omitempty"`
	Flagged    []string           `json:"flagged,omitempty"`
	Signal     *GenerationSignal  `json:"signal,omitempty"`
}

// State names the orchestrator's position between turns.
type State string

const (
	StateAwaitingInput    State = "awaiting_input"
	StateDisambiguating   State = "disambiguating"
	StateCollectingFields State = "collecting_fields"
	StateReadyToGenerate  State = "ready_to_generate"
)

// Session is the conversation state the caller persists between turns.
// The orchestrator itself holds nothing; re-supplying the same Session
// and inputs replays the same turn.
type Session struct {
	State         State             `json:"state"`
	TemplateID    string            `json:"templateId,omitempty"`
	MatchedName   string            `json:"matchedName,omitempty"`
	MatchedID     string            `json:"matchedId,omitempty"`
	CandidateName string            `json:"candidateName,omitempty"`
	Collected     map[string]string `json:"collected,omitempty"`
	Missing       []string          `json:"missing,omitempty"`
}

// NewSession returns a session in the initial state.
func NewSession() *Session {
	return &Session{
		State:     StateAwaitingInput,
		Collected: make(map[string]string),
	}
}

// Reset clears person and field state for a fresh document request.
func (s *Session) Reset() {
	s.State = StateAwaitingInput
	s.TemplateID = ""
	s.MatchedName = ""
	s.MatchedID = ""
	s.CandidateName = ""
	s.Collected = make(map[string]string)
	s.Missing = nil
}
