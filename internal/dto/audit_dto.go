package dto

// PublishAuditMessage is the internal queue payload consumed by the
// audit worker and persisted as a system log row.
type PublishAuditMessage struct {
	Level   string                 `json:"level"`
	Module  string                 `json:"module"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
