package events

import "time"

// Event codes published by the document pipeline.
const (
	TypeDocumentGenerated = "DOCUMENT_GENERATED"
	TypeDatasetImported   = "DATASET_IMPORTED"
	TypeUserRegistered    = "USER_REGISTERED"
)

// NewDocumentGeneratedEvent is emitted when a generation signal has been
// rendered and stored.
func NewDocumentGeneratedEvent(documentID, organizationID, userID, templateName, personName, verificationCode string) Event {
	return BaseEvent{
		Type: TypeDocumentGenerated,
		Data: map[string]interface{}{
			"user_id":           userID,
			"organization_id":   organizationID,
			"entity_type":       "document",
			"entity_id":         documentID,
			"template_name":     templateName,
			"person_name":       personName,
			"verification_code": verificationCode,
		},
		OccurredAt: time.Now(),
	}
}

// NewDatasetImportedEvent is emitted after a person dataset upload is
// persisted.
func NewDatasetImportedEvent(datasetID, organizationID, userID, name string, recordCount int) Event {
	return BaseEvent{
		Type: TypeDatasetImported,
		Data: map[string]interface{}{
			"user_id":         userID,
			"organization_id": organizationID,
			"entity_type":     "dataset",
			"entity_id":       datasetID,
			"dataset_name":    name,
			"record_count":    recordCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewUserRegisteredEvent is emitted when a new account signs up.
func NewUserRegisteredEvent(userID, email, fullName string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id":   userID,
			"email":     email,
			"full_name": fullName,
		},
		OccurredAt: time.Now(),
	}
}
