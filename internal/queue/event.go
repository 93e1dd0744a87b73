// Package queue defines message payloads exchanged over the message broker.
package queue

// ActionEvent is published whenever a dashboard user successfully
// creates or deletes a resource through the backend.  It mirrors the
// backend's own audit trail from the client side so downstream
// consumers can correlate UI activity without querying the backend.
type ActionEvent struct {
	Username     string `json:"username"`
	Action       string `json:"action"`        // CREATE | DELETE
	ResourceType string `json:"resource_type"` // APPOINTMENT | MEDICAL_RECORD | USER
	ResourceID   string `json:"resource_id"`
	OccurredAt   string `json:"occurred_at"`
}
