package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionLogEntry is the append-only audit record of a status transition.
// Entries are never mutated or deleted.
type ActionLogEntry struct {
	ID            uuid.UUID         `json:"id"`
	ApplicationID uuid.UUID         `json:"applicationId"`
	Action        ApplicationAction `json:"action"`
	Reason        string            `json:"reason"`
	ActionedBy    string            `json:"actionedBy"`
	CreatedAt     time.Time         `json:"createdAt"`
}
