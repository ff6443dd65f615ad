package entities

import (
	"time"

	"github.com/google/uuid"
)

// Industry is a catalog entry the pre-application PDF is generated against.
// High-risk verticals get their own landing content; the PDF pipeline only
// needs the name for the template header.
type Industry struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
