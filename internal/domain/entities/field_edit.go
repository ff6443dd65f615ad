package entities

import (
	"time"

	"github.com/google/uuid"
)

// FieldEditEntry is the generic append-only audit row written on every
// inline field edit, regardless of entity type.
type FieldEditEntry struct {
	ID        uuid.UUID `json:"id"`
	TableName string    `json:"tableName"`
	RecordID  string    `json:"recordId"`
	FieldName string    `json:"fieldName"`
	OldValue  string    `json:"oldValue"`
	NewValue  string    `json:"newValue"`
	ChangedBy string    `json:"changedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// FieldEditInput represents an inline-edit request from the admin UI
type FieldEditInput struct {
	TableName string `json:"tableName" binding:"required"`
	RecordID  string `json:"recordId" binding:"required"`
	FieldName string `json:"fieldName" binding:"required"`
	NewValue  string `json:"newValue"`
	UserID    string `json:"userId"`
}

// editableFields is the closed allowlist of inline-editable columns per
// table. Anything outside it is rejected at the boundary.
var editableFields = map[string]map[string]struct{}{
	"merchant_applications": {
		"merchant_name":  {},
		"merchant_email": {},
	},
}

// FieldEditable reports whether a table/field pair may be edited inline.
func FieldEditable(tableName, fieldName string) bool {
	fields, ok := editableFields[tableName]
	if !ok {
		return false
	}
	_, ok = fields[fieldName]
	return ok
}
