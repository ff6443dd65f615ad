package entities

import (
	"time"

	"github.com/google/uuid"
)

// MaxDocumentBytes is the upload size ceiling (10 MiB).
const MaxDocumentBytes = 10 * 1024 * 1024

// DocumentType is the enumerated category of an uploaded file
type DocumentType string

const (
	DocumentTypeBankStatement       DocumentType = "bank_statement"
	DocumentTypeVoidedCheck         DocumentType = "voided_check"
	DocumentTypeBusinessLicense     DocumentType = "business_license"
	DocumentTypeDriversLicense      DocumentType = "drivers_license"
	DocumentTypeProcessingStatement DocumentType = "processing_statement"
	DocumentTypeOther               DocumentType = "other"
)

// ParseDocumentType maps a raw category string onto the closed enum.
func ParseDocumentType(raw string) (DocumentType, bool) {
	switch DocumentType(raw) {
	case DocumentTypeBankStatement:
		return DocumentTypeBankStatement, true
	case DocumentTypeVoidedCheck:
		return DocumentTypeVoidedCheck, true
	case DocumentTypeBusinessLicense:
		return DocumentTypeBusinessLicense, true
	case DocumentTypeDriversLicense:
		return DocumentTypeDriversLicense, true
	case DocumentTypeProcessingStatement:
		return DocumentTypeProcessingStatement, true
	case DocumentTypeOther:
		return DocumentTypeOther, true
	}
	return "", false
}

// EntityType identifies which kind of record owns an uploaded file
type EntityType string

const (
	EntityTypeMerchant EntityType = "merchant"
	EntityTypeAgent    EntityType = "agent"
)

// ParseEntityType maps a raw owner kind onto the closed enum.
func ParseEntityType(raw string) (EntityType, bool) {
	switch EntityType(raw) {
	case EntityTypeMerchant:
		return EntityTypeMerchant, true
	case EntityTypeAgent:
		return EntityTypeAgent, true
	}
	return "", false
}

// allowedMIMETypes is the closed set of accepted upload content types.
var allowedMIMETypes = map[string]struct{}{
	"application/pdf":    {},
	"image/jpeg":         {},
	"image/jpg":          {},
	"image/png":          {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// MIMEAllowed reports whether a content type is accepted for upload.
func MIMEAllowed(mime string) bool {
	_, ok := allowedMIMETypes[mime]
	return ok
}

// MerchantDocument represents a file associated with one application.
// Immutable once created; a re-upload appends a new row.
type MerchantDocument struct {
	ID             uuid.UUID    `json:"id"`
	MerchantID     uuid.UUID    `json:"merchantId"`
	DocumentType   DocumentType `json:"documentType"`
	FileName       string       `json:"fileName"`
	FilePath       string       `json:"filePath"`
	FileType       string       `json:"fileType"`
	FileSize       int64        `json:"fileSize"`
	UploadedBy     string       `json:"uploadedBy"`
	EffectiveDate  *time.Time   `json:"effectiveDate,omitempty"`
	ExpirationDate *time.Time   `json:"expirationDate,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// UploadDocumentInput carries a validated upload into the document usecase
type UploadDocumentInput struct {
	EntityID       uuid.UUID
	EntityType     EntityType
	DocumentType   DocumentType
	FileName       string
	ContentType    string
	Size           int64
	UploadedBy     string
	EffectiveDate  *time.Time
	ExpirationDate *time.Time
}

// UploadDocumentResult is the stored location of an accepted upload
type UploadDocumentResult struct {
	Document  *MerchantDocument `json:"metadata"`
	FilePath  string            `json:"filePath"`
	PublicURL string            `json:"publicUrl"`
}
