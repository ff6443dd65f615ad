package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApplicationStatus represents the lifecycle state of a merchant application
type ApplicationStatus string

const (
	ApplicationStatusIncomplete ApplicationStatus = "incomplete"
	ApplicationStatusSubmitted  ApplicationStatus = "submitted"
	ApplicationStatusDeclined   ApplicationStatus = "declined"
	ApplicationStatusRemoved    ApplicationStatus = "removed"
)

// IsTerminal reports whether the status admits no further transitions.
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case ApplicationStatusDeclined, ApplicationStatusRemoved:
		return true
	case ApplicationStatusIncomplete, ApplicationStatusSubmitted:
		return false
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next is allowed.
// Declined and removed are reachable from any state, including each
// other: a later admin action overwrites an earlier one, last write
// wins. Terminal states never go back to incomplete or submitted.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	switch next {
	case ApplicationStatusSubmitted:
		return s == ApplicationStatusIncomplete
	case ApplicationStatusDeclined, ApplicationStatusRemoved:
		return true
	case ApplicationStatusIncomplete:
		return false
	}
	return false
}

// ApplicationAction represents an administrative disposition
type ApplicationAction string

const (
	ApplicationActionDecline ApplicationAction = "declined"
	ApplicationActionRemove  ApplicationAction = "removed"
	ApplicationActionSubmit  ApplicationAction = "submitted"
)

// TargetStatus returns the status an action transitions into.
func (a ApplicationAction) TargetStatus() (ApplicationStatus, bool) {
	switch a {
	case ApplicationActionDecline:
		return ApplicationStatusDeclined, true
	case ApplicationActionRemove:
		return ApplicationStatusRemoved, true
	case ApplicationActionSubmit:
		return ApplicationStatusSubmitted, true
	}
	return "", false
}

// ActionReason is one of the fixed disposition reasons offered to admins
type ActionReason string

const (
	ReasonIncompleteDocuments ActionReason = "Incomplete documents"
	ReasonDuplicateSubmission ActionReason = "Duplicate submission"
	ReasonBusinessNotApproved ActionReason = "Business not approved"
	ReasonFraudRisk           ActionReason = "Fraud risk"
	ReasonRequestedByMerchant ActionReason = "Requested by merchant"
	ReasonOther               ActionReason = "Other"
)

// ActionReasons lists the fixed reasons in display order.
var ActionReasons = []ActionReason{
	ReasonIncompleteDocuments,
	ReasonDuplicateSubmission,
	ReasonBusinessNotApproved,
	ReasonFraudRisk,
	ReasonRequestedByMerchant,
	ReasonOther,
}

// ResolveReason validates a reason selection and returns the text that is
// persisted. "Other" requires non-empty custom text; every other fixed
// reason stands on its own.
func ResolveReason(selected ActionReason, customText string) (string, bool) {
	switch selected {
	case ReasonIncompleteDocuments, ReasonDuplicateSubmission,
		ReasonBusinessNotApproved, ReasonFraudRisk, ReasonRequestedByMerchant:
		return string(selected), true
	case ReasonOther:
		if customText == "" {
			return "", false
		}
		return customText, true
	}
	return "", false
}

// MerchantApplication represents a prospective merchant's intake record.
// Never hard-deleted; "removed" is a status, not a row deletion.
type MerchantApplication struct {
	ID              uuid.UUID         `json:"id"`
	MerchantName    string            `json:"merchantName"`
	MerchantEmail   string            `json:"merchantEmail"`
	OTP             string            `json:"-"`
	ApplicationData null.JSON         `json:"applicationData,omitempty"`
	Status          ApplicationStatus `json:"status"`
	ActionReason    null.String       `json:"actionReason,omitempty"`
	ActionedBy      null.String       `json:"actionedBy,omitempty"`
	ActionedAt      null.Time         `json:"actionedAt,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// CreateApplicationInput represents admin input for initiating an application
type CreateApplicationInput struct {
	MerchantName  string `json:"merchantName" binding:"required,min=2,max=255"`
	MerchantEmail string `json:"merchantEmail" binding:"required,email"`
}

// VerifyOTPInput represents the merchant login submission
type VerifyOTPInput struct {
	ApplicationID string `json:"applicationId" binding:"required"`
	OTP           string `json:"otp" binding:"required"`
}

// MerchantAccessResponse is returned after a successful OTP verification:
// the stored form data merged with the merchant identity as initial values,
// plus a session token scoped to this one application.
type MerchantAccessResponse struct {
	ApplicationID uuid.UUID              `json:"applicationId"`
	AccessToken   string                 `json:"accessToken"`
	FormData      map[string]interface{} `json:"formData"`
}

// ApplyActionInput represents an admin disposition request
type ApplyActionInput struct {
	Action     ApplicationAction `json:"action" binding:"required"`
	Reason     ActionReason      `json:"reason" binding:"required"`
	CustomText string            `json:"customText"`
}
