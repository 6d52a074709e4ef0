package models

import "time"

// ClearanceStatus tracks staff review progress of a clearance request
type ClearanceStatus string

// Verification status constants
const (
	StatusSubmitted ClearanceStatus = "Submitted"
	StatusPending   ClearanceStatus = "Pending"
	StatusPassed    ClearanceStatus = "Passed"
)

// ValidClearanceStatus reports whether status is one of the known states.
func ValidClearanceStatus(status ClearanceStatus) bool {
	switch status {
	case StatusSubmitted, StatusPending, StatusPassed:
		return true
	}
	return false
}

// ClearanceRequest represents a bebas pustaka application: a member's request
// to be certified free of outstanding library obligations.
//
// ValidatedAt stays nil while Status != Passed and is stamped exactly once
// when the request first passes; later updates never overwrite it.
type ClearanceRequest struct {
	ID          int64           `json:"id"`
	MemberID    string          `json:"member_id"`
	SubmittedAt time.Time       `json:"submitted_at"`
	Reason      string          `json:"reason"`
	Status      ClearanceStatus `json:"status"`
	Note        *string         `json:"note,omitempty"`
	ValidatedAt *time.Time      `json:"validated_at,omitempty"`
	CertNumber  *string         `json:"cert_number,omitempty"`

	// Relation (populated on joined reads)
	Member *LibMember `json:"member,omitempty"`
}
