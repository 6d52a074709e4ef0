package dto

import "time"

// SubmitClearanceRequest represents a member's clearance application.
// Status and submission timestamp are assigned by the service; any
// client-supplied values for those fields are not bound at all.
type SubmitClearanceRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	Reason   string `json:"reason" binding:"required,max=50"`
}

// ReviewClearanceRequest is the staff-side patch. Every field is optional;
// only supplied fields are applied.
type ReviewClearanceRequest struct {
	Reason      *string    `json:"reason" binding:"omitempty,max=50"`
	Status      *string    `json:"status" binding:"omitempty,oneof=Submitted Pending Passed"`
	Note        *string    `json:"note"`
	ValidatedAt *time.Time `json:"validated_at"`
	CertNumber  *string    `json:"cert_number" binding:"omitempty,max=50"`
}
