package dto

import "github.com/Aisyah456/liblary-web/internal/app/models"

// MemberSummary is the reduced member projection used by selection widgets.
type MemberSummary struct {
	ID         string            `json:"id"`
	FullName   string            `json:"full_name"`
	MemberType models.MemberType `json:"member_type"`
}
