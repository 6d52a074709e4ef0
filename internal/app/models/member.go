package models

// MemberType defines the kind of library member
type MemberType string

// Member type constants
const (
	MemberStudent  MemberType = "Student"
	MemberLecturer MemberType = "Lecturer"
	MemberStaff    MemberType = "Staff"
)

// LibMember represents a library member. The ID is externally assigned
// (student/staff number), never auto-incremented, and immutable once set.
type LibMember struct {
	ID         string     `json:"id"`
	MajorID    *int64     `json:"major_id,omitempty"`
	FullName   string     `json:"full_name"`
	MemberType MemberType `json:"member_type"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone,omitempty"`
	Active     bool       `json:"active"`

	// Relation (populated on joined reads)
	Major *Major `json:"major,omitempty"`
}
