package dto

// CreateMajorRequest represents major creation data
type CreateMajorRequest struct {
	FacultyID int64   `json:"faculty_id" binding:"required"`
	Name      string  `json:"name" binding:"required,max=100"`
	Level     *string `json:"level" binding:"omitempty,oneof=D3 D4 S1 S2 S3"`
}

// UpdateMajorRequest represents major update data
type UpdateMajorRequest struct {
	FacultyID int64   `json:"faculty_id" binding:"required"`
	Name      string  `json:"name" binding:"required,max=100"`
	Level     *string `json:"level" binding:"omitempty,oneof=D3 D4 S1 S2 S3"`
}
