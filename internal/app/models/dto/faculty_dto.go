package dto

// CreateFacultyRequest represents faculty creation data
type CreateFacultyRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Abbreviation *string `json:"abbreviation" binding:"omitempty,max=10"`
}

// UpdateFacultyRequest represents faculty update data
type UpdateFacultyRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Abbreviation *string `json:"abbreviation" binding:"omitempty,max=10"`
}
