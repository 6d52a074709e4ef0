package models

// MajorLevel is the degree stage of a program of study
type MajorLevel string

// Degree stage constants
const (
	LevelD3 MajorLevel = "D3"
	LevelD4 MajorLevel = "D4"
	LevelS1 MajorLevel = "S1"
	LevelS2 MajorLevel = "S2"
	LevelS3 MajorLevel = "S3"
)

// ValidMajorLevel reports whether level is one of the known degree stages.
func ValidMajorLevel(level MajorLevel) bool {
	switch level {
	case LevelD3, LevelD4, LevelS1, LevelS2, LevelS3:
		return true
	}
	return false
}

// Major represents a program of study belonging to one faculty
type Major struct {
	ID        int64       `json:"id"`
	FacultyID int64       `json:"faculty_id"`
	Name      string      `json:"name"`
	Level     *MajorLevel `json:"level,omitempty"`
	Faculty   *Faculty    `json:"faculty,omitempty"`
}
