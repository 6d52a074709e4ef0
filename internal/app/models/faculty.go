package models

// Faculty represents a top-level academic organizational unit
type Faculty struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Abbreviation *string `json:"abbreviation,omitempty"`
}
