package dto

import "time"

// GenerationTaskDTO is the wire shape of a processing task record.
type GenerationTaskDTO struct {
	ID              string    `json:"id"`
	FileID          string    `json:"file_id"`
	Kind            string    `json:"kind"`
	Filename        string    `json:"filename,omitempty"`
	ModelType       string    `json:"model_type,omitempty"`
	Model           string    `json:"model,omitempty"`
	Status          string    `json:"status"`
	Error           string    `json:"error,omitempty"`
	ExtractedLength int       `json:"extracted_length,omitempty"`
	SkippedSections string    `json:"skipped_sections,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
