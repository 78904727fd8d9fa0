package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

const (
	TaskKindExtract     = "extract"
	TaskKindCoverLetter = "cover_letter"
	TaskKindOptimize    = "optimize"
	TaskKindEnhance     = "enhance"

	TaskStatusProcessing = "processing"
	TaskStatusCompleted  = "completed"
	TaskStatusFailed     = "failed"
)

// GenerationTask records one artifact-generation request for history and
// duplicate detection. The embedding column holds a vector of the extracted
// resume text and is only populated when the request carried a Gemini key.
type GenerationTask struct {
	ID              uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FileID          string           `gorm:"type:varchar(255);index" json:"file_id"`
	Kind            string           `gorm:"type:varchar(50)" json:"kind"`
	Filename        string           `gorm:"type:varchar(255)" json:"filename"`
	ModelType       string           `gorm:"type:varchar(50)" json:"model_type"`
	Model           string           `gorm:"type:varchar(100)" json:"model"`
	Status          string           `gorm:"type:varchar(50)" json:"status"`
	Error           string           `gorm:"type:text" json:"error"`
	ExtractedLength int              `json:"extracted_length"`
	SkippedSections string           `gorm:"type:text" json:"skipped_sections"`
	Embedding       *pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (t *GenerationTask) TableName() string {
	return "generation_tasks"
}
