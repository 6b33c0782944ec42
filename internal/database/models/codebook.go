package models

import (
	"github.com/google/uuid"
)

// Codebook is a named collection of codes for one project.
// At most one codebook per (project, user) is flagged as the default.
type Codebook struct {
	BaseModel
	ProjectID     uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_codebooks_default_per_user,where:is_default" validate:"required"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_codebooks_default_per_user,where:is_default" validate:"required"`
	Name          string    `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Description   string    `json:"description" gorm:"type:text"`
	IsAIGenerated bool      `json:"is_ai_generated" gorm:"not null;default:false"`
	Finalized     bool      `json:"finalized" gorm:"not null;default:false"`
	IsDefault     bool      `json:"is_default" gorm:"not null;default:false"`

	// Relationships
	Codes []Code `json:"codes,omitempty" gorm:"foreignKey:CodebookID"`
}

// TableName returns the table name for Codebook
func (Codebook) TableName() string {
	return "codebooks"
}
