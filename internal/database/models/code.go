package models

import (
	"github.com/google/uuid"
)

// Code is a label applied to document spans. It belongs to a codebook and optionally to a theme.
type Code struct {
	BaseModel
	ProjectID   uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	CodebookID  uuid.UUID  `json:"codebook_id" gorm:"type:uuid;not null;index" validate:"required"`
	ThemeID     *uuid.UUID `json:"theme_id,omitempty" gorm:"type:uuid;index"`
	CreatedByID uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null;index"`
	Name        string     `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Description string     `json:"description" gorm:"type:text"`
	Color       string     `json:"color" gorm:"size:20"`

	// Relationships
	Codebook *Codebook `json:"codebook,omitempty" gorm:"foreignKey:CodebookID;constraint:OnDelete:CASCADE"`
	Theme    *Theme    `json:"theme,omitempty" gorm:"foreignKey:ThemeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Code
func (Code) TableName() string {
	return "codes"
}
