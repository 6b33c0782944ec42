package models

import (
	"github.com/google/uuid"
)

// Theme groups related codes. Themes are owned by the project and the user who generated them.
type Theme struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Description string    `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Theme
func (Theme) TableName() string {
	return "themes"
}
