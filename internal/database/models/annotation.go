package models

import (
	"github.com/google/uuid"
)

// Annotation is a free-text comment a user leaves on a document, optionally anchored to a span or code
type Annotation struct {
	BaseModel
	ProjectID   uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	DocumentID  uuid.UUID  `json:"document_id" gorm:"type:uuid;not null;index" validate:"required"`
	CodeID      *uuid.UUID `json:"code_id,omitempty" gorm:"type:uuid;index"`
	CreatedByID uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null;index"`
	Content     string     `json:"content" gorm:"type:text;not null" validate:"required"`
	StartChar   *int       `json:"start_char,omitempty"`
	EndChar     *int       `json:"end_char,omitempty"`
}

// TableName returns the table name for Annotation
func (Annotation) TableName() string {
	return "annotations"
}
