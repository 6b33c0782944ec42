package models

import (
	"github.com/google/uuid"
)

// Document is an uploaded source text within a project. The file itself lives in external storage.
type Document struct {
	BaseModel
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	FileURL     string    `json:"file_url" gorm:"type:text"`
	ContentType string    `json:"content_type" gorm:"size:100"`
	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}
