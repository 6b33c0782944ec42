package models

import (
	"github.com/google/uuid"
)

// CodeAssignment tags the span [StartChar, EndChar) of a document with a code
type CodeAssignment struct {
	BaseModel
	DocumentID   uuid.UUID        `json:"document_id" gorm:"type:uuid;not null;index" validate:"required"`
	CodeID       uuid.UUID        `json:"code_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectID    uuid.UUID        `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartChar    int              `json:"start_char" gorm:"not null" validate:"min=0"`
	EndChar      int              `json:"end_char" gorm:"not null" validate:"gtfield=StartChar"`
	TextSnapshot string           `json:"text_snapshot" gorm:"type:text;not null"`
	Note         *string          `json:"note,omitempty" gorm:"type:text"`
	Confidence   *int             `json:"confidence,omitempty" validate:"omitempty,min=0,max=100"`
	Status       AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	IsSubmitted  bool             `json:"is_submitted" gorm:"not null;default:false"`
	CreatedByID  uuid.UUID        `json:"created_by_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Document *Document `json:"document,omitempty" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
	Code     *Code     `json:"code,omitempty" gorm:"foreignKey:CodeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CodeAssignment
func (CodeAssignment) TableName() string {
	return "code_assignments"
}
