package models

import (
	"github.com/google/uuid"
)

// Project is the root aggregate of a thematic analysis: documents, codes, codebooks,
// annotations, themes and the generated report all belong to one project
type Project struct {
	BaseModel
	OwnerID         uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title           string    `json:"title" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description     string    `json:"description" gorm:"type:text"`
	ResearchDetails string    `json:"research_details" gorm:"type:text"`
	Report          *string   `json:"report,omitempty" gorm:"type:text"`

	// Relationships
	Owner         User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Collaborators []User       `json:"collaborators,omitempty" gorm:"many2many:project_collaborators;constraint:OnDelete:CASCADE"`
	Documents     []Document   `json:"documents,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Codes         []Code       `json:"codes,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Codebooks     []Codebook   `json:"codebooks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Annotations   []Annotation `json:"annotations,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Themes        []Theme      `json:"themes,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// IsOwner reports whether the user owns the project
func (p *Project) IsOwner(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// IsMember reports whether the user owns the project or is one of its collaborators.
// Collaborators must be loaded.
func (p *Project) IsMember(userID uuid.UUID) bool {
	if p.IsOwner(userID) {
		return true
	}
	for _, c := range p.Collaborators {
		if c.ID == userID {
			return true
		}
	}
	return false
}
