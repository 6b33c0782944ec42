package repository

import (
	"thematic-analysis-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnotationRepository handles database operations for annotations
type AnnotationRepository struct {
	db *gorm.DB
}

// NewAnnotationRepository creates a new annotation repository
func NewAnnotationRepository(db *gorm.DB) *AnnotationRepository {
	return &AnnotationRepository{db: db}
}

// Create creates a new annotation
func (r *AnnotationRepository) Create(annotation *models.Annotation) error {
	return r.db.Create(annotation).Error
}

// GetByProjectAndCreator retrieves the annotations a user left in a project
func (r *AnnotationRepository) GetByProjectAndCreator(projectID, userID uuid.UUID) ([]models.Annotation, error) {
	var annotations []models.Annotation
	err := r.db.Where("project_id = ? AND created_by_id = ?", projectID, userID).
		Order("created_at ASC").
		Find(&annotations).Error
	return annotations, err
}
