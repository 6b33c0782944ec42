package repository

import (
	"thematic-analysis-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ThemeRepository handles database operations for themes
type ThemeRepository struct {
	db *gorm.DB
}

// NewThemeRepository creates a new theme repository
func NewThemeRepository(db *gorm.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// Create creates a new theme
func (r *ThemeRepository) Create(theme *models.Theme) error {
	return r.db.Create(theme).Error
}

// GetByProjectAndUser retrieves the themes a user generated in a project
func (r *ThemeRepository) GetByProjectAndUser(projectID, userID uuid.UUID) ([]models.Theme, error) {
	var themes []models.Theme
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("created_at ASC").
		Find(&themes).Error
	return themes, err
}
