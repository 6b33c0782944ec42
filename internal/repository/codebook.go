package repository

import (
	"thematic-analysis-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CodebookRepository handles database operations for codebooks
type CodebookRepository struct {
	db *gorm.DB
}

// NewCodebookRepository creates a new codebook repository
func NewCodebookRepository(db *gorm.DB) *CodebookRepository {
	return &CodebookRepository{db: db}
}

// Create creates a new codebook
func (r *CodebookRepository) Create(codebook *models.Codebook) error {
	return r.db.Create(codebook).Error
}

// CreateDefault inserts a default codebook unless the user already has one in the project.
// It reports whether the row was inserted.
func (r *CodebookRepository) CreateDefault(codebook *models.Codebook) (bool, error) {
	codebook.IsDefault = true
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(codebook)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByID retrieves a codebook by ID
func (r *CodebookRepository) GetByID(id uuid.UUID) (*models.Codebook, error) {
	var codebook models.Codebook
	err := r.db.First(&codebook, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &codebook, nil
}

// GetDefault retrieves the default codebook of a user in a project
func (r *CodebookRepository) GetDefault(projectID, userID uuid.UUID) (*models.Codebook, error) {
	var codebook models.Codebook
	err := r.db.First(&codebook, "project_id = ? AND user_id = ? AND is_default = ?", projectID, userID, true).Error
	if err != nil {
		return nil, err
	}
	return &codebook, nil
}
