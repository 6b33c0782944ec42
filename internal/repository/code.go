package repository

import (
	"thematic-analysis-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CodeRepository handles database operations for codes
type CodeRepository struct {
	db *gorm.DB
}

// NewCodeRepository creates a new code repository
func NewCodeRepository(db *gorm.DB) *CodeRepository {
	return &CodeRepository{db: db}
}

// Create creates a new code
func (r *CodeRepository) Create(code *models.Code) error {
	return r.db.Create(code).Error
}

// GetByID retrieves a code by ID
func (r *CodeRepository) GetByID(id uuid.UUID) (*models.Code, error) {
	var code models.Code
	err := r.db.First(&code, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// MoveToCodebook reassigns codes to a codebook and returns how many codes actually moved
func (r *CodeRepository) MoveToCodebook(ids []uuid.UUID, codebookID uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Code{}).
		Where("id IN ? AND codebook_id <> ?", ids, codebookID).
		Update("codebook_id", codebookID)
	return result.RowsAffected, result.Error
}
