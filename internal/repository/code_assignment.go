package repository

import (
	"thematic-analysis-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CodeAssignmentRepository handles database operations for code assignments
type CodeAssignmentRepository struct {
	db *gorm.DB
}

// NewCodeAssignmentRepository creates a new code assignment repository
func NewCodeAssignmentRepository(db *gorm.DB) *CodeAssignmentRepository {
	return &CodeAssignmentRepository{db: db}
}

// Create creates a new code assignment
func (r *CodeAssignmentRepository) Create(assignment *models.CodeAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByIDsForUpdate retrieves code assignments and locks their rows until the transaction ends.
// Rows are locked in id order so that concurrent bulk reviews cannot deadlock each other.
func (r *CodeAssignmentRepository) GetByIDsForUpdate(ids []uuid.UUID) ([]models.CodeAssignment, error) {
	var assignments []models.CodeAssignment
	if len(ids) == 0 {
		return assignments, nil
	}
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&assignments).Error
	return assignments, err
}

// UpdateStatus sets the review status of the given assignments and returns the number of rows changed
func (r *CodeAssignmentRepository) UpdateStatus(ids []uuid.UUID, status models.AssignmentStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.CodeAssignment{}).Where("id IN ?", ids).Update("status", status)
	return result.RowsAffected, result.Error
}

// SetSubmitted sets the submission flag of the given assignments
func (r *CodeAssignmentRepository) SetSubmitted(ids []uuid.UUID, submitted bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.CodeAssignment{}).Where("id IN ?", ids).Update("is_submitted", submitted)
	return result.RowsAffected, result.Error
}

func (r *CodeAssignmentRepository) codebookCreatorScope(codebookID, userID uuid.UUID) *gorm.DB {
	return r.db.Model(&models.CodeAssignment{}).
		Joins("JOIN codes ON codes.id = code_assignments.code_id").
		Where("codes.codebook_id = ? AND code_assignments.created_by_id = ?", codebookID, userID)
}

// GetByCodebookAndCreator retrieves the assignments a user made with codes of a codebook,
// optionally restricted to one status
func (r *CodeAssignmentRepository) GetByCodebookAndCreator(codebookID, userID uuid.UUID, status *models.AssignmentStatus) ([]models.CodeAssignment, error) {
	var assignments []models.CodeAssignment
	query := r.codebookCreatorScope(codebookID, userID)
	if status != nil {
		query = query.Where("code_assignments.status = ?", *status)
	}
	err := query.
		Preload("Code").
		Preload("Document").
		Order("code_assignments.created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// CountByStatusForCodebookAndCreator counts a user's assignments in a codebook grouped by status
func (r *CodeAssignmentRepository) CountByStatusForCodebookAndCreator(codebookID, userID uuid.UUID) (map[models.AssignmentStatus]int64, error) {
	var rows []struct {
		Status models.AssignmentStatus
		Count  int64
	}
	err := r.codebookCreatorScope(codebookID, userID).
		Select("code_assignments.status AS status, COUNT(*) AS count").
		Group("code_assignments.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.AssignmentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// GetByProjectAndCreator retrieves the assignments a user made in a project
func (r *CodeAssignmentRepository) GetByProjectAndCreator(projectID, userID uuid.UUID) ([]models.CodeAssignment, error) {
	var assignments []models.CodeAssignment
	err := r.db.Where("project_id = ? AND created_by_id = ?", projectID, userID).
		Preload("Code").
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetSubmittedByProjectAndCreators retrieves the submitted assignments of the given users in a project
func (r *CodeAssignmentRepository) GetSubmittedByProjectAndCreators(projectID uuid.UUID, userIDs []uuid.UUID) ([]models.CodeAssignment, error) {
	var assignments []models.CodeAssignment
	if len(userIDs) == 0 {
		return assignments, nil
	}
	err := r.db.Where("project_id = ? AND is_submitted = ? AND created_by_id IN ?", projectID, true, userIDs).
		Preload("Code").
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// GetEligibleForUser retrieves the requested assignments the user may feed into generation:
// those they created and those in projects they own. Codes, their themes and documents are preloaded.
func (r *CodeAssignmentRepository) GetEligibleForUser(ids []uuid.UUID, userID uuid.UUID) ([]models.CodeAssignment, error) {
	var assignments []models.CodeAssignment
	if len(ids) == 0 {
		return assignments, nil
	}
	err := r.db.
		Joins("JOIN projects ON projects.id = code_assignments.project_id").
		Where("code_assignments.id IN ?", ids).
		Where("(code_assignments.created_by_id = ? OR projects.owner_id = ?)", userID, userID).
		Preload("Code").
		Preload("Code.Theme").
		Preload("Document").
		Order("code_assignments.created_at ASC").
		Find(&assignments).Error
	return assignments, err
}
