package repository

import (
	"thematic-analysis-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByIDForUpdate retrieves a project by ID and locks its row until the transaction ends
func (r *ProjectRepository) GetByIDForUpdate(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithRelations retrieves a project with its owner, collaborators, documents and
// codebooks including their codes
func (r *ProjectRepository) GetWithRelations(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Owner").
		Preload("Collaborators", func(db *gorm.DB) *gorm.DB { return db.Order("users.name ASC") }).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("documents.created_at ASC") }).
		Preload("Codes", func(db *gorm.DB) *gorm.DB { return db.Order("codes.created_at ASC") }).
		Preload("Codebooks", func(db *gorm.DB) *gorm.DB { return db.Order("codebooks.created_at ASC") }).
		Preload("Codebooks.Codes", func(db *gorm.DB) *gorm.DB { return db.Order("codes.created_at ASC") }).
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// IsCollaborator checks if a user is listed as a collaborator of a project
func (r *ProjectRepository) IsCollaborator(projectID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Table("project_collaborators").
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddCollaborator adds a user to the collaborators of a project
func (r *ProjectRepository) AddCollaborator(projectID, userID uuid.UUID) error {
	return r.db.Exec(
		"INSERT INTO project_collaborators (project_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		projectID, userID,
	).Error
}

// UpdateReport stores the generated report text on a project
func (r *ProjectRepository) UpdateReport(projectID uuid.UUID, report string) error {
	result := r.db.Model(&models.Project{}).Where("id = ?", projectID).Update("report", report)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
