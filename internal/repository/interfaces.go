package repository

import (
	"context"

	"thematic-analysis-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Project, error)
	GetWithRelations(id uuid.UUID) (*models.Project, error)
	IsCollaborator(projectID, userID uuid.UUID) (bool, error)
	AddCollaborator(projectID, userID uuid.UUID) error
	UpdateReport(projectID uuid.UUID, report string) error
}

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	Create(document *models.Document) error
	GetByID(id uuid.UUID) (*models.Document, error)
}

// CodebookRepositoryInterface defines the interface for codebook repository operations
type CodebookRepositoryInterface interface {
	Create(codebook *models.Codebook) error
	CreateDefault(codebook *models.Codebook) (bool, error)
	GetByID(id uuid.UUID) (*models.Codebook, error)
	GetDefault(projectID, userID uuid.UUID) (*models.Codebook, error)
}

// CodeRepositoryInterface defines the interface for code repository operations
type CodeRepositoryInterface interface {
	Create(code *models.Code) error
	GetByID(id uuid.UUID) (*models.Code, error)
	MoveToCodebook(ids []uuid.UUID, codebookID uuid.UUID) (int64, error)
}

// CodeAssignmentRepositoryInterface defines the interface for code assignment repository operations
type CodeAssignmentRepositoryInterface interface {
	Create(assignment *models.CodeAssignment) error
	GetByIDsForUpdate(ids []uuid.UUID) ([]models.CodeAssignment, error)
	UpdateStatus(ids []uuid.UUID, status models.AssignmentStatus) (int64, error)
	SetSubmitted(ids []uuid.UUID, submitted bool) (int64, error)
	GetByCodebookAndCreator(codebookID, userID uuid.UUID, status *models.AssignmentStatus) ([]models.CodeAssignment, error)
	CountByStatusForCodebookAndCreator(codebookID, userID uuid.UUID) (map[models.AssignmentStatus]int64, error)
	GetByProjectAndCreator(projectID, userID uuid.UUID) ([]models.CodeAssignment, error)
	GetSubmittedByProjectAndCreators(projectID uuid.UUID, userIDs []uuid.UUID) ([]models.CodeAssignment, error)
	GetEligibleForUser(ids []uuid.UUID, userID uuid.UUID) ([]models.CodeAssignment, error)
}

// AnnotationRepositoryInterface defines the interface for annotation repository operations
type AnnotationRepositoryInterface interface {
	Create(annotation *models.Annotation) error
	GetByProjectAndCreator(projectID, userID uuid.UUID) ([]models.Annotation, error)
}

// ThemeRepositoryInterface defines the interface for theme repository operations
type ThemeRepositoryInterface interface {
	Create(theme *models.Theme) error
	GetByProjectAndUser(projectID, userID uuid.UUID) ([]models.Theme, error)
}

// UnitOfWork runs a function against repositories bound to one database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Transaction(ctx context.Context, fn func(repos *Repositories) error) error
	ReadOnly(ctx context.Context, fn func(repos *Repositories) error) error
}
