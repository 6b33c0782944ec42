package service

import (
	"errors"
	"fmt"

	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PermissionService decides whether a user may read or change project scoped data.
// Missing resources are reported as ErrAccessDenied and never as not found.
type PermissionService struct {
	projects  repository.ProjectRepositoryInterface
	codebooks repository.CodebookRepositoryInterface
}

// NewPermissionService creates a new permission service
func NewPermissionService(projects repository.ProjectRepositoryInterface, codebooks repository.CodebookRepositoryInterface) *PermissionService {
	return &PermissionService{
		projects:  projects,
		codebooks: codebooks,
	}
}

// permissionsFor binds a permission service to the repositories of a unit of work
func permissionsFor(repos *repository.Repositories) *PermissionService {
	return NewPermissionService(repos.Projects, repos.Codebooks)
}

// CheckProjectAccess succeeds when the user owns the project or collaborates on it
func (s *PermissionService) CheckProjectAccess(projectID, userID uuid.UUID) (*models.Project, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, err
	}
	if project.IsOwner(userID) {
		return project, nil
	}

	ok, err := s.projects.IsCollaborator(projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project membership: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrAccessDenied
	}
	return project, nil
}

// CheckProjectOwner succeeds only when the user owns the project
func (s *PermissionService) CheckProjectOwner(projectID, userID uuid.UUID) (*models.Project, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsOwner(userID) {
		return nil, apperrors.ErrAccessDenied
	}
	return project, nil
}

// CheckCodebookAccess resolves the codebook's project and checks project access
func (s *PermissionService) CheckCodebookAccess(codebookID, userID uuid.UUID) (*models.Codebook, error) {
	codebook, err := s.codebooks.GetByID(codebookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccessDenied
		}
		return nil, fmt.Errorf("failed to get codebook: %w", err)
	}

	if _, err := s.CheckProjectAccess(codebook.ProjectID, userID); err != nil {
		return nil, err
	}
	return codebook, nil
}

func (s *PermissionService) loadProject(projectID uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccessDenied
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}
