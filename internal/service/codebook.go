package service

import (
	"context"
	"errors"
	"fmt"

	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/logger"
	"thematic-analysis-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CodebookService manages the default codebook each user has per project.
// Accepted codes are collected into that codebook.
type CodebookService struct{}

// NewCodebookService creates a new codebook service
func NewCodebookService() *CodebookService {
	return &CodebookService{}
}

var _ CodeMigrator = (*CodebookService)(nil)

// ResolveDefaultCodebook returns the user's default codebook in the project, creating it when missing.
// The unique partial index on (project_id, user_id) WHERE is_default guarantees a single default
// even when two requests race to create it.
func (s *CodebookService) ResolveDefaultCodebook(ctx context.Context, repos *repository.Repositories, userID, projectID uuid.UUID) (*models.Codebook, error) {
	codebook, err := repos.Codebooks.GetDefault(projectID, userID)
	if err == nil {
		return codebook, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get default codebook: %w", err)
	}

	user, err := repos.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	codebook = &models.Codebook{
		ProjectID:   projectID,
		UserID:      userID,
		Name:        fmt.Sprintf("%s's Codebook", user.Name),
		Description: "Default codebook for accepted codes",
		IsDefault:   true,
	}
	created, err := repos.Codebooks.CreateDefault(codebook)
	if err != nil {
		return nil, fmt.Errorf("failed to create default codebook: %w", err)
	}
	if created {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"project_id":  projectID,
			"user_id":     userID,
			"codebook_id": codebook.ID,
		}).Info("created default codebook")
		return codebook, nil
	}

	// Another request created it first
	codebook, err = repos.Codebooks.GetDefault(projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get default codebook: %w", err)
	}
	return codebook, nil
}

// MigrateAcceptedCodes moves the given codes into the user's default codebook and
// returns how many codes changed codebook
func (s *CodebookService) MigrateAcceptedCodes(ctx context.Context, repos *repository.Repositories, userID, projectID uuid.UUID, codeIDs []uuid.UUID) (int64, error) {
	codeIDs = uniqueIDs(codeIDs)
	if len(codeIDs) == 0 {
		return 0, nil
	}

	codebook, err := s.ResolveDefaultCodebook(ctx, repos, userID, projectID)
	if err != nil {
		return 0, err
	}

	moved, err := repos.Codes.MoveToCodebook(codeIDs, codebook.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to move codes to default codebook: %w", err)
	}
	return moved, nil
}
