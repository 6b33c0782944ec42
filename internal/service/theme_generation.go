package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/llm"
	"thematic-analysis-backend/internal/logger"
	"thematic-analysis-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ThemeGenerationService turns code assignments into a persisted theme through the generation service
type ThemeGenerationService struct {
	uow       repository.UnitOfWork
	llm       llm.Client
	validator *validator.Validate
}

// NewThemeGenerationService creates a new theme generation service
func NewThemeGenerationService(uow repository.UnitOfWork, client llm.Client, validator *validator.Validate) *ThemeGenerationService {
	return &ThemeGenerationService{
		uow:       uow,
		llm:       client,
		validator: validator,
	}
}

var _ ThemeGenerationServiceInterface = (*ThemeGenerationService)(nil)

// GenerateThemesRequest represents the request to generate a theme
type GenerateThemesRequest struct {
	CodeAssignmentIDs []uuid.UUID `json:"code_assignment_ids" validate:"required,min=1"`
}

// ThemeGenerationResult represents a generated and persisted theme
type ThemeGenerationResult struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ProjectID    uuid.UUID `json:"project_id"`
	UserID       uuid.UUID `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Reasoning    string    `json:"reasoning"`
	RelatedCodes []string  `json:"related_codes"`
}

type themeOutput struct {
	ThemeName        string            `json:"theme_name"`
	ThemeDescription string            `json:"theme_description"`
	Reasoning        string            `json:"reasoning"`
	RelatedCodes     []json.RawMessage `json:"related_codes"`
}

// GenerateThemes builds a digest of the eligible assignments, asks the generation service for a theme
// and persists it. Eligible assignments are those the user created or that live in a project the user owns;
// they must all belong to one project.
// A failed call or an unusable reply yields an empty result instead of an error.
func (s *ThemeGenerationService) GenerateThemes(ctx context.Context, userID uuid.UUID, req *GenerateThemesRequest) ([]ThemeGenerationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	log := logger.WithContext(ctx).WithField("service", string(llm.ServiceThemeGeneration))

	var assignments []models.CodeAssignment
	err := s.uow.ReadOnly(ctx, func(repos *repository.Repositories) error {
		var err error
		assignments, err = repos.CodeAssignments.GetEligibleForUser(uniqueIDs(req.CodeAssignmentIDs), userID)
		if err != nil {
			return fmt.Errorf("failed to get code assignments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	projectID, err := singleProject(assignments)
	if err != nil {
		return nil, err
	}

	codesText := FormatThemeCodesText(NewCodeDigest(assignments))
	raw, err := s.llm.Invoke(ctx, llm.ServiceThemeGeneration, map[string]interface{}{
		"codes_text": codesText,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrGenerationRateLimited) {
			log.WithError(err).Warn("theme generation rate limited")
		} else {
			log.WithError(err).Warn("theme generation call failed")
		}
		return []ThemeGenerationResult{}, nil
	}

	output, err := decodeThemeOutput(raw)
	if err != nil {
		log.WithError(err).WithField("response", string(raw)).Warn("discarding malformed theme generation response")
		return []ThemeGenerationResult{}, nil
	}

	theme := &models.Theme{
		ProjectID:   projectID,
		UserID:      userID,
		Name:        output.ThemeName,
		Description: output.ThemeDescription,
	}
	err = s.uow.Transaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Themes.Create(theme); err != nil {
			return fmt.Errorf("failed to create theme: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"theme_id":   theme.ID,
		"project_id": projectID,
		"codes":      len(assignments),
	}).Info("generated theme")

	return []ThemeGenerationResult{{
		ID:           theme.ID,
		Name:         theme.Name,
		Description:  theme.Description,
		ProjectID:    theme.ProjectID,
		UserID:       theme.UserID,
		CreatedAt:    theme.CreatedAt,
		UpdatedAt:    theme.UpdatedAt,
		Reasoning:    output.Reasoning,
		RelatedCodes: normalizeRelatedCodes(output.RelatedCodes),
	}}, nil
}

// decodeThemeOutput requires a theme name and description; reasoning and related codes are optional
func decodeThemeOutput(raw json.RawMessage) (*themeOutput, error) {
	var output themeOutput
	if err := json.Unmarshal(raw, &output); err != nil {
		return nil, fmt.Errorf("decode theme output: %w", err)
	}
	output.ThemeName = strings.TrimSpace(output.ThemeName)
	output.ThemeDescription = strings.TrimSpace(output.ThemeDescription)
	if output.ThemeName == "" {
		return nil, errors.New("theme output is missing theme_name")
	}
	if output.ThemeDescription == "" {
		return nil, errors.New("theme output is missing theme_description")
	}
	return &output, nil
}

// normalizeRelatedCodes accepts plain strings as well as objects carrying a name, code or text field
func normalizeRelatedCodes(items []json.RawMessage) []string {
	codes := make([]string, 0, len(items))
	for _, item := range items {
		var text string
		if err := json.Unmarshal(item, &text); err == nil {
			if text = strings.TrimSpace(text); text != "" {
				codes = append(codes, text)
			}
			continue
		}

		var obj map[string]interface{}
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		for _, key := range []string{"name", "code", "text"} {
			if v, ok := obj[key].(string); ok && strings.TrimSpace(v) != "" {
				codes = append(codes, strings.TrimSpace(v))
				break
			}
		}
	}
	return codes
}
