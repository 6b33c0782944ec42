package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/llm"
	"thematic-analysis-backend/internal/logger"
	"thematic-analysis-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportGenerationService turns code assignments into a project report through the generation service
type ReportGenerationService struct {
	uow       repository.UnitOfWork
	llm       llm.Client
	validator *validator.Validate
}

// NewReportGenerationService creates a new report generation service
func NewReportGenerationService(uow repository.UnitOfWork, client llm.Client, validator *validator.Validate) *ReportGenerationService {
	return &ReportGenerationService{
		uow:       uow,
		llm:       client,
		validator: validator,
	}
}

var _ ReportGenerationServiceInterface = (*ReportGenerationService)(nil)

// GenerateReportRequest represents the request to generate a project report
type GenerateReportRequest struct {
	CodeAssignmentIDs []uuid.UUID `json:"code_assignment_ids" validate:"required,min=1"`
}

// ReportGenerationResult represents a generated and persisted report
type ReportGenerationResult struct {
	Message   string    `json:"message"`
	ProjectID uuid.UUID `json:"project_id"`
	Report    string    `json:"report"`
	Summary   string    `json:"summary"`
}

// GenerateReport sends the codes and themes digest of the eligible assignments to the generation service
// and stores the returned report on their project. Any failure of the call or an unusable reply is
// returned as a GenerationError and nothing is persisted.
func (s *ReportGenerationService) GenerateReport(ctx context.Context, userID uuid.UUID, req *GenerateReportRequest) (*ReportGenerationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	log := logger.WithContext(ctx).WithField("service", string(llm.ServiceReportGeneration))

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

	entries := NewCodeDigest(assignments)
	raw, err := s.llm.Invoke(ctx, llm.ServiceReportGeneration, map[string]interface{}{
		"codes_summary":     FormatCodesSummary(entries),
		"themes_summary":    FormatThemesSummary(entries),
		"assignments_count": len(assignments),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrGenerationRateLimited) {
			return nil, err
		}
		return nil, apperrors.NewGenerationError(string(llm.ServiceReportGeneration), "generation service call failed", err)
	}

	report, summary, err := decodeReportOutput(raw)
	if err != nil {
		log.WithError(err).WithField("response", string(raw)).Warn("rejecting report generation response")
		return nil, err
	}

	err = s.uow.Transaction(ctx, func(repos *repository.Repositories) error {
		if _, err := repos.Projects.GetByIDForUpdate(projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to lock project: %w", err)
		}
		if err := repos.Projects.UpdateReport(projectID, report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"project_id":  projectID,
		"assignments": len(assignments),
	}).Info("generated project report")

	return &ReportGenerationResult{
		Message:   reportGeneratedMessage,
		ProjectID: projectID,
		Report:    report,
		Summary:   summary,
	}, nil
}

// decodeReportOutput extracts report_text and summary. An "error" key or a missing
// report_text makes the reply unusable.
func decodeReportOutput(raw json.RawMessage) (string, string, error) {
	service := string(llm.ServiceReportGeneration)

	var output map[string]interface{}
	if err := json.Unmarshal(raw, &output); err != nil {
		return "", "", apperrors.NewGenerationError(service, "response is not a JSON object", err)
	}

	if errValue, ok := output["error"]; ok && errValue != nil {
		return "", "", apperrors.NewGenerationError(service, fmt.Sprintf("generation service reported an error: %v", errValue), nil)
	}

	report, _ := output["report_text"].(string)
	if strings.TrimSpace(report) == "" {
		return "", "", apperrors.NewGenerationError(service, "response is missing report_text", nil)
	}

	summary, _ := output["summary"].(string)
	if strings.TrimSpace(summary) == "" {
		summary = reportDefaultSummary
	}
	return report, summary, nil
}
