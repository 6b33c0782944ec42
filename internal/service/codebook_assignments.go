package service

import (
	"context"
	"fmt"
	"time"

	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/repository"

	"github.com/google/uuid"
)

// CodebookSummary describes the codebook under review
type CodebookSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IsAIGenerated bool      `json:"is_ai_generated"`
	Finalized     bool      `json:"finalized"`
}

// CodeSummary describes the code of an assignment
type CodeSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
}

// ReviewAssignmentResponse is one assignment in the review listing
type ReviewAssignmentResponse struct {
	ID           uuid.UUID               `json:"id"`
	Text         string                  `json:"text"`
	StartChar    int                     `json:"start_char"`
	EndChar      int                     `json:"end_char"`
	Confidence   *int                    `json:"confidence"`
	Status       models.AssignmentStatus `json:"status"`
	DocumentID   uuid.UUID               `json:"document_id"`
	DocumentName *string                 `json:"document_name"`
	Code         *CodeSummary            `json:"code"`
	CreatedAt    time.Time               `json:"created_at"`
}

// ReviewSummary counts a user's assignments in a codebook regardless of any status filter
type ReviewSummary struct {
	Total          int64 `json:"total"`
	Pending        int64 `json:"pending"`
	Accepted       int64 `json:"accepted"`
	Rejected       int64 `json:"rejected"`
	ReviewComplete bool  `json:"review_complete"`
}

// CodebookAssignmentsResponse is the review view of an AI generated codebook
type CodebookAssignmentsResponse struct {
	Codebook    CodebookSummary            `json:"codebook"`
	Assignments []ReviewAssignmentResponse `json:"assignments"`
	Summary     ReviewSummary              `json:"summary"`
}

// GetCodebookAssignments lists the assignments the user made with codes of an AI generated codebook.
// statusFilter narrows the listing; the summary always covers every status.
func (s *CodeReviewService) GetCodebookAssignments(ctx context.Context, userID, codebookID uuid.UUID, statusFilter string) (*CodebookAssignmentsResponse, error) {
	var response *CodebookAssignmentsResponse
	err := s.uow.ReadOnly(ctx, func(repos *repository.Repositories) error {
		codebook, err := permissionsFor(repos).CheckCodebookAccess(codebookID, userID)
		if err != nil {
			return err
		}
		if !codebook.IsAIGenerated {
			return apperrors.ErrCodebookNotAIGenerated
		}

		var filter *models.AssignmentStatus
		if statusFilter != "" {
			status, err := models.ParseAssignmentStatus(statusFilter)
			if err != nil {
				return apperrors.NewValidationError("status", invalidStatusFilterMessage)
			}
			filter = &status
		}

		assignments, err := repos.CodeAssignments.GetByCodebookAndCreator(codebook.ID, userID, filter)
		if err != nil {
			return fmt.Errorf("failed to get codebook assignments: %w", err)
		}
		counts, err := repos.CodeAssignments.CountByStatusForCodebookAndCreator(codebook.ID, userID)
		if err != nil {
			return fmt.Errorf("failed to count codebook assignments: %w", err)
		}

		response = &CodebookAssignmentsResponse{
			Codebook: CodebookSummary{
				ID:            codebook.ID,
				Name:          codebook.Name,
				Description:   codebook.Description,
				IsAIGenerated: codebook.IsAIGenerated,
				Finalized:     codebook.Finalized,
			},
			Assignments: make([]ReviewAssignmentResponse, 0, len(assignments)),
			Summary:     newReviewSummary(counts),
		}
		for _, a := range assignments {
			response.Assignments = append(response.Assignments, toReviewAssignmentResponse(a))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func newReviewSummary(counts map[models.AssignmentStatus]int64) ReviewSummary {
	summary := ReviewSummary{
		Pending:  counts[models.AssignmentStatusPending],
		Accepted: counts[models.AssignmentStatusAccepted],
		Rejected: counts[models.AssignmentStatusRejected],
	}
	summary.Total = summary.Pending + summary.Accepted + summary.Rejected
	summary.ReviewComplete = summary.Pending == 0
	return summary
}

func toReviewAssignmentResponse(a models.CodeAssignment) ReviewAssignmentResponse {
	resp := ReviewAssignmentResponse{
		ID:         a.ID,
		Text:       a.TextSnapshot,
		StartChar:  a.StartChar,
		EndChar:    a.EndChar,
		Confidence: a.Confidence,
		Status:     a.Status,
		DocumentID: a.DocumentID,
		CreatedAt:  a.CreatedAt,
	}
	if a.Document != nil {
		name := a.Document.Name
		resp.DocumentName = &name
	}
	if a.Code != nil {
		resp.Code = toCodeSummary(a.Code)
	}
	return resp
}

func toCodeSummary(c *models.Code) *CodeSummary {
	return &CodeSummary{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
	}
}
