package service

import (
	"context"
	"fmt"

	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/logger"
	"thematic-analysis-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	invalidStatusMessage       = "Invalid status. Must be 'pending', 'accepted', or 'rejected'"
	invalidStatusFilterMessage = "Invalid status filter. Must be 'pending', 'accepted', or 'rejected'"
	bulkReviewWorkflowNote     = "Accepted codes automatically moved to your default codebook!"
)

// CodeReviewService handles the review workflow of code assignments
type CodeReviewService struct {
	uow       repository.UnitOfWork
	migrator  CodeMigrator
	validator *validator.Validate
}

// NewCodeReviewService creates a new code review service
func NewCodeReviewService(uow repository.UnitOfWork, migrator CodeMigrator, validator *validator.Validate) *CodeReviewService {
	return &CodeReviewService{
		uow:       uow,
		migrator:  migrator,
		validator: validator,
	}
}

var _ CodeReviewServiceInterface = (*CodeReviewService)(nil)

// ReviewAssignmentsRequest represents the request to set the status of code assignments
type ReviewAssignmentsRequest struct {
	AssignmentIDs []uuid.UUID             `json:"assignment_ids" validate:"required,min=1"`
	Status        models.AssignmentStatus `json:"status" validate:"required" example:"accepted"`
}

// ReviewResult represents the outcome of one review
type ReviewResult struct {
	UpdatedCount        int64                   `json:"updated_count"`
	Status              models.AssignmentStatus `json:"status"`
	AssignmentIDs       []uuid.UUID             `json:"assignment_ids"`
	Message             string                  `json:"message"`
	CodesMovedToDefault int64                   `json:"codes_moved_to_default"`
}

// BulkReviewRequest represents the request to accept and reject assignments in one call
type BulkReviewRequest struct {
	AcceptedAssignmentIDs []uuid.UUID `json:"accepted_assignment_ids"`
	RejectedAssignmentIDs []uuid.UUID `json:"rejected_assignment_ids"`
}

// BulkReviewDetails holds the result of each branch, nil when the branch was empty
type BulkReviewDetails struct {
	Accepted *ReviewResult `json:"accepted"`
	Rejected *ReviewResult `json:"rejected"`
}

// BulkReviewResult represents the aggregated outcome of a bulk review
type BulkReviewResult struct {
	TotalUpdated        int64             `json:"total_updated"`
	AcceptedCount       int64             `json:"accepted_count"`
	RejectedCount       int64             `json:"rejected_count"`
	CodesMovedToDefault int64             `json:"codes_moved_to_default"`
	Details             BulkReviewDetails `json:"details"`
	WorkflowNote        string            `json:"workflow_note"`
}

// ReviewAssignments sets the status of every requested assignment, or of none of them.
// All assignments must belong to one project the user can access; changing an assignment
// created by someone else requires project ownership. Newly accepted codes move into the
// user's default codebook in the same transaction.
func (s *CodeReviewService) ReviewAssignments(ctx context.Context, userID uuid.UUID, req *ReviewAssignmentsRequest) (*ReviewResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", invalidStatusMessage)
	}

	ids := uniqueIDs(req.AssignmentIDs)

	var result *ReviewResult
	err := s.uow.Transaction(ctx, func(repos *repository.Repositories) error {
		var err error
		result, err = s.review(ctx, repos, userID, ids, req.Status)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"status":                 result.Status,
		"updated_count":          result.UpdatedCount,
		"codes_moved_to_default": result.CodesMovedToDefault,
	}).Info("reviewed code assignments")

	return result, nil
}

// BulkReview accepts and rejects two lists of assignments in one transaction.
// Either list may be empty, an id may not appear in both.
func (s *CodeReviewService) BulkReview(ctx context.Context, userID uuid.UUID, req *BulkReviewRequest) (*BulkReviewResult, error) {
	accepted := uniqueIDs(req.AcceptedAssignmentIDs)
	rejected := uniqueIDs(req.RejectedAssignmentIDs)

	if len(accepted) == 0 && len(rejected) == 0 {
		return nil, apperrors.NewValidationError("assignment_ids", "at least one accepted or rejected assignment id is required")
	}
	acceptedSet := make(map[uuid.UUID]struct{}, len(accepted))
	for _, id := range accepted {
		acceptedSet[id] = struct{}{}
	}
	for _, id := range rejected {
		if _, ok := acceptedSet[id]; ok {
			return nil, apperrors.NewValidationError("assignment_ids", fmt.Sprintf("assignment %s cannot be both accepted and rejected", id))
		}
	}

	result := &BulkReviewResult{WorkflowNote: bulkReviewWorkflowNote}
	err := s.uow.Transaction(ctx, func(repos *repository.Repositories) error {
		if len(accepted) > 0 {
			r, err := s.review(ctx, repos, userID, accepted, models.AssignmentStatusAccepted)
			if err != nil {
				return err
			}
			result.Details.Accepted = r
			result.AcceptedCount = r.UpdatedCount
			result.CodesMovedToDefault = r.CodesMovedToDefault
		}
		if len(rejected) > 0 {
			r, err := s.review(ctx, repos, userID, rejected, models.AssignmentStatusRejected)
			if err != nil {
				return err
			}
			result.Details.Rejected = r
			result.RejectedCount = r.UpdatedCount
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.TotalUpdated = result.AcceptedCount + result.RejectedCount

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"accepted_count":         result.AcceptedCount,
		"rejected_count":         result.RejectedCount,
		"codes_moved_to_default": result.CodesMovedToDefault,
	}).Info("bulk reviewed code assignments")

	return result, nil
}

// review runs one status change on the repositories of an open transaction
func (s *CodeReviewService) review(ctx context.Context, repos *repository.Repositories, userID uuid.UUID, ids []uuid.UUID, status models.AssignmentStatus) (*ReviewResult, error) {
	assignments, err := repos.CodeAssignments.GetByIDsForUpdate(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load code assignments: %w", err)
	}
	if missing := missingAssignmentIDs(ids, assignments); len(missing) > 0 {
		return nil, apperrors.NewNotFoundIDsError(apperrors.ErrCodeAssignmentNotFound.Entity, missing)
	}

	projectID, err := singleProject(assignments)
	if err != nil {
		return nil, err
	}

	permissions := permissionsFor(repos)
	if _, err := permissions.CheckProjectAccess(projectID, userID); err != nil {
		return nil, err
	}
	for _, a := range assignments {
		if a.CreatedByID != userID {
			if _, err := permissions.CheckProjectOwner(projectID, userID); err != nil {
				return nil, err
			}
			break
		}
	}

	var newlyAcceptedCodes []uuid.UUID
	if status == models.AssignmentStatusAccepted {
		for _, a := range assignments {
			if a.Status != models.AssignmentStatusAccepted {
				newlyAcceptedCodes = append(newlyAcceptedCodes, a.CodeID)
			}
		}
	}

	updated, err := repos.CodeAssignments.UpdateStatus(ids, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update code assignment status: %w", err)
	}

	var moved int64
	if len(newlyAcceptedCodes) > 0 && s.migrator != nil {
		moved, err = s.migrator.MigrateAcceptedCodes(ctx, repos, userID, projectID, newlyAcceptedCodes)
		if err != nil {
			return nil, err
		}
	}

	return &ReviewResult{
		UpdatedCount:        updated,
		Status:              status,
		AssignmentIDs:       ids,
		Message:             fmt.Sprintf("Successfully updated %d assignments to '%s'", updated, status),
		CodesMovedToDefault: moved,
	}, nil
}
