package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/logger"
	"thematic-analysis-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CodeAssignmentService handles creation and submission of code assignments
type CodeAssignmentService struct {
	uow       repository.UnitOfWork
	validator *validator.Validate
}

// NewCodeAssignmentService creates a new code assignment service
func NewCodeAssignmentService(uow repository.UnitOfWork, validator *validator.Validate) *CodeAssignmentService {
	return &CodeAssignmentService{
		uow:       uow,
		validator: validator,
	}
}

var _ CodeAssignmentServiceInterface = (*CodeAssignmentService)(nil)

// CreateCodeAssignmentRequest represents the request to tag a document span with a code
type CreateCodeAssignmentRequest struct {
	ProjectID    uuid.UUID `json:"project_id" validate:"required"`
	DocumentID   uuid.UUID `json:"document_id" validate:"required"`
	CodeID       uuid.UUID `json:"code_id" validate:"required"`
	StartChar    int       `json:"start_char" validate:"min=0"`
	EndChar      int       `json:"end_char" validate:"gtfield=StartChar"`
	TextSnapshot string    `json:"text" validate:"required"`
	Note         *string   `json:"note,omitempty"`
	Confidence   *int      `json:"confidence,omitempty" validate:"omitempty,min=0,max=100"`
}

// CodeAssignmentResponse represents a code assignment
type CodeAssignmentResponse struct {
	ID          uuid.UUID               `json:"id"`
	ProjectID   uuid.UUID               `json:"project_id"`
	DocumentID  uuid.UUID               `json:"document_id"`
	CodeID      uuid.UUID               `json:"code_id"`
	StartChar   int                     `json:"start_char"`
	EndChar     int                     `json:"end_char"`
	Text        string                  `json:"text"`
	Note        *string                 `json:"note"`
	Confidence  *int                    `json:"confidence"`
	Status      models.AssignmentStatus `json:"status"`
	IsSubmitted bool                    `json:"is_submitted"`
	CreatedByID uuid.UUID               `json:"created_by_id"`
	Code        *CodeSummary            `json:"code,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// SubmitAssignmentsRequest represents the request to submit (or withdraw) the user's own assignments
type SubmitAssignmentsRequest struct {
	AssignmentIDs []uuid.UUID `json:"assignment_ids" validate:"required,min=1"`
	Submitted     *bool       `json:"submitted,omitempty"`
}

// SubmitResult represents the outcome of a submission
type SubmitResult struct {
	UpdatedCount  int64       `json:"updated_count"`
	IsSubmitted   bool        `json:"is_submitted"`
	AssignmentIDs []uuid.UUID `json:"assignment_ids"`
	Message       string      `json:"message"`
}

// Create tags a document span with a code. The document and the code must belong to the
// requested project and the user must have access to it. New assignments start pending.
func (s *CodeAssignmentService) Create(ctx context.Context, userID uuid.UUID, req *CreateCodeAssignmentRequest) (*CodeAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var assignment *models.CodeAssignment
	err := s.uow.Transaction(ctx, func(repos *repository.Repositories) error {
		if _, err := permissionsFor(repos).CheckProjectAccess(req.ProjectID, userID); err != nil {
			return err
		}

		document, err := repos.Documents.GetByID(req.DocumentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrDocumentNotFound
			}
			return fmt.Errorf("failed to get document: %w", err)
		}
		if document.ProjectID != req.ProjectID {
			return apperrors.NewValidationError("document_id", "document does not belong to the project")
		}

		code, err := repos.Codes.GetByID(req.CodeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCodeNotFound
			}
			return fmt.Errorf("failed to get code: %w", err)
		}
		if code.ProjectID != req.ProjectID {
			return apperrors.NewValidationError("code_id", "code does not belong to the project")
		}

		assignment = &models.CodeAssignment{
			DocumentID:   req.DocumentID,
			CodeID:       req.CodeID,
			ProjectID:    req.ProjectID,
			StartChar:    req.StartChar,
			EndChar:      req.EndChar,
			TextSnapshot: req.TextSnapshot,
			Note:         req.Note,
			Confidence:   req.Confidence,
			Status:       models.AssignmentStatusPending,
			IsSubmitted:  false,
			CreatedByID:  userID,
		}
		if err := repos.CodeAssignments.Create(assignment); err != nil {
			return fmt.Errorf("failed to create code assignment: %w", err)
		}
		assignment.Code = code
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toCodeAssignmentResponse(assignment), nil
}

// Submit sets the submission flag on assignments the user created. Status is left untouched.
func (s *CodeAssignmentService) Submit(ctx context.Context, userID uuid.UUID, req *SubmitAssignmentsRequest) (*SubmitResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	submitted := true
	if req.Submitted != nil {
		submitted = *req.Submitted
	}
	ids := uniqueIDs(req.AssignmentIDs)

	var updated int64
	err := s.uow.Transaction(ctx, func(repos *repository.Repositories) error {
		assignments, err := repos.CodeAssignments.GetByIDsForUpdate(ids)
		if err != nil {
			return fmt.Errorf("failed to load code assignments: %w", err)
		}
		if missing := missingAssignmentIDs(ids, assignments); len(missing) > 0 {
			return apperrors.NewNotFoundIDsError(apperrors.ErrCodeAssignmentNotFound.Entity, missing)
		}

		projectID, err := singleProject(assignments)
		if err != nil {
			return err
		}
		if _, err := permissionsFor(repos).CheckProjectAccess(projectID, userID); err != nil {
			return err
		}
		for _, a := range assignments {
			if a.CreatedByID != userID {
				return apperrors.NewAuthorizationError("only the author can submit a code assignment")
			}
		}

		updated, err = repos.CodeAssignments.SetSubmitted(ids, submitted)
		if err != nil {
			return fmt.Errorf("failed to update submission flag: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	verb := "submitted"
	if !submitted {
		verb = "withdrew"
	}
	logger.WithContext(ctx).WithField("updated_count", updated).Infof("%s code assignments", verb)

	return &SubmitResult{
		UpdatedCount:  updated,
		IsSubmitted:   submitted,
		AssignmentIDs: ids,
		Message:       fmt.Sprintf("Successfully %s %d assignments", verb, updated),
	}, nil
}

func toCodeAssignmentResponse(a *models.CodeAssignment) *CodeAssignmentResponse {
	resp := &CodeAssignmentResponse{
		ID:          a.ID,
		ProjectID:   a.ProjectID,
		DocumentID:  a.DocumentID,
		CodeID:      a.CodeID,
		StartChar:   a.StartChar,
		EndChar:     a.EndChar,
		Text:        a.TextSnapshot,
		Note:        a.Note,
		Confidence:  a.Confidence,
		Status:      a.Status,
		IsSubmitted: a.IsSubmitted,
		CreatedByID: a.CreatedByID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Code != nil {
		resp.Code = toCodeSummary(a.Code)
	}
	return resp
}
