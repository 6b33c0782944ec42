package service

import (
	"context"

	"thematic-analysis-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CodeReviewServiceInterface defines the interface for reviewing code assignments
type CodeReviewServiceInterface interface {
	ReviewAssignments(ctx context.Context, userID uuid.UUID, req *ReviewAssignmentsRequest) (*ReviewResult, error)
	BulkReview(ctx context.Context, userID uuid.UUID, req *BulkReviewRequest) (*BulkReviewResult, error)
	GetCodebookAssignments(ctx context.Context, userID, codebookID uuid.UUID, statusFilter string) (*CodebookAssignmentsResponse, error)
}

// CodeAssignmentServiceInterface defines the interface for creating and submitting code assignments
type CodeAssignmentServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateCodeAssignmentRequest) (*CodeAssignmentResponse, error)
	Submit(ctx context.Context, userID uuid.UUID, req *SubmitAssignmentsRequest) (*SubmitResult, error)
}

// ProjectSnapshotServiceInterface defines the interface for building project snapshots
type ProjectSnapshotServiceInterface interface {
	GetComprehensiveData(ctx context.Context, viewerID, projectID uuid.UUID) (*ProjectSnapshot, error)
}

// ThemeGenerationServiceInterface defines the interface for generating themes
type ThemeGenerationServiceInterface interface {
	GenerateThemes(ctx context.Context, userID uuid.UUID, req *GenerateThemesRequest) ([]ThemeGenerationResult, error)
}

// ReportGenerationServiceInterface defines the interface for generating project reports
type ReportGenerationServiceInterface interface {
	GenerateReport(ctx context.Context, userID uuid.UUID, req *GenerateReportRequest) (*ReportGenerationResult, error)
}

// CodeMigrator moves newly accepted codes into the reviewer's default codebook.
// It runs on the repositories of the caller's transaction.
type CodeMigrator interface {
	MigrateAcceptedCodes(ctx context.Context, repos *repository.Repositories, userID, projectID uuid.UUID, codeIDs []uuid.UUID) (int64, error)
}
