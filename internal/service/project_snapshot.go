package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectSnapshotService assembles everything a viewer sees of a project in one consistent read
type ProjectSnapshotService struct {
	uow repository.UnitOfWork
}

// NewProjectSnapshotService creates a new project snapshot service
func NewProjectSnapshotService(uow repository.UnitOfWork) *ProjectSnapshotService {
	return &ProjectSnapshotService{uow: uow}
}

var _ ProjectSnapshotServiceInterface = (*ProjectSnapshotService)(nil)

// UserSummary identifies a project member
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// DocumentSummary describes a project document
type DocumentSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	FileURL     string    `json:"file_url"`
	ContentType string    `json:"content_type"`
	CreatedByID uuid.UUID `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// SnapshotCode is a project code flagged with whether the viewer created it
type SnapshotCode struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	CodebookID  uuid.UUID  `json:"codebook_id"`
	ThemeID     *uuid.UUID `json:"theme_id"`
	CreatedByID uuid.UUID  `json:"created_by_id"`
	IsMine      bool       `json:"is_mine"`
}

// SnapshotCodebook is one of the viewer's codebooks with its codes
type SnapshotCodebook struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	IsAIGenerated bool          `json:"is_ai_generated"`
	Finalized     bool          `json:"finalized"`
	IsDefault     bool          `json:"is_default"`
	Codes         []CodeSummary `json:"codes"`
}

// AnnotationResponse represents an annotation
type AnnotationResponse struct {
	ID         uuid.UUID  `json:"id"`
	DocumentID uuid.UUID  `json:"document_id"`
	CodeID     *uuid.UUID `json:"code_id"`
	Content    string     `json:"content"`
	StartChar  *int       `json:"start_char"`
	EndChar    *int       `json:"end_char"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ThemeSummary describes a theme
type ThemeSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserSubmissions lists the submitted assignments of one member
type UserSubmissions struct {
	UserID      uuid.UUID                `json:"user_id"`
	UserName    string                   `json:"user_name"`
	Assignments []CodeAssignmentResponse `json:"assignments"`
}

// ProjectSnapshot is the full view of a project for one viewer
type ProjectSnapshot struct {
	ID                         uuid.UUID                `json:"id"`
	Title                      string                   `json:"title"`
	Description                string                   `json:"description"`
	ResearchDetails            string                   `json:"research_details"`
	OwnerID                    uuid.UUID                `json:"owner_id"`
	IsOwner                    bool                     `json:"is_owner"`
	Owner                      UserSummary              `json:"owner"`
	Collaborators              []UserSummary            `json:"collaborators"`
	Documents                  []DocumentSummary        `json:"documents"`
	Codes                      []SnapshotCode           `json:"codes"`
	CodeAssignments            []CodeAssignmentResponse `json:"code_assignments"`
	Annotations                []AnnotationResponse     `json:"annotations"`
	Codebooks                  []SnapshotCodebook       `json:"codebooks"`
	SubmittedAssignmentsByUser []UserSubmissions        `json:"submitted_assignments_by_user"`
	Themes                     []ThemeSummary           `json:"themes"`
	Report                     *string                  `json:"report"`
	CreatedAt                  time.Time                `json:"created_at"`
	UpdatedAt                  time.Time                `json:"updated_at"`
}

// GetComprehensiveData builds the viewer's snapshot of a project. It returns nil without an error
// when the project does not exist and ErrAccessDenied when the viewer is not a member.
// Codes are shared across the project; annotations, assignments, codebooks and themes are the viewer's own.
// The owner sees the submissions of every member and the report, others only their own submissions.
func (s *ProjectSnapshotService) GetComprehensiveData(ctx context.Context, viewerID, projectID uuid.UUID) (*ProjectSnapshot, error) {
	var snapshot *ProjectSnapshot
	err := s.uow.ReadOnly(ctx, func(repos *repository.Repositories) error {
		project, err := repos.Projects.GetWithRelations(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get project: %w", err)
		}
		if !project.IsMember(viewerID) {
			return apperrors.ErrAccessDenied
		}

		annotations, err := repos.Annotations.GetByProjectAndCreator(projectID, viewerID)
		if err != nil {
			return fmt.Errorf("failed to get annotations: %w", err)
		}
		assignments, err := repos.CodeAssignments.GetByProjectAndCreator(projectID, viewerID)
		if err != nil {
			return fmt.Errorf("failed to get code assignments: %w", err)
		}
		themes, err := repos.Themes.GetByProjectAndUser(projectID, viewerID)
		if err != nil {
			return fmt.Errorf("failed to get themes: %w", err)
		}

		submitters := submittersFor(project, viewerID)
		submitterIDs := make([]uuid.UUID, len(submitters))
		for i, u := range submitters {
			submitterIDs[i] = u.ID
		}
		submitted, err := repos.CodeAssignments.GetSubmittedByProjectAndCreators(projectID, submitterIDs)
		if err != nil {
			return fmt.Errorf("failed to get submitted code assignments: %w", err)
		}

		snapshot = buildSnapshot(project, viewerID, annotations, assignments, themes, submitters, submitted)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// submittersFor returns whose submissions the viewer sees: every collaborator plus the owner
// for the owner, only the viewer otherwise
func submittersFor(project *models.Project, viewerID uuid.UUID) []models.User {
	if !project.IsOwner(viewerID) {
		for _, c := range project.Collaborators {
			if c.ID == viewerID {
				return []models.User{c}
			}
		}
		return nil
	}

	users := make([]models.User, 0, len(project.Collaborators)+1)
	for _, c := range project.Collaborators {
		if c.ID != project.OwnerID {
			users = append(users, c)
		}
	}
	return append(users, project.Owner)
}

func buildSnapshot(
	project *models.Project,
	viewerID uuid.UUID,
	annotations []models.Annotation,
	assignments []models.CodeAssignment,
	themes []models.Theme,
	submitters []models.User,
	submitted []models.CodeAssignment,
) *ProjectSnapshot {
	isOwner := project.IsOwner(viewerID)

	snapshot := &ProjectSnapshot{
		ID:                         project.ID,
		Title:                      project.Title,
		Description:                project.Description,
		ResearchDetails:            project.ResearchDetails,
		OwnerID:                    project.OwnerID,
		IsOwner:                    isOwner,
		Owner:                      toUserSummary(project.Owner),
		Collaborators:              make([]UserSummary, 0, len(project.Collaborators)),
		Documents:                  make([]DocumentSummary, 0, len(project.Documents)),
		Codes:                      make([]SnapshotCode, 0, len(project.Codes)),
		CodeAssignments:            make([]CodeAssignmentResponse, 0, len(assignments)),
		Annotations:                make([]AnnotationResponse, 0, len(annotations)),
		Codebooks:                  make([]SnapshotCodebook, 0),
		SubmittedAssignmentsByUser: make([]UserSubmissions, 0, len(submitters)),
		Themes:                     make([]ThemeSummary, 0, len(themes)),
		CreatedAt:                  project.CreatedAt,
		UpdatedAt:                  project.UpdatedAt,
	}
	if isOwner {
		snapshot.Report = project.Report
	}

	for _, c := range project.Collaborators {
		snapshot.Collaborators = append(snapshot.Collaborators, toUserSummary(c))
	}
	for _, d := range project.Documents {
		snapshot.Documents = append(snapshot.Documents, DocumentSummary{
			ID:          d.ID,
			Name:        d.Name,
			FileURL:     d.FileURL,
			ContentType: d.ContentType,
			CreatedByID: d.CreatedByID,
			CreatedAt:   d.CreatedAt,
		})
	}
	for _, c := range project.Codes {
		snapshot.Codes = append(snapshot.Codes, SnapshotCode{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Color:       c.Color,
			CodebookID:  c.CodebookID,
			ThemeID:     c.ThemeID,
			CreatedByID: c.CreatedByID,
			IsMine:      c.CreatedByID == viewerID,
		})
	}
	for _, cb := range project.Codebooks {
		if cb.UserID != viewerID {
			continue
		}
		codebook := SnapshotCodebook{
			ID:            cb.ID,
			Name:          cb.Name,
			Description:   cb.Description,
			IsAIGenerated: cb.IsAIGenerated,
			Finalized:     cb.Finalized,
			IsDefault:     cb.IsDefault,
			Codes:         make([]CodeSummary, 0, len(cb.Codes)),
		}
		for i := range cb.Codes {
			codebook.Codes = append(codebook.Codes, *toCodeSummary(&cb.Codes[i]))
		}
		snapshot.Codebooks = append(snapshot.Codebooks, codebook)
	}
	for i := range assignments {
		snapshot.CodeAssignments = append(snapshot.CodeAssignments, *toCodeAssignmentResponse(&assignments[i]))
	}
	for _, a := range annotations {
		snapshot.Annotations = append(snapshot.Annotations, AnnotationResponse{
			ID:         a.ID,
			DocumentID: a.DocumentID,
			CodeID:     a.CodeID,
			Content:    a.Content,
			StartChar:  a.StartChar,
			EndChar:    a.EndChar,
			CreatedAt:  a.CreatedAt,
		})
	}
	for _, t := range themes {
		snapshot.Themes = append(snapshot.Themes, ThemeSummary{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		})
	}

	byUser := make(map[uuid.UUID][]CodeAssignmentResponse, len(submitters))
	for i := range submitted {
		a := &submitted[i]
		byUser[a.CreatedByID] = append(byUser[a.CreatedByID], *toCodeAssignmentResponse(a))
	}
	for _, u := range submitters {
		entries := byUser[u.ID]
		if entries == nil {
			entries = make([]CodeAssignmentResponse, 0)
		}
		snapshot.SubmittedAssignmentsByUser = append(snapshot.SubmittedAssignmentsByUser, UserSubmissions{
			UserID:      u.ID,
			UserName:    u.Name,
			Assignments: entries,
		})
	}

	return snapshot
}

func toUserSummary(u models.User) UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
