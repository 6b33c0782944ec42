package service_test

import (
	"context"
	"errors"
	"testing"

	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/mocks"
	"thematic-analysis-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CodeReviewServiceTestSuite defines the test suite for CodeReviewService
type CodeReviewServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	m        *repoMocks
	migrator *mocks.MockCodeMigrator
	service  *service.CodeReviewService
	userID   uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CodeReviewServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newRepoMocks(suite.ctrl)
	suite.migrator = mocks.NewMockCodeMigrator(suite.ctrl)
	suite.service = service.NewCodeReviewService(suite.m.uow, suite.migrator, validator.New())
	suite.userID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *CodeReviewServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CodeReviewServiceTestSuite) TestReviewAssignmentsUpdatesExactlyRequestedIDs() {
	project := newProject(suite.userID)
	a1 := newAssignment(project.ID, suite.userID, models.AssignmentStatusPending)
	a2 := newAssignment(project.ID, suite.userID, models.AssignmentStatusAccepted)
	ids := assignmentIDs(a1, a2)

	suite.m.expectTransaction()
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate(ids).Return([]models.CodeAssignment{a1, a2}, nil)
	suite.m.projects.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.m.codeAssignments.EXPECT().UpdateStatus(ids, models.AssignmentStatusRejected).Return(int64(2), nil)

	result, err := suite.service.ReviewAssignments(context.Background(), suite.userID, &service.ReviewAssignmentsRequest{
		AssignmentIDs: ids,
		Status:        models.AssignmentStatusRejected,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.UpdatedCount)
	suite.Equal(ids, result.AssignmentIDs)
	suite.Equal(models.AssignmentStatusRejected, result.Status)
	suite.Equal("Successfully updated 2 assignments to 'rejected'", result.Message)
	suite.Zero(result.CodesMovedToDefault)
}

func (suite *CodeReviewServiceTestSuite) TestReviewAssignmentsDeduplicatesIDs() {
	project := newProject(suite.userID)
	a1 := newAssignment(project.ID, suite.userID, models.AssignmentStatusPending)

	suite.m.expectTransaction()
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate([]uuid.UUID{a1.ID}).Return([]models.CodeAssignment{a1}, nil)
	suite.m.projects.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.m.codeAssignments.EXPECT().UpdateStatus([]uuid.UUID{a1.ID}, models.AssignmentStatusPending).Return(int64(1), nil)

	result, err := suite.service.ReviewAssignments(context.Background(), suite.userID, &service.ReviewAssignmentsRequest{
		AssignmentIDs: []uuid.UUID{a1.ID, a1.ID},
		Status:        models.AssignmentStatusPending,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.UpdatedCount)
	suite.Equal([]uuid.UUID{a1.ID}, result.AssignmentIDs)
}

func (suite *CodeReviewServiceTestSuite) TestReviewAssignmentsReportsMissingIDs() {
	project := newProject(suite.userID)
	a1 := newAssignment(project.ID, suite.userID, models.AssignmentStatusPending)
	missing := uuid.New()

	suite.m.expectTransaction()
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate([]uuid.UUID{a1.ID, missing}).Return([]models.CodeAssignment{a1}, nil)

	result, err := suite.service.ReviewAssignments(context.Background(), suite.userID, &service.ReviewAssignmentsRequest{
		AssignmentIDs: []uuid.UUID{a1.ID, missing},
		Status:        models.AssignmentStatusAccepted,
	})

	suite.Nil(result)
	suite.True(apperrors.IsNotFound(err))
	suite.True(errors.Is(err, apperrors.ErrCodeAssignmentNotFound))
	suite.Equal([]string{missing.String()}, apperrors.MissingIDs(err))
}

func (suite *CodeReviewServiceTestSuite) TestReviewAssignmentsAcrossProjectsWritesNothing() {
	a1 := newAssignment(uuid.New(), suite.userID, models.AssignmentStatusPending)
	a2 := newAssignment(uuid.New(), suite.userID, models.AssignmentStatusPending)
	ids := assignmentIDs(a1, a2)

	suite.m.expectTransaction()
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate(ids).Return([]models.CodeAssignment{a1, a2}, nil)
	suite.m.codeAssignments.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Times(0)

	result, err := suite.service.ReviewAssignments(context.Background(), suite.userID, &service.ReviewAssignmentsRequest{
		AssignmentIDs: ids,
		Status:        models.AssignmentStatusAccepted,
	})

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
	suite.ErrorIs(err, apperrors.ErrMixedProjects)
}

func (suite *CodeReviewServiceTestSuite) TestReviewAssignmentsRejectsInvalidStatus() {
	result, err := suite.service.ReviewAssignments(context.Background(), suite.userID, &service.ReviewAssignmentsRequest{
		AssignmentIDs: []uuid.UUID{uuid.New()},
		Status:        models.AssignmentStatus("approved"),
	})

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "Invalid status")
}

func (suite *CodeReviewServiceTestSuite) TestReviewAssignmentsRequiresIDs() {
	result, err := suite.service.ReviewAssignments(context.Background(), suite.userID, &service.ReviewAssignmentsRequest{
		Status: models.AssignmentStatusAccepted,
	})

	suite.Nil(result)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "validation failed")
	var validationErrs validator.ValidationErrors
	suite.True(errors.As(err, &validationErrs))
}

func (suite *CodeReviewServiceTestSuite) TestReviewAssignmentsDeniesNonMember() {
	project := newProject(uuid.New())
	a1 := newAssignment(project.ID, suite.userID, models.AssignmentStatusPending)

	suite.m.expectTransaction()
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate([]uuid.UUID{a1.ID}).Return([]models.CodeAssignment{a1}, nil)
	suite.m.projects.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.m.projects.EXPECT().IsCollaborator(project.ID, suite.userID).Return(false, nil)

	result, err := suite.service.ReviewAssignments(context.Background(), suite.userID, &service.ReviewAssignmentsRequest{
		AssignmentIDs: []uuid.UUID{a1.ID},
		Status:        models.AssignmentStatusAccepted,
	})

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrAccessDenied)
}

func (suite *CodeReviewServiceTestSuite) TestReviewAssignmentsCollaboratorCannotReviewOthersWork() {
	project := newProject(uuid.New())
	own := newAssignment(project.ID, suite.userID, models.AssignmentStatusPending)
	foreign := newAssignment(project.ID, uuid.New(), models.AssignmentStatusPending)
	ids := assignmentIDs(own, foreign)

	suite.m.expectTransaction()
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate(ids).Return([]models.CodeAssignment{own, foreign}, nil)
	suite.m.projects.EXPECT().GetByID(project.ID).Return(project, nil).Times(2)
	suite.m.projects.EXPECT().IsCollaborator(project.ID, suite.userID).Return(true, nil)

	result, err := suite.service.ReviewAssignments(context.Background(), suite.userID, &service.ReviewAssignmentsRequest{
		AssignmentIDs: ids,
		Status:        models.AssignmentStatusAccepted,
	})

	suite.Nil(result)
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *CodeReviewServiceTestSuite) TestOwnerAcceptsAssignmentsOfTwoCollaborators() {
	u1 := newUser("alice")
	u2 := newUser("bob")
	project := newProject(suite.userID, u1, u2)
	a1 := newAssignment(project.ID, u1.ID, models.AssignmentStatusPending)
	a2 := newAssignment(project.ID, u2.ID, models.AssignmentStatusPending)
	ids := assignmentIDs(a1, a2)

	suite.m.expectTransaction()
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate(ids).Return([]models.CodeAssignment{a1, a2}, nil)
	suite.m.projects.EXPECT().GetByID(project.ID).Return(project, nil).Times(2)
	suite.m.codeAssignments.EXPECT().UpdateStatus(ids, models.AssignmentStatusAccepted).Return(int64(2), nil)
	suite.migrator.EXPECT().
		MigrateAcceptedCodes(gomock.Any(), suite.m.repos, suite.userID, project.ID, []uuid.UUID{a1.CodeID, a2.CodeID}).
		Return(int64(2), nil)

	result, err := suite.service.ReviewAssignments(context.Background(), suite.userID, &service.ReviewAssignmentsRequest{
		AssignmentIDs: ids,
		Status:        models.AssignmentStatusAccepted,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.UpdatedCount)
	suite.Equal(models.AssignmentStatusAccepted, result.Status)
	suite.Equal(int64(2), result.CodesMovedToDefault)
}

func (suite *CodeReviewServiceTestSuite) TestAcceptMigratesOnlyNewlyAcceptedCodes() {
	project := newProject(suite.userID)
	pending := newAssignment(project.ID, suite.userID, models.AssignmentStatusPending)
	accepted := newAssignment(project.ID, suite.userID, models.AssignmentStatusAccepted)
	ids := assignmentIDs(pending, accepted)

	suite.m.expectTransaction()
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate(ids).Return([]models.CodeAssignment{pending, accepted}, nil)
	suite.m.projects.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.m.codeAssignments.EXPECT().UpdateStatus(ids, models.AssignmentStatusAccepted).Return(int64(2), nil)
	suite.migrator.EXPECT().
		MigrateAcceptedCodes(gomock.Any(), suite.m.repos, suite.userID, project.ID, []uuid.UUID{pending.CodeID}).
		Return(int64(1), nil)

	result, err := suite.service.ReviewAssignments(context.Background(), suite.userID, &service.ReviewAssignmentsRequest{
		AssignmentIDs: ids,
		Status:        models.AssignmentStatusAccepted,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.CodesMovedToDefault)
}

func (suite *CodeReviewServiceTestSuite) TestBulkReviewWithOnlyRejectedIDs() {
	project := newProject(suite.userID)
	x := newAssignment(project.ID, suite.userID, models.AssignmentStatusPending)

	suite.m.expectTransaction()
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate([]uuid.UUID{x.ID}).Return([]models.CodeAssignment{x}, nil)
	suite.m.projects.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.m.codeAssignments.EXPECT().UpdateStatus([]uuid.UUID{x.ID}, models.AssignmentStatusRejected).Return(int64(1), nil)

	result, err := suite.service.BulkReview(context.Background(), suite.userID, &service.BulkReviewRequest{
		AcceptedAssignmentIDs: []uuid.UUID{},
		RejectedAssignmentIDs: []uuid.UUID{x.ID},
	})

	suite.Require().NoError(err)
	suite.Equal(int64(0), result.AcceptedCount)
	suite.Equal(int64(1), result.RejectedCount)
	suite.Equal(int64(1), result.TotalUpdated)
	suite.Zero(result.CodesMovedToDefault)
	suite.Nil(result.Details.Accepted)
	suite.Require().NotNil(result.Details.Rejected)
	suite.Equal([]uuid.UUID{x.ID}, result.Details.Rejected.AssignmentIDs)
	suite.NotEmpty(result.WorkflowNote)
}

func (suite *CodeReviewServiceTestSuite) TestBulkReviewAggregatesBothBranches() {
	project := newProject(suite.userID)
	acc1 := newAssignment(project.ID, suite.userID, models.AssignmentStatusPending)
	acc2 := newAssignment(project.ID, suite.userID, models.AssignmentStatusPending)
	rej := newAssignment(project.ID, suite.userID, models.AssignmentStatusPending)
	acceptedIDs := assignmentIDs(acc1, acc2)

	suite.m.expectTransaction()
	gomock.InOrder(
		suite.m.codeAssignments.EXPECT().GetByIDsForUpdate(acceptedIDs).Return([]models.CodeAssignment{acc1, acc2}, nil),
		suite.m.codeAssignments.EXPECT().UpdateStatus(acceptedIDs, models.AssignmentStatusAccepted).Return(int64(2), nil),
		suite.m.codeAssignments.EXPECT().GetByIDsForUpdate([]uuid.UUID{rej.ID}).Return([]models.CodeAssignment{rej}, nil),
		suite.m.codeAssignments.EXPECT().UpdateStatus([]uuid.UUID{rej.ID}, models.AssignmentStatusRejected).Return(int64(1), nil),
	)
	suite.m.projects.EXPECT().GetByID(project.ID).Return(project, nil).Times(2)
	suite.migrator.EXPECT().
		MigrateAcceptedCodes(gomock.Any(), suite.m.repos, suite.userID, project.ID, []uuid.UUID{acc1.CodeID, acc2.CodeID}).
		Return(int64(2), nil)

	result, err := suite.service.BulkReview(context.Background(), suite.userID, &service.BulkReviewRequest{
		AcceptedAssignmentIDs: acceptedIDs,
		RejectedAssignmentIDs: []uuid.UUID{rej.ID},
	})

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.AcceptedCount)
	suite.Equal(int64(1), result.RejectedCount)
	suite.Equal(int64(3), result.TotalUpdated)
	suite.Equal(int64(2), result.CodesMovedToDefault)
	suite.NotNil(result.Details.Accepted)
	suite.NotNil(result.Details.Rejected)
}

func (suite *CodeReviewServiceTestSuite) TestBulkReviewRequiresAtLeastOneID() {
	result, err := suite.service.BulkReview(context.Background(), suite.userID, &service.BulkReviewRequest{})

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
}

func (suite *CodeReviewServiceTestSuite) TestBulkReviewRejectsOverlappingIDs() {
	id := uuid.New()

	result, err := suite.service.BulkReview(context.Background(), suite.userID, &service.BulkReviewRequest{
		AcceptedAssignmentIDs: []uuid.UUID{id},
		RejectedAssignmentIDs: []uuid.UUID{id},
	})

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), id.String())
}

func (suite *CodeReviewServiceTestSuite) TestBulkReviewFailsWhenRejectedBranchFails() {
	project := newProject(suite.userID)
	acc := newAssignment(project.ID, suite.userID, models.AssignmentStatusAccepted)
	missing := uuid.New()

	suite.m.expectTransaction()
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate([]uuid.UUID{acc.ID}).Return([]models.CodeAssignment{acc}, nil)
	suite.m.projects.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.m.codeAssignments.EXPECT().UpdateStatus([]uuid.UUID{acc.ID}, models.AssignmentStatusAccepted).Return(int64(1), nil)
	suite.m.codeAssignments.EXPECT().GetByIDsForUpdate([]uuid.UUID{missing}).Return([]models.CodeAssignment{}, nil)

	result, err := suite.service.BulkReview(context.Background(), suite.userID, &service.BulkReviewRequest{
		AcceptedAssignmentIDs: []uuid.UUID{acc.ID},
		RejectedAssignmentIDs: []uuid.UUID{missing},
	})

	suite.Nil(result)
	suite.True(apperrors.IsNotFound(err))
	suite.Equal([]string{missing.String()}, apperrors.MissingIDs(err))
}

func (suite *CodeReviewServiceTestSuite) expectCodebookAccess(codebook *models.Codebook) {
	project := newProject(suite.userID)
	codebook.ProjectID = project.ID
	suite.m.codebooks.EXPECT().GetByID(codebook.ID).Return(codebook, nil)
	suite.m.projects.EXPECT().GetByID(project.ID).Return(project, nil)
}

func (suite *CodeReviewServiceTestSuite) TestGetCodebookAssignmentsSummaryIgnoresFilter() {
	codebook := &models.Codebook{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "AI codes", IsAIGenerated: true}
	counts := map[models.AssignmentStatus]int64{
		models.AssignmentStatusPending:  1,
		models.AssignmentStatusAccepted: 2,
	}
	accepted := models.AssignmentStatusAccepted

	a1 := newAssignment(uuid.New(), suite.userID, models.AssignmentStatusAccepted)
	a1.Code = &models.Code{BaseModel: models.BaseModel{ID: a1.CodeID}, Name: "trust"}
	a1.Document = &models.Document{Name: "interview-1.txt"}
	a2 := newAssignment(uuid.New(), suite.userID, models.AssignmentStatusAccepted)

	suite.m.expectReadOnly()
	suite.expectCodebookAccess(codebook)
	suite.m.codeAssignments.EXPECT().GetByCodebookAndCreator(codebook.ID, suite.userID, &accepted).Return([]models.CodeAssignment{a1, a2}, nil)
	suite.m.codeAssignments.EXPECT().CountByStatusForCodebookAndCreator(codebook.ID, suite.userID).Return(counts, nil)

	filtered, err := suite.service.GetCodebookAssignments(context.Background(), suite.userID, codebook.ID, "accepted")
	suite.Require().NoError(err)

	suite.m.expectReadOnly()
	suite.expectCodebookAccess(codebook)
	suite.m.codeAssignments.EXPECT().GetByCodebookAndCreator(codebook.ID, suite.userID, nil).Return([]models.CodeAssignment{a1, a2}, nil)
	suite.m.codeAssignments.EXPECT().CountByStatusForCodebookAndCreator(codebook.ID, suite.userID).Return(counts, nil)

	unfiltered, err := suite.service.GetCodebookAssignments(context.Background(), suite.userID, codebook.ID, "")
	suite.Require().NoError(err)

	suite.Equal(unfiltered.Summary, filtered.Summary)
	suite.Equal(service.ReviewSummary{Total: 3, Pending: 1, Accepted: 2, Rejected: 0, ReviewComplete: false}, filtered.Summary)
	suite.Len(filtered.Assignments, 2)
	for _, a := range filtered.Assignments {
		suite.Equal(models.AssignmentStatusAccepted, a.Status)
	}
	suite.Require().NotNil(filtered.Assignments[0].Code)
	suite.Equal("trust", filtered.Assignments[0].Code.Name)
	suite.Require().NotNil(filtered.Assignments[0].DocumentName)
	suite.Equal("interview-1.txt", *filtered.Assignments[0].DocumentName)
	suite.Nil(filtered.Assignments[1].Code)
	suite.Equal("AI codes", filtered.Codebook.Name)
}

func (suite *CodeReviewServiceTestSuite) TestGetCodebookAssignmentsReviewComplete() {
	codebook := &models.Codebook{BaseModel: models.BaseModel{ID: uuid.New()}, IsAIGenerated: true}

	suite.m.expectReadOnly()
	suite.expectCodebookAccess(codebook)
	suite.m.codeAssignments.EXPECT().GetByCodebookAndCreator(codebook.ID, suite.userID, nil).Return([]models.CodeAssignment{}, nil)
	suite.m.codeAssignments.EXPECT().CountByStatusForCodebookAndCreator(codebook.ID, suite.userID).
		Return(map[models.AssignmentStatus]int64{models.AssignmentStatusRejected: 4}, nil)

	result, err := suite.service.GetCodebookAssignments(context.Background(), suite.userID, codebook.ID, "")

	suite.Require().NoError(err)
	suite.NotNil(result.Assignments)
	suite.Empty(result.Assignments)
	suite.True(result.Summary.ReviewComplete)
	suite.Equal(int64(4), result.Summary.Total)
}

func (suite *CodeReviewServiceTestSuite) TestGetCodebookAssignmentsRejectsManualCodebook() {
	codebook := &models.Codebook{BaseModel: models.BaseModel{ID: uuid.New()}, IsAIGenerated: false}

	suite.m.expectReadOnly()
	suite.expectCodebookAccess(codebook)

	result, err := suite.service.GetCodebookAssignments(context.Background(), suite.userID, codebook.ID, "")

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrCodebookNotAIGenerated)
}

func (suite *CodeReviewServiceTestSuite) TestGetCodebookAssignmentsRejectsInvalidFilter() {
	codebook := &models.Codebook{BaseModel: models.BaseModel{ID: uuid.New()}, IsAIGenerated: true}

	suite.m.expectReadOnly()
	suite.expectCodebookAccess(codebook)

	result, err := suite.service.GetCodebookAssignments(context.Background(), suite.userID, codebook.ID, "done")

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "Invalid status filter")
}

func (suite *CodeReviewServiceTestSuite) TestGetCodebookAssignmentsHidesMissingCodebook() {
	codebookID := uuid.New()

	suite.m.expectReadOnly()
	suite.m.codebooks.EXPECT().GetByID(codebookID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.service.GetCodebookAssignments(context.Background(), suite.userID, codebookID, "")

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrAccessDenied)
}

func TestCodeReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CodeReviewServiceTestSuite))
}
