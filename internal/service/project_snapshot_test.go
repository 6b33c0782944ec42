package service_test

import (
	"context"
	"testing"

	"thematic-analysis-backend/internal/database/models"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectSnapshotServiceTestSuite defines the test suite for ProjectSnapshotService
type ProjectSnapshotServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	m       *repoMocks
	service *service.ProjectSnapshotService
	owner   models.User
	alice   models.User
	bob     models.User
	project *models.Project
	report  string
}

// SetupTest sets up the test suite
func (suite *ProjectSnapshotServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.m = newRepoMocks(suite.ctrl)
	suite.service = service.NewProjectSnapshotService(suite.m.uow)

	suite.owner = newUser("owner")
	suite.alice = newUser("alice")
	suite.bob = newUser("bob")
	suite.report = "Final report"

	suite.project = newProject(suite.owner.ID, suite.alice, suite.bob)
	suite.project.Owner = suite.owner
	suite.project.Report = &suite.report
	suite.project.Codes = []models.Code{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "mine", CreatedByID: suite.alice.ID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "theirs", CreatedByID: suite.bob.ID},
	}
	suite.project.Codebooks = []models.Codebook{
		{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: suite.alice.ID, Name: "alice's Codebook", Codes: []models.Code{suite.project.Codes[0]}},
		{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: suite.bob.ID, Name: "bob's Codebook"},
	}
	suite.project.Documents = []models.Document{{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "interview.txt"}}
}

// TearDownTest cleans up after each test
func (suite *ProjectSnapshotServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectSnapshotServiceTestSuite) expectViewerData(viewerID uuid.UUID, submitters []uuid.UUID, submitted []models.CodeAssignment) {
	suite.m.expectReadOnly()
	suite.m.projects.EXPECT().GetWithRelations(suite.project.ID).Return(suite.project, nil)
	suite.m.annotations.EXPECT().GetByProjectAndCreator(suite.project.ID, viewerID).Return([]models.Annotation{}, nil)
	suite.m.codeAssignments.EXPECT().GetByProjectAndCreator(suite.project.ID, viewerID).Return([]models.CodeAssignment{}, nil)
	suite.m.themes.EXPECT().GetByProjectAndUser(suite.project.ID, viewerID).
		Return([]models.Theme{{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Trust"}}, nil)
	suite.m.codeAssignments.EXPECT().GetSubmittedByProjectAndCreators(suite.project.ID, submitters).Return(submitted, nil)
}

func (suite *ProjectSnapshotServiceTestSuite) TestNonOwnerSeesOnlyOwnSubmissions() {
	submitted := newAssignment(suite.project.ID, suite.alice.ID, models.AssignmentStatusPending)
	submitted.IsSubmitted = true
	suite.expectViewerData(suite.alice.ID, []uuid.UUID{suite.alice.ID}, []models.CodeAssignment{submitted})

	snapshot, err := suite.service.GetComprehensiveData(context.Background(), suite.alice.ID, suite.project.ID)

	suite.Require().NoError(err)
	suite.False(snapshot.IsOwner)
	suite.Nil(snapshot.Report)
	suite.Require().Len(snapshot.SubmittedAssignmentsByUser, 1)
	suite.Equal(suite.alice.ID, snapshot.SubmittedAssignmentsByUser[0].UserID)
	suite.Len(snapshot.SubmittedAssignmentsByUser[0].Assignments, 1)

	suite.Len(snapshot.Codes, 2)
	suite.True(snapshot.Codes[0].IsMine)
	suite.False(snapshot.Codes[1].IsMine)
	suite.Require().Len(snapshot.Codebooks, 1)
	suite.Equal("alice's Codebook", snapshot.Codebooks[0].Name)
	suite.Len(snapshot.Codebooks[0].Codes, 1)
	suite.Len(snapshot.Themes, 1)
	suite.Len(snapshot.Documents, 1)
	suite.Len(snapshot.Collaborators, 2)
	suite.NotNil(snapshot.Annotations)
	suite.NotNil(snapshot.CodeAssignments)
}

func (suite *ProjectSnapshotServiceTestSuite) TestOwnerSeesEveryCollaboratorAndSelf() {
	fromBob := newAssignment(suite.project.ID, suite.bob.ID, models.AssignmentStatusPending)
	fromBob.IsSubmitted = true
	suite.expectViewerData(suite.owner.ID, []uuid.UUID{suite.alice.ID, suite.bob.ID, suite.owner.ID}, []models.CodeAssignment{fromBob})

	snapshot, err := suite.service.GetComprehensiveData(context.Background(), suite.owner.ID, suite.project.ID)

	suite.Require().NoError(err)
	suite.True(snapshot.IsOwner)
	suite.Require().NotNil(snapshot.Report)
	suite.Equal("Final report", *snapshot.Report)

	entries := snapshot.SubmittedAssignmentsByUser
	suite.Require().Len(entries, 3)
	suite.Equal(suite.alice.ID, entries[0].UserID)
	suite.Equal(suite.bob.ID, entries[1].UserID)
	suite.Equal(suite.owner.ID, entries[2].UserID)
	suite.NotNil(entries[0].Assignments)
	suite.Empty(entries[0].Assignments)
	suite.Len(entries[1].Assignments, 1)
	suite.Equal("owner", entries[2].UserName)
	suite.Empty(snapshot.Codebooks)
}

func (suite *ProjectSnapshotServiceTestSuite) TestMissingProjectReturnsNil() {
	projectID := uuid.New()
	suite.m.expectReadOnly()
	suite.m.projects.EXPECT().GetWithRelations(projectID).Return(nil, gorm.ErrRecordNotFound)

	snapshot, err := suite.service.GetComprehensiveData(context.Background(), suite.owner.ID, projectID)

	suite.NoError(err)
	suite.Nil(snapshot)
}

func (suite *ProjectSnapshotServiceTestSuite) TestNonMemberIsDenied() {
	suite.m.expectReadOnly()
	suite.m.projects.EXPECT().GetWithRelations(suite.project.ID).Return(suite.project, nil)

	snapshot, err := suite.service.GetComprehensiveData(context.Background(), uuid.New(), suite.project.ID)

	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrAccessDenied)
}

func TestProjectSnapshotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectSnapshotServiceTestSuite))
}
