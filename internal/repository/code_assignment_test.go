//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"thematic-analysis-backend/internal/database/models"
	"thematic-analysis-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CodeAssignmentRepositoryTestSuite tests the CodeAssignmentRepository and the unit of work
type CodeAssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CodeAssignmentRepository
	factories     *testutils.FactorySet
	scenario      *testutils.ProjectScenario
}

// SetupSuite runs before all tests in the suite
func (suite *CodeAssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCodeAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CodeAssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CodeAssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.CleanTestDB()

	scenario, err := suite.factories.CreateProjectScenario(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	suite.scenario = scenario
}

// TearDownTest runs after each test
func (suite *CodeAssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.CleanTestDB()
}

func (suite *CodeAssignmentRepositoryTestSuite) createAssignment(createdBy uuid.UUID) *models.CodeAssignment {
	assignment := suite.factories.CodeAssignment.Create(suite.scenario.Code, suite.scenario.Document.ID, createdBy)
	suite.Require().NoError(suite.repo.Create(assignment))
	return assignment
}

// TestUpdateStatusTouchesOnlyRequestedIDs tests that only the listed assignments change
func (suite *CodeAssignmentRepositoryTestSuite) TestUpdateStatusTouchesOnlyRequestedIDs() {
	a1 := suite.createAssignment(suite.scenario.Collaborator.ID)
	a2 := suite.createAssignment(suite.scenario.Collaborator.ID)

	updated, err := suite.repo.UpdateStatus([]uuid.UUID{a1.ID}, models.AssignmentStatusAccepted)
	suite.NoError(err)
	suite.Equal(int64(1), updated)

	rows, err := suite.repo.GetByIDsForUpdate([]uuid.UUID{a1.ID, a2.ID})
	suite.NoError(err)
	statuses := map[uuid.UUID]models.AssignmentStatus{}
	for _, row := range rows {
		statuses[row.ID] = row.Status
	}
	suite.Equal(models.AssignmentStatusAccepted, statuses[a1.ID])
	suite.Equal(models.AssignmentStatusPending, statuses[a2.ID])
}

// TestCountByStatusForCodebookAndCreator tests the per status counts of a codebook
func (suite *CodeAssignmentRepositoryTestSuite) TestCountByStatusForCodebookAndCreator() {
	a1 := suite.createAssignment(suite.scenario.Collaborator.ID)
	suite.createAssignment(suite.scenario.Collaborator.ID)
	suite.createAssignment(suite.scenario.Owner.ID)
	_, err := suite.repo.UpdateStatus([]uuid.UUID{a1.ID}, models.AssignmentStatusRejected)
	suite.NoError(err)

	counts, err := suite.repo.CountByStatusForCodebookAndCreator(suite.scenario.AICodebook.ID, suite.scenario.Collaborator.ID)

	suite.NoError(err)
	suite.Equal(int64(1), counts[models.AssignmentStatusPending])
	suite.Equal(int64(1), counts[models.AssignmentStatusRejected])
	suite.Equal(int64(0), counts[models.AssignmentStatusAccepted])
}

// TestGetByCodebookAndCreatorFilter tests the optional status filter
func (suite *CodeAssignmentRepositoryTestSuite) TestGetByCodebookAndCreatorFilter() {
	a1 := suite.createAssignment(suite.scenario.Collaborator.ID)
	suite.createAssignment(suite.scenario.Collaborator.ID)
	_, err := suite.repo.UpdateStatus([]uuid.UUID{a1.ID}, models.AssignmentStatusAccepted)
	suite.NoError(err)

	accepted := models.AssignmentStatusAccepted
	filtered, err := suite.repo.GetByCodebookAndCreator(suite.scenario.AICodebook.ID, suite.scenario.Collaborator.ID, &accepted)
	suite.NoError(err)
	suite.Len(filtered, 1)
	suite.Equal(a1.ID, filtered[0].ID)
	suite.NotNil(filtered[0].Code)
	suite.NotNil(filtered[0].Document)

	all, err := suite.repo.GetByCodebookAndCreator(suite.scenario.AICodebook.ID, suite.scenario.Collaborator.ID, nil)
	suite.NoError(err)
	suite.Len(all, 2)
}

// TestGetEligibleForUser tests that a user sees their own assignments and those in projects they own
func (suite *CodeAssignmentRepositoryTestSuite) TestGetEligibleForUser() {
	mine := suite.createAssignment(suite.scenario.Collaborator.ID)
	owners := suite.createAssignment(suite.scenario.Owner.ID)
	ids := []uuid.UUID{mine.ID, owners.ID}

	forCollaborator, err := suite.repo.GetEligibleForUser(ids, suite.scenario.Collaborator.ID)
	suite.NoError(err)
	suite.Len(forCollaborator, 1)
	suite.Equal(mine.ID, forCollaborator[0].ID)

	forOwner, err := suite.repo.GetEligibleForUser(ids, suite.scenario.Owner.ID)
	suite.NoError(err)
	suite.Len(forOwner, 2)

	forStranger, err := suite.repo.GetEligibleForUser(ids, uuid.New())
	suite.NoError(err)
	suite.Empty(forStranger)
}

// TestSubmittedByProjectAndCreators tests that only submitted assignments are returned
func (suite *CodeAssignmentRepositoryTestSuite) TestSubmittedByProjectAndCreators() {
	submitted := suite.createAssignment(suite.scenario.Collaborator.ID)
	suite.createAssignment(suite.scenario.Collaborator.ID)
	_, err := suite.repo.SetSubmitted([]uuid.UUID{submitted.ID}, true)
	suite.NoError(err)

	rows, err := suite.repo.GetSubmittedByProjectAndCreators(suite.scenario.Project.ID, []uuid.UUID{suite.scenario.Collaborator.ID})

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(submitted.ID, rows[0].ID)
}

// TestTransactionRollsBack tests that a failing unit of work leaves no changes behind
func (suite *CodeAssignmentRepositoryTestSuite) TestTransactionRollsBack() {
	assignment := suite.createAssignment(suite.scenario.Collaborator.ID)
	uow := NewUnitOfWork(suite.baseTestSuite.DB)
	boom := errors.New("boom")

	err := uow.Transaction(context.Background(), func(repos *Repositories) error {
		if _, err := repos.CodeAssignments.UpdateStatus([]uuid.UUID{assignment.ID}, models.AssignmentStatusAccepted); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	rows, err := suite.repo.GetByIDsForUpdate([]uuid.UUID{assignment.ID})
	suite.NoError(err)
	suite.Equal(models.AssignmentStatusPending, rows[0].Status)
}

// TestReadOnlyRejectsWrites tests that the read-only unit of work cannot write
func (suite *CodeAssignmentRepositoryTestSuite) TestReadOnlyRejectsWrites() {
	assignment := suite.createAssignment(suite.scenario.Collaborator.ID)
	uow := NewUnitOfWork(suite.baseTestSuite.DB)

	err := uow.ReadOnly(context.Background(), func(repos *Repositories) error {
		_, err := repos.CodeAssignments.UpdateStatus([]uuid.UUID{assignment.ID}, models.AssignmentStatusAccepted)
		return err
	})

	suite.Error(err)
}

// TestCodeAssignmentRepositoryTestSuite runs the test suite
func TestCodeAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CodeAssignmentRepositoryTestSuite))
}
