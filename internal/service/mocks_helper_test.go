package service_test

import (
	"context"

	"thematic-analysis-backend/internal/database/models"
	"thematic-analysis-backend/internal/mocks"
	"thematic-analysis-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// repoMocks bundles a mocked unit of work with the mocked repositories it hands to services
type repoMocks struct {
	uow             *mocks.MockUnitOfWork
	users           *mocks.MockUserRepositoryInterface
	projects        *mocks.MockProjectRepositoryInterface
	documents       *mocks.MockDocumentRepositoryInterface
	codebooks       *mocks.MockCodebookRepositoryInterface
	codes           *mocks.MockCodeRepositoryInterface
	codeAssignments *mocks.MockCodeAssignmentRepositoryInterface
	annotations     *mocks.MockAnnotationRepositoryInterface
	themes          *mocks.MockThemeRepositoryInterface
	repos           *repository.Repositories
}

func newRepoMocks(ctrl *gomock.Controller) *repoMocks {
	m := &repoMocks{
		uow:             mocks.NewMockUnitOfWork(ctrl),
		users:           mocks.NewMockUserRepositoryInterface(ctrl),
		projects:        mocks.NewMockProjectRepositoryInterface(ctrl),
		documents:       mocks.NewMockDocumentRepositoryInterface(ctrl),
		codebooks:       mocks.NewMockCodebookRepositoryInterface(ctrl),
		codes:           mocks.NewMockCodeRepositoryInterface(ctrl),
		codeAssignments: mocks.NewMockCodeAssignmentRepositoryInterface(ctrl),
		annotations:     mocks.NewMockAnnotationRepositoryInterface(ctrl),
		themes:          mocks.NewMockThemeRepositoryInterface(ctrl),
	}
	m.repos = &repository.Repositories{
		Users:           m.users,
		Projects:        m.projects,
		Documents:       m.documents,
		Codebooks:       m.codebooks,
		Codes:           m.codes,
		CodeAssignments: m.codeAssignments,
		Annotations:     m.annotations,
		Themes:          m.themes,
	}
	return m
}

func (m *repoMocks) runFn(_ context.Context, fn func(*repository.Repositories) error) error {
	return fn(m.repos)
}

// expectTransaction makes the unit of work run fn once against the mocked repositories
func (m *repoMocks) expectTransaction() *gomock.Call {
	return m.uow.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(m.runFn)
}

// expectReadOnly makes the unit of work run fn once against the mocked repositories
func (m *repoMocks) expectReadOnly() *gomock.Call {
	return m.uow.EXPECT().ReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(m.runFn)
}

func newProject(ownerID uuid.UUID, collaborators ...models.User) *models.Project {
	return &models.Project{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		OwnerID:       ownerID,
		Title:         "Interview study",
		Owner:         models.User{BaseModel: models.BaseModel{ID: ownerID}, Name: "Owner"},
		Collaborators: collaborators,
	}
}

func newUser(name string) models.User {
	return models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		Email:     name + "@example.com",
	}
}

func newAssignment(projectID, createdBy uuid.UUID, status models.AssignmentStatus) models.CodeAssignment {
	return models.CodeAssignment{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		DocumentID:   uuid.New(),
		CodeID:       uuid.New(),
		ProjectID:    projectID,
		StartChar:    0,
		EndChar:      10,
		TextSnapshot: "some text",
		Status:       status,
		CreatedByID:  createdBy,
	}
}

func assignmentIDs(assignments ...models.CodeAssignment) []uuid.UUID {
	ids := make([]uuid.UUID, len(assignments))
	for i, a := range assignments {
		ids[i] = a.ID
	}
	return ids
}
