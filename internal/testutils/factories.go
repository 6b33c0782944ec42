package testutils

import (
	"fmt"

	"thematic-analysis-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Test User",
		Email:     fmt.Sprintf("user-%s@example.com", id.String()[:8]),
	}
}

// WithName creates a user with a custom name
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project owned by ownerID
func (f *ProjectFactory) Create(ownerID uuid.UUID) *models.Project {
	return &models.Project{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		OwnerID:         ownerID,
		Title:           "Test Project",
		Description:     "A test project for testing purposes",
		ResearchDetails: "Semi-structured interviews",
	}
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test Document in a project
func (f *DocumentFactory) Create(projectID, createdBy uuid.UUID) *models.Document {
	return &models.Document{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ProjectID:   projectID,
		Name:        "interview-01.txt",
		FileURL:     "https://storage.example.com/interview-01.txt",
		ContentType: "text/plain",
		CreatedByID: createdBy,
	}
}

// CodebookFactory provides methods to create test Codebook data
type CodebookFactory struct{}

// NewCodebookFactory creates a new CodebookFactory
func NewCodebookFactory() *CodebookFactory {
	return &CodebookFactory{}
}

// Create creates a manual test Codebook
func (f *CodebookFactory) Create(projectID, userID uuid.UUID) *models.Codebook {
	return &models.Codebook{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: projectID,
		UserID:    userID,
		Name:      "Test Codebook",
	}
}

// AIGenerated creates an AI generated test Codebook
func (f *CodebookFactory) AIGenerated(projectID, userID uuid.UUID) *models.Codebook {
	codebook := f.Create(projectID, userID)
	codebook.Name = "AI Suggested Codes"
	codebook.IsAIGenerated = true
	return codebook
}

// CodeFactory provides methods to create test Code data
type CodeFactory struct{}

// NewCodeFactory creates a new CodeFactory
func NewCodeFactory() *CodeFactory {
	return &CodeFactory{}
}

// Create creates a test Code in a codebook
func (f *CodeFactory) Create(projectID, codebookID, createdBy uuid.UUID, name string) *models.Code {
	return &models.Code{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ProjectID:   projectID,
		CodebookID:  codebookID,
		CreatedByID: createdBy,
		Name:        name,
		Description: name + " description",
		Color:       "#3366ff",
	}
}

// CodeAssignmentFactory provides methods to create test CodeAssignment data
type CodeAssignmentFactory struct{}

// NewCodeAssignmentFactory creates a new CodeAssignmentFactory
func NewCodeAssignmentFactory() *CodeAssignmentFactory {
	return &CodeAssignmentFactory{}
}

// Create creates a pending test CodeAssignment of code on document
func (f *CodeAssignmentFactory) Create(code *models.Code, documentID, createdBy uuid.UUID) *models.CodeAssignment {
	return &models.CodeAssignment{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		ProjectID:    code.ProjectID,
		DocumentID:   documentID,
		CodeID:       code.ID,
		StartChar:    0,
		EndChar:      12,
		TextSnapshot: "I trust them",
		Status:       models.AssignmentStatusPending,
		CreatedByID:  createdBy,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User           *UserFactory
	Project        *ProjectFactory
	Document       *DocumentFactory
	Codebook       *CodebookFactory
	Code           *CodeFactory
	CodeAssignment *CodeAssignmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:           NewUserFactory(),
		Project:        NewProjectFactory(),
		Document:       NewDocumentFactory(),
		Codebook:       NewCodebookFactory(),
		Code:           NewCodeFactory(),
		CodeAssignment: NewCodeAssignmentFactory(),
	}
}

// ProjectScenario is a persisted project with one collaborator, one document and an AI codebook
type ProjectScenario struct {
	Owner        *models.User
	Collaborator *models.User
	Project      *models.Project
	Document     *models.Document
	AICodebook   *models.Codebook
	Code         *models.Code
}

// CreateProjectScenario persists a project owned by one user with a second user as collaborator
func (fs *FactorySet) CreateProjectScenario(db *gorm.DB) (*ProjectScenario, error) {
	s := &ProjectScenario{
		Owner:        fs.User.WithName("Olivia Owner"),
		Collaborator: fs.User.WithName("Colin Collaborator"),
	}
	s.Project = fs.Project.Create(s.Owner.ID)
	s.Document = fs.Document.Create(s.Project.ID, s.Owner.ID)
	s.AICodebook = fs.Codebook.AIGenerated(s.Project.ID, s.Collaborator.ID)
	s.Code = fs.Code.Create(s.Project.ID, s.AICodebook.ID, s.Collaborator.ID, "trust")

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, v := range []interface{}{s.Owner, s.Collaborator, s.Project} {
			if err := tx.Create(v).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(s.Project).Association("Collaborators").Append(s.Collaborator); err != nil {
			return err
		}
		for _, v := range []interface{}{s.Document, s.AICodebook, s.Code} {
			if err := tx.Create(v).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
