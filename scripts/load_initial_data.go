package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"thematic-analysis-backend/internal/auth"
	"thematic-analysis-backend/internal/config"
	"thematic-analysis-backend/internal/database"
	"thematic-analysis-backend/internal/database/models"
	"thematic-analysis-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type DocumentData struct {
	Name           string `yaml:"name"`
	FileURL        string `yaml:"file_url"`
	ContentType    string `yaml:"content_type"`
	CreatedByEmail string `yaml:"created_by_email"`
}

type CodeData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

type CodebookData struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	OwnerEmail  string     `yaml:"owner_email"`
	AIGenerated bool       `yaml:"ai_generated"`
	Default     bool       `yaml:"default"`
	Codes       []CodeData `yaml:"codes"`
}

type AssignmentData struct {
	Document    string `yaml:"document"`
	Codebook    string `yaml:"codebook"`
	Code        string `yaml:"code"`
	AuthorEmail string `yaml:"author_email"`
	StartChar   int    `yaml:"start_char"`
	EndChar     int    `yaml:"end_char"`
	Text        string `yaml:"text"`
	Status      string `yaml:"status"`
	Submitted   bool   `yaml:"submitted"`
}

type ProjectData struct {
	Title           string           `yaml:"title"`
	Description     string           `yaml:"description"`
	ResearchDetails string           `yaml:"research_details"`
	OwnerEmail      string           `yaml:"owner_email"`
	Collaborators   []string         `yaml:"collaborators"`
	Documents       []DocumentData   `yaml:"documents"`
	Codebooks       []CodebookData   `yaml:"codebooks"`
	Assignments     []AssignmentData `yaml:"assignments"`
}

// YAML file structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users, err := loadDataFromYAMLFiles(db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")

	if cfg.IsProduction() {
		return
	}
	if err := printDevelopmentTokens(cfg, users); err != nil {
		log.Fatalf("Failed to issue development tokens: %v", err)
	}
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) ([]*models.User, error) {
	var usersFile UsersFile
	if err := walkYAML(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		usersFile.Users = append(usersFile.Users, file.Users...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var projectsFile ProjectsFile
	if err := walkYAML(dataDir, "projects", func(data []byte) error {
		var file ProjectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		projectsFile.Projects = append(projectsFile.Projects, file.Projects...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	userMap := make(map[string]*models.User)
	users := make([]*models.User, 0, len(usersFile.Users))
	created := 0
	for _, userData := range usersFile.Users {
		user, isNew, err := createUser(db, userData)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		users = append(users, user)
		if isNew {
			created++
		}
	}
	log.Printf("Users: %d created, %d total", created, len(usersFile.Users))

	created = 0
	for _, projectData := range projectsFile.Projects {
		isNew, err := createProject(db, projectData, userMap)
		if err != nil {
			return nil, fmt.Errorf("failed to create project %s: %w", projectData.Title, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("Projects: %d created, %d total", created, len(projectsFile.Projects))

	return users, nil
}

func walkYAML(dataDir, kind string, handle func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return handle(data)
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	users := repository.NewUserRepository(db)
	user, err := users.GetByEmail(userData.Email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	user = &models.User{Name: userData.Name, Email: userData.Email}
	if err := users.Create(user); err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return user, true, nil
}

// createProject creates a project with its documents, codebooks, codes and assignments.
// A project that already exists for the owner is left untouched.
func createProject(db *gorm.DB, projectData ProjectData, userMap map[string]*models.User) (bool, error) {
	owner, ok := userMap[projectData.OwnerEmail]
	if !ok {
		return false, fmt.Errorf("unknown owner %s", projectData.OwnerEmail)
	}

	var existing models.Project
	err := db.Where("title = ? AND owner_id = ?", projectData.Title, owner.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query project: %w", err)
	}

	return true, db.Transaction(func(tx *gorm.DB) error {
		projects := repository.NewProjectRepository(tx)
		project := models.Project{
			OwnerID:         owner.ID,
			Title:           projectData.Title,
			Description:     projectData.Description,
			ResearchDetails: projectData.ResearchDetails,
		}
		if err := projects.Create(&project); err != nil {
			return err
		}

		for _, email := range projectData.Collaborators {
			collaborator, ok := userMap[email]
			if !ok {
				return fmt.Errorf("unknown collaborator %s", email)
			}
			if err := projects.AddCollaborator(project.ID, collaborator.ID); err != nil {
				return err
			}
		}

		documents := make(map[string]*models.Document)
		for _, docData := range projectData.Documents {
			createdBy := owner
			if u, ok := userMap[docData.CreatedByEmail]; ok {
				createdBy = u
			}
			doc := &models.Document{
				ProjectID:   project.ID,
				Name:        docData.Name,
				FileURL:     docData.FileURL,
				ContentType: docData.ContentType,
				CreatedByID: createdBy.ID,
			}
			if err := tx.Create(doc).Error; err != nil {
				return err
			}
			documents[docData.Name] = doc
		}

		codes := make(map[string]*models.Code)
		for _, cbData := range projectData.Codebooks {
			cbOwner, ok := userMap[cbData.OwnerEmail]
			if !ok {
				return fmt.Errorf("unknown codebook owner %s", cbData.OwnerEmail)
			}
			codebook := &models.Codebook{
				ProjectID:     project.ID,
				UserID:        cbOwner.ID,
				Name:          cbData.Name,
				Description:   cbData.Description,
				IsAIGenerated: cbData.AIGenerated,
				IsDefault:     cbData.Default,
			}
			if err := tx.Create(codebook).Error; err != nil {
				return err
			}
			for _, codeData := range cbData.Codes {
				code := &models.Code{
					ProjectID:   project.ID,
					CodebookID:  codebook.ID,
					CreatedByID: cbOwner.ID,
					Name:        codeData.Name,
					Description: codeData.Description,
					Color:       codeData.Color,
				}
				if err := tx.Create(code).Error; err != nil {
					return err
				}
				codes[cbData.Name+"/"+codeData.Name] = code
			}
		}

		for _, aData := range projectData.Assignments {
			doc, ok := documents[aData.Document]
			if !ok {
				return fmt.Errorf("unknown document %s", aData.Document)
			}
			code, ok := codes[aData.Codebook+"/"+aData.Code]
			if !ok {
				return fmt.Errorf("unknown code %s/%s", aData.Codebook, aData.Code)
			}
			author, ok := userMap[aData.AuthorEmail]
			if !ok {
				return fmt.Errorf("unknown author %s", aData.AuthorEmail)
			}
			status := models.AssignmentStatus(aData.Status)
			if status == "" {
				status = models.AssignmentStatusPending
			}
			if !status.IsValid() {
				return fmt.Errorf("invalid status %q", aData.Status)
			}
			assignment := &models.CodeAssignment{
				ProjectID:    project.ID,
				DocumentID:   doc.ID,
				CodeID:       code.ID,
				StartChar:    aData.StartChar,
				EndChar:      aData.EndChar,
				TextSnapshot: aData.Text,
				Status:       status,
				IsSubmitted:  aData.Submitted,
				CreatedByID:  author.ID,
			}
			if err := tx.Create(assignment).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func printDevelopmentTokens(cfg *config.Config, users []*models.User) error {
	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  24 * time.Hour,
	})
	if err != nil {
		return err
	}

	log.Println("Development bearer tokens (valid for 24h):")
	for _, user := range users {
		token, err := authService.GenerateJWT(user)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n  %s\n", user.Name, user.Email, token)
	}
	return nil
}
