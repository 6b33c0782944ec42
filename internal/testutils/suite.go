package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"thematic-analysis-backend/internal/config"
	"thematic-analysis-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

// tables in truncation order, dependents first
var cleanupTables = []string{
	"code_assignments",
	"annotations",
	"codes",
	"themes",
	"codebooks",
	"documents",
	"project_collaborators",
	"projects",
	"users",
}

// pgContainer is the Postgres instance shared by every integration suite in the test binary.
type pgContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var (
	containerOnce sync.Once
	containerErr  error
	container     *pgContainer
)

// BaseTestSuite hands a suite the migrated database and a matching config.
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { container, containerErr = startPGContainer() })
	if containerErr != nil {
		t.Fatalf("integration database unavailable: %v", containerErr)
	}
	return &BaseTestSuite{DB: container.db, Config: container.cfg}
}

// CleanupSharedContainer closes the connection pool and purges the container.
// Call it from TestMain after m.Run.
func CleanupSharedContainer() {
	if container == nil {
		return
	}
	if sqlDB, err := container.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	name := container.resource.Container.Name
	if err := container.pool.Purge(container.resource); err != nil {
		log.Printf("failed to purge postgres container %s: %v", name, err)
	} else {
		log.Printf("purged postgres container %s", name)
	}
	container = nil
}

// TeardownTestSuite leaves the container running for the next suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every application table that exists.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	s.DB.Exec(`SET session_replication_role = replica;`)
	for _, table := range cleanupTables {
		if migrator.HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q RESTART IDENTITY CASCADE;`, table))
		}
	}
	s.DB.Exec(`SET session_replication_role = DEFAULT;`)
}

func startPGContainer() (*pgContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("docker unavailable: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run postgres: %w", err)
	}

	c := &pgContainer{pool: pool, resource: resource}
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error { return c.connect(dsn) }); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	c.cfg = &config.Config{
		DatabaseURL:    dsn,
		Port:           "8080",
		LogLevel:       "debug",
		Environment:    "test",
		JWTSecret:      "integration-test-secret",
		JWTTokenTTLMin: 60,
		LLMRateLimit:   "1000-M",
	}
	log.Printf("postgres ready at %s with tables %v", dsn, publicTables(c.db))
	return c, nil
}

// connect succeeds once the server accepts connections and the schema is migrated.
func (c *pgContainer) connect(dsn string) error {
	raw, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer raw.Close()
	if err := raw.Ping(); err != nil {
		return err
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return err
	}
	c.db = db
	return nil
}

func publicTables(db *gorm.DB) []string {
	var names []string
	db.Raw(`SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`).Scan(&names)
	return names
}
