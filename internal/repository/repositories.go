package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Repositories groups the repositories that share one database handle
type Repositories struct {
	Users           UserRepositoryInterface
	Projects        ProjectRepositoryInterface
	Documents       DocumentRepositoryInterface
	Codebooks       CodebookRepositoryInterface
	Codes           CodeRepositoryInterface
	CodeAssignments CodeAssignmentRepositoryInterface
	Annotations     AnnotationRepositoryInterface
	Themes          ThemeRepositoryInterface
}

// NewRepositories creates all repositories on top of db, which may be a transaction
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(db),
		Projects:        NewProjectRepository(db),
		Documents:       NewDocumentRepository(db),
		Codebooks:       NewCodebookRepository(db),
		Codes:           NewCodeRepository(db),
		CodeAssignments: NewCodeAssignmentRepository(db),
		Annotations:     NewAnnotationRepository(db),
		Themes:          NewThemeRepository(db),
	}
}

// GormUnitOfWork implements UnitOfWork on a gorm connection
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new gorm backed unit of work
func NewUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Transaction runs fn inside a read-write transaction
func (u *GormUnitOfWork) Transaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// ReadOnly runs fn inside a read-only transaction so that every query sees the same snapshot
func (u *GormUnitOfWork) ReadOnly(ctx context.Context, fn func(repos *Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

var _ UnitOfWork = (*GormUnitOfWork)(nil)
