package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found.
// IDs is set by bulk operations and lists the identifiers that did not resolve.
type NotFoundError struct {
	Entity string
	IDs    []string
}

func (e *NotFoundError) Error() string {
	if len(e.IDs) > 0 {
		return fmt.Sprintf("%s not found: [%s]", e.Entity, strings.Join(e.IDs, ", "))
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in project"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a failed permission check (access denied)
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// GenerationError represents a failed or unusable response from the generation collaborator
type GenerationError struct {
	Service string
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Service != "" {
		return fmt.Sprintf("%s failed: %s", e.Service, msg)
	}
	return fmt.Sprintf("generation failed: %s", msg)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrProjectNotFound        = &NotFoundError{Entity: "project"}
	ErrDocumentNotFound       = &NotFoundError{Entity: "document"}
	ErrCodeNotFound           = &NotFoundError{Entity: "code"}
	ErrCodebookNotFound       = &NotFoundError{Entity: "codebook"}
	ErrCodeAssignmentNotFound = &NotFoundError{Entity: "code assignments"}
)

// Authorization Errors
var (
	ErrAccessDenied       = &AuthorizationError{Message: "access denied"}
	ErrUserIDNotInContext = &AuthenticationError{Message: "user id not found in context"}
)

// Business Logic Errors
var (
	ErrMixedProjects          = &ValidationError{Field: "assignment_ids", Message: "assignments must belong to one project"}
	ErrNoEligibleAssignments  = &ValidationError{Field: "code_assignment_ids", Message: "no valid code assignments found for the provided IDs"}
	ErrCodebookNotAIGenerated = &ValidationError{Field: "codebook_id", Message: "codebook is not AI-generated"}
	ErrGenerationRateLimited  = errors.New("generation rate limit exceeded")
)

// Configuration Errors
var (
	ErrLLMCredentialsNotSet = &ConfigurationError{Message: "LLM_API_KEY or LLM_OAUTH_CLIENT_ID must be set"}
	ErrPromptNotConfigured  = &ConfigurationError{Message: "no prompt configured for service"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsGeneration checks if an error is a GenerationError
func IsGeneration(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// MissingIDs returns the identifiers carried by a NotFoundError, if any
func MissingIDs(err error) []string {
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return notFoundErr.IDs
	}
	return nil
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewNotFoundIDsError creates a NotFoundError listing the missing identifiers
func NewNotFoundIDsError[T fmt.Stringer](entity string, ids []T) error {
	missing := make([]string, len(ids))
	for i, id := range ids {
		missing[i] = id.String()
	}
	return &NotFoundError{Entity: entity, IDs: missing}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewGenerationError creates a new GenerationError for a collaborator service
func NewGenerationError(service, message string, err error) error {
	return &GenerationError{Service: service, Message: message, Err: err}
}
