package handlers

import (
	"errors"
	"net/http"

	"thematic-analysis-backend/internal/auth"
	apperrors "thematic-analysis-backend/internal/errors"
	"thematic-analysis-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// APIError is the error body returned by every API endpoint
type APIError struct {
	Error      string   `json:"error" example:"validation_error"`
	Message    string   `json:"message" example:"assignments must belong to one project"`
	MissingIDs []string `json:"missing_ids,omitempty"`
}

// currentUserID returns the authenticated user's id, writing a 401 when it is missing
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrUserIDNotInContext)
		return uuid.Nil, false
	}
	return userID, true
}

// bindJSON decodes the request body, writing a 400 when it is malformed
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, APIError{Error: "validation_error", Message: "Invalid request body: " + err.Error()})
		return false
	}
	return true
}

// parseUUIDParam reads a path parameter as a UUID, writing a 400 when it is not one
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIError{Error: "validation_error", Message: "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps a service error onto its HTTP status and machine readable kind.
// Unexpected errors are logged and answered with a generic message.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, APIError{Error: "validation_error", Message: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, APIError{Error: "not_found", Message: err.Error(), MissingIDs: apperrors.MissingIDs(err)})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, APIError{Error: "authentication_required", Message: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, APIError{Error: "access_denied", Message: err.Error()})
	case errors.Is(err, apperrors.ErrGenerationRateLimited):
		c.JSON(http.StatusTooManyRequests, APIError{Error: "rate_limited", Message: "Generation rate limit exceeded, please retry later"})
	case apperrors.IsGeneration(err):
		logger.WithContext(c.Request.Context()).WithError(err).Warn("generation failed")
		c.JSON(http.StatusBadGateway, APIError{Error: "generation_error", Message: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, APIError{Error: "internal_error", Message: "An unexpected error occurred"})
	}
}
