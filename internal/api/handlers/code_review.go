package handlers

import (
	"net/http"

	"thematic-analysis-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CodeReviewHandler handles HTTP requests for reviewing code assignments
type CodeReviewHandler struct {
	reviewService service.CodeReviewServiceInterface
}

// NewCodeReviewHandler creates a new code review handler
func NewCodeReviewHandler(reviewService service.CodeReviewServiceInterface) *CodeReviewHandler {
	return &CodeReviewHandler{
		reviewService: reviewService,
	}
}

// ReviewAssignments handles POST /code-assignments/review
// @Summary Review code assignments
// @Description Set one status on every listed assignment. All assignments must belong to one project; reviewing someone else's assignment requires project ownership. Newly accepted codes move into the reviewer's default codebook.
// @Tags code-assignments
// @Accept json
// @Produce json
// @Param request body service.ReviewAssignmentsRequest true "Assignments and target status"
// @Success 200 {object} service.ReviewResult "Assignments updated"
// @Failure 400 {object} APIError "Invalid request or assignments span several projects"
// @Failure 401 {object} APIError "Authentication required"
// @Failure 403 {object} APIError "Access denied"
// @Failure 404 {object} APIError "Some assignments do not exist"
// @Failure 500 {object} APIError "Internal server error"
// @Security BearerAuth
// @Router /code-assignments/review [post]
func (h *CodeReviewHandler) ReviewAssignments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.ReviewAssignmentsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.reviewService.ReviewAssignments(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BulkReview handles POST /code-assignments/bulk-review
// @Summary Accept and reject code assignments in one call
// @Description Accept one list of assignments and reject another within a single transaction
// @Tags code-assignments
// @Accept json
// @Produce json
// @Param request body service.BulkReviewRequest true "Accepted and rejected assignment ids"
// @Success 200 {object} service.BulkReviewResult "Assignments updated"
// @Failure 400 {object} APIError "Invalid request"
// @Failure 401 {object} APIError "Authentication required"
// @Failure 403 {object} APIError "Access denied"
// @Failure 404 {object} APIError "Some assignments do not exist"
// @Failure 500 {object} APIError "Internal server error"
// @Security BearerAuth
// @Router /code-assignments/bulk-review [post]
func (h *CodeReviewHandler) BulkReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.BulkReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.reviewService.BulkReview(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCodebookAssignments handles GET /codebooks/:id/assignments
// @Summary List the assignments of an AI generated codebook
// @Description List the caller's assignments made with codes of the codebook. The summary always counts every status regardless of the filter.
// @Tags codebooks
// @Accept json
// @Produce json
// @Param id path string true "Codebook ID (UUID)"
// @Param status query string false "Status filter" Enums(pending, accepted, rejected)
// @Success 200 {object} service.CodebookAssignmentsResponse "Assignments of the codebook"
// @Failure 400 {object} APIError "Invalid codebook id, status filter or codebook not AI generated"
// @Failure 401 {object} APIError "Authentication required"
// @Failure 403 {object} APIError "Access denied"
// @Failure 500 {object} APIError "Internal server error"
// @Security BearerAuth
// @Router /codebooks/{id}/assignments [get]
func (h *CodeReviewHandler) GetCodebookAssignments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	codebookID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.reviewService.GetCodebookAssignments(c.Request.Context(), userID, codebookID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
