package handlers

import (
	"net/http"

	"thematic-analysis-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CodeAssignmentHandler handles HTTP requests for creating and submitting code assignments
type CodeAssignmentHandler struct {
	assignmentService service.CodeAssignmentServiceInterface
}

// NewCodeAssignmentHandler creates a new code assignment handler
func NewCodeAssignmentHandler(assignmentService service.CodeAssignmentServiceInterface) *CodeAssignmentHandler {
	return &CodeAssignmentHandler{
		assignmentService: assignmentService,
	}
}

// CreateAssignment handles POST /code-assignments
// @Summary Create a code assignment
// @Description Tag a span of a project document with a project code. The assignment starts pending and unsubmitted.
// @Tags code-assignments
// @Accept json
// @Produce json
// @Param request body service.CreateCodeAssignmentRequest true "Assignment data"
// @Success 201 {object} service.CodeAssignmentResponse "Assignment created"
// @Failure 400 {object} APIError "Invalid request"
// @Failure 401 {object} APIError "Authentication required"
// @Failure 403 {object} APIError "Access denied"
// @Failure 404 {object} APIError "Document or code not found"
// @Failure 500 {object} APIError "Internal server error"
// @Security BearerAuth
// @Router /code-assignments [post]
func (h *CodeAssignmentHandler) CreateAssignment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateCodeAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// SubmitAssignments handles POST /code-assignments/submit
// @Summary Submit code assignments
// @Description Mark the caller's own assignments as submitted, or withdraw them with submitted=false
// @Tags code-assignments
// @Accept json
// @Produce json
// @Param request body service.SubmitAssignmentsRequest true "Assignment ids and submission flag"
// @Success 200 {object} service.SubmitResult "Submission updated"
// @Failure 400 {object} APIError "Invalid request"
// @Failure 401 {object} APIError "Authentication required"
// @Failure 403 {object} APIError "Only the author can submit an assignment"
// @Failure 404 {object} APIError "Some assignments do not exist"
// @Failure 500 {object} APIError "Internal server error"
// @Security BearerAuth
// @Router /code-assignments/submit [post]
func (h *CodeAssignmentHandler) SubmitAssignments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.SubmitAssignmentsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.assignmentService.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
