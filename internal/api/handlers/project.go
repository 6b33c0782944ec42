package handlers

import (
	"net/http"

	"thematic-analysis-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project data
type ProjectHandler struct {
	snapshotService service.ProjectSnapshotServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(snapshotService service.ProjectSnapshotServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		snapshotService: snapshotService,
	}
}

// GetComprehensiveData handles GET /projects/:id/comprehensive
// @Summary Get a project snapshot
// @Description Get the project with its members, documents, codes, the caller's assignments, annotations, themes and codebooks, and the submitted work visible to the caller. The owner sees every member's submissions and the report; a collaborator sees only their own submissions.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectSnapshot "Project snapshot"
// @Failure 400 {object} APIError "Invalid project id"
// @Failure 401 {object} APIError "Authentication required"
// @Failure 403 {object} APIError "Access denied"
// @Failure 404 {object} APIError "Project not found"
// @Failure 500 {object} APIError "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/comprehensive [get]
func (h *ProjectHandler) GetComprehensiveData(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	snapshot, err := h.snapshotService.GetComprehensiveData(c.Request.Context(), userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusNotFound, APIError{Error: "not_found", Message: "Project not found"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
