package handlers

import (
	"net/http"

	"thematic-analysis-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AIGenerationHandler handles HTTP requests that call the generation service
type AIGenerationHandler struct {
	themeService  service.ThemeGenerationServiceInterface
	reportService service.ReportGenerationServiceInterface
}

// NewAIGenerationHandler creates a new AI generation handler
func NewAIGenerationHandler(themeService service.ThemeGenerationServiceInterface, reportService service.ReportGenerationServiceInterface) *AIGenerationHandler {
	return &AIGenerationHandler{
		themeService:  themeService,
		reportService: reportService,
	}
}

// GenerateThemes handles POST /ai/generate-themes
// @Summary Generate a theme from code assignments
// @Description Send the eligible assignments (created by the caller or in a project the caller owns, all in one project) to the generation service and persist the returned theme. A failing generation call yields an empty list.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body service.GenerateThemesRequest true "Code assignment ids"
// @Success 200 {array} service.ThemeGenerationResult "Generated themes"
// @Failure 400 {object} APIError "No eligible assignments or assignments span several projects"
// @Failure 401 {object} APIError "Authentication required"
// @Failure 500 {object} APIError "Internal server error"
// @Security BearerAuth
// @Router /ai/generate-themes [post]
func (h *AIGenerationHandler) GenerateThemes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.GenerateThemesRequest
	if !bindJSON(c, &req) {
		return
	}

	themes, err := h.themeService.GenerateThemes(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, themes)
}

// GenerateReport handles POST /ai/generate-report
// @Summary Generate the project report
// @Description Send the codes and themes of the eligible assignments to the generation service and store the returned report on their project
// @Tags ai
// @Accept json
// @Produce json
// @Param request body service.GenerateReportRequest true "Code assignment ids"
// @Success 200 {object} service.ReportGenerationResult "Report generated"
// @Failure 400 {object} APIError "No eligible assignments or assignments span several projects"
// @Failure 401 {object} APIError "Authentication required"
// @Failure 429 {object} APIError "Generation rate limit exceeded"
// @Failure 502 {object} APIError "Generation service failed"
// @Failure 500 {object} APIError "Internal server error"
// @Security BearerAuth
// @Router /ai/generate-report [post]
func (h *AIGenerationHandler) GenerateReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.GenerateReportRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.reportService.GenerateReport(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
