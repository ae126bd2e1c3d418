package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleTemplateHandler handles HTTP requests for the template catalog
type ScheduleTemplateHandler struct {
	templateService service.ScheduleTemplateServiceInterface
}

// NewScheduleTemplateHandler creates a new schedule template handler
func NewScheduleTemplateHandler(templateService service.ScheduleTemplateServiceInterface) *ScheduleTemplateHandler {
	return &ScheduleTemplateHandler{
		templateService: templateService,
	}
}

// ListTemplates handles GET /templates
// @Summary List schedule templates
// @Description Get the catalog of schedule templates with pagination
// @Tags templates
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.TemplateListResponse "Successfully retrieved templates"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /templates [get]
func (h *ScheduleTemplateHandler) ListTemplates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	templates, err := h.templateService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, templates)
}

// GetTemplate handles GET /templates/:id
// @Summary Get a schedule template
// @Description Get a template with its ordered blueprint items
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Success 200 {object} service.TemplateResponse "Successfully retrieved template"
// @Failure 400 {object} map[string]interface{} "Invalid template ID"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /templates/{id} [get]
func (h *ScheduleTemplateHandler) GetTemplate(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template ID"})
		return
	}

	template, err := h.templateService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, template)
}
