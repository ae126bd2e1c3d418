package handlers

import (
	"errors"
	"net/http"

	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleItemHandler handles HTTP requests for schedule item operations
type ScheduleItemHandler struct {
	scheduleService service.ScheduleItemServiceInterface
}

// NewScheduleItemHandler creates a new schedule item handler
func NewScheduleItemHandler(scheduleService service.ScheduleItemServiceInterface) *ScheduleItemHandler {
	return &ScheduleItemHandler{
		scheduleService: scheduleService,
	}
}

// GetSchedule handles GET /productions/:id/schedule-items
// @Summary Get a production's schedule
// @Description Get all schedule items for a production ordered by start time
// @Tags schedule-items
// @Accept json
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Success 200 {object} service.ScheduleListResponse "Successfully retrieved schedule"
// @Failure 400 {object} map[string]interface{} "Invalid production ID"
// @Failure 404 {object} map[string]interface{} "Production not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id}/schedule-items [get]
func (h *ScheduleItemHandler) GetSchedule(c *gin.Context) {
	idStr := c.Param("id")
	productionID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	schedule, err := h.scheduleService.GetByProduction(productionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// CreateScheduleItem handles POST /productions/:id/schedule-items
// @Summary Create a schedule item
// @Description Add a schedule item to a production's shoot-day timeline
// @Tags schedule-items
// @Accept json
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Param item body service.CreateScheduleItemRequest true "Schedule item data"
// @Success 201 {object} service.ScheduleItemResponse "Successfully created schedule item"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Production not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id}/schedule-items [post]
func (h *ScheduleItemHandler) CreateScheduleItem(c *gin.Context) {
	idStr := c.Param("id")
	productionID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	var req service.CreateScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProductionID = productionID

	item, err := h.scheduleService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateScheduleItem handles PUT /schedule-items/:id
// @Summary Update a schedule item
// @Description Update an existing schedule item by ID
// @Tags schedule-items
// @Accept json
// @Produce json
// @Param id path string true "Schedule item ID (UUID)"
// @Param item body service.UpdateScheduleItemRequest true "Updated schedule item data"
// @Success 200 {object} service.ScheduleItemResponse "Successfully updated schedule item"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Schedule item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-items/{id} [put]
func (h *ScheduleItemHandler) UpdateScheduleItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule item ID"})
		return
	}

	var req service.UpdateScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.scheduleService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrScheduleItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteScheduleItem handles DELETE /schedule-items/:id
// @Summary Delete a schedule item
// @Description Remove a schedule item from its production's timeline
// @Tags schedule-items
// @Accept json
// @Produce json
// @Param id path string true "Schedule item ID (UUID)"
// @Success 204 "Successfully deleted schedule item"
// @Failure 400 {object} map[string]interface{} "Invalid schedule item ID"
// @Failure 404 {object} map[string]interface{} "Schedule item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /schedule-items/{id} [delete]
func (h *ScheduleItemHandler) DeleteScheduleItem(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule item ID"})
		return
	}

	if err := h.scheduleService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrScheduleItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ApplyTemplate handles POST /productions/:id/apply-template
// @Summary Apply a schedule template
// @Description Replace a production's schedule with items expanded from a template. When the schedule is not empty the request must set confirm_replace.
// @Tags schedule-items
// @Accept json
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Param request body service.ApplyTemplateRequest true "Template application request"
// @Success 200 {object} service.ScheduleListResponse "Schedule after template expansion"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Production or template not found"
// @Failure 409 {object} map[string]interface{} "Schedule not empty and replacement not confirmed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id}/apply-template [post]
func (h *ScheduleItemHandler) ApplyTemplate(c *gin.Context) {
	idStr := c.Param("id")
	productionID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	var req service.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.scheduleService.ApplyTemplate(productionID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductionNotFound) || errors.Is(err, apperrors.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsConflict(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedule)
}
