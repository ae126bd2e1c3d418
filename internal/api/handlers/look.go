package handlers

import (
	"errors"
	"net/http"

	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LookHandler handles HTTP requests for look operations
type LookHandler struct {
	lookService service.LookServiceInterface
}

// NewLookHandler creates a new look handler
func NewLookHandler(lookService service.LookServiceInterface) *LookHandler {
	return &LookHandler{
		lookService: lookService,
	}
}

// GetLooks handles GET /productions/:id/looks
// @Summary Get a production's looks
// @Description Get all looks for a production in gallery order
// @Tags looks
// @Accept json
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Success 200 {object} service.LookListResponse "Successfully retrieved looks"
// @Failure 400 {object} map[string]interface{} "Invalid production ID"
// @Failure 404 {object} map[string]interface{} "Production not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id}/looks [get]
func (h *LookHandler) GetLooks(c *gin.Context) {
	idStr := c.Param("id")
	productionID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	looks, err := h.lookService.GetByProduction(productionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, looks)
}

// CreateLook handles POST /productions/:id/looks
// @Summary Create a look
// @Description Add a look to the end of a production's gallery
// @Tags looks
// @Accept json
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Param look body service.CreateLookRequest true "Look data"
// @Success 201 {object} service.LookResponse "Successfully created look"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Production not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id}/looks [post]
func (h *LookHandler) CreateLook(c *gin.Context) {
	idStr := c.Param("id")
	productionID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	var req service.CreateLookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProductionID = productionID

	look, err := h.lookService.Create(&req)
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

	c.JSON(http.StatusCreated, look)
}

// UpdateLook handles PUT /looks/:id
// @Summary Update a look
// @Description Update an existing look by ID
// @Tags looks
// @Accept json
// @Produce json
// @Param id path string true "Look ID (UUID)"
// @Param look body service.UpdateLookRequest true "Updated look data"
// @Success 200 {object} service.LookResponse "Successfully updated look"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Look not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /looks/{id} [put]
func (h *LookHandler) UpdateLook(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid look ID"})
		return
	}

	var req service.UpdateLookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	look, err := h.lookService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrLookNotFound) {
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

	c.JSON(http.StatusOK, look)
}

// DeleteLook handles DELETE /looks/:id
// @Summary Delete a look
// @Description Remove a look from its production's gallery
// @Tags looks
// @Accept json
// @Produce json
// @Param id path string true "Look ID (UUID)"
// @Success 204 "Successfully deleted look"
// @Failure 400 {object} map[string]interface{} "Invalid look ID"
// @Failure 404 {object} map[string]interface{} "Look not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /looks/{id} [delete]
func (h *LookHandler) DeleteLook(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid look ID"})
		return
	}

	if err := h.lookService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrLookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// MoveLook handles POST /looks/:id/move
// @Summary Move a look within its gallery
// @Description Swap a look with its neighbor in the given direction. Moves past either end leave the order unchanged.
// @Tags looks
// @Accept json
// @Produce json
// @Param id path string true "Look ID (UUID)"
// @Param request body service.MoveLookRequest true "Move direction (up or down)"
// @Success 200 {object} service.LookListResponse "Gallery order after the move"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Look not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /looks/{id}/move [post]
func (h *LookHandler) MoveLook(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid look ID"})
		return
	}

	var req service.MoveLookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	looks, err := h.lookService.Move(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrLookNotFound) {
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

	c.JSON(http.StatusOK, looks)
}
