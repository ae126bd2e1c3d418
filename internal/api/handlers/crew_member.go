package handlers

import (
	"errors"
	"net/http"

	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CrewMemberHandler handles HTTP requests for crew member operations
type CrewMemberHandler struct {
	crewService service.CrewMemberServiceInterface
}

// NewCrewMemberHandler creates a new crew member handler
func NewCrewMemberHandler(crewService service.CrewMemberServiceInterface) *CrewMemberHandler {
	return &CrewMemberHandler{
		crewService: crewService,
	}
}

// GetCrew handles GET /productions/:id/crew
// @Summary Get a production's crew roster
// @Description Get all crew members for a production in roster order
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Success 200 {object} service.CrewListResponse "Successfully retrieved crew"
// @Failure 400 {object} map[string]interface{} "Invalid production ID"
// @Failure 404 {object} map[string]interface{} "Production not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id}/crew [get]
func (h *CrewMemberHandler) GetCrew(c *gin.Context) {
	idStr := c.Param("id")
	productionID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	crew, err := h.crewService.GetByProduction(productionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, crew)
}

// CreateCrewMember handles POST /productions/:id/crew
// @Summary Add a crew member
// @Description Add a crew member to a production's roster
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Param member body service.CreateCrewMemberRequest true "Crew member data"
// @Success 201 {object} service.CrewMemberResponse "Successfully created crew member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Production not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id}/crew [post]
func (h *CrewMemberHandler) CreateCrewMember(c *gin.Context) {
	idStr := c.Param("id")
	productionID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	var req service.CreateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ProductionID = productionID

	member, err := h.crewService.Create(&req)
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

	c.JSON(http.StatusCreated, member)
}

// UpdateCrewMember handles PUT /crew/:id
// @Summary Update a crew member
// @Description Update an existing crew member by ID
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Crew member ID (UUID)"
// @Param member body service.UpdateCrewMemberRequest true "Updated crew member data"
// @Success 200 {object} service.CrewMemberResponse "Successfully updated crew member"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Crew member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /crew/{id} [put]
func (h *CrewMemberHandler) UpdateCrewMember(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid crew member ID"})
		return
	}

	var req service.UpdateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.crewService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCrewMemberNotFound) {
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

	c.JSON(http.StatusOK, member)
}

// DeleteCrewMember handles DELETE /crew/:id
// @Summary Remove a crew member
// @Description Remove a crew member from their production's roster
// @Tags crew
// @Accept json
// @Produce json
// @Param id path string true "Crew member ID (UUID)"
// @Success 204 "Successfully deleted crew member"
// @Failure 400 {object} map[string]interface{} "Invalid crew member ID"
// @Failure 404 {object} map[string]interface{} "Crew member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /crew/{id} [delete]
func (h *CrewMemberHandler) DeleteCrewMember(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid crew member ID"})
		return
	}

	if err := h.crewService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrCrewMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
