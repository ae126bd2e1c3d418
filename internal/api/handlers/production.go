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

// ProductionHandler handles HTTP requests for production operations
type ProductionHandler struct {
	productionService service.ProductionServiceInterface
}

// NewProductionHandler creates a new production handler
func NewProductionHandler(productionService service.ProductionServiceInterface) *ProductionHandler {
	return &ProductionHandler{
		productionService: productionService,
	}
}

// CreateProduction handles POST /productions
// @Summary Create a new production
// @Description Create a new production with optional shoot-day logistics
// @Tags productions
// @Accept json
// @Produce json
// @Param production body service.CreateProductionRequest true "Production data"
// @Success 201 {object} service.ProductionResponse "Successfully created production"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions [post]
func (h *ProductionHandler) CreateProduction(c *gin.Context) {
	var req service.CreateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	production, err := h.productionService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, production)
}

// GetProduction handles GET /productions/:id
// @Summary Get production by ID
// @Description Get a specific production by its UUID
// @Tags productions
// @Accept json
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Success 200 {object} service.ProductionResponse "Successfully retrieved production"
// @Failure 400 {object} map[string]interface{} "Invalid production ID"
// @Failure 404 {object} map[string]interface{} "Production not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id} [get]
func (h *ProductionHandler) GetProduction(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	production, err := h.productionService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, production)
}

// ListProductions handles GET /productions
// @Summary List productions
// @Description Get all productions with pagination, most recently created first
// @Tags productions
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.ProductionListResponse "Successfully retrieved productions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions [get]
func (h *ProductionHandler) ListProductions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	productions, err := h.productionService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, productions)
}

// UpdateProduction handles PUT /productions/:id
// @Summary Update production
// @Description Update an existing production by ID
// @Tags productions
// @Accept json
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Param production body service.UpdateProductionRequest true "Updated production data"
// @Success 200 {object} service.ProductionResponse "Successfully updated production"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Production not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id} [put]
func (h *ProductionHandler) UpdateProduction(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	var req service.UpdateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	production, err := h.productionService.Update(id, &req)
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

	c.JSON(http.StatusOK, production)
}
