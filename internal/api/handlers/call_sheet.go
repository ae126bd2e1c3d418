package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CallSheetHandler handles HTTP requests for call sheet assembly and export
type CallSheetHandler struct {
	callSheetService service.CallSheetServiceInterface
}

// NewCallSheetHandler creates a new call sheet handler
func NewCallSheetHandler(callSheetService service.CallSheetServiceInterface) *CallSheetHandler {
	return &CallSheetHandler{
		callSheetService: callSheetService,
	}
}

// GetCallSheet handles GET /productions/:id/call-sheet
// @Summary Get a production's call sheet
// @Description Assemble the call sheet document for a production from current state
// @Tags call-sheet
// @Accept json
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Success 200 {object} callsheet.Document "Assembled call sheet"
// @Failure 400 {object} map[string]interface{} "Invalid production ID"
// @Failure 404 {object} map[string]interface{} "Production not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id}/call-sheet [get]
func (h *CallSheetHandler) GetCallSheet(c *gin.Context) {
	idStr := c.Param("id")
	productionID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	doc, err := h.callSheetService.Assemble(productionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ExportCallSheetPDF handles GET /productions/:id/call-sheet.pdf
// @Summary Download a production's call sheet as PDF
// @Description Render the call sheet as a PDF attachment. Export errors abort the response entirely.
// @Tags call-sheet
// @Accept json
// @Produce application/pdf
// @Param id path string true "Production ID (UUID)"
// @Success 200 {file} binary "Call sheet PDF"
// @Failure 400 {object} map[string]interface{} "Invalid production ID"
// @Failure 404 {object} map[string]interface{} "Production not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /productions/{id}/call-sheet.pdf [get]
func (h *CallSheetHandler) ExportCallSheetPDF(c *gin.Context) {
	idStr := c.Param("id")
	productionID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid production ID"})
		return
	}

	data, fileName, err := h.callSheetService.ExportPDF(productionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", data)
}
