package service

import (
	"errors"
	"fmt"
	"time"

	"shoot-planner-backend/internal/callsheet"
	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/logger"
	"shoot-planner-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallSheetService assembles and exports call-sheet documents
type CallSheetService struct {
	productionRepo repository.ProductionRepositoryInterface
	footer         string
	now            func() time.Time
}

// NewCallSheetService creates a new call sheet service
func NewCallSheetService(productionRepo repository.ProductionRepositoryInterface, footer string) *CallSheetService {
	return &CallSheetService{
		productionRepo: productionRepo,
		footer:         footer,
		now:            time.Now,
	}
}

// Assemble composes the call-sheet document for a production from current
// state. Assembly has no persisted effect.
func (s *CallSheetService) Assemble(productionID uuid.UUID) (*callsheet.Document, error) {
	production, err := s.productionRepo.GetWithFullDetails(productionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductionNotFound
		}
		return nil, fmt.Errorf("failed to get production: %w", err)
	}

	return callsheet.Assemble(production, production.CrewMembers, production.Looks, s.footer, s.now()), nil
}

// ExportPDF renders the assembled call sheet as a PDF. Any assembly or
// rendering error aborts the export; nothing is partially written.
func (s *CallSheetService) ExportPDF(productionID uuid.UUID) ([]byte, string, error) {
	doc, err := s.Assemble(productionID)
	if err != nil {
		return nil, "", err
	}

	data, err := callsheet.RenderPDF(doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to export call sheet: %w", err)
	}

	fileName := callsheet.FileName(doc.ProductionName)
	logger.New().WithProduction(productionID.String()).Infof("Exported call sheet %s (%d bytes)", fileName, len(data))

	return data, fileName, nil
}
