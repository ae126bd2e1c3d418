package service

import (
	"errors"
	"fmt"

	"shoot-planner-backend/internal/database/models"
	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/ordering"
	"shoot-planner-backend/internal/repository"
	"shoot-planner-backend/internal/timefmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleItemService handles business logic for shoot-day schedules,
// including seeding a schedule from a template.
type ScheduleItemService struct {
	repo           repository.ScheduleItemRepositoryInterface
	productionRepo repository.ProductionRepositoryInterface
	templateRepo   repository.ScheduleTemplateRepositoryInterface
	validator      *validator.Validate
}

// NewScheduleItemService creates a new schedule item service
func NewScheduleItemService(
	repo repository.ScheduleItemRepositoryInterface,
	productionRepo repository.ProductionRepositoryInterface,
	templateRepo repository.ScheduleTemplateRepositoryInterface,
	validator *validator.Validate,
) *ScheduleItemService {
	return &ScheduleItemService{
		repo:           repo,
		productionRepo: productionRepo,
		templateRepo:   templateRepo,
		validator:      validator,
	}
}

// CreateScheduleItemRequest represents the request to create a schedule item
type CreateScheduleItemRequest struct {
	ProductionID uuid.UUID               `json:"production_id" validate:"required"`
	Title        string                  `json:"title" validate:"required,min=1,max=200"`
	Description  string                  `json:"description,omitempty"`
	StartTime    string                  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime      string                  `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Category     models.ScheduleCategory `json:"category,omitempty"`
	Location     string                  `json:"location,omitempty" validate:"max=200"`
	Notes        string                  `json:"notes,omitempty"`
}

// UpdateScheduleItemRequest represents a field-level update to a schedule item
type UpdateScheduleItemRequest struct {
	Title       *string                  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string                  `json:"description,omitempty"`
	StartTime   *string                  `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime     *string                  `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Category    *models.ScheduleCategory `json:"category,omitempty"`
	Location    *string                  `json:"location,omitempty" validate:"omitempty,max=200"`
	Notes       *string                  `json:"notes,omitempty"`
}

// ApplyTemplateRequest represents the request to seed a production's
// schedule from a template. ConfirmReplace stands in for the user
// confirmation required when the current schedule is non-empty.
type ApplyTemplateRequest struct {
	TemplateID     uuid.UUID `json:"template_id" validate:"required"`
	ConfirmReplace bool      `json:"confirm_replace,omitempty"`
}

// ScheduleItemResponse represents the response for schedule item operations
type ScheduleItemResponse struct {
	ID            uuid.UUID               `json:"id"`
	ProductionID  uuid.UUID               `json:"production_id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description,omitempty"`
	StartTime     string                  `json:"start_time"`
	EndTime       string                  `json:"end_time,omitempty"`
	StartLabel    string                  `json:"start_label"`
	EndLabel      string                  `json:"end_label,omitempty"`
	Duration      string                  `json:"duration,omitempty"`
	Category      models.ScheduleCategory `json:"category"`
	Location      string                  `json:"location,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	SequenceIndex int                     `json:"sequence_index"`
	CreatedAt     string                  `json:"created_at"`
	UpdatedAt     string                  `json:"updated_at"`
}

// ScheduleListResponse represents a production's schedule in display order
type ScheduleListResponse struct {
	Items []ScheduleItemResponse `json:"items"`
	Total int                    `json:"total"`
}

// GetByProduction retrieves a production's schedule in start-time order
func (s *ScheduleItemService) GetByProduction(productionID uuid.UUID) (*ScheduleListResponse, error) {
	// Validate production exists
	if _, err := s.productionRepo.GetByID(productionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductionNotFound
		}
		return nil, fmt.Errorf("failed to verify production: %w", err)
	}

	items, err := s.repo.GetByProductionID(productionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule items: %w", err)
	}

	return s.toListResponse(items), nil
}

// Create creates a schedule item at the end of its production's sequence
func (s *ScheduleItemService) Create(req *CreateScheduleItemRequest) (*ScheduleItemResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	// Validate production exists
	if _, err := s.productionRepo.GetByID(req.ProductionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductionNotFound
		}
		return nil, fmt.Errorf("failed to verify production: %w", err)
	}

	category := req.Category
	if category == "" {
		category = models.ScheduleCategoryGeneral
	}
	if !category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}
	if req.EndTime != "" && req.EndTime < req.StartTime {
		return nil, apperrors.ErrInvalidTimeRange
	}

	// Next sequence index = max(existing)+1, 0 for an empty schedule
	siblings, err := s.repo.GetByProductionID(req.ProductionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule items: %w", err)
	}
	indices := make([]int, len(siblings))
	for i, sibling := range siblings {
		indices[i] = sibling.SequenceIndex
	}

	item := &models.ScheduleItem{
		ProductionID:  req.ProductionID,
		Title:         req.Title,
		Description:   req.Description,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Category:      category,
		Location:      req.Location,
		Notes:         req.Notes,
		SequenceIndex: ordering.NextIndex(indices),
	}

	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create schedule item: %w", err)
	}

	return s.toResponse(item), nil
}

// Update applies field-level edits to a schedule item
func (s *ScheduleItemService) Update(id uuid.UUID, req *UpdateScheduleItemRequest) (*ScheduleItemResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleItemNotFound
		}
		return nil, fmt.Errorf("failed to get schedule item: %w", err)
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.StartTime != nil {
		item.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		item.EndTime = *req.EndTime
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, apperrors.ErrInvalidCategory
		}
		item.Category = *req.Category
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if item.EndTime != "" && item.EndTime < item.StartTime {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update schedule item: %w", err)
	}

	return s.toResponse(item), nil
}

// Delete deletes a schedule item
func (s *ScheduleItemService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScheduleItemNotFound
		}
		return fmt.Errorf("failed to get schedule item: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete schedule item: %w", err)
	}

	return nil
}

// ApplyTemplate materializes a template's blueprints into the production's
// schedule. A non-empty schedule is only replaced when the request confirms
// it; the delete and insert run in a single transaction.
func (s *ScheduleItemService) ApplyTemplate(productionID uuid.UUID, req *ApplyTemplateRequest) (*ScheduleListResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	// Validate production exists
	if _, err := s.productionRepo.GetByID(productionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductionNotFound
		}
		return nil, fmt.Errorf("failed to verify production: %w", err)
	}

	template, err := s.templateRepo.GetWithBlueprints(req.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	if len(template.Blueprints) == 0 {
		return nil, apperrors.ErrEmptyTemplate
	}

	existing, err := s.repo.CountByProductionID(productionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count schedule items: %w", err)
	}
	if existing > 0 && !req.ConfirmReplace {
		return nil, apperrors.ErrScheduleNotEmpty
	}

	// Map blueprints 1:1; sequence index = position in the blueprint list
	items := make([]models.ScheduleItem, len(template.Blueprints))
	for i, blueprint := range template.Blueprints {
		category := blueprint.Category
		if category == "" {
			category = models.ScheduleCategoryGeneral
		}
		items[i] = models.ScheduleItem{
			ProductionID:  productionID,
			Title:         blueprint.Title,
			Description:   blueprint.Description,
			StartTime:     blueprint.StartTime,
			EndTime:       blueprint.EndTime,
			Category:      category,
			Location:      blueprint.Location,
			Notes:         blueprint.Notes,
			SequenceIndex: i,
		}
	}

	if err := s.repo.ReplaceForProduction(productionID, items); err != nil {
		return nil, fmt.Errorf("failed to apply template: %w", err)
	}

	created, err := s.repo.GetByProductionID(productionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule items: %w", err)
	}

	return s.toListResponse(created), nil
}

// toResponse converts a schedule item model to response
func (s *ScheduleItemService) toResponse(item *models.ScheduleItem) *ScheduleItemResponse {
	return &ScheduleItemResponse{
		ID:            item.ID,
		ProductionID:  item.ProductionID,
		Title:         item.Title,
		Description:   item.Description,
		StartTime:     item.StartTime,
		EndTime:       item.EndTime,
		StartLabel:    timefmt.TimeLabel(item.StartTime),
		EndLabel:      timefmt.TimeLabel(item.EndTime),
		Duration:      timefmt.DurationLabel(item.StartTime, item.EndTime),
		Category:      item.Category,
		Location:      item.Location,
		Notes:         item.Notes,
		SequenceIndex: item.SequenceIndex,
		CreatedAt:     item.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     item.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *ScheduleItemService) toListResponse(items []models.ScheduleItem) *ScheduleListResponse {
	responses := make([]ScheduleItemResponse, len(items))
	for i, item := range items {
		responses[i] = *s.toResponse(&item)
	}
	return &ScheduleListResponse{
		Items: responses,
		Total: len(responses),
	}
}
