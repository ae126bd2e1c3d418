package service

import (
	"errors"
	"fmt"

	"shoot-planner-backend/internal/database/models"
	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleTemplateService exposes the read-only template catalog
type ScheduleTemplateService struct {
	repo repository.ScheduleTemplateRepositoryInterface
}

// NewScheduleTemplateService creates a new schedule template service
func NewScheduleTemplateService(repo repository.ScheduleTemplateRepositoryInterface) *ScheduleTemplateService {
	return &ScheduleTemplateService{repo: repo}
}

// BlueprintResponse represents one blueprint row of a template
type BlueprintResponse struct {
	ID          uuid.UUID               `json:"id"`
	Position    int                     `json:"position"`
	Title       string                  `json:"title"`
	Description string                  `json:"description,omitempty"`
	StartTime   string                  `json:"start_time"`
	EndTime     string                  `json:"end_time,omitempty"`
	Category    models.ScheduleCategory `json:"category"`
	Location    string                  `json:"location,omitempty"`
	Notes       string                  `json:"notes,omitempty"`
}

// TemplateResponse represents the response for template operations
type TemplateResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Blueprints  []BlueprintResponse `json:"blueprints,omitempty"`
}

// TemplateListResponse represents a paginated list of templates
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// GetAll retrieves templates with pagination
func (s *ScheduleTemplateService) GetAll(page, pageSize int) (*TemplateListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	templates, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}

	responses := make([]TemplateResponse, len(templates))
	for i, template := range templates {
		responses[i] = *s.toResponse(&template)
	}

	return &TemplateListResponse{
		Templates: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// GetByID retrieves a template with its blueprints in position order
func (s *ScheduleTemplateService) GetByID(id uuid.UUID) (*TemplateResponse, error) {
	template, err := s.repo.GetWithBlueprints(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return s.toResponse(template), nil
}

// toResponse converts a template model to response
func (s *ScheduleTemplateService) toResponse(template *models.ScheduleTemplate) *TemplateResponse {
	resp := &TemplateResponse{
		ID:          template.ID,
		Name:        template.Name,
		Description: template.Description,
	}
	for _, blueprint := range template.Blueprints {
		resp.Blueprints = append(resp.Blueprints, BlueprintResponse{
			ID:          blueprint.ID,
			Position:    blueprint.Position,
			Title:       blueprint.Title,
			Description: blueprint.Description,
			StartTime:   blueprint.StartTime,
			EndTime:     blueprint.EndTime,
			Category:    blueprint.Category,
			Location:    blueprint.Location,
			Notes:       blueprint.Notes,
		})
	}
	return resp
}
