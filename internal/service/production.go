package service

import (
	"errors"
	"fmt"
	"time"

	"shoot-planner-backend/internal/database/models"
	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductionService handles business logic for productions
type ProductionService struct {
	repo      repository.ProductionRepositoryInterface
	validator *validator.Validate
}

// NewProductionService creates a new production service
func NewProductionService(repo repository.ProductionRepositoryInterface, validator *validator.Validate) *ProductionService {
	return &ProductionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProductionRequest represents the request to create a production
type CreateProductionRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	ShootDate       string `json:"shoot_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CallTime        string `json:"call_time,omitempty" validate:"omitempty,datetime=15:04"`
	WrapTime        string `json:"wrap_time,omitempty" validate:"omitempty,datetime=15:04"`
	Location        string `json:"location,omitempty" validate:"max=200"`
	LocationAddress string `json:"location_address,omitempty" validate:"max=300"`
	ContactName     string `json:"contact_name,omitempty" validate:"max=200"`
	ContactPhone    string `json:"contact_phone,omitempty" validate:"max=30"`
	ContactEmail    string `json:"contact_email,omitempty" validate:"omitempty,email,max=255"`
	EmergencyName   string `json:"emergency_name,omitempty" validate:"max=200"`
	EmergencyPhone  string `json:"emergency_phone,omitempty" validate:"max=30"`
	Notes           string `json:"notes,omitempty"`
}

// UpdateProductionRequest represents a field-level update to a production.
// Nil fields are left untouched.
type UpdateProductionRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	ShootDate       *string `json:"shoot_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CallTime        *string `json:"call_time,omitempty" validate:"omitempty,datetime=15:04"`
	WrapTime        *string `json:"wrap_time,omitempty" validate:"omitempty,datetime=15:04"`
	Location        *string `json:"location,omitempty" validate:"omitempty,max=200"`
	LocationAddress *string `json:"location_address,omitempty" validate:"omitempty,max=300"`
	ContactName     *string `json:"contact_name,omitempty" validate:"omitempty,max=200"`
	ContactPhone    *string `json:"contact_phone,omitempty" validate:"omitempty,max=30"`
	ContactEmail    *string `json:"contact_email,omitempty" validate:"omitempty,max=255"`
	EmergencyName   *string `json:"emergency_name,omitempty" validate:"omitempty,max=200"`
	EmergencyPhone  *string `json:"emergency_phone,omitempty" validate:"omitempty,max=30"`
	Notes           *string `json:"notes,omitempty"`
}

// ProductionResponse represents the response for production operations
type ProductionResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	ShootDate       string    `json:"shoot_date,omitempty"`
	CallTime        string    `json:"call_time,omitempty"`
	WrapTime        string    `json:"wrap_time,omitempty"`
	Location        string    `json:"location,omitempty"`
	LocationAddress string    `json:"location_address,omitempty"`
	ContactName     string    `json:"contact_name,omitempty"`
	ContactPhone    string    `json:"contact_phone,omitempty"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	EmergencyName   string    `json:"emergency_name,omitempty"`
	EmergencyPhone  string    `json:"emergency_phone,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// ProductionListResponse represents a paginated list of productions
type ProductionListResponse struct {
	Productions []ProductionResponse `json:"productions"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new production
func (s *ProductionService) Create(req *CreateProductionRequest) (*ProductionResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	production := &models.Production{
		Name:            req.Name,
		CallTime:        req.CallTime,
		WrapTime:        req.WrapTime,
		Location:        req.Location,
		LocationAddress: req.LocationAddress,
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    req.ContactEmail,
		EmergencyName:   req.EmergencyName,
		EmergencyPhone:  req.EmergencyPhone,
		Notes:           req.Notes,
	}

	if req.ShootDate != "" {
		date, err := time.Parse("2006-01-02", req.ShootDate)
		if err != nil {
			return nil, apperrors.NewValidationError("shoot_date", "must be YYYY-MM-DD")
		}
		production.ShootDate = &date
	}

	if err := s.repo.Create(production); err != nil {
		return nil, fmt.Errorf("failed to create production: %w", err)
	}

	return s.toResponse(production), nil
}

// GetByID retrieves a production by ID
func (s *ProductionService) GetByID(id uuid.UUID) (*ProductionResponse, error) {
	production, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductionNotFound
		}
		return nil, fmt.Errorf("failed to get production: %w", err)
	}

	return s.toResponse(production), nil
}

// GetAll retrieves productions with pagination
func (s *ProductionService) GetAll(page, pageSize int) (*ProductionListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	productions, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get productions: %w", err)
	}

	responses := make([]ProductionResponse, len(productions))
	for i, production := range productions {
		responses[i] = *s.toResponse(&production)
	}

	return &ProductionListResponse{
		Productions: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update applies field-level edits to a production
func (s *ProductionService) Update(id uuid.UUID, req *UpdateProductionRequest) (*ProductionResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	// Get existing production
	production, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductionNotFound
		}
		return nil, fmt.Errorf("failed to get production: %w", err)
	}

	// Update fields
	if req.Name != nil {
		production.Name = *req.Name
	}
	if req.ShootDate != nil {
		if *req.ShootDate == "" {
			production.ShootDate = nil
		} else {
			date, err := time.Parse("2006-01-02", *req.ShootDate)
			if err != nil {
				return nil, apperrors.NewValidationError("shoot_date", "must be YYYY-MM-DD")
			}
			production.ShootDate = &date
		}
	}
	if req.CallTime != nil {
		production.CallTime = *req.CallTime
	}
	if req.WrapTime != nil {
		production.WrapTime = *req.WrapTime
	}
	if req.Location != nil {
		production.Location = *req.Location
	}
	if req.LocationAddress != nil {
		production.LocationAddress = *req.LocationAddress
	}
	if req.ContactName != nil {
		production.ContactName = *req.ContactName
	}
	if req.ContactPhone != nil {
		production.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		production.ContactEmail = *req.ContactEmail
	}
	if req.EmergencyName != nil {
		production.EmergencyName = *req.EmergencyName
	}
	if req.EmergencyPhone != nil {
		production.EmergencyPhone = *req.EmergencyPhone
	}
	if req.Notes != nil {
		production.Notes = *req.Notes
	}

	if err := s.repo.Update(production); err != nil {
		return nil, fmt.Errorf("failed to update production: %w", err)
	}

	return s.toResponse(production), nil
}

// toResponse converts a production model to response
func (s *ProductionService) toResponse(production *models.Production) *ProductionResponse {
	resp := &ProductionResponse{
		ID:              production.ID,
		Name:            production.Name,
		CallTime:        production.CallTime,
		WrapTime:        production.WrapTime,
		Location:        production.Location,
		LocationAddress: production.LocationAddress,
		ContactName:     production.ContactName,
		ContactPhone:    production.ContactPhone,
		ContactEmail:    production.ContactEmail,
		EmergencyName:   production.EmergencyName,
		EmergencyPhone:  production.EmergencyPhone,
		Notes:           production.Notes,
		CreatedAt:       production.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       production.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if production.ShootDate != nil {
		resp.ShootDate = production.ShootDate.Format("2006-01-02")
	}
	return resp
}
