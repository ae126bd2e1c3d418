package service

import (
	"errors"
	"fmt"

	"shoot-planner-backend/internal/database/models"
	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/repository"
	"shoot-planner-backend/internal/timefmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewMemberService handles business logic for crew rosters
type CrewMemberService struct {
	repo           repository.CrewMemberRepositoryInterface
	productionRepo repository.ProductionRepositoryInterface
	validator      *validator.Validate
}

// NewCrewMemberService creates a new crew member service
func NewCrewMemberService(repo repository.CrewMemberRepositoryInterface, productionRepo repository.ProductionRepositoryInterface, validator *validator.Validate) *CrewMemberService {
	return &CrewMemberService{
		repo:           repo,
		productionRepo: productionRepo,
		validator:      validator,
	}
}

// CreateCrewMemberRequest represents the request to add a crew member
type CreateCrewMemberRequest struct {
	ProductionID uuid.UUID `json:"production_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=1,max=200"`
	Role         string    `json:"role,omitempty" validate:"max=100"`
	CallTime     string    `json:"call_time,omitempty" validate:"omitempty,datetime=15:04"`
	Phone        string    `json:"phone,omitempty" validate:"max=30"`
	Email        string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Notes        string    `json:"notes,omitempty"`
}

// UpdateCrewMemberRequest represents a field-level update to a crew member
type UpdateCrewMemberRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Role     *string `json:"role,omitempty" validate:"omitempty,max=100"`
	CallTime *string `json:"call_time,omitempty" validate:"omitempty,datetime=15:04"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email    *string `json:"email,omitempty" validate:"omitempty,max=255"`
	Notes    *string `json:"notes,omitempty"`
}

// CrewMemberResponse represents the response for crew member operations
type CrewMemberResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductionID  uuid.UUID `json:"production_id"`
	Name          string    `json:"name"`
	Role          string    `json:"role,omitempty"`
	CallTime      string    `json:"call_time,omitempty"`
	CallTimeLabel string    `json:"call_time_label,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// CrewListResponse represents a production's crew roster
type CrewListResponse struct {
	CrewMembers []CrewMemberResponse `json:"crew_members"`
	Total       int                  `json:"total"`
}

// GetByProduction retrieves a production's crew roster
func (s *CrewMemberService) GetByProduction(productionID uuid.UUID) (*CrewListResponse, error) {
	// Validate production exists
	if _, err := s.productionRepo.GetByID(productionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductionNotFound
		}
		return nil, fmt.Errorf("failed to verify production: %w", err)
	}

	members, err := s.repo.GetByProductionID(productionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get crew members: %w", err)
	}

	responses := make([]CrewMemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.toResponse(&member)
	}

	return &CrewListResponse{
		CrewMembers: responses,
		Total:       len(responses),
	}, nil
}

// Create adds a crew member to a production
func (s *CrewMemberService) Create(req *CreateCrewMemberRequest) (*CrewMemberResponse, error) {
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

	member := &models.CrewMember{
		ProductionID: req.ProductionID,
		Name:         req.Name,
		Role:         req.Role,
		CallTime:     req.CallTime,
		Phone:        req.Phone,
		Email:        req.Email,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create crew member: %w", err)
	}

	return s.toResponse(member), nil
}

// Update applies field-level edits to a crew member
func (s *CrewMemberService) Update(id uuid.UUID, req *UpdateCrewMemberRequest) (*CrewMemberResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.CallTime != nil {
		member.CallTime = *req.CallTime
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Notes != nil {
		member.Notes = *req.Notes
	}

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update crew member: %w", err)
	}

	return s.toResponse(member), nil
}

// Delete removes a crew member from its production
func (s *CrewMemberService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCrewMemberNotFound
		}
		return fmt.Errorf("failed to get crew member: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete crew member: %w", err)
	}

	return nil
}

// toResponse converts a crew member model to response
func (s *CrewMemberService) toResponse(member *models.CrewMember) *CrewMemberResponse {
	return &CrewMemberResponse{
		ID:            member.ID,
		ProductionID:  member.ProductionID,
		Name:          member.Name,
		Role:          member.Role,
		CallTime:      member.CallTime,
		CallTimeLabel: timefmt.TimeLabel(member.CallTime),
		Phone:         member.Phone,
		Email:         member.Email,
		Notes:         member.Notes,
		CreatedAt:     member.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     member.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
