package service

import (
	"errors"
	"fmt"

	"shoot-planner-backend/internal/database/models"
	apperrors "shoot-planner-backend/internal/errors"
	"shoot-planner-backend/internal/ordering"
	"shoot-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LookService handles business logic for a production's looks gallery,
// including manual reordering.
type LookService struct {
	repo           repository.LookRepositoryInterface
	productionRepo repository.ProductionRepositoryInterface
	validator      *validator.Validate
}

// NewLookService creates a new look service
func NewLookService(repo repository.LookRepositoryInterface, productionRepo repository.ProductionRepositoryInterface, validator *validator.Validate) *LookService {
	return &LookService{
		repo:           repo,
		productionRepo: productionRepo,
		validator:      validator,
	}
}

// CreateLookRequest represents the request to create a look
type CreateLookRequest struct {
	ProductionID uuid.UUID `json:"production_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=1,max=200"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty" validate:"omitempty,url,max=500"`
	StylingNotes string    `json:"styling_notes,omitempty"`
}

// UpdateLookRequest represents a field-level update to a look
type UpdateLookRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,max=500"`
	StylingNotes *string `json:"styling_notes,omitempty"`
}

// MoveLookRequest represents the request to move a look one step within
// its production's gallery
type MoveLookRequest struct {
	Direction ordering.Direction `json:"direction" validate:"required"`
}

// LookResponse represents the response for look operations
type LookResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductionID  uuid.UUID `json:"production_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	SequenceIndex int       `json:"sequence_index"`
	StylingNotes  string    `json:"styling_notes,omitempty"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// LookListResponse represents a production's looks in sequence order
type LookListResponse struct {
	Looks []LookResponse `json:"looks"`
	Total int            `json:"total"`
}

// GetByProduction retrieves a production's looks in sequence order
func (s *LookService) GetByProduction(productionID uuid.UUID) (*LookListResponse, error) {
	// Validate production exists
	if _, err := s.productionRepo.GetByID(productionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductionNotFound
		}
		return nil, fmt.Errorf("failed to verify production: %w", err)
	}

	looks, err := s.repo.GetByProductionID(productionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get looks: %w", err)
	}

	return s.toListResponse(looks), nil
}

// Create creates a look at the end of its production's gallery
func (s *LookService) Create(req *CreateLookRequest) (*LookResponse, error) {
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

	siblings, err := s.repo.GetByProductionID(req.ProductionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get looks: %w", err)
	}
	indices := make([]int, len(siblings))
	for i, sibling := range siblings {
		indices[i] = sibling.SequenceIndex
	}

	look := &models.Look{
		ProductionID:  req.ProductionID,
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		StylingNotes:  req.StylingNotes,
		SequenceIndex: ordering.NextIndex(indices),
	}

	if err := s.repo.Create(look); err != nil {
		return nil, fmt.Errorf("failed to create look: %w", err)
	}

	return s.toResponse(look), nil
}

// Update applies field-level edits to a look, including its image reference
func (s *LookService) Update(id uuid.UUID, req *UpdateLookRequest) (*LookResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	look, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLookNotFound
		}
		return nil, fmt.Errorf("failed to get look: %w", err)
	}

	if req.Name != nil {
		look.Name = *req.Name
	}
	if req.Description != nil {
		look.Description = *req.Description
	}
	if req.ImageURL != nil {
		look.ImageURL = *req.ImageURL
	}
	if req.StylingNotes != nil {
		look.StylingNotes = *req.StylingNotes
	}

	if err := s.repo.Update(look); err != nil {
		return nil, fmt.Errorf("failed to update look: %w", err)
	}

	return s.toResponse(look), nil
}

// Delete deletes a look
func (s *LookService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLookNotFound
		}
		return fmt.Errorf("failed to get look: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete look: %w", err)
	}

	return nil
}

// Move moves a look one step toward the start or end of its production's
// gallery by swapping it with its immediate neighbor. Exactly two sequence
// indices are written; moving the first look up or the last look down is a
// no-op that leaves storage untouched.
func (s *LookService) Move(id uuid.UUID, req *MoveLookRequest) (*LookListResponse, error) {
	if !req.Direction.IsValid() {
		return nil, apperrors.ErrInvalidDirection
	}

	look, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLookNotFound
		}
		return nil, fmt.Errorf("failed to get look: %w", err)
	}

	looks, err := s.repo.GetByProductionID(look.ProductionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get looks: %w", err)
	}

	position := -1
	for i, l := range looks {
		if l.ID == id {
			position = i
			break
		}
	}
	if position == -1 {
		return nil, apperrors.ErrLookNotFound
	}

	neighbor, ok := ordering.Move(len(looks), position, req.Direction)
	if !ok {
		// Boundary move: nothing changes
		return s.toListResponse(looks), nil
	}

	// Reassign both sequence indices to their new positions. The two
	// writes are independent; there is no joint rollback if one fails.
	if err := s.repo.UpdateSequence(looks[position].ID, neighbor); err != nil {
		return nil, fmt.Errorf("failed to update look sequence: %w", err)
	}
	if err := s.repo.UpdateSequence(looks[neighbor].ID, position); err != nil {
		return nil, fmt.Errorf("failed to update look sequence: %w", err)
	}

	looks[position].SequenceIndex = neighbor
	looks[neighbor].SequenceIndex = position
	looks[position], looks[neighbor] = looks[neighbor], looks[position]

	return s.toListResponse(looks), nil
}

// toResponse converts a look model to response
func (s *LookService) toResponse(look *models.Look) *LookResponse {
	return &LookResponse{
		ID:            look.ID,
		ProductionID:  look.ProductionID,
		Name:          look.Name,
		Description:   look.Description,
		ImageURL:      look.ImageURL,
		SequenceIndex: look.SequenceIndex,
		StylingNotes:  look.StylingNotes,
		CreatedAt:     look.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     look.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *LookService) toListResponse(looks []models.Look) *LookListResponse {
	responses := make([]LookResponse, len(looks))
	for i, look := range looks {
		responses[i] = *s.toResponse(&look)
	}
	return &LookListResponse{
		Looks: responses,
		Total: len(responses),
	}
}
