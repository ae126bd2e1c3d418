package repository

import (
	"shoot-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LookRepository handles database operations for looks
type LookRepository struct {
	db *gorm.DB
}

// NewLookRepository creates a new look repository
func NewLookRepository(db *gorm.DB) *LookRepository {
	return &LookRepository{db: db}
}

// Create creates a new look
func (r *LookRepository) Create(look *models.Look) error {
	return r.db.Create(look).Error
}

// GetByID retrieves a look by ID
func (r *LookRepository) GetByID(id uuid.UUID) (*models.Look, error) {
	var look models.Look
	err := r.db.First(&look, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &look, nil
}

// GetByProductionID retrieves all looks for a production in sequence order
func (r *LookRepository) GetByProductionID(productionID uuid.UUID) ([]models.Look, error) {
	var looks []models.Look
	err := r.db.Where("production_id = ?", productionID).
		Order("sequence_index ASC").
		Find(&looks).Error
	if err != nil {
		return nil, err
	}
	return looks, nil
}

// Update updates a look
func (r *LookRepository) Update(look *models.Look) error {
	return r.db.Save(look).Error
}

// UpdateSequence updates only the sequence index of a look
func (r *LookRepository) UpdateSequence(id uuid.UUID, sequenceIndex int) error {
	return r.db.Model(&models.Look{}).Where("id = ?", id).
		Update("sequence_index", sequenceIndex).Error
}

// Delete deletes a look
func (r *LookRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Look{}, "id = ?", id).Error
}
