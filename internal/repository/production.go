package repository

import (
	"shoot-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductionRepository handles database operations for productions
type ProductionRepository struct {
	db *gorm.DB
}

// NewProductionRepository creates a new production repository
func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

// Create creates a new production
func (r *ProductionRepository) Create(production *models.Production) error {
	return r.db.Create(production).Error
}

// GetByID retrieves a production by ID
func (r *ProductionRepository) GetByID(id uuid.UUID) (*models.Production, error) {
	var production models.Production
	err := r.db.First(&production, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &production, nil
}

// GetAll retrieves all productions with pagination, newest first
func (r *ProductionRepository) GetAll(limit, offset int) ([]models.Production, int64, error) {
	var productions []models.Production
	var total int64

	// Get total count
	if err := r.db.Model(&models.Production{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&productions).Error
	if err != nil {
		return nil, 0, err
	}

	return productions, total, nil
}

// Update updates a production
func (r *ProductionRepository) Update(production *models.Production) error {
	return r.db.Save(production).Error
}

// GetWithFullDetails retrieves a production with schedule, looks and crew
func (r *ProductionRepository) GetWithFullDetails(id uuid.UUID) (*models.Production, error) {
	var production models.Production
	err := r.db.
		Preload("ScheduleItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Preload("Looks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_index ASC")
		}).
		Preload("CrewMembers", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&production, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &production, nil
}
