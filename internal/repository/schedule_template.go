package repository

import (
	"shoot-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleTemplateRepository handles database operations for the template catalog
type ScheduleTemplateRepository struct {
	db *gorm.DB
}

// NewScheduleTemplateRepository creates a new schedule template repository
func NewScheduleTemplateRepository(db *gorm.DB) *ScheduleTemplateRepository {
	return &ScheduleTemplateRepository{db: db}
}

// GetAll retrieves all templates with pagination
func (r *ScheduleTemplateRepository) GetAll(limit, offset int) ([]models.ScheduleTemplate, int64, error) {
	var templates []models.ScheduleTemplate
	var total int64

	// Get total count
	if err := r.db.Model(&models.ScheduleTemplate{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&templates).Error
	if err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

// GetByID retrieves a template by ID
func (r *ScheduleTemplateRepository) GetByID(id uuid.UUID) (*models.ScheduleTemplate, error) {
	var template models.ScheduleTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetWithBlueprints retrieves a template with its blueprints in position order
func (r *ScheduleTemplateRepository) GetWithBlueprints(id uuid.UUID) (*models.ScheduleTemplate, error) {
	var template models.ScheduleTemplate
	err := r.db.
		Preload("Blueprints", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}
