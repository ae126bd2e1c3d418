package repository

import (
	"shoot-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleItemRepository handles database operations for schedule items
type ScheduleItemRepository struct {
	db *gorm.DB
}

// NewScheduleItemRepository creates a new schedule item repository
func NewScheduleItemRepository(db *gorm.DB) *ScheduleItemRepository {
	return &ScheduleItemRepository{db: db}
}

// Create creates a new schedule item
func (r *ScheduleItemRepository) Create(item *models.ScheduleItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a schedule item by ID
func (r *ScheduleItemRepository) GetByID(id uuid.UUID) (*models.ScheduleItem, error) {
	var item models.ScheduleItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByProductionID retrieves all schedule items for a production in
// ascending start-time order. Display order deliberately ignores the
// sequence index, which only governs template seeding and moves.
func (r *ScheduleItemRepository) GetByProductionID(productionID uuid.UUID) ([]models.ScheduleItem, error) {
	var items []models.ScheduleItem
	err := r.db.Where("production_id = ?", productionID).
		Order("start_time ASC").
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update updates a schedule item
func (r *ScheduleItemRepository) Update(item *models.ScheduleItem) error {
	return r.db.Save(item).Error
}

// UpdateSequence updates only the sequence index of a schedule item
func (r *ScheduleItemRepository) UpdateSequence(id uuid.UUID, sequenceIndex int) error {
	return r.db.Model(&models.ScheduleItem{}).Where("id = ?", id).
		Update("sequence_index", sequenceIndex).Error
}

// Delete deletes a schedule item
func (r *ScheduleItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ScheduleItem{}, "id = ?", id).Error
}

// DeleteByProductionID deletes all schedule items for a production
func (r *ScheduleItemRepository) DeleteByProductionID(productionID uuid.UUID) error {
	return r.db.Delete(&models.ScheduleItem{}, "production_id = ?", productionID).Error
}

// CountByProductionID returns the number of schedule items for a production
func (r *ScheduleItemRepository) CountByProductionID(productionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ScheduleItem{}).Where("production_id = ?", productionID).Count(&count).Error
	return count, err
}

// ReplaceForProduction atomically replaces a production's schedule with the
// given items. Delete and insert run in one transaction so a partial
// failure cannot leave the production with an empty schedule.
func (r *ScheduleItemRepository) ReplaceForProduction(productionID uuid.UUID, items []models.ScheduleItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ScheduleItem{}, "production_id = ?", productionID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
