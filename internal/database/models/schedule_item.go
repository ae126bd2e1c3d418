package models

import "github.com/google/uuid"

// ScheduleCategory represents the kind of block a schedule item occupies
type ScheduleCategory string

const (
	ScheduleCategorySetup   ScheduleCategory = "setup"
	ScheduleCategoryPrep    ScheduleCategory = "prep"
	ScheduleCategoryShoot   ScheduleCategory = "shoot"
	ScheduleCategoryBreak   ScheduleCategory = "break"
	ScheduleCategoryWrap    ScheduleCategory = "wrap"
	ScheduleCategoryGeneral ScheduleCategory = "general"
)

// IsValid checks if the ScheduleCategory is valid
func (c ScheduleCategory) IsValid() bool {
	switch c {
	case ScheduleCategorySetup, ScheduleCategoryPrep, ScheduleCategoryShoot,
		ScheduleCategoryBreak, ScheduleCategoryWrap, ScheduleCategoryGeneral:
		return true
	}
	return false
}

// ScheduleItem represents one block of a production's shoot-day schedule.
// Items render in ascending start-time order; the sequence index records
// the order items were seeded in and is maintained independently.
type ScheduleItem struct {
	BaseModel
	ProductionID  uuid.UUID        `json:"production_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title         string           `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description   string           `json:"description,omitempty" gorm:"type:text"`
	StartTime     string           `json:"start_time" gorm:"not null;size:5" validate:"required,datetime=15:04"`
	EndTime       string           `json:"end_time,omitempty" gorm:"size:5" validate:"omitempty,datetime=15:04"`
	Category      ScheduleCategory `json:"category" gorm:"type:varchar(20);not null;default:'general'" validate:"required"`
	Location      string           `json:"location,omitempty" gorm:"size:200"`
	Notes         string           `json:"notes,omitempty" gorm:"type:text"`
	SequenceIndex int              `json:"sequence_index" gorm:"not null;default:0"`

	// Relationships
	Production Production `json:"production,omitempty" gorm:"foreignKey:ProductionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScheduleItem
func (ScheduleItem) TableName() string {
	return "schedule_items"
}
