package models

import "github.com/google/uuid"

// ScheduleTemplate is a read-only catalog entry: a named, ordered list of
// schedule-item blueprints usable to seed a production's schedule.
type ScheduleTemplate struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty" gorm:"type:text"`

	// Relationships
	Blueprints []TemplateBlueprint `json:"blueprints,omitempty" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScheduleTemplate
func (ScheduleTemplate) TableName() string {
	return "schedule_templates"
}

// TemplateBlueprint is one row of a template: a ScheduleItem minus identity
// and production linkage. Optional fields are validated at ingestion and
// default to empty when absent.
type TemplateBlueprint struct {
	BaseModel
	TemplateID  uuid.UUID        `json:"template_id" gorm:"type:uuid;not null;index" validate:"required"`
	Position    int              `json:"position" gorm:"not null;default:0"`
	Title       string           `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string           `json:"description,omitempty" gorm:"type:text"`
	StartTime   string           `json:"start_time" gorm:"not null;size:5" validate:"required,datetime=15:04"`
	EndTime     string           `json:"end_time,omitempty" gorm:"size:5" validate:"omitempty,datetime=15:04"`
	Category    ScheduleCategory `json:"category" gorm:"type:varchar(20);not null;default:'general'"`
	Location    string           `json:"location,omitempty" gorm:"size:200"`
	Notes       string           `json:"notes,omitempty" gorm:"type:text"`

	// Relationships
	Template ScheduleTemplate `json:"template,omitempty" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TemplateBlueprint
func (TemplateBlueprint) TableName() string {
	return "template_blueprints"
}
