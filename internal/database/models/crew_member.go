package models

import "github.com/google/uuid"

// CrewMember represents one person on a production's crew roster
type CrewMember struct {
	BaseModel
	ProductionID uuid.UUID `json:"production_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Role         string    `json:"role,omitempty" gorm:"size:100" validate:"max=100"`
	CallTime     string    `json:"call_time,omitempty" gorm:"size:5" validate:"omitempty,datetime=15:04"`
	Phone        string    `json:"phone,omitempty" gorm:"size:30"`
	Email        string    `json:"email,omitempty" gorm:"size:255" validate:"omitempty,email,max=255"`
	Notes        string    `json:"notes,omitempty" gorm:"type:text"`

	// Relationships
	Production Production `json:"production,omitempty" gorm:"foreignKey:ProductionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CrewMember
func (CrewMember) TableName() string {
	return "crew_members"
}
