package models

import "github.com/google/uuid"

// Look represents a named styling concept with an optional reference image,
// ordered within a production. Sequence indices are contiguous by
// construction: new looks take max+1 and moves swap neighbors.
type Look struct {
	BaseModel
	ProductionID  uuid.UUID `json:"production_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name          string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description   string    `json:"description,omitempty" gorm:"type:text"`
	ImageURL      string    `json:"image_url,omitempty" gorm:"size:500" validate:"omitempty,url,max=500"`
	SequenceIndex int       `json:"sequence_index" gorm:"not null;default:0"`
	StylingNotes  string    `json:"styling_notes,omitempty" gorm:"type:text"`

	// Relationships
	Production Production `json:"production,omitempty" gorm:"foreignKey:ProductionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Look
func (Look) TableName() string {
	return "looks"
}
