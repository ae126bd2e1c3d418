package models

import "time"

// Production represents a single fashion photo/video shoot project,
// the root entity all other data attaches to.
type Production struct {
	BaseModel
	Name            string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ShootDate       *time.Time `json:"shoot_date,omitempty" gorm:"type:date"`
	CallTime        string     `json:"call_time,omitempty" gorm:"size:5"`
	WrapTime        string     `json:"wrap_time,omitempty" gorm:"size:5"`
	Location        string     `json:"location,omitempty" gorm:"size:200"`
	LocationAddress string     `json:"location_address,omitempty" gorm:"size:300"`
	ContactName     string     `json:"contact_name,omitempty" gorm:"size:200"`
	ContactPhone    string     `json:"contact_phone,omitempty" gorm:"size:30"`
	ContactEmail    string     `json:"contact_email,omitempty" gorm:"size:255"`
	EmergencyName   string     `json:"emergency_name,omitempty" gorm:"size:200"`
	EmergencyPhone  string     `json:"emergency_phone,omitempty" gorm:"size:30"`
	Notes           string     `json:"notes,omitempty" gorm:"type:text"`

	// Relationships
	ScheduleItems []ScheduleItem `json:"schedule_items,omitempty" gorm:"foreignKey:ProductionID;constraint:OnDelete:CASCADE"`
	Looks         []Look         `json:"looks,omitempty" gorm:"foreignKey:ProductionID;constraint:OnDelete:CASCADE"`
	CrewMembers   []CrewMember   `json:"crew_members,omitempty" gorm:"foreignKey:ProductionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Production
func (Production) TableName() string {
	return "productions"
}
