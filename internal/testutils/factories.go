package testutils

import (
	"time"

	"shoot-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProductionFactory provides methods to create test Production data
type ProductionFactory struct{}

// NewProductionFactory creates a new ProductionFactory
func NewProductionFactory() *ProductionFactory {
	return &ProductionFactory{}
}

// Create creates a test Production with default values
func (f *ProductionFactory) Create() *models.Production {
	shootDate := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	return &models.Production{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "Test Editorial Shoot",
		ShootDate:       &shootDate,
		CallTime:        "07:00",
		WrapTime:        "19:00",
		Location:        "Test Studio",
		LocationAddress: "123 Test Street",
		ContactName:     "Test Producer",
		ContactPhone:    "+1-555-0123",
		ContactEmail:    "producer@test.com",
	}
}

// WithName sets a custom name for the production
func (f *ProductionFactory) WithName(name string) *models.Production {
	production := f.Create()
	production.Name = name
	return production
}

// Minimal creates a production with only the required name set
func (f *ProductionFactory) Minimal() *models.Production {
	return &models.Production{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Bare Production",
	}
}

// ScheduleItemFactory provides methods to create test ScheduleItem data
type ScheduleItemFactory struct{}

// NewScheduleItemFactory creates a new ScheduleItemFactory
func NewScheduleItemFactory() *ScheduleItemFactory {
	return &ScheduleItemFactory{}
}

// Create creates a test ScheduleItem with default values
func (f *ScheduleItemFactory) Create() *models.ScheduleItem {
	return &models.ScheduleItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProductionID:  uuid.New(),
		Title:         "Test Block",
		StartTime:     "09:00",
		EndTime:       "10:30",
		Category:      models.ScheduleCategoryShoot,
		SequenceIndex: 0,
	}
}

// WithProduction sets the production ID for the schedule item
func (f *ScheduleItemFactory) WithProduction(productionID uuid.UUID) *models.ScheduleItem {
	item := f.Create()
	item.ProductionID = productionID
	return item
}

// WithTimes sets the start and end times for the schedule item
func (f *ScheduleItemFactory) WithTimes(start, end string) *models.ScheduleItem {
	item := f.Create()
	item.StartTime = start
	item.EndTime = end
	return item
}

// LookFactory provides methods to create test Look data
type LookFactory struct{}

// NewLookFactory creates a new LookFactory
func NewLookFactory() *LookFactory {
	return &LookFactory{}
}

// Create creates a test Look with default values
func (f *LookFactory) Create() *models.Look {
	return &models.Look{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProductionID:  uuid.New(),
		Name:          "Test Look",
		Description:   "A test look",
		StylingNotes:  "Test styling notes",
		SequenceIndex: 0,
	}
}

// WithProduction sets the production ID for the look
func (f *LookFactory) WithProduction(productionID uuid.UUID) *models.Look {
	look := f.Create()
	look.ProductionID = productionID
	return look
}

// WithSequence sets the sequence index for the look
func (f *LookFactory) WithSequence(productionID uuid.UUID, index int) *models.Look {
	look := f.WithProduction(productionID)
	look.SequenceIndex = index
	return look
}

// CrewMemberFactory provides methods to create test CrewMember data
type CrewMemberFactory struct{}

// NewCrewMemberFactory creates a new CrewMemberFactory
func NewCrewMemberFactory() *CrewMemberFactory {
	return &CrewMemberFactory{}
}

// Create creates a test CrewMember with default values
func (f *CrewMemberFactory) Create() *models.CrewMember {
	return &models.CrewMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProductionID: uuid.New(),
		Name:         "Test Crew Member",
		Role:         "Photographer",
		CallTime:     "06:45",
		Phone:        "+1-555-0142",
		Email:        "crew@test.com",
	}
}

// WithProduction sets the production ID for the crew member
func (f *CrewMemberFactory) WithProduction(productionID uuid.UUID) *models.CrewMember {
	member := f.Create()
	member.ProductionID = productionID
	return member
}

// ScheduleTemplateFactory provides methods to create test ScheduleTemplate data
type ScheduleTemplateFactory struct{}

// NewScheduleTemplateFactory creates a new ScheduleTemplateFactory
func NewScheduleTemplateFactory() *ScheduleTemplateFactory {
	return &ScheduleTemplateFactory{}
}

// Create creates a test ScheduleTemplate with default values
func (f *ScheduleTemplateFactory) Create() *models.ScheduleTemplate {
	return &models.ScheduleTemplate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Template",
		Description: "A test schedule template",
	}
}

// WithBlueprints attaches ordered blueprints to the template
func (f *ScheduleTemplateFactory) WithBlueprints(titles ...string) *models.ScheduleTemplate {
	template := f.Create()
	for i, title := range titles {
		template.Blueprints = append(template.Blueprints, models.TemplateBlueprint{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			TemplateID: template.ID,
			Position:   i,
			Title:      title,
			StartTime:  "07:00",
			Category:   models.ScheduleCategoryGeneral,
		})
	}
	return template
}
