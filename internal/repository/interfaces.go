package repository

import (
	"shoot-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProductionRepositoryInterface defines the interface for production repository operations
type ProductionRepositoryInterface interface {
	Create(production *models.Production) error
	GetByID(id uuid.UUID) (*models.Production, error)
	GetAll(limit, offset int) ([]models.Production, int64, error)
	Update(production *models.Production) error
	GetWithFullDetails(id uuid.UUID) (*models.Production, error)
}

// ScheduleItemRepositoryInterface defines the interface for schedule item repository operations
type ScheduleItemRepositoryInterface interface {
	Create(item *models.ScheduleItem) error
	GetByID(id uuid.UUID) (*models.ScheduleItem, error)
	GetByProductionID(productionID uuid.UUID) ([]models.ScheduleItem, error)
	Update(item *models.ScheduleItem) error
	UpdateSequence(id uuid.UUID, sequenceIndex int) error
	Delete(id uuid.UUID) error
	DeleteByProductionID(productionID uuid.UUID) error
	CountByProductionID(productionID uuid.UUID) (int64, error)
	ReplaceForProduction(productionID uuid.UUID, items []models.ScheduleItem) error
}

// ScheduleTemplateRepositoryInterface defines the interface for template catalog operations.
// The catalog is read-only at runtime; rows are seeded out of band.
type ScheduleTemplateRepositoryInterface interface {
	GetAll(limit, offset int) ([]models.ScheduleTemplate, int64, error)
	GetByID(id uuid.UUID) (*models.ScheduleTemplate, error)
	GetWithBlueprints(id uuid.UUID) (*models.ScheduleTemplate, error)
}

// LookRepositoryInterface defines the interface for look repository operations
type LookRepositoryInterface interface {
	Create(look *models.Look) error
	GetByID(id uuid.UUID) (*models.Look, error)
	GetByProductionID(productionID uuid.UUID) ([]models.Look, error)
	Update(look *models.Look) error
	UpdateSequence(id uuid.UUID, sequenceIndex int) error
	Delete(id uuid.UUID) error
}

// CrewMemberRepositoryInterface defines the interface for crew member repository operations
type CrewMemberRepositoryInterface interface {
	Create(member *models.CrewMember) error
	GetByID(id uuid.UUID) (*models.CrewMember, error)
	GetByProductionID(productionID uuid.UUID) ([]models.CrewMember, error)
	Update(member *models.CrewMember) error
	Delete(id uuid.UUID) error
}
