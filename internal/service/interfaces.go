package service

import (
	"shoot-planner-backend/internal/callsheet"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProductionServiceInterface defines the interface for production service operations
type ProductionServiceInterface interface {
	Create(req *CreateProductionRequest) (*ProductionResponse, error)
	GetByID(id uuid.UUID) (*ProductionResponse, error)
	GetAll(page, pageSize int) (*ProductionListResponse, error)
	Update(id uuid.UUID, req *UpdateProductionRequest) (*ProductionResponse, error)
}

// ScheduleItemServiceInterface defines the interface for schedule item service operations
type ScheduleItemServiceInterface interface {
	GetByProduction(productionID uuid.UUID) (*ScheduleListResponse, error)
	Create(req *CreateScheduleItemRequest) (*ScheduleItemResponse, error)
	Update(id uuid.UUID, req *UpdateScheduleItemRequest) (*ScheduleItemResponse, error)
	Delete(id uuid.UUID) error
	ApplyTemplate(productionID uuid.UUID, req *ApplyTemplateRequest) (*ScheduleListResponse, error)
}

// ScheduleTemplateServiceInterface defines the interface for schedule template service operations
type ScheduleTemplateServiceInterface interface {
	GetAll(page, pageSize int) (*TemplateListResponse, error)
	GetByID(id uuid.UUID) (*TemplateResponse, error)
}

// LookServiceInterface defines the interface for look service operations
type LookServiceInterface interface {
	GetByProduction(productionID uuid.UUID) (*LookListResponse, error)
	Create(req *CreateLookRequest) (*LookResponse, error)
	Update(id uuid.UUID, req *UpdateLookRequest) (*LookResponse, error)
	Delete(id uuid.UUID) error
	Move(id uuid.UUID, req *MoveLookRequest) (*LookListResponse, error)
}

// CrewMemberServiceInterface defines the interface for crew member service operations
type CrewMemberServiceInterface interface {
	GetByProduction(productionID uuid.UUID) (*CrewListResponse, error)
	Create(req *CreateCrewMemberRequest) (*CrewMemberResponse, error)
	Update(id uuid.UUID, req *UpdateCrewMemberRequest) (*CrewMemberResponse, error)
	Delete(id uuid.UUID) error
}

// CallSheetServiceInterface defines the interface for call sheet service operations
type CallSheetServiceInterface interface {
	Assemble(productionID uuid.UUID) (*callsheet.Document, error)
	ExportPDF(productionID uuid.UUID) ([]byte, string, error)
}
