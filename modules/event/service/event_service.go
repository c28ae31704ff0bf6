package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"social-events-api/core/authz"
	"social-events-api/core/constants"
	"social-events-api/core/errors"
	"social-events-api/core/logger"
	"social-events-api/core/params"
	capacityService "social-events-api/modules/capacity/service"
	companyRepository "social-events-api/modules/company/repository"
	"social-events-api/modules/event/dto"
	"social-events-api/modules/event/entity"
	"social-events-api/modules/event/repository"
)

type EventService struct {
	repo      repository.EventRepositoryInterface
	companies companyRepository.CompanyRepositoryInterface
	capacity  capacityService.CapacityServiceInterface
}

// EventServiceInterface defines the service contract.
type EventServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	Update(ctx context.Context, actorID uuid.UUID, req *dto.UpdateEventRequest) (*entity.Event, *errors.AppError)
	Delete(ctx context.Context, actorID uuid.UUID, eventID uuid.UUID) *errors.AppError
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, *errors.AppError)
	ListPublic(ctx context.Context, p params.QueryParams) (*entity.PaginatedEventEntity, *errors.AppError)
	List(ctx context.Context, search string, p params.QueryParams) (*entity.PaginatedEventEntity, *errors.AppError)
	ListMyCompany(ctx context.Context, actorID uuid.UUID, p params.QueryParams) (*entity.PaginatedEventEntity, *errors.AppError)
	ListByCompany(ctx context.Context, companyID uuid.UUID, p params.QueryParams) (*entity.PaginatedEventEntity, *errors.AppError)
	ListEventTypes(ctx context.Context) ([]entity.EventType, *errors.AppError)
}

func NewEventService(
	repo repository.EventRepositoryInterface,
	companies companyRepository.CompanyRepositoryInterface,
	capacity capacityService.CapacityServiceInterface,
) EventServiceInterface {
	return &EventService{
		repo:      repo,
		companies: companies,
		capacity:  capacity,
	}
}

// Create validates and stores a new event, then bootstraps its capacity
// ledger with the initial deposit.
func (s *EventService) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	company, err := s.companies.GetByResponsibleID(ctx, actorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
	}
	if company == nil {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only company responsibles can create events", nil)
	}

	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event name is required", nil)
	}
	if req.Description == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event description is required", nil)
	}
	if req.EventTypeID == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event type is required", nil)
	}
	if req.StartAt == "" || req.EndAt == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Start and end dates are required", nil)
	}

	eventTypeID, parseErr := uuid.Parse(req.EventTypeID)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event type ID", parseErr)
	}

	eventType, err := s.repo.GetEventType(ctx, eventTypeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event type", err)
	}
	if eventType == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event type not found", nil)
	}

	startAt, endAt, parseErr := dto.ParseEventDates(req.StartAt, req.EndAt)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid start or end date", parseErr)
	}
	if !endAt.After(startAt) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "End date must be after start date", nil)
	}

	event := &entity.Event{
		Name:            req.Name,
		Slug:            slug.Make(req.Name),
		Description:     req.Description,
		IsPublic:        boolOrDefault(req.IsPublic, false),
		IsPublicMetrics: boolOrDefault(req.IsPublicMetrics, true),
		CompanyID:       company.ID,
		EventTypeID:     eventTypeID,
		StartAt:         startAt,
		EndAt:           endAt,
	}
	event.Photo = optional(req.Photo)
	event.BackgroundImage = optional(req.BackgroundImage)
	event.PromotionalText = optional(req.PromotionalText)
	event.PromotionalVideo = optional(req.PromotionalVideo)
	event.PromotionalImage = optional(req.PromotionalImage)
	event.PromotionalURL = optional(req.PromotionalURL)

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	if appErr := s.capacity.BootstrapEvent(ctx, created.ID, actorID); appErr != nil {
		// The event exists; a missing bootstrap row is recoverable by a
		// manual deposit, so surface the error instead of hiding it.
		logger.Error("EventService:Create:BootstrapEvent", appErr)
		return nil, appErr
	}

	return &dto.EventResponse{Event: *created, CurrentCapacity: constants.InitialEventCapacity}, nil
}

func (s *EventService) Update(ctx context.Context, actorID uuid.UUID, req *dto.UpdateEventRequest) (*entity.Event, *errors.AppError) {
	eventID, parseErr := uuid.Parse(req.ID)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID", parseErr)
	}

	event, appErr := s.requireOwnedEvent(ctx, actorID, eventID)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != "" {
		event.Name = req.Name
		event.Slug = slug.Make(req.Name)
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.IsPublic != nil {
		event.IsPublic = *req.IsPublic
	}
	if req.IsPublicMetrics != nil {
		event.IsPublicMetrics = *req.IsPublicMetrics
	}
	if req.Photo != "" {
		event.Photo = optional(req.Photo)
	}
	if req.BackgroundImage != "" {
		event.BackgroundImage = optional(req.BackgroundImage)
	}
	if req.PromotionalText != "" {
		event.PromotionalText = optional(req.PromotionalText)
	}
	if req.PromotionalVideo != "" {
		event.PromotionalVideo = optional(req.PromotionalVideo)
	}
	if req.PromotionalImage != "" {
		event.PromotionalImage = optional(req.PromotionalImage)
	}
	if req.PromotionalURL != "" {
		event.PromotionalURL = optional(req.PromotionalURL)
	}

	if req.EventTypeID != "" {
		eventTypeID, parseErr := uuid.Parse(req.EventTypeID)
		if parseErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event type ID", parseErr)
		}
		eventType, err := s.repo.GetEventType(ctx, eventTypeID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event type", err)
		}
		if eventType == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "Event type not found", nil)
		}
		event.EventTypeID = eventTypeID
	}

	if req.StartAt != "" && req.EndAt != "" {
		startAt, endAt, parseErr := dto.ParseEventDates(req.StartAt, req.EndAt)
		if parseErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid start or end date", parseErr)
		}
		if !endAt.After(startAt) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "End date must be after start date", nil)
		}
		event.StartAt = startAt
		event.EndAt = endAt
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, actorID uuid.UUID, eventID uuid.UUID) *errors.AppError {
	if _, appErr := s.requireOwnedEvent(ctx, actorID, eventID); appErr != nil {
		return appErr
	}

	if err := s.repo.SoftDelete(ctx, eventID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}
	return nil
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return event, nil
}

func (s *EventService) ListPublic(ctx context.Context, p params.QueryParams) (*entity.PaginatedEventEntity, *errors.AppError) {
	result, err := s.repo.ListPublic(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}
	return result, nil
}

func (s *EventService) List(ctx context.Context, search string, p params.QueryParams) (*entity.PaginatedEventEntity, *errors.AppError) {
	result, err := s.repo.List(ctx, search, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}
	return result, nil
}

func (s *EventService) ListMyCompany(ctx context.Context, actorID uuid.UUID, p params.QueryParams) (*entity.PaginatedEventEntity, *errors.AppError) {
	company, err := s.companies.GetByResponsibleID(ctx, actorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
	}
	if company == nil {
		return nil, errors.NewAppError(errors.ErrForbidden, "You are not responsible for any company", nil)
	}

	return s.ListByCompany(ctx, company.ID, p)
}

func (s *EventService) ListByCompany(ctx context.Context, companyID uuid.UUID, p params.QueryParams) (*entity.PaginatedEventEntity, *errors.AppError) {
	result, err := s.repo.ListByCompany(ctx, companyID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list company events", err)
	}
	return result, nil
}

func (s *EventService) ListEventTypes(ctx context.Context) ([]entity.EventType, *errors.AppError) {
	types, err := s.repo.ListEventTypes(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list event types", err)
	}
	return types, nil
}

// requireOwnedEvent loads the event and checks the actor is its company's
// responsible party.
func (s *EventService) requireOwnedEvent(ctx context.Context, actorID uuid.UUID, eventID uuid.UUID) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	company, err := s.companies.GetByID(ctx, event.CompanyID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
	}
	if company == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Company not found", nil)
	}

	if decision := authz.IsCompanyResponsible(actorID, company.ResponsibleID); !decision.Allowed {
		return nil, errors.NewAppError(errors.ErrForbidden, "You are not allowed to manage this event", nil)
	}

	return event, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
