package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"social-events-api/core/authz"
	"social-events-api/core/errors"
	companyRepository "social-events-api/modules/company/repository"
	eventRepository "social-events-api/modules/event/repository"
	"social-events-api/modules/participation/dto"
	"social-events-api/modules/participation/entity"
	"social-events-api/modules/participation/repository"
)

type ParticipationService struct {
	repo      repository.ParticipationRepositoryInterface
	events    eventRepository.EventRepositoryInterface
	companies companyRepository.CompanyRepositoryInterface
}

// ParticipationServiceInterface defines the service contract.
type ParticipationServiceInterface interface {
	Upsert(ctx context.Context, userID uuid.UUID, req *dto.UpsertParticipationRequest) (*dto.ParticipationResponse, *errors.AppError)
	GetMine(ctx context.Context, userID, eventID uuid.UUID) (*dto.ParticipationResponse, *errors.AppError)
	EventParticipations(ctx context.Context, actorID, eventID uuid.UUID) (*dto.EventParticipationsResponse, *errors.AppError)
}

func NewParticipationService(
	repo repository.ParticipationRepositoryInterface,
	events eventRepository.EventRepositoryInterface,
	companies companyRepository.CompanyRepositoryInterface,
) ParticipationServiceInterface {
	return &ParticipationService{
		repo:      repo,
		events:    events,
		companies: companies,
	}
}

// Upsert records the caller's status for an event. A single row per
// (user, event) pair is kept; repeated calls overwrite the status.
func (s *ParticipationService) Upsert(ctx context.Context, userID uuid.UUID, req *dto.UpsertParticipationRequest) (*dto.ParticipationResponse, *errors.AppError) {
	eventID, parseErr := uuid.Parse(req.EventID)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID", parseErr)
	}

	if !entity.IsValidStatus(req.Status) {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("Invalid participation status: %d", req.Status), nil)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	participation, err := s.repo.Upsert(ctx, userID, eventID, req.Status)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save participation", err)
	}

	return toResponse(participation), nil
}

// GetMine returns the caller's participation in an event. When the caller
// never interacted with the event it answers with status none instead of
// an error.
func (s *ParticipationService) GetMine(ctx context.Context, userID, eventID uuid.UUID) (*dto.ParticipationResponse, *errors.AppError) {
	participation, err := s.repo.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get participation", err)
	}

	if participation == nil {
		participation = &entity.Participation{
			UserID:  userID,
			EventID: eventID,
			Status:  entity.StatusNone,
		}
	}

	return toResponse(participation), nil
}

// EventParticipations returns every participation of an event plus status
// counts. Only the event company's responsible party may call it.
func (s *ParticipationService) EventParticipations(ctx context.Context, actorID, eventID uuid.UUID) (*dto.EventParticipationsResponse, *errors.AppError) {
	event, err := s.events.GetByID(ctx, eventID)
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
		return nil, errors.NewAppError(errors.ErrForbidden, "Only the event organizer can list participations", nil)
	}

	participations, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list participations", err)
	}

	counts, err := s.repo.CountByStatus(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to count participations", err)
	}

	return &dto.EventParticipationsResponse{
		Participations: participations,
		Counts:         *counts,
	}, nil
}

func toResponse(p *entity.Participation) *dto.ParticipationResponse {
	return &dto.ParticipationResponse{
		Participation: *p,
		StatusLabel:   entity.StatusLabel(p.Status),
	}
}
