package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"social-events-api/core/authz"
	"social-events-api/core/constants"
	"social-events-api/core/errors"
	"social-events-api/core/params"
	"social-events-api/core/utils"
	"social-events-api/modules/capacity/dto"
	"social-events-api/modules/capacity/entity"
	"social-events-api/modules/capacity/repository"
	companyRepository "social-events-api/modules/company/repository"
	eventRepository "social-events-api/modules/event/repository"
)

// CapacityService owns the event capacity ledger.
type CapacityService struct {
	repo      repository.CapacityRepositoryInterface
	events    eventRepository.EventRepositoryInterface
	companies companyRepository.CompanyRepositoryInterface
}

// CapacityServiceInterface defines the service contract.
type CapacityServiceInterface interface {
	Deposit(ctx context.Context, actorID uuid.UUID, req *dto.DepositRequest) (*dto.TransactionResponse, *errors.AppError)
	Withdraw(ctx context.Context, actorID uuid.UUID, actorClientID uuid.UUID, req *dto.WithdrawRequest) (*dto.TransactionResponse, *errors.AppError)
	GetEventCapacity(ctx context.Context, eventID uuid.UUID) (*dto.CapacityResponse, *errors.AppError)
	GetHistory(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*dto.HistoryResponse, *errors.AppError)
	GetCompanySummary(ctx context.Context, actorID uuid.UUID) (*dto.CompanySummaryResponse, *errors.AppError)
	BootstrapEvent(ctx context.Context, eventID uuid.UUID, actorID uuid.UUID) *errors.AppError
}

func NewCapacityService(
	repo repository.CapacityRepositoryInterface,
	events eventRepository.EventRepositoryInterface,
	companies companyRepository.CompanyRepositoryInterface,
) CapacityServiceInterface {
	return &CapacityService{
		repo:      repo,
		events:    events,
		companies: companies,
	}
}

// Deposit appends a deposit transaction. Only the responsible party of the
// event's owning company may add capacity.
func (s *CapacityService) Deposit(ctx context.Context, actorID uuid.UUID, req *dto.DepositRequest) (*dto.TransactionResponse, *errors.AppError) {
	eventID, appErr := s.validateQuantity(req.EventID, req.Quantity)
	if appErr != nil {
		return nil, appErr
	}

	_, responsibleID, appErr := s.loadEventOwner(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	if decision := authz.IsCompanyResponsible(actorID, responsibleID); !decision.Allowed {
		return nil, errors.NewAppError(errors.ErrForbidden, "You are not allowed to add capacity to this event", nil)
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Deposit of %d people", req.Quantity)
	}

	txn := &entity.CapacityTransaction{
		Reference:   utils.GenerateReference(),
		EventID:     eventID,
		Type:        entity.TransactionDeposit,
		Quantity:    req.Quantity,
		Description: description,
		UserID:      actorID,
	}

	if err := s.repo.Insert(ctx, txn); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to record deposit", err)
	}

	capacity, err := s.repo.CurrentCapacity(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compute capacity", err)
	}

	return &dto.TransactionResponse{Transaction: *txn, CurrentCapacity: capacity}, nil
}

// Withdraw appends a withdrawal transaction when enough capacity remains.
// Allowed for the company responsible, or as a self check-in when the
// affected client is the actor's own.
func (s *CapacityService) Withdraw(ctx context.Context, actorID uuid.UUID, actorClientID uuid.UUID, req *dto.WithdrawRequest) (*dto.TransactionResponse, *errors.AppError) {
	eventID, appErr := s.validateQuantity(req.EventID, req.Quantity)
	if appErr != nil {
		return nil, appErr
	}

	var affectedClientID *uuid.UUID
	if req.ClientID != "" {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid client ID", err)
		}
		affectedClientID = &clientID
	}

	_, responsibleID, appErr := s.loadEventOwner(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	responsible := authz.IsCompanyResponsible(actorID, responsibleID)
	selfCheckIn := authz.IsSelfCheckIn(actorClientID, affectedClientID)
	if !responsible.Allowed && !selfCheckIn.Allowed {
		return nil, errors.NewAppError(errors.ErrForbidden, "You are not allowed to remove capacity from this event", nil)
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Check-in of %d person(s)", req.Quantity)
	}

	txn := &entity.CapacityTransaction{
		Reference:   utils.GenerateReference(),
		EventID:     eventID,
		Type:        entity.TransactionWithdrawal,
		Quantity:    req.Quantity,
		Description: description,
		UserID:      actorID,
		ClientID:    affectedClientID,
	}

	inserted, available, err := s.repo.InsertWithdrawalGuarded(ctx, txn)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to record withdrawal", err)
	}
	if !inserted {
		return nil, errors.NewAppError(errors.ErrInsufficientCapacity,
			fmt.Sprintf("Insufficient capacity. Available: %d, Requested: %d", available, req.Quantity), nil)
	}

	return &dto.TransactionResponse{Transaction: *txn, CurrentCapacity: available}, nil
}

func (s *CapacityService) GetEventCapacity(ctx context.Context, eventID uuid.UUID) (*dto.CapacityResponse, *errors.AppError) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	capacity, err := s.repo.CurrentCapacity(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compute capacity", err)
	}

	deposits, withdrawals, err := s.repo.Totals(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compute totals", err)
	}

	return &dto.CapacityResponse{
		EventID:          event.ID,
		EventName:        event.Name,
		CurrentCapacity:  capacity,
		TotalDeposits:    deposits,
		TotalWithdrawals: withdrawals,
	}, nil
}

func (s *CapacityService) GetHistory(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*dto.HistoryResponse, *errors.AppError) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	history, err := s.repo.History(ctx, eventID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get history", err)
	}

	capacity, err := s.repo.CurrentCapacity(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compute capacity", err)
	}

	return &dto.HistoryResponse{
		Page:            history.PageNumber,
		PageSize:        history.PageSize,
		Total:           history.TotalItems,
		CurrentCapacity: capacity,
		Transactions:    history.Items,
	}, nil
}

// GetCompanySummary reports the ledger state of every active event owned
// by the caller's company, each computed independently.
func (s *CapacityService) GetCompanySummary(ctx context.Context, actorID uuid.UUID) (*dto.CompanySummaryResponse, *errors.AppError) {
	company, err := s.companies.GetByResponsibleID(ctx, actorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
	}
	if company == nil {
		return nil, errors.NewAppError(errors.ErrForbidden, "You are not responsible for any company", nil)
	}

	events, err := s.events.ListAllByCompany(ctx, company.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list company events", err)
	}

	summaries := make([]entity.EventCapacitySummary, 0, len(events))
	for _, event := range events {
		deposits, withdrawals, err := s.repo.Totals(ctx, event.ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compute totals", err)
		}

		summaries = append(summaries, entity.EventCapacitySummary{
			EventID:          event.ID,
			EventName:        event.Name,
			StartAt:          event.StartAt,
			EndAt:            event.EndAt,
			CurrentCapacity:  deposits - withdrawals,
			TotalDeposits:    deposits,
			TotalWithdrawals: withdrawals,
		})
	}

	return &dto.CompanySummaryResponse{
		Company: dto.CompanyRef{ID: company.ID, Name: company.Name},
		Events:  summaries,
	}, nil
}

// BootstrapEvent records the initial deposit every new event starts with.
// It is an ordinary ledger row, attributed to the creating user.
func (s *CapacityService) BootstrapEvent(ctx context.Context, eventID uuid.UUID, actorID uuid.UUID) *errors.AppError {
	txn := &entity.CapacityTransaction{
		Reference:   utils.GenerateReference(),
		EventID:     eventID,
		Type:        entity.TransactionDeposit,
		Quantity:    constants.InitialEventCapacity,
		Description: constants.InitialCapacityDescription,
		UserID:      actorID,
	}

	if err := s.repo.Insert(ctx, txn); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to record initial capacity", err)
	}
	return nil
}

func (s *CapacityService) validateQuantity(rawEventID string, quantity int) (uuid.UUID, *errors.AppError) {
	if rawEventID == "" {
		return uuid.Nil, errors.NewAppError(errors.ErrInvalidInput, "Event ID is required", nil)
	}

	eventID, err := uuid.Parse(rawEventID)
	if err != nil {
		return uuid.Nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID", err)
	}

	if quantity <= 0 {
		return uuid.Nil, errors.NewAppError(errors.ErrInvalidInput, "Quantity must be greater than zero", nil)
	}

	return eventID, nil
}

// loadEventOwner fetches the event and the responsible user of its owning
// company.
func (s *CapacityService) loadEventOwner(ctx context.Context, eventID uuid.UUID) (uuid.UUID, uuid.UUID, *errors.AppError) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return uuid.Nil, uuid.Nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	company, err := s.companies.GetByID(ctx, event.CompanyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
	}
	if company == nil {
		return uuid.Nil, uuid.Nil, errors.NewAppError(errors.ErrNotFound, "Company not found", nil)
	}

	return event.ID, company.ResponsibleID, nil
}
