package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"social-events-api/core/constants"
	coreEntity "social-events-api/core/entity"
	"social-events-api/core/errors"
	"social-events-api/core/params"
	capacityDto "social-events-api/modules/capacity/dto"
	companyEntity "social-events-api/modules/company/entity"
	"social-events-api/modules/event/dto"
	"social-events-api/modules/event/entity"
)

type fakeEventStore struct {
	events     map[uuid.UUID]*entity.Event
	eventTypes map[uuid.UUID]*entity.EventType
	updated    *entity.Event
	deletedID  uuid.UUID
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{
		events:     make(map[uuid.UUID]*entity.Event),
		eventTypes: make(map[uuid.UUID]*entity.EventType),
	}
}

func (f *fakeEventStore) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	event.ID = uuid.New()
	event.CreatedAt = time.Now()
	event.Lifecycle = coreEntity.LifecycleActive
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	clone := *event
	return &clone, nil
}

func (f *fakeEventStore) ListPublic(_ context.Context, p params.QueryParams) (*entity.PaginatedEventEntity, error) {
	items := make([]entity.Event, 0)
	for _, event := range f.events {
		if event.IsPublic {
			items = append(items, *event)
		}
	}
	return &entity.PaginatedEventEntity{Items: items, TotalItems: len(items), PageNumber: p.PageNumber, PageSize: p.PageSize}, nil
}

func (f *fakeEventStore) List(_ context.Context, _ string, p params.QueryParams) (*entity.PaginatedEventEntity, error) {
	items := make([]entity.Event, 0)
	for _, event := range f.events {
		items = append(items, *event)
	}
	return &entity.PaginatedEventEntity{Items: items, TotalItems: len(items), PageNumber: p.PageNumber, PageSize: p.PageSize}, nil
}

func (f *fakeEventStore) ListByCompany(_ context.Context, companyID uuid.UUID, p params.QueryParams) (*entity.PaginatedEventEntity, error) {
	items := make([]entity.Event, 0)
	for _, event := range f.events {
		if event.CompanyID == companyID {
			items = append(items, *event)
		}
	}
	return &entity.PaginatedEventEntity{Items: items, TotalItems: len(items), PageNumber: p.PageNumber, PageSize: p.PageSize}, nil
}

func (f *fakeEventStore) ListAllByCompany(_ context.Context, companyID uuid.UUID) ([]entity.Event, error) {
	items := make([]entity.Event, 0)
	for _, event := range f.events {
		if event.CompanyID == companyID {
			items = append(items, *event)
		}
	}
	return items, nil
}

func (f *fakeEventStore) Update(_ context.Context, event *entity.Event) error {
	f.updated = event
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	f.deletedID = id
	delete(f.events, id)
	return nil
}

func (f *fakeEventStore) GetEventType(_ context.Context, id uuid.UUID) (*entity.EventType, error) {
	return f.eventTypes[id], nil
}

func (f *fakeEventStore) ListEventTypes(_ context.Context) ([]entity.EventType, error) {
	out := make([]entity.EventType, 0)
	for _, eventType := range f.eventTypes {
		out = append(out, *eventType)
	}
	return out, nil
}

type fakeCompanyStore struct {
	company *companyEntity.Company
}

func (f *fakeCompanyStore) GetByID(_ context.Context, id uuid.UUID) (*companyEntity.Company, error) {
	if f.company != nil && f.company.ID == id {
		return f.company, nil
	}
	return nil, nil
}

func (f *fakeCompanyStore) GetByResponsibleID(_ context.Context, responsibleID uuid.UUID) (*companyEntity.Company, error) {
	if f.company != nil && f.company.ResponsibleID == responsibleID {
		return f.company, nil
	}
	return nil, nil
}

func (f *fakeCompanyStore) List(_ context.Context, _ string, _ params.QueryParams) (*companyEntity.PaginatedCompanyEntity, error) {
	return nil, nil
}

type fakeCapacity struct {
	bootstrapped []uuid.UUID
}

func (f *fakeCapacity) Deposit(_ context.Context, _ uuid.UUID, _ *capacityDto.DepositRequest) (*capacityDto.TransactionResponse, *errors.AppError) {
	return nil, nil
}

func (f *fakeCapacity) Withdraw(_ context.Context, _ uuid.UUID, _ uuid.UUID, _ *capacityDto.WithdrawRequest) (*capacityDto.TransactionResponse, *errors.AppError) {
	return nil, nil
}

func (f *fakeCapacity) GetEventCapacity(_ context.Context, _ uuid.UUID) (*capacityDto.CapacityResponse, *errors.AppError) {
	return nil, nil
}

func (f *fakeCapacity) GetHistory(_ context.Context, _ uuid.UUID, _ params.QueryParams) (*capacityDto.HistoryResponse, *errors.AppError) {
	return nil, nil
}

func (f *fakeCapacity) GetCompanySummary(_ context.Context, _ uuid.UUID) (*capacityDto.CompanySummaryResponse, *errors.AppError) {
	return nil, nil
}

func (f *fakeCapacity) BootstrapEvent(_ context.Context, eventID uuid.UUID, _ uuid.UUID) *errors.AppError {
	f.bootstrapped = append(f.bootstrapped, eventID)
	return nil
}

type eventFixture struct {
	service       EventServiceInterface
	store         *fakeEventStore
	capacity      *fakeCapacity
	responsibleID uuid.UUID
	eventTypeID   uuid.UUID
}

func newEventFixture() eventFixture {
	responsibleID := uuid.New()
	eventTypeID := uuid.New()

	company := &companyEntity.Company{
		Name:          "Acme Events",
		ResponsibleID: responsibleID,
		BaseEntity:    coreEntity.BaseEntity{ID: uuid.New()},
	}

	store := newFakeEventStore()
	store.eventTypes[eventTypeID] = &entity.EventType{Name: "Conference", BaseEntity: coreEntity.BaseEntity{ID: eventTypeID}}

	capacity := &fakeCapacity{}
	svc := NewEventService(store, &fakeCompanyStore{company: company}, capacity)
	return eventFixture{
		service:       svc,
		store:         store,
		capacity:      capacity,
		responsibleID: responsibleID,
		eventTypeID:   eventTypeID,
	}
}

func validCreateRequest(fx eventFixture) *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Name:        "Summer Gathering 2026",
		Description: "Annual open-air gathering",
		EventTypeID: fx.eventTypeID.String(),
		StartAt:     time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		EndAt:       time.Now().Add(30 * time.Hour).Format(time.RFC3339),
	}
}

func TestCreateEventBootstrapsLedger(t *testing.T) {
	ctx := context.Background()
	fx := newEventFixture()

	res, appErr := fx.service.Create(ctx, fx.responsibleID, validCreateRequest(fx))
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}
	if res.Event.Slug != "summer-gathering-2026" {
		t.Errorf("expected slug derived from the name, got %q", res.Event.Slug)
	}
	if res.CurrentCapacity != constants.InitialEventCapacity {
		t.Errorf("expected initial capacity %d, got %d", constants.InitialEventCapacity, res.CurrentCapacity)
	}
	if len(fx.capacity.bootstrapped) != 1 || fx.capacity.bootstrapped[0] != res.Event.ID {
		t.Error("creating an event must bootstrap its capacity ledger")
	}
}

func TestCreateEventResponsibleOnly(t *testing.T) {
	ctx := context.Background()
	fx := newEventFixture()

	_, appErr := fx.service.Create(ctx, uuid.New(), validCreateRequest(fx))
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("expected FORBIDDEN, got %v", appErr)
	}
}

func TestCreateEventValidation(t *testing.T) {
	ctx := context.Background()
	fx := newEventFixture()

	mutations := []func(*dto.CreateEventRequest){
		func(r *dto.CreateEventRequest) { r.Name = "" },
		func(r *dto.CreateEventRequest) { r.Description = "" },
		func(r *dto.CreateEventRequest) { r.EventTypeID = "" },
		func(r *dto.CreateEventRequest) { r.StartAt = "" },
		func(r *dto.CreateEventRequest) { r.StartAt = "yesterday" },
		func(r *dto.CreateEventRequest) { r.StartAt, r.EndAt = r.EndAt, r.StartAt },
	}
	for i, mutate := range mutations {
		req := validCreateRequest(fx)
		mutate(req)
		_, appErr := fx.service.Create(ctx, fx.responsibleID, req)
		if appErr == nil || appErr.Code != errors.ErrInvalidInput {
			t.Errorf("case %d: expected INVALID_INPUT, got %v", i, appErr)
		}
	}

	req := validCreateRequest(fx)
	req.EventTypeID = uuid.New().String()
	_, appErr := fx.service.Create(ctx, fx.responsibleID, req)
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("expected NOT_FOUND for an unknown event type, got %v", appErr)
	}
}

func TestUpdateEventReslugsOnRename(t *testing.T) {
	ctx := context.Background()
	fx := newEventFixture()

	created, appErr := fx.service.Create(ctx, fx.responsibleID, validCreateRequest(fx))
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}

	updated, appErr := fx.service.Update(ctx, fx.responsibleID, &dto.UpdateEventRequest{
		ID:   created.Event.ID.String(),
		Name: "Winter Gathering",
	})
	if appErr != nil {
		t.Fatalf("update: %v", appErr)
	}
	if updated.Slug != "winter-gathering" {
		t.Errorf("rename must regenerate the slug, got %q", updated.Slug)
	}
	if updated.Description != created.Event.Description {
		t.Error("untouched fields must keep their value")
	}

	_, appErr = fx.service.Update(ctx, uuid.New(), &dto.UpdateEventRequest{
		ID:   created.Event.ID.String(),
		Name: "Hijacked",
	})
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("expected FORBIDDEN for a non-responsible actor, got %v", appErr)
	}
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	fx := newEventFixture()

	created, appErr := fx.service.Create(ctx, fx.responsibleID, validCreateRequest(fx))
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}

	if appErr := fx.service.Delete(ctx, fx.responsibleID, created.Event.ID); appErr != nil {
		t.Fatalf("delete: %v", appErr)
	}
	if fx.store.deletedID != created.Event.ID {
		t.Error("delete must reach the repository")
	}

	if appErr := fx.service.Delete(ctx, fx.responsibleID, uuid.New()); appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("expected NOT_FOUND, got %v", appErr)
	}
}
