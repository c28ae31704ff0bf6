package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
	"social-events-api/core/errors"
	"social-events-api/core/params"
	"social-events-api/modules/capacity/dto"
	"social-events-api/modules/capacity/entity"
	companyEntity "social-events-api/modules/company/entity"
	eventEntity "social-events-api/modules/event/entity"
)

type fakeLedger struct {
	txns      []entity.CapacityTransaction
	insertErr error
}

func (f *fakeLedger) balance(eventID uuid.UUID) int {
	total := 0
	for _, txn := range f.txns {
		if txn.EventID != eventID {
			continue
		}
		if txn.Type == entity.TransactionDeposit {
			total += txn.Quantity
		} else {
			total -= txn.Quantity
		}
	}
	return total
}

func (f *fakeLedger) Insert(_ context.Context, txn *entity.CapacityTransaction) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	txn.ID = uuid.New()
	txn.CreatedAt = time.Now()
	f.txns = append(f.txns, *txn)
	return nil
}

func (f *fakeLedger) InsertWithdrawalGuarded(_ context.Context, txn *entity.CapacityTransaction) (bool, int, error) {
	available := f.balance(txn.EventID)
	if available < txn.Quantity {
		return false, available, nil
	}
	txn.ID = uuid.New()
	txn.CreatedAt = time.Now()
	f.txns = append(f.txns, *txn)
	return true, available - txn.Quantity, nil
}

func (f *fakeLedger) CurrentCapacity(_ context.Context, eventID uuid.UUID) (int, error) {
	return f.balance(eventID), nil
}

func (f *fakeLedger) Totals(_ context.Context, eventID uuid.UUID) (int, int, error) {
	deposits, withdrawals := 0, 0
	for _, txn := range f.txns {
		if txn.EventID != eventID {
			continue
		}
		if txn.Type == entity.TransactionDeposit {
			deposits += txn.Quantity
		} else {
			withdrawals += txn.Quantity
		}
	}
	return deposits, withdrawals, nil
}

func (f *fakeLedger) History(_ context.Context, eventID uuid.UUID, p params.QueryParams) (*entity.PaginatedHistoryEntity, error) {
	items := make([]entity.HistoryEntry, 0)
	for _, txn := range f.txns {
		if txn.EventID == eventID {
			items = append(items, entity.HistoryEntry{CapacityTransaction: txn, ActorName: "actor"})
		}
	}
	return &entity.PaginatedHistoryEntity{
		Items:      items,
		TotalItems: len(items),
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

type fakeEventStore struct {
	events map[uuid.UUID]*eventEntity.Event
}

func (f *fakeEventStore) GetByID(_ context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventStore) ListAllByCompany(_ context.Context, companyID uuid.UUID) ([]eventEntity.Event, error) {
	out := make([]eventEntity.Event, 0)
	for _, event := range f.events {
		if event.CompanyID == companyID {
			out = append(out, *event)
		}
	}
	return out, nil
}

func (f *fakeEventStore) Create(_ context.Context, event *eventEntity.Event) (*eventEntity.Event, error) {
	return event, nil
}

func (f *fakeEventStore) ListPublic(_ context.Context, _ params.QueryParams) (*eventEntity.PaginatedEventEntity, error) {
	return nil, nil
}

func (f *fakeEventStore) List(_ context.Context, _ string, _ params.QueryParams) (*eventEntity.PaginatedEventEntity, error) {
	return nil, nil
}

func (f *fakeEventStore) ListByCompany(_ context.Context, _ uuid.UUID, _ params.QueryParams) (*eventEntity.PaginatedEventEntity, error) {
	return nil, nil
}

func (f *fakeEventStore) Update(_ context.Context, _ *eventEntity.Event) error { return nil }

func (f *fakeEventStore) SoftDelete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeEventStore) GetEventType(_ context.Context, _ uuid.UUID) (*eventEntity.EventType, error) {
	return nil, nil
}

func (f *fakeEventStore) ListEventTypes(_ context.Context) ([]eventEntity.EventType, error) {
	return nil, nil
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

type ledgerFixture struct {
	service       CapacityServiceInterface
	ledger        *fakeLedger
	eventID       uuid.UUID
	responsibleID uuid.UUID
}

func newLedgerFixture() ledgerFixture {
	responsibleID := uuid.New()
	companyID := uuid.New()
	eventID := uuid.New()

	company := &companyEntity.Company{
		Name:          "Acme Events",
		ResponsibleID: responsibleID,
		BaseEntity:    coreEntity.BaseEntity{ID: companyID},
	}
	event := &eventEntity.Event{
		Name:       "Launch Party",
		CompanyID:  companyID,
		StartAt:    time.Now().Add(24 * time.Hour),
		EndAt:      time.Now().Add(30 * time.Hour),
		BaseEntity: coreEntity.BaseEntity{ID: eventID},
	}

	ledger := &fakeLedger{}
	svc := NewCapacityService(
		ledger,
		&fakeEventStore{events: map[uuid.UUID]*eventEntity.Event{eventID: event}},
		&fakeCompanyStore{company: company},
	)
	return ledgerFixture{service: svc, ledger: ledger, eventID: eventID, responsibleID: responsibleID}
}

func TestLedgerLifecycle(t *testing.T) {
	ctx := context.Background()
	fx := newLedgerFixture()

	if appErr := fx.service.BootstrapEvent(ctx, fx.eventID, fx.responsibleID); appErr != nil {
		t.Fatalf("bootstrap: %v", appErr)
	}

	res, appErr := fx.service.Deposit(ctx, fx.responsibleID, &dto.DepositRequest{
		EventID:  fx.eventID.String(),
		Quantity: 50,
	})
	if appErr != nil {
		t.Fatalf("deposit: %v", appErr)
	}
	if res.CurrentCapacity != 150 {
		t.Errorf("expected capacity 150 after bootstrap+deposit, got %d", res.CurrentCapacity)
	}

	// Over-withdrawal must be refused and must not touch the ledger.
	_, appErr = fx.service.Withdraw(ctx, fx.responsibleID, uuid.Nil, &dto.WithdrawRequest{
		EventID:  fx.eventID.String(),
		Quantity: 200,
	})
	if appErr == nil {
		t.Fatal("expected over-withdrawal to fail")
	}
	if appErr.Code != errors.ErrInsufficientCapacity {
		t.Errorf("expected INSUFFICIENT_CAPACITY, got %s", appErr.Code)
	}
	if want := "Insufficient capacity. Available: 150, Requested: 200"; appErr.Message != want {
		t.Errorf("expected %q, got %q", want, appErr.Message)
	}
	if got := fx.ledger.balance(fx.eventID); got != 150 {
		t.Errorf("refused withdrawal must not change the balance, got %d", got)
	}

	res, appErr = fx.service.Withdraw(ctx, fx.responsibleID, uuid.Nil, &dto.WithdrawRequest{
		EventID:  fx.eventID.String(),
		Quantity: 150,
	})
	if appErr != nil {
		t.Fatalf("withdraw: %v", appErr)
	}
	if res.CurrentCapacity != 0 {
		t.Errorf("expected capacity 0 after draining, got %d", res.CurrentCapacity)
	}

	_, appErr = fx.service.Withdraw(ctx, fx.responsibleID, uuid.Nil, &dto.WithdrawRequest{
		EventID:  fx.eventID.String(),
		Quantity: 1,
	})
	if appErr == nil || appErr.Code != errors.ErrInsufficientCapacity {
		t.Errorf("expected withdrawal from an empty ledger to fail with INSUFFICIENT_CAPACITY, got %v", appErr)
	}
}

func TestDepositRequiresResponsible(t *testing.T) {
	ctx := context.Background()
	fx := newLedgerFixture()

	_, appErr := fx.service.Deposit(ctx, uuid.New(), &dto.DepositRequest{
		EventID:  fx.eventID.String(),
		Quantity: 10,
	})
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("expected FORBIDDEN for a non-responsible actor, got %v", appErr)
	}
}

func TestDepositValidation(t *testing.T) {
	ctx := context.Background()
	fx := newLedgerFixture()

	cases := []dto.DepositRequest{
		{EventID: "", Quantity: 10},
		{EventID: "not-a-uuid", Quantity: 10},
		{EventID: fx.eventID.String(), Quantity: 0},
		{EventID: fx.eventID.String(), Quantity: -5},
	}
	for i, req := range cases {
		_, appErr := fx.service.Deposit(ctx, fx.responsibleID, &req)
		if appErr == nil || appErr.Code != errors.ErrInvalidInput {
			t.Errorf("case %d: expected INVALID_INPUT, got %v", i, appErr)
		}
	}
}

func TestWithdrawSelfCheckIn(t *testing.T) {
	ctx := context.Background()
	fx := newLedgerFixture()
	if appErr := fx.service.BootstrapEvent(ctx, fx.eventID, fx.responsibleID); appErr != nil {
		t.Fatalf("bootstrap: %v", appErr)
	}

	clientID := uuid.New()
	res, appErr := fx.service.Withdraw(ctx, uuid.New(), clientID, &dto.WithdrawRequest{
		EventID:  fx.eventID.String(),
		Quantity: 1,
		ClientID: clientID.String(),
	})
	if appErr != nil {
		t.Fatalf("self check-in should be allowed: %v", appErr)
	}
	if res.CurrentCapacity != 99 {
		t.Errorf("expected capacity 99, got %d", res.CurrentCapacity)
	}

	// Checking in somebody else's client without being responsible is refused.
	_, appErr = fx.service.Withdraw(ctx, uuid.New(), clientID, &dto.WithdrawRequest{
		EventID:  fx.eventID.String(),
		Quantity: 1,
		ClientID: uuid.New().String(),
	})
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("expected FORBIDDEN, got %v", appErr)
	}
}

func TestWithdrawUnknownEvent(t *testing.T) {
	ctx := context.Background()
	fx := newLedgerFixture()

	_, appErr := fx.service.Withdraw(ctx, fx.responsibleID, uuid.Nil, &dto.WithdrawRequest{
		EventID:  uuid.New().String(),
		Quantity: 1,
	})
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("expected NOT_FOUND for unknown event, got %v", appErr)
	}
}

func TestGetEventCapacityTotals(t *testing.T) {
	ctx := context.Background()
	fx := newLedgerFixture()
	if appErr := fx.service.BootstrapEvent(ctx, fx.eventID, fx.responsibleID); appErr != nil {
		t.Fatalf("bootstrap: %v", appErr)
	}
	if _, appErr := fx.service.Withdraw(ctx, fx.responsibleID, uuid.Nil, &dto.WithdrawRequest{
		EventID:  fx.eventID.String(),
		Quantity: 30,
	}); appErr != nil {
		t.Fatalf("withdraw: %v", appErr)
	}

	res, appErr := fx.service.GetEventCapacity(ctx, fx.eventID)
	if appErr != nil {
		t.Fatalf("get capacity: %v", appErr)
	}
	if res.TotalDeposits != 100 || res.TotalWithdrawals != 30 || res.CurrentCapacity != 70 {
		t.Errorf("unexpected totals: deposits=%d withdrawals=%d capacity=%d",
			res.TotalDeposits, res.TotalWithdrawals, res.CurrentCapacity)
	}
}

func TestGetHistoryAppendOnly(t *testing.T) {
	ctx := context.Background()
	fx := newLedgerFixture()
	if appErr := fx.service.BootstrapEvent(ctx, fx.eventID, fx.responsibleID); appErr != nil {
		t.Fatalf("bootstrap: %v", appErr)
	}
	for i := 0; i < 3; i++ {
		if _, appErr := fx.service.Withdraw(ctx, fx.responsibleID, uuid.Nil, &dto.WithdrawRequest{
			EventID:     fx.eventID.String(),
			Quantity:    5,
			Description: fmt.Sprintf("group %d", i),
		}); appErr != nil {
			t.Fatalf("withdraw %d: %v", i, appErr)
		}
	}

	res, appErr := fx.service.GetHistory(ctx, fx.eventID, params.QueryParams{PageNumber: 1, PageSize: 10})
	if appErr != nil {
		t.Fatalf("history: %v", appErr)
	}
	if res.Total != 4 {
		t.Errorf("expected 4 ledger rows (bootstrap + 3 withdrawals), got %d", res.Total)
	}
	if res.CurrentCapacity != 85 {
		t.Errorf("expected capacity 85, got %d", res.CurrentCapacity)
	}
}

func TestCompanySummary(t *testing.T) {
	ctx := context.Background()
	fx := newLedgerFixture()
	if appErr := fx.service.BootstrapEvent(ctx, fx.eventID, fx.responsibleID); appErr != nil {
		t.Fatalf("bootstrap: %v", appErr)
	}

	res, appErr := fx.service.GetCompanySummary(ctx, fx.responsibleID)
	if appErr != nil {
		t.Fatalf("summary: %v", appErr)
	}
	if len(res.Events) != 1 {
		t.Fatalf("expected 1 event summary, got %d", len(res.Events))
	}
	if res.Events[0].CurrentCapacity != 100 {
		t.Errorf("expected capacity 100, got %d", res.Events[0].CurrentCapacity)
	}

	_, appErr = fx.service.GetCompanySummary(ctx, uuid.New())
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("expected FORBIDDEN for an actor without a company, got %v", appErr)
	}
}
