package repository

import (
	"context"

	"github.com/google/uuid"

	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/core/params"
	"social-events-api/modules/capacity/entity"
)

type CapacityRepository struct {
	DB database.Database
}

func NewCapacityRepository(db database.Database) *CapacityRepository {
	return &CapacityRepository{DB: db}
}

// CapacityRepositoryInterface defines the repository contract.
type CapacityRepositoryInterface interface {
	Insert(ctx context.Context, txn *entity.CapacityTransaction) error
	InsertWithdrawalGuarded(ctx context.Context, txn *entity.CapacityTransaction) (inserted bool, available int, err error)
	CurrentCapacity(ctx context.Context, eventID uuid.UUID) (int, error)
	Totals(ctx context.Context, eventID uuid.UUID) (deposits int, withdrawals int, err error)
	History(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*entity.PaginatedHistoryEntity, error)
}

const balanceQuery = `
	SELECT COALESCE(SUM(CASE WHEN type = 'deposit' THEN quantity ELSE -quantity END), 0)
	FROM capacity_transactions
	WHERE event_id = $1
`

// Insert appends a transaction to the ledger. Used for deposits, which
// need no balance guard.
func (r *CapacityRepository) Insert(ctx context.Context, txn *entity.CapacityTransaction) error {
	query := `
		INSERT INTO capacity_transactions (reference, event_id, type, quantity, description, user_id, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		txn.Reference, txn.EventID, txn.Type, txn.Quantity, txn.Description, txn.UserID, txn.ClientID,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		logger.Error("CapacityRepository:Insert", err)
		return err
	}
	return nil
}

// InsertWithdrawalGuarded appends a withdrawal only when the event still
// has enough capacity. The balance check and the insert run in one
// transaction serialized per event by an advisory lock, so concurrent
// withdrawals cannot drive the balance negative.
func (r *CapacityRepository) InsertWithdrawalGuarded(ctx context.Context, txn *entity.CapacityTransaction) (bool, int, error) {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("CapacityRepository:InsertWithdrawalGuarded:Begin", err)
		return false, 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, txn.EventID); err != nil {
		logger.Error("CapacityRepository:InsertWithdrawalGuarded:Lock", err)
		return false, 0, err
	}

	var available int
	if err := tx.GetContext(ctx, &available, balanceQuery, txn.EventID); err != nil {
		logger.Error("CapacityRepository:InsertWithdrawalGuarded:Balance", err)
		return false, 0, err
	}

	if available < txn.Quantity {
		return false, available, nil
	}

	query := `
		INSERT INTO capacity_transactions (reference, event_id, type, quantity, description, user_id, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	if err := tx.QueryRowxContext(ctx, query,
		txn.Reference, txn.EventID, txn.Type, txn.Quantity, txn.Description, txn.UserID, txn.ClientID,
	).Scan(&txn.ID, &txn.CreatedAt); err != nil {
		logger.Error("CapacityRepository:InsertWithdrawalGuarded:Insert", err)
		return false, 0, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("CapacityRepository:InsertWithdrawalGuarded:Commit", err)
		return false, 0, err
	}

	return true, available - txn.Quantity, nil
}

// CurrentCapacity recomputes the balance from the ledger. Never cached.
func (r *CapacityRepository) CurrentCapacity(ctx context.Context, eventID uuid.UUID) (int, error) {
	var balance int
	if err := r.DB.GetContext(ctx, &balance, balanceQuery, eventID); err != nil {
		logger.Error("CapacityRepository:CurrentCapacity", err)
		return 0, err
	}
	return balance, nil
}

func (r *CapacityRepository) Totals(ctx context.Context, eventID uuid.UUID) (int, int, error) {
	query := `
		SELECT
			COALESCE(SUM(quantity) FILTER (WHERE type = 'deposit'), 0)    AS deposits,
			COALESCE(SUM(quantity) FILTER (WHERE type = 'withdrawal'), 0) AS withdrawals
		FROM capacity_transactions
		WHERE event_id = $1
	`

	var totals struct {
		Deposits    int `db:"deposits"`
		Withdrawals int `db:"withdrawals"`
	}
	if err := r.DB.GetContext(ctx, &totals, query, eventID); err != nil {
		logger.Error("CapacityRepository:Totals", err)
		return 0, 0, err
	}
	return totals.Deposits, totals.Withdrawals, nil
}

func (r *CapacityRepository) History(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*entity.PaginatedHistoryEntity, error) {
	var totalItems int
	countQuery := `SELECT COUNT(*) FROM capacity_transactions WHERE event_id = $1`
	if err := r.DB.GetContext(ctx, &totalItems, countQuery, eventID); err != nil {
		logger.Error("CapacityRepository:History:Count", err)
		return nil, err
	}

	query := `
		SELECT t.id, t.reference, t.event_id, t.type, t.quantity, t.description,
			t.user_id, t.client_id, t.created_at,
			COALESCE(ac.name, u.email) AS actor_name, ac.nick AS actor_nick,
			cl.name AS client_name, cl.nick AS client_nick
		FROM capacity_transactions t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN clients ac ON ac.user_id = u.id
		LEFT JOIN clients cl ON cl.id = t.client_id
		WHERE t.event_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var entries []entity.HistoryEntry
	if err := r.DB.SelectContext(ctx, &entries, query, eventID, p.PageSize, p.Offset()); err != nil {
		logger.Error("CapacityRepository:History:Select", err)
		return nil, err
	}

	return &entity.PaginatedHistoryEntity{
		Items:      entries,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}
