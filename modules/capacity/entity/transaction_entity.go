package entity

import (
	"time"

	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
)

// TransactionType is the closed set of ledger entry kinds.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionDeposit || t == TransactionWithdrawal
}

// Sign is the contribution of a transaction of this type to the balance.
func (t TransactionType) Sign() int {
	if t == TransactionWithdrawal {
		return -1
	}
	return 1
}

// CapacityTransaction is one row of the append-only capacity ledger.
// Rows are never updated or deleted; the current capacity of an event is
// always derived by summation over its rows.
type CapacityTransaction struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Reference   string          `db:"reference" json:"reference"`
	EventID     uuid.UUID       `db:"event_id" json:"event_id"`
	Type        TransactionType `db:"type" json:"type"`
	Quantity    int             `db:"quantity" json:"quantity"`
	Description string          `db:"description" json:"description"`
	UserID      uuid.UUID       `db:"user_id" json:"user_id"`
	ClientID    *uuid.UUID      `db:"client_id" json:"client_id,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// HistoryEntry is a ledger row joined with the acting user and, when
// present, the affected client identity.
type HistoryEntry struct {
	CapacityTransaction
	ActorName  string  `db:"actor_name" json:"actor_name"`
	ActorNick  *string `db:"actor_nick" json:"actor_nick,omitempty"`
	ClientName *string `db:"client_name" json:"client_name,omitempty"`
	ClientNick *string `db:"client_nick" json:"client_nick,omitempty"`
}

// EventCapacitySummary is the derived state of one event's ledger.
type EventCapacitySummary struct {
	EventID          uuid.UUID `json:"event_id"`
	EventName        string    `json:"event_name"`
	StartAt          time.Time `json:"start_at"`
	EndAt            time.Time `json:"end_at"`
	CurrentCapacity  int       `json:"current_capacity"`
	TotalDeposits    int       `json:"total_deposits"`
	TotalWithdrawals int       `json:"total_withdrawals"`
}

type PaginatedHistoryEntity = coreEntity.Pagination[HistoryEntry]
