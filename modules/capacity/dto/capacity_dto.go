package dto

import (
	"github.com/google/uuid"

	"social-events-api/modules/capacity/entity"
)

// ===================== Request DTOs =====================

// DepositRequest adds capacity to an event.
type DepositRequest struct {
	EventID     string `json:"event_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	Description string `json:"description"`
}

// WithdrawRequest removes capacity (check-in) from an event.
type WithdrawRequest struct {
	EventID     string `json:"event_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	Description string `json:"description"`
	ClientID    string `json:"client_id"`
}

// ===================== Response DTOs =====================

// TransactionResponse is the result of a ledger mutation.
type TransactionResponse struct {
	Transaction     entity.CapacityTransaction `json:"transaction"`
	CurrentCapacity int                        `json:"current_capacity"`
}

// CapacityResponse is the derived capacity of an event.
type CapacityResponse struct {
	EventID          uuid.UUID `json:"event_id"`
	EventName        string    `json:"event_name"`
	CurrentCapacity  int       `json:"current_capacity"`
	TotalDeposits    int       `json:"total_deposits"`
	TotalWithdrawals int       `json:"total_withdrawals"`
}

// HistoryResponse is a page of ledger entries plus the live balance.
type HistoryResponse struct {
	Page            int                   `json:"page"`
	PageSize        int                   `json:"page_size"`
	Total           int                   `json:"total"`
	CurrentCapacity int                   `json:"current_capacity"`
	Transactions    []entity.HistoryEntry `json:"transactions"`
}

// CompanySummaryResponse lists the ledger state of every active event a
// company owns.
type CompanySummaryResponse struct {
	Company CompanyRef                    `json:"company"`
	Events  []entity.EventCapacitySummary `json:"events"`
}

type CompanyRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
