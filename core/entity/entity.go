package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle is the explicit entity lifecycle state. Every query that reads
// domain rows filters on it; soft deletion flips it to Deleted.
type Lifecycle string

const (
	LifecycleActive  Lifecycle = "active"
	LifecycleDeleted Lifecycle = "deleted"
)

func (l Lifecycle) IsValid() bool {
	return l == LifecycleActive || l == LifecycleDeleted
}

// BaseEntity carries the columns shared by every table.
type BaseEntity struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Pagination is the generic paginated result envelope.
type Pagination[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}
