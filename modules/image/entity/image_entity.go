package entity

import (
	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
)

// Image is one entry in a client's ordered photo gallery. URL points at
// the stored object; Position drives gallery ordering.
type Image struct {
	ClientID  uuid.UUID            `db:"client_id" json:"client_id"`
	URL       string               `db:"url" json:"url"`
	Position  int                  `db:"position" json:"position"`
	Lifecycle coreEntity.Lifecycle `db:"lifecycle" json:"lifecycle"`
	coreEntity.BaseEntity
}
