package entity

import (
	"time"

	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
)

// EventType is a catalogue entry (party, show, meetup...).
type EventType struct {
	Name      string               `db:"name" json:"name"`
	Lifecycle coreEntity.Lifecycle `db:"lifecycle" json:"lifecycle"`
	coreEntity.BaseEntity
}

// Event is a company-owned happening with a capacity ledger attached.
type Event struct {
	Name             string               `db:"name" json:"name"`
	Slug             string               `db:"slug" json:"slug"`
	Description      string               `db:"description" json:"description"`
	Photo            *string              `db:"photo" json:"photo,omitempty"`
	BackgroundImage  *string              `db:"background_image" json:"background_image,omitempty"`
	IsPublic         bool                 `db:"is_public" json:"is_public"`
	IsPublicMetrics  bool                 `db:"is_public_metrics" json:"is_public_metrics"`
	PromotionalText  *string              `db:"promotional_text" json:"promotional_text,omitempty"`
	PromotionalVideo *string              `db:"promotional_video" json:"promotional_video,omitempty"`
	PromotionalImage *string              `db:"promotional_image" json:"promotional_image,omitempty"`
	PromotionalURL   *string              `db:"promotional_url" json:"promotional_url,omitempty"`
	CompanyID        uuid.UUID            `db:"company_id" json:"company_id"`
	EventTypeID      uuid.UUID            `db:"event_type_id" json:"event_type_id"`
	StartAt          time.Time            `db:"start_at" json:"start_at"`
	EndAt            time.Time            `db:"end_at" json:"end_at"`
	Lifecycle        coreEntity.Lifecycle `db:"lifecycle" json:"lifecycle"`
	coreEntity.BaseEntity
}

type PaginatedEventEntity = coreEntity.Pagination[Event]
