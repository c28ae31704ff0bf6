package entity

import (
	"time"

	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
)

// Block suspends a user for a number of days, always anchored to the
// moderation alert that motivated it.
type Block struct {
	UserID            uuid.UUID            `db:"user_id" json:"user_id"`
	ModerationAlertID uuid.UUID            `db:"moderation_alert_id" json:"moderation_alert_id"`
	PeriodDays        int                  `db:"period_days" json:"period_days"`
	Lifecycle         coreEntity.Lifecycle `db:"lifecycle" json:"lifecycle"`
	coreEntity.BaseEntity
}

// BlockWithAlert joins the motivating alert's text for review listings.
type BlockWithAlert struct {
	Block
	AlertText        string    `db:"alert_text" json:"alert_text"`
	AlertCreatedAt   time.Time `db:"alert_created_at" json:"alert_created_at"`
	TargetUserEmail  string    `db:"target_user_email" json:"target_user_email"`
	TargetClientName *string   `db:"target_client_name" json:"target_client_name,omitempty"`
}
