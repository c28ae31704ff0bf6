package dto

import (
	"time"

	"social-events-api/modules/block/entity"
)

// CreateBlockRequest suspends a user for PeriodDays, citing the moderation
// alert that motivated the block.
type CreateBlockRequest struct {
	TargetUserID      string `json:"target_user_id" validate:"required"`
	ModerationAlertID string `json:"moderation_alert_id" validate:"required"`
	PeriodDays        int    `json:"period_days" validate:"required"`
}

// RemoveBlockRequest lifts an active block.
type RemoveBlockRequest struct {
	BlockID string `json:"block_id" validate:"required"`
}

// BlockResponse is the stored block plus the computed ban horizon.
type BlockResponse struct {
	Block        entity.Block `json:"block"`
	BlockedUntil time.Time    `json:"blocked_until"`
}
