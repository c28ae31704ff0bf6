package dto

import (
	"github.com/google/uuid"
)

// MarkAsReadRequest flags specific notifications as read.
type MarkAsReadRequest struct {
	IDs []string `json:"ids" validate:"required"`
}

// CreateNotificationRequest is consumed by background workers, never
// bound from HTTP.
type CreateNotificationRequest struct {
	UserID  uuid.UUID              `json:"user_id"`
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
	Type    string                 `json:"type"`
	Data    map[string]interface{} `json:"data"`
}
