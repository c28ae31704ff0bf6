package dto

import (
	"time"

	"social-events-api/modules/event/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest creates a new event for the caller's company.
type CreateEventRequest struct {
	Name             string `json:"name" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Photo            string `json:"photo"`
	BackgroundImage  string `json:"background_image"`
	IsPublic         *bool  `json:"is_public"`
	IsPublicMetrics  *bool  `json:"is_public_metrics"`
	PromotionalText  string `json:"promotional_text"`
	PromotionalVideo string `json:"promotional_video"`
	PromotionalImage string `json:"promotional_image"`
	PromotionalURL   string `json:"promotional_url"`
	EventTypeID      string `json:"event_type_id" validate:"required"`
	StartAt          string `json:"start_at" validate:"required"` // RFC3339
	EndAt            string `json:"end_at" validate:"required"`   // RFC3339
}

// UpdateEventRequest edits an existing event.
type UpdateEventRequest struct {
	ID               string `json:"id" validate:"required"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Photo            string `json:"photo"`
	BackgroundImage  string `json:"background_image"`
	IsPublic         *bool  `json:"is_public"`
	IsPublicMetrics  *bool  `json:"is_public_metrics"`
	PromotionalText  string `json:"promotional_text"`
	PromotionalVideo string `json:"promotional_video"`
	PromotionalImage string `json:"promotional_image"`
	PromotionalURL   string `json:"promotional_url"`
	EventTypeID      string `json:"event_type_id"`
	StartAt          string `json:"start_at"`
	EndAt            string `json:"end_at"`
}

// DeleteEventRequest soft-deletes an event.
type DeleteEventRequest struct {
	ID string `json:"id" validate:"required"`
}

// ===================== Response DTOs =====================

// EventResponse is an event plus its derived capacity.
type EventResponse struct {
	Event           entity.Event `json:"event"`
	CurrentCapacity int          `json:"current_capacity"`
}

// ParseEventDates validates and parses the RFC3339 date pair.
func ParseEventDates(startAt, endAt string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startAt)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.RFC3339, endAt)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
