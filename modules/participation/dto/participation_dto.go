package dto

import (
	"social-events-api/modules/participation/entity"
)

// UpsertParticipationRequest sets the caller's status for an event.
type UpsertParticipationRequest struct {
	EventID string `json:"event_id" validate:"required"`
	Status  int    `json:"status"`
}

// ParticipationResponse is the caller's participation in an event. When no
// row exists the status is 0 with zero timestamps.
type ParticipationResponse struct {
	entity.Participation
	StatusLabel string `json:"status_label"`
}

// EventParticipationsResponse is the organizer view of an event's
// participations.
type EventParticipationsResponse struct {
	Participations []entity.ParticipationWithUser `json:"participations"`
	Counts         entity.StatusCounts            `json:"counts"`
}
