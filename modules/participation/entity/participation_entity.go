package entity

import (
	"time"

	"github.com/google/uuid"
)

// Participation statuses.
const (
	StatusNone       = 0
	StatusInterested = 1
	StatusCheckedIn  = 2
	StatusGaveUp     = 3
	StatusLeft       = 4
)

// IsValidStatus reports whether s is a known participation status.
func IsValidStatus(s int) bool {
	return s >= StatusNone && s <= StatusLeft
}

// StatusLabel returns the display name of a status.
func StatusLabel(s int) string {
	switch s {
	case StatusNone:
		return "none"
	case StatusInterested:
		return "interested"
	case StatusCheckedIn:
		return "checkedIn"
	case StatusGaveUp:
		return "gaveUp"
	case StatusLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Participation records a user's relationship with an event. One row per
// (user, event) pair.
type Participation struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	Status    int       `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ParticipationWithUser joins the participant's identity for organizer views.
type ParticipationWithUser struct {
	Participation
	UserEmail  string  `db:"user_email" json:"user_email"`
	ClientName *string `db:"client_name" json:"client_name,omitempty"`
}

// StatusCounts buckets an event's participations by status.
type StatusCounts struct {
	Interested int `json:"interested"`
	CheckedIn  int `json:"checked_in"`
	GaveUp     int `json:"gave_up"`
	Left       int `json:"left"`
	Total      int `json:"total"`
}
