package entity

import (
	"time"

	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
)

// User is the authentication identity. Credentials and token issuance live
// outside this service; users here are only looked up, never created.
type User struct {
	Email     string               `db:"email" json:"email"`
	Lifecycle coreEntity.Lifecycle `db:"lifecycle" json:"lifecycle"`
	coreEntity.BaseEntity
}

// Client is the public profile attached to a user.
type Client struct {
	UserID   uuid.UUID `db:"user_id" json:"user_id"`
	Name     string    `db:"name" json:"name"`
	Nick     string    `db:"nick" json:"nick"`
	Photo    *string   `db:"photo" json:"photo,omitempty"`
	UserType int       `db:"user_type" json:"user_type"`
	// BannedUntil is set while a moderation block is in effect.
	BannedUntil *time.Time           `db:"banned_until" json:"banned_until,omitempty"`
	Lifecycle   coreEntity.Lifecycle `db:"lifecycle" json:"lifecycle"`
	coreEntity.BaseEntity
}

// Actor is a resolved user together with their client profile, the shape
// most authorization checks need.
type Actor struct {
	User   User
	Client *Client
}

// ClientID returns the actor's client id or uuid.Nil when the user has no
// client profile.
func (a Actor) ClientID() uuid.UUID {
	if a.Client == nil {
		return uuid.Nil
	}
	return a.Client.ID
}
