// Package authz holds the capability predicates consumed before any
// mutation. All checks are pure lookups against already-loaded entity
// fields; no queries happen here.
package authz

import (
	"github.com/google/uuid"

	"social-events-api/core/constants"
)

// Decision is the result of a capability check.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// IsCompanyResponsible reports whether the actor is the responsible party
// of the company owning the target entity.
func IsCompanyResponsible(actorID, responsibleID uuid.UUID) Decision {
	if actorID == uuid.Nil {
		return deny("actor is not authenticated")
	}
	if actorID != responsibleID {
		return deny("actor is not the company responsible")
	}
	return allow()
}

// IsContentAuthor reports whether the actor's client authored the content.
func IsContentAuthor(actorClientID, authorID uuid.UUID) Decision {
	if actorClientID == uuid.Nil {
		return deny("actor has no client profile")
	}
	if actorClientID != authorID {
		return deny("actor is not the content author")
	}
	return allow()
}

// IsSelfCheckIn reports whether a withdrawal targets the actor's own client.
func IsSelfCheckIn(actorClientID uuid.UUID, affectedClientID *uuid.UUID) Decision {
	if affectedClientID == nil {
		return deny("no affected client given")
	}
	if actorClientID == uuid.Nil || *affectedClientID != actorClientID {
		return deny("actor may only check in their own client")
	}
	return allow()
}

// IsAdmin reports whether the actor's client profile has the admin type.
func IsAdmin(clientUserType int) Decision {
	if clientUserType != constants.ClientTypeAdmin {
		return deny("actor is not an administrator")
	}
	return allow()
}
