package authz

import (
	"testing"

	"github.com/google/uuid"

	"social-events-api/core/constants"
)

func TestIsCompanyResponsible(t *testing.T) {
	actor := uuid.New()

	if d := IsCompanyResponsible(actor, actor); !d.Allowed {
		t.Errorf("responsible actor must be allowed, got %q", d.Reason)
	}
	if d := IsCompanyResponsible(actor, uuid.New()); d.Allowed {
		t.Error("different actor must be denied")
	}
	if d := IsCompanyResponsible(uuid.Nil, uuid.Nil); d.Allowed {
		t.Error("unauthenticated actor must be denied even on a nil match")
	}
}

func TestIsContentAuthor(t *testing.T) {
	client := uuid.New()

	if d := IsContentAuthor(client, client); !d.Allowed {
		t.Errorf("author must be allowed, got %q", d.Reason)
	}
	if d := IsContentAuthor(client, uuid.New()); d.Allowed {
		t.Error("non-author must be denied")
	}
	if d := IsContentAuthor(uuid.Nil, uuid.Nil); d.Allowed {
		t.Error("actor without a client profile must be denied")
	}
}

func TestIsSelfCheckIn(t *testing.T) {
	client := uuid.New()

	if d := IsSelfCheckIn(client, &client); !d.Allowed {
		t.Errorf("own client must be allowed, got %q", d.Reason)
	}
	other := uuid.New()
	if d := IsSelfCheckIn(client, &other); d.Allowed {
		t.Error("someone else's client must be denied")
	}
	if d := IsSelfCheckIn(client, nil); d.Allowed {
		t.Error("missing affected client must be denied")
	}
	if d := IsSelfCheckIn(uuid.Nil, &other); d.Allowed {
		t.Error("actor without a client profile must be denied")
	}
}

func TestIsAdmin(t *testing.T) {
	if d := IsAdmin(constants.ClientTypeAdmin); !d.Allowed {
		t.Errorf("admin type must be allowed, got %q", d.Reason)
	}
	if d := IsAdmin(constants.ClientTypeRegular); d.Allowed {
		t.Error("regular client must be denied")
	}
}
