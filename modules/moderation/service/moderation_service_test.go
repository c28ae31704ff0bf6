package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"social-events-api/core/worker"
	"social-events-api/modules/moderation/entity"
)

type fakeAlertStore struct {
	alerts    []*entity.ModerationAlert
	createErr error
}

func (f *fakeAlertStore) Create(_ context.Context, alert *entity.ModerationAlert) error {
	if f.createErr != nil {
		return f.createErr
	}
	alert.ID = uuid.New()
	alert.CreatedAt = time.Now()
	f.alerts = append(f.alerts, alert)
	return nil
}

func (f *fakeAlertStore) GetByID(_ context.Context, id uuid.UUID) (*entity.ModerationAlert, error) {
	for _, alert := range f.alerts {
		if alert.ID == id {
			return alert, nil
		}
	}
	return nil, nil
}

func (f *fakeAlertStore) LatestBySubject(_ context.Context, ref entity.SubjectRef) (*entity.ModerationAlert, error) {
	var latest *entity.ModerationAlert
	for _, alert := range f.alerts {
		var subjectID *uuid.UUID
		if ref.Kind == entity.SubjectComment {
			subjectID = alert.PostCommentID
		} else {
			subjectID = alert.PostID
		}
		if subjectID == nil || *subjectID != ref.ID {
			continue
		}
		if latest == nil || alert.CreatedAt.After(latest.CreatedAt) {
			latest = alert
		}
	}
	return latest, nil
}

func (f *fakeAlertStore) AmendUpdatedText(_ context.Context, alertID uuid.UUID, updatedText string) error {
	for _, alert := range f.alerts {
		if alert.ID == alertID {
			text := updatedText
			alert.UpdatedText = &text
			return nil
		}
	}
	return nil
}

func (f *fakeAlertStore) ListByClient(_ context.Context, clientID uuid.UUID) ([]entity.ModerationAlert, error) {
	out := make([]entity.ModerationAlert, 0)
	for _, alert := range f.alerts {
		if alert.ClientID == clientID {
			out = append(out, *alert)
		}
	}
	return out, nil
}

type fakeEnqueuer struct {
	payloads []worker.ModerationReviewPayload
	err      error
}

func (f *fakeEnqueuer) EnqueueModerationReview(_ context.Context, payload worker.ModerationReviewPayload) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

func TestRecordViolationStoresOriginalText(t *testing.T) {
	ctx := context.Background()
	store := &fakeAlertStore{}
	queue := &fakeEnqueuer{}
	svc := NewModerationService(store, queue)

	postID := uuid.New()
	clientID := uuid.New()
	svc.RecordViolation(ctx, entity.PostRef(postID), clientID, "Title |-| the raw offending text")

	if len(store.alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(store.alerts))
	}
	alert := store.alerts[0]
	if alert.Text != "Title |-| the raw offending text" {
		t.Errorf("alert must keep the unredacted text, got %q", alert.Text)
	}
	if alert.PostID == nil || *alert.PostID != postID {
		t.Error("alert must anchor to the post")
	}
	if alert.PostCommentID != nil {
		t.Error("post alert must not carry a comment ID")
	}
	if alert.ClientID != clientID {
		t.Error("alert must carry the offending client")
	}

	if len(queue.payloads) != 1 {
		t.Fatalf("expected 1 review task, got %d", len(queue.payloads))
	}
	if queue.payloads[0].AlertID != alert.ID || queue.payloads[0].SubjectKind != "post" {
		t.Errorf("unexpected payload: %+v", queue.payloads[0])
	}
}

func TestRecordViolationCommentAnchor(t *testing.T) {
	ctx := context.Background()
	store := &fakeAlertStore{}
	svc := NewModerationService(store, &fakeEnqueuer{})

	commentID := uuid.New()
	svc.RecordViolation(ctx, entity.CommentRef(commentID), uuid.New(), "offending comment")

	if len(store.alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(store.alerts))
	}
	alert := store.alerts[0]
	if alert.PostCommentID == nil || *alert.PostCommentID != commentID {
		t.Error("alert must anchor to the comment")
	}
	if alert.PostID != nil {
		t.Error("comment alert must not carry a post ID")
	}
}

func TestRecordViolationSwallowsFailures(t *testing.T) {
	ctx := context.Background()
	store := &fakeAlertStore{createErr: errors.New("db down")}
	queue := &fakeEnqueuer{}
	svc := NewModerationService(store, queue)

	// Must not panic and must not enqueue anything.
	svc.RecordViolation(ctx, entity.PostRef(uuid.New()), uuid.New(), "text")
	if len(queue.payloads) != 0 {
		t.Error("a failed alert write must not be queued for review")
	}

	// Enqueue failures are also swallowed; the alert still lands.
	store.createErr = nil
	queue.err = errors.New("redis down")
	svc.RecordViolation(ctx, entity.PostRef(uuid.New()), uuid.New(), "text")
	if len(store.alerts) != 1 {
		t.Errorf("expected the alert to be stored despite the queue failure, got %d", len(store.alerts))
	}
}

func TestAmendOnEditUpdatesLatestAlert(t *testing.T) {
	ctx := context.Background()
	store := &fakeAlertStore{}
	svc := NewModerationService(store, &fakeEnqueuer{})

	postID := uuid.New()
	clientID := uuid.New()
	svc.RecordViolation(ctx, entity.PostRef(postID), clientID, "first violation")
	store.alerts[0].CreatedAt = time.Now().Add(-time.Hour)
	svc.RecordViolation(ctx, entity.PostRef(postID), clientID, "second violation")

	svc.AmendOnEdit(ctx, entity.PostRef(postID), "edited text")

	if store.alerts[0].UpdatedText != nil {
		t.Error("only the most recent alert may be amended")
	}
	if store.alerts[1].UpdatedText == nil || *store.alerts[1].UpdatedText != "edited text" {
		t.Errorf("latest alert must carry the edited text, got %v", store.alerts[1].UpdatedText)
	}
}

func TestAmendOnEditNoAlerts(t *testing.T) {
	ctx := context.Background()
	store := &fakeAlertStore{}
	svc := NewModerationService(store, &fakeEnqueuer{})

	// Editing content that never triggered an alert is a no-op.
	svc.AmendOnEdit(ctx, entity.PostRef(uuid.New()), "edited text")
	if len(store.alerts) != 0 {
		t.Errorf("amend must never create alerts, got %d", len(store.alerts))
	}
}
