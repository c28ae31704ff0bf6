package service

import (
	"context"

	"github.com/google/uuid"

	"social-events-api/core/logger"
	"social-events-api/core/worker"
	"social-events-api/modules/moderation/entity"
	"social-events-api/modules/moderation/repository"
)

type ModerationService struct {
	repo     repository.ModerationRepositoryInterface
	enqueuer worker.Enqueuer
}

// ModerationServiceInterface defines the service contract. All writes are
// best-effort: content writes must never fail because an alert could not
// be recorded.
type ModerationServiceInterface interface {
	RecordViolation(ctx context.Context, ref entity.SubjectRef, clientID uuid.UUID, originalText string)
	AmendOnEdit(ctx context.Context, ref entity.SubjectRef, newRawText string)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.ModerationAlert, error)
}

func NewModerationService(repo repository.ModerationRepositoryInterface, enqueuer worker.Enqueuer) ModerationServiceInterface {
	return &ModerationService{repo: repo, enqueuer: enqueuer}
}

// RecordViolation appends an alert preserving the original, unredacted
// text, then queues it for review. Failures are logged and swallowed.
func (s *ModerationService) RecordViolation(ctx context.Context, ref entity.SubjectRef, clientID uuid.UUID, originalText string) {
	alert := &entity.ModerationAlert{
		Text:     originalText,
		ClientID: clientID,
	}
	switch ref.Kind {
	case entity.SubjectComment:
		alert.PostCommentID = &ref.ID
	default:
		alert.PostID = &ref.ID
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		logger.Error("ModerationService:RecordViolation", err)
		return
	}

	if s.enqueuer == nil {
		return
	}
	payload := worker.ModerationReviewPayload{
		AlertID:     alert.ID,
		ClientID:    clientID,
		SubjectKind: string(ref.Kind),
		SubjectID:   ref.ID,
	}
	if err := s.enqueuer.EnqueueModerationReview(ctx, payload); err != nil {
		logger.Warn("ModerationService:RecordViolation:Enqueue", "error", err.Error())
	}
}

// AmendOnEdit records the post-edit text on the subject's most recent
// alert, when one exists. Independent of whether the edit itself violates
// the filter; a violating edit additionally goes through RecordViolation.
func (s *ModerationService) AmendOnEdit(ctx context.Context, ref entity.SubjectRef, newRawText string) {
	latest, err := s.repo.LatestBySubject(ctx, ref)
	if err != nil {
		logger.Error("ModerationService:AmendOnEdit", err)
		return
	}
	if latest == nil {
		return
	}

	if err := s.repo.AmendUpdatedText(ctx, latest.ID, newRawText); err != nil {
		logger.Error("ModerationService:AmendOnEdit:Update", err)
	}
}

func (s *ModerationService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.ModerationAlert, error) {
	return s.repo.ListByClient(ctx, clientID)
}
