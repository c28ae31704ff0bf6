package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
	"social-events-api/core/logger"
	"social-events-api/core/params"
	"social-events-api/core/worker"
	"social-events-api/modules/notification/dto"
	"social-events-api/modules/notification/entity"
	"social-events-api/modules/notification/repository"
	userRepository "social-events-api/modules/user/repository"
)

type NotificationService struct {
	repo  repository.NotificationRepositoryInterface
	users userRepository.UserRepositoryInterface
}

// NotificationServiceInterface defines the service contract.
type NotificationServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) error
	GetMyNotifications(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*entity.PaginatedNotificationEntity, error)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	ModerationReviewHandler() worker.ModerationReviewHandler
}

func NewNotificationService(
	repo repository.NotificationRepositoryInterface,
	users userRepository.UserRepositoryInterface,
) NotificationServiceInterface {
	return &NotificationService{repo: repo, users: users}
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	notif := &entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Data:    entity.JSONB(req.Data),
		IsRead:  false,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	return s.repo.Create(ctx, notif)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.GetByUserID(ctx, userID, p)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, userID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

// ModerationReviewHandler turns a queued moderation alert into a
// notification for the flagged client's user.
func (s *NotificationService) ModerationReviewHandler() worker.ModerationReviewHandler {
	return func(ctx context.Context, payload worker.ModerationReviewPayload) error {
		client, err := s.users.GetClientByID(ctx, payload.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			logger.Warn("NotificationService:ModerationReviewHandler",
				"reason", "client not found", "clientId", payload.ClientID.String())
			return nil
		}

		return s.Create(ctx, &dto.CreateNotificationRequest{
			UserID:  client.UserID,
			Title:   "Content flagged for review",
			Message: fmt.Sprintf("Your %s was flagged by the content filter and is pending review.", payload.SubjectKind),
			Type:    entity.TypeModerationReview,
			Data: map[string]interface{}{
				"alert_id":     payload.AlertID.String(),
				"subject_kind": payload.SubjectKind,
				"subject_id":   payload.SubjectID.String(),
			},
		})
	}
}
