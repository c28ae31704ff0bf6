package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"social-events-api/core/authz"
	"social-events-api/core/errors"
	"social-events-api/modules/block/dto"
	"social-events-api/modules/block/entity"
	"social-events-api/modules/block/repository"
	moderationRepository "social-events-api/modules/moderation/repository"
	userRepository "social-events-api/modules/user/repository"
)

type BlockService struct {
	repo   repository.BlockRepositoryInterface
	users  userRepository.UserRepositoryInterface
	alerts moderationRepository.ModerationRepositoryInterface
}

// BlockServiceInterface defines the service contract.
type BlockServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateBlockRequest) (*dto.BlockResponse, *errors.AppError)
	Remove(ctx context.Context, actorID uuid.UUID, req *dto.RemoveBlockRequest) (*entity.Block, *errors.AppError)
	ListByUser(ctx context.Context, actorID, targetUserID uuid.UUID) ([]entity.BlockWithAlert, *errors.AppError)
}

func NewBlockService(
	repo repository.BlockRepositoryInterface,
	users userRepository.UserRepositoryInterface,
	alerts moderationRepository.ModerationRepositoryInterface,
) BlockServiceInterface {
	return &BlockService{repo: repo, users: users, alerts: alerts}
}

// requireAdmin resolves the actor's client profile and checks it is an
// administrator.
func (s *BlockService) requireAdmin(ctx context.Context, actorID uuid.UUID) *errors.AppError {
	client, err := s.users.GetClientByUserID(ctx, actorID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get client", err)
	}
	if client == nil || !authz.IsAdmin(client.UserType).Allowed {
		return errors.NewAppError(errors.ErrForbidden, "Only administrators can manage blocks", nil)
	}
	return nil
}

func (s *BlockService) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateBlockRequest) (*dto.BlockResponse, *errors.AppError) {
	if appErr := s.requireAdmin(ctx, actorID); appErr != nil {
		return nil, appErr
	}

	if req.PeriodDays <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Block period must be positive", nil)
	}

	targetUserID, parseErr := uuid.Parse(req.TargetUserID)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid target user ID", parseErr)
	}
	alertID, parseErr := uuid.Parse(req.ModerationAlertID)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid moderation alert ID", parseErr)
	}

	targetUser, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get target user", err)
	}
	if targetUser == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Target user not found", nil)
	}

	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get moderation alert", err)
	}
	if alert == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Moderation alert not found", nil)
	}

	block := &entity.Block{
		UserID:            targetUserID,
		ModerationAlertID: alertID,
		PeriodDays:        req.PeriodDays,
	}
	if err := s.repo.Create(ctx, block); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create block", err)
	}

	blockedUntil := time.Now().AddDate(0, 0, req.PeriodDays)
	if err := s.repo.SetClientBannedUntil(ctx, targetUserID, &blockedUntil); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to set ban horizon", err)
	}

	return &dto.BlockResponse{Block: *block, BlockedUntil: blockedUntil}, nil
}

func (s *BlockService) Remove(ctx context.Context, actorID uuid.UUID, req *dto.RemoveBlockRequest) (*entity.Block, *errors.AppError) {
	if appErr := s.requireAdmin(ctx, actorID); appErr != nil {
		return nil, appErr
	}

	blockID, parseErr := uuid.Parse(req.BlockID)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid block ID", parseErr)
	}

	block, err := s.repo.GetActiveByID(ctx, blockID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get block", err)
	}
	if block == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Block not found or already removed", nil)
	}

	if err := s.repo.SoftDelete(ctx, blockID); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to remove block", err)
	}

	if err := s.repo.SetClientBannedUntil(ctx, block.UserID, nil); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to clear ban horizon", err)
	}

	return block, nil
}

func (s *BlockService) ListByUser(ctx context.Context, actorID, targetUserID uuid.UUID) ([]entity.BlockWithAlert, *errors.AppError) {
	if appErr := s.requireAdmin(ctx, actorID); appErr != nil {
		return nil, appErr
	}

	blocks, err := s.repo.ListByUser(ctx, targetUserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list blocks", err)
	}
	return blocks, nil
}
