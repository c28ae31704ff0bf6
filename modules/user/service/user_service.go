package service

import (
	"context"

	"github.com/google/uuid"

	"social-events-api/core/errors"
	"social-events-api/modules/user/entity"
	"social-events-api/modules/user/repository"
)

type UserService struct {
	repo repository.UserRepositoryInterface
}

// UserServiceInterface defines the service contract.
type UserServiceInterface interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.Actor, *errors.AppError)
	ResolveActor(ctx context.Context, userID uuid.UUID) (*entity.Actor, *errors.AppError)
}

func NewUserService(repo repository.UserRepositoryInterface) UserServiceInterface {
	return &UserService{repo: repo}
}

func (s *UserService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.Actor, *errors.AppError) {
	return s.ResolveActor(ctx, userID)
}

// ResolveActor loads the actor for an authenticated user id. A user without
// an active row is treated as unauthenticated, not missing.
func (s *UserService) ResolveActor(ctx context.Context, userID uuid.UUID) (*entity.Actor, *errors.AppError) {
	actor, err := s.repo.GetActor(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve user", err)
	}
	if actor == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not found", nil)
	}
	return actor, nil
}
