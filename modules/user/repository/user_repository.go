package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/modules/user/entity"
)

type UserRepository struct {
	DB database.Database
}

func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{DB: db}
}

// UserRepositoryInterface defines the repository contract.
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetClientByUserID(ctx context.Context, userID uuid.UUID) (*entity.Client, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	GetActor(ctx context.Context, userID uuid.UUID) (*entity.Actor, error)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, email, lifecycle, created_at, updated_at
		FROM users
		WHERE id = $1 AND lifecycle = 'active'
	`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetClientByUserID(ctx context.Context, userID uuid.UUID) (*entity.Client, error) {
	query := `
		SELECT id, user_id, name, nick, photo, user_type, banned_until, lifecycle, created_at, updated_at
		FROM clients
		WHERE user_id = $1 AND lifecycle = 'active'
	`

	var client entity.Client
	err := r.DB.GetContext(ctx, &client, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetClientByUserID", err)
		return nil, err
	}

	return &client, nil
}

func (r *UserRepository) GetClientByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	query := `
		SELECT id, user_id, name, nick, photo, user_type, banned_until, lifecycle, created_at, updated_at
		FROM clients
		WHERE id = $1 AND lifecycle = 'active'
	`

	var client entity.Client
	err := r.DB.GetContext(ctx, &client, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetClientByID", err)
		return nil, err
	}

	return &client, nil
}

// GetActor resolves a user plus their client profile in one call.
func (r *UserRepository) GetActor(ctx context.Context, userID uuid.UUID) (*entity.Actor, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	client, err := r.GetClientByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.Actor{User: *user, Client: client}, nil
}
