package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/modules/block/entity"
)

type BlockRepository struct {
	DB database.Database
}

func NewBlockRepository(db database.Database) *BlockRepository {
	return &BlockRepository{DB: db}
}

// BlockRepositoryInterface defines the repository contract.
type BlockRepositoryInterface interface {
	Create(ctx context.Context, block *entity.Block) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*entity.Block, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.BlockWithAlert, error)
	SetClientBannedUntil(ctx context.Context, userID uuid.UUID, until *time.Time) error
}

func (r *BlockRepository) Create(ctx context.Context, block *entity.Block) error {
	query := `
		INSERT INTO blocks (user_id, moderation_alert_id, period_days)
		VALUES ($1, $2, $3)
		RETURNING id, lifecycle, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		block.UserID, block.ModerationAlertID, block.PeriodDays,
	).Scan(&block.ID, &block.Lifecycle, &block.CreatedAt, &block.UpdatedAt)
	if err != nil {
		logger.Error("BlockRepository:Create", err)
		return err
	}
	return nil
}

func (r *BlockRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*entity.Block, error) {
	query := `
		SELECT id, user_id, moderation_alert_id, period_days, lifecycle, created_at, updated_at
		FROM blocks
		WHERE id = $1 AND lifecycle = 'active'
	`

	var block entity.Block
	err := r.DB.GetContext(ctx, &block, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("BlockRepository:GetActiveByID", err)
		return nil, err
	}
	return &block, nil
}

func (r *BlockRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE blocks SET lifecycle = 'deleted', updated_at = NOW() WHERE id = $1`

	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("BlockRepository:SoftDelete", err)
		return err
	}
	return nil
}

func (r *BlockRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.BlockWithAlert, error) {
	query := `
		SELECT b.id, b.user_id, b.moderation_alert_id, b.period_days, b.lifecycle,
		       b.created_at, b.updated_at,
		       ma.text AS alert_text, ma.created_at AS alert_created_at,
		       u.email AS target_user_email,
		       c.name AS target_client_name
		FROM blocks b
		JOIN moderation_alerts ma ON ma.id = b.moderation_alert_id
		JOIN users u ON u.id = b.user_id
		LEFT JOIN clients c ON c.user_id = b.user_id AND c.lifecycle = 'active'
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	blocks := []entity.BlockWithAlert{}
	if err := r.DB.SelectContext(ctx, &blocks, query, userID); err != nil {
		logger.Error("BlockRepository:ListByUser", err)
		return nil, err
	}
	return blocks, nil
}

// SetClientBannedUntil stamps or clears the ban horizon on the user's
// client profile.
func (r *BlockRepository) SetClientBannedUntil(ctx context.Context, userID uuid.UUID, until *time.Time) error {
	query := `UPDATE clients SET banned_until = $1, updated_at = NOW() WHERE user_id = $2`

	if err := r.DB.ExecContext(ctx, query, until, userID); err != nil {
		logger.Error("BlockRepository:SetClientBannedUntil", err)
		return err
	}
	return nil
}
