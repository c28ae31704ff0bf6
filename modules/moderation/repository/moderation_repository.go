package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/modules/moderation/entity"
)

type ModerationRepository struct {
	DB database.Database
}

func NewModerationRepository(db database.Database) *ModerationRepository {
	return &ModerationRepository{DB: db}
}

// ModerationRepositoryInterface defines the repository contract.
type ModerationRepositoryInterface interface {
	Create(ctx context.Context, alert *entity.ModerationAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ModerationAlert, error)
	LatestBySubject(ctx context.Context, ref entity.SubjectRef) (*entity.ModerationAlert, error)
	AmendUpdatedText(ctx context.Context, alertID uuid.UUID, updatedText string) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.ModerationAlert, error)
}

func subjectColumn(kind entity.SubjectKind) string {
	if kind == entity.SubjectComment {
		return "post_comment_id"
	}
	return "post_id"
}

func (r *ModerationRepository) Create(ctx context.Context, alert *entity.ModerationAlert) error {
	query := `
		INSERT INTO moderation_alerts (text, post_id, post_comment_id, client_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		alert.Text, alert.PostID, alert.PostCommentID, alert.ClientID,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		logger.Error("ModerationRepository:Create", err)
		return err
	}
	return nil
}

func (r *ModerationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ModerationAlert, error) {
	query := `
		SELECT id, text, updated_text, post_id, post_comment_id, client_id, created_at, updated_at
		FROM moderation_alerts
		WHERE id = $1
	`

	var alert entity.ModerationAlert
	err := r.DB.SQLx().GetContext(ctx, &alert, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("ModerationRepository:GetByID", err)
		return nil, err
	}
	return &alert, nil
}

// LatestBySubject returns the most recently created alert for the subject,
// or nil when none exist.
func (r *ModerationRepository) LatestBySubject(ctx context.Context, ref entity.SubjectRef) (*entity.ModerationAlert, error) {
	query := `
		SELECT id, text, updated_text, post_id, post_comment_id, client_id, created_at, updated_at
		FROM moderation_alerts
		WHERE ` + subjectColumn(ref.Kind) + ` = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var alert entity.ModerationAlert
	err := r.DB.SQLx().GetContext(ctx, &alert, query, ref.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("ModerationRepository:LatestBySubject", err)
		return nil, err
	}
	return &alert, nil
}

func (r *ModerationRepository) AmendUpdatedText(ctx context.Context, alertID uuid.UUID, updatedText string) error {
	query := `
		UPDATE moderation_alerts
		SET updated_text = $1, updated_at = NOW()
		WHERE id = $2
	`

	if err := r.DB.ExecContext(ctx, query, updatedText, alertID); err != nil {
		logger.Error("ModerationRepository:AmendUpdatedText", err)
		return err
	}
	return nil
}

func (r *ModerationRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.ModerationAlert, error) {
	query := `
		SELECT id, text, updated_text, post_id, post_comment_id, client_id, created_at, updated_at
		FROM moderation_alerts
		WHERE client_id = $1
		ORDER BY created_at DESC
	`

	alerts := []entity.ModerationAlert{}
	if err := r.DB.SQLx().SelectContext(ctx, &alerts, query, clientID); err != nil {
		logger.Error("ModerationRepository:ListByClient", err)
		return nil, err
	}
	return alerts, nil
}
