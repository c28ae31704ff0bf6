package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/modules/participation/entity"
)

type ParticipationRepository struct {
	DB database.Database
}

func NewParticipationRepository(db database.Database) *ParticipationRepository {
	return &ParticipationRepository{DB: db}
}

// ParticipationRepositoryInterface defines the repository contract.
type ParticipationRepositoryInterface interface {
	Upsert(ctx context.Context, userID, eventID uuid.UUID, status int) (*entity.Participation, error)
	GetByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (*entity.Participation, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.ParticipationWithUser, error)
	CountByStatus(ctx context.Context, eventID uuid.UUID) (*entity.StatusCounts, error)
}

// Upsert inserts or updates the single (user, event) row in one statement,
// so concurrent calls cannot create duplicates.
func (r *ParticipationRepository) Upsert(ctx context.Context, userID, eventID uuid.UUID, status int) (*entity.Participation, error) {
	query := `
		INSERT INTO participations (user_id, event_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, event_id)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, user_id, event_id, status, created_at, updated_at
	`

	var participation entity.Participation
	err := r.DB.SQLx().GetContext(ctx, &participation, query, userID, eventID, status)
	if err != nil {
		logger.Error("ParticipationRepository:Upsert", err)
		return nil, err
	}
	return &participation, nil
}

func (r *ParticipationRepository) GetByUserAndEvent(ctx context.Context, userID, eventID uuid.UUID) (*entity.Participation, error) {
	query := `
		SELECT id, user_id, event_id, status, created_at, updated_at
		FROM participations
		WHERE user_id = $1 AND event_id = $2
	`

	var participation entity.Participation
	err := r.DB.SQLx().GetContext(ctx, &participation, query, userID, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("ParticipationRepository:GetByUserAndEvent", err)
		return nil, err
	}
	return &participation, nil
}

func (r *ParticipationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.ParticipationWithUser, error) {
	query := `
		SELECT p.id, p.user_id, p.event_id, p.status, p.created_at, p.updated_at,
		       u.email AS user_email,
		       c.name AS client_name
		FROM participations p
		JOIN users u ON u.id = p.user_id
		LEFT JOIN clients c ON c.user_id = p.user_id AND c.lifecycle = 'active'
		WHERE p.event_id = $1
		ORDER BY p.updated_at DESC
	`

	participations := []entity.ParticipationWithUser{}
	err := r.DB.SQLx().SelectContext(ctx, &participations, query, eventID)
	if err != nil {
		logger.Error("ParticipationRepository:ListByEvent", err)
		return nil, err
	}
	return participations, nil
}

func (r *ParticipationRepository) CountByStatus(ctx context.Context, eventID uuid.UUID) (*entity.StatusCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 1) AS interested,
			COUNT(*) FILTER (WHERE status = 2) AS checked_in,
			COUNT(*) FILTER (WHERE status = 3) AS gave_up,
			COUNT(*) FILTER (WHERE status = 4) AS left_count,
			COUNT(*) AS total
		FROM participations
		WHERE event_id = $1
	`

	var row struct {
		Interested int `db:"interested"`
		CheckedIn  int `db:"checked_in"`
		GaveUp     int `db:"gave_up"`
		LeftCount  int `db:"left_count"`
		Total      int `db:"total"`
	}
	if err := r.DB.SQLx().GetContext(ctx, &row, query, eventID); err != nil {
		logger.Error("ParticipationRepository:CountByStatus", err)
		return nil, err
	}

	return &entity.StatusCounts{
		Interested: row.Interested,
		CheckedIn:  row.CheckedIn,
		GaveUp:     row.GaveUp,
		Left:       row.LeftCount,
		Total:      row.Total,
	}, nil
}
