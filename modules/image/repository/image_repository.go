package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/modules/image/entity"
)

type ImageRepository struct {
	DB database.Database
}

func NewImageRepository(db database.Database) *ImageRepository {
	return &ImageRepository{DB: db}
}

// ImageRepositoryInterface defines the repository contract.
type ImageRepositoryInterface interface {
	Create(ctx context.Context, image *entity.Image) error
	GetOwnedByID(ctx context.Context, id, clientID uuid.UUID) (*entity.Image, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Image, error)
	NextPosition(ctx context.Context, clientID uuid.UUID) (int, error)
	SetPosition(ctx context.Context, id, clientID uuid.UUID, position int) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

func (r *ImageRepository) Create(ctx context.Context, image *entity.Image) error {
	query := `
		INSERT INTO images (client_id, url, position)
		VALUES ($1, $2, $3)
		RETURNING id, lifecycle, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		image.ClientID, image.URL, image.Position,
	).Scan(&image.ID, &image.Lifecycle, &image.CreatedAt, &image.UpdatedAt)
	if err != nil {
		logger.Error("ImageRepository:Create", err)
		return err
	}
	return nil
}

func (r *ImageRepository) GetOwnedByID(ctx context.Context, id, clientID uuid.UUID) (*entity.Image, error) {
	query := `
		SELECT id, client_id, url, position, lifecycle, created_at, updated_at
		FROM images
		WHERE id = $1 AND client_id = $2 AND lifecycle = 'active'
	`

	var image entity.Image
	err := r.DB.GetContext(ctx, &image, query, id, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("ImageRepository:GetOwnedByID", err)
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Image, error) {
	query := `
		SELECT id, client_id, url, position, lifecycle, created_at, updated_at
		FROM images
		WHERE client_id = $1 AND lifecycle = 'active'
		ORDER BY position ASC
	`

	images := []entity.Image{}
	if err := r.DB.SelectContext(ctx, &images, query, clientID); err != nil {
		logger.Error("ImageRepository:ListByClient", err)
		return nil, err
	}
	return images, nil
}

// NextPosition returns one past the gallery's highest position, 0 for an
// empty gallery.
func (r *ImageRepository) NextPosition(ctx context.Context, clientID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(MAX(position) + 1, 0)
		FROM images
		WHERE client_id = $1 AND lifecycle = 'active'
	`

	var position int
	if err := r.DB.GetContext(ctx, &position, query, clientID); err != nil {
		logger.Error("ImageRepository:NextPosition", err)
		return 0, err
	}
	return position, nil
}

func (r *ImageRepository) SetPosition(ctx context.Context, id, clientID uuid.UUID, position int) error {
	query := `
		UPDATE images
		SET position = $1, updated_at = NOW()
		WHERE id = $2 AND client_id = $3 AND lifecycle = 'active'
	`

	if err := r.DB.ExecContext(ctx, query, position, id, clientID); err != nil {
		logger.Error("ImageRepository:SetPosition", err)
		return err
	}
	return nil
}

func (r *ImageRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE images SET lifecycle = 'deleted', updated_at = NOW() WHERE id = $1`

	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("ImageRepository:SoftDelete", err)
		return err
	}
	return nil
}
