package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/core/params"
	"social-events-api/modules/event/entity"
)

type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract.
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	ListPublic(ctx context.Context, p params.QueryParams) (*entity.PaginatedEventEntity, error)
	List(ctx context.Context, search string, p params.QueryParams) (*entity.PaginatedEventEntity, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, p params.QueryParams) (*entity.PaginatedEventEntity, error)
	ListAllByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	GetEventType(ctx context.Context, id uuid.UUID) (*entity.EventType, error)
	ListEventTypes(ctx context.Context) ([]entity.EventType, error)
}

const eventColumns = `id, name, slug, description, photo, background_image, is_public, is_public_metrics,
	promotional_text, promotional_video, promotional_image, promotional_url,
	company_id, event_type_id, start_at, end_at, lifecycle, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (name, slug, description, photo, background_image, is_public, is_public_metrics,
			promotional_text, promotional_video, promotional_image, promotional_url,
			company_id, event_type_id, start_at, end_at, lifecycle)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 'active')
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Name, event.Slug, event.Description, event.Photo, event.BackgroundImage,
		event.IsPublic, event.IsPublicMetrics,
		event.PromotionalText, event.PromotionalVideo, event.PromotionalImage, event.PromotionalURL,
		event.CompanyID, event.EventTypeID, event.StartAt, event.EndAt)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND lifecycle = 'active'`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) ListPublic(ctx context.Context, p params.QueryParams) (*entity.PaginatedEventEntity, error) {
	return r.paginated(ctx, `FROM events WHERE lifecycle = 'active' AND is_public = TRUE`, nil, p)
}

func (r *EventRepository) List(ctx context.Context, search string, p params.QueryParams) (*entity.PaginatedEventEntity, error) {
	baseQuery := `FROM events WHERE lifecycle = 'active'`
	var args []any
	if search != "" {
		baseQuery += ` AND name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	return r.paginated(ctx, baseQuery, args, p)
}

func (r *EventRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, p params.QueryParams) (*entity.PaginatedEventEntity, error) {
	return r.paginated(ctx, `FROM events WHERE lifecycle = 'active' AND company_id = $1`, []any{companyID}, p)
}

// ListAllByCompany returns every active event of a company, unpaginated.
// Used by the capacity summary which reports all events at once.
func (r *EventRepository) ListAllByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE lifecycle = 'active' AND company_id = $1
		ORDER BY start_at ASC`

	var events []entity.Event
	if err := r.DB.SelectContext(ctx, &events, query, companyID); err != nil {
		logger.Error("EventRepository:ListAllByCompany", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) paginated(ctx context.Context, baseQuery string, args []any, p params.QueryParams) (*entity.PaginatedEventEntity, error) {
	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		logger.Error("EventRepository:Paginated:Count", err)
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s %s ORDER BY start_at ASC LIMIT $%d OFFSET $%d`,
		eventColumns, baseQuery, len(args)+1, len(args)+2)
	args = append(args, p.PageSize, p.Offset())

	var events []entity.Event
	if err := r.DB.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:Paginated:Select", err)
		return nil, err
	}

	return &entity.PaginatedEventEntity{
		Items:      events,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET name = $2, slug = $3, description = $4, photo = $5, background_image = $6,
			is_public = $7, is_public_metrics = $8,
			promotional_text = $9, promotional_video = $10, promotional_image = $11, promotional_url = $12,
			event_type_id = $13, start_at = $14, end_at = $15, updated_at = NOW()
		WHERE id = $1 AND lifecycle = 'active'
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.Name, event.Slug, event.Description, event.Photo, event.BackgroundImage,
		event.IsPublic, event.IsPublicMetrics,
		event.PromotionalText, event.PromotionalVideo, event.PromotionalImage, event.PromotionalURL,
		event.EventTypeID, event.StartAt, event.EndAt)
	if err != nil {
		logger.Error("EventRepository:Update", err)
		return err
	}
	return nil
}

func (r *EventRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE events SET lifecycle = 'deleted', updated_at = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("EventRepository:SoftDelete", err)
		return err
	}
	return nil
}

func (r *EventRepository) GetEventType(ctx context.Context, id uuid.UUID) (*entity.EventType, error) {
	query := `SELECT id, name, lifecycle, created_at, updated_at FROM event_types WHERE id = $1 AND lifecycle = 'active'`

	var eventType entity.EventType
	err := r.DB.GetContext(ctx, &eventType, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventType", err)
		return nil, err
	}

	return &eventType, nil
}

func (r *EventRepository) ListEventTypes(ctx context.Context) ([]entity.EventType, error) {
	query := `SELECT id, name, lifecycle, created_at, updated_at FROM event_types WHERE lifecycle = 'active' ORDER BY name ASC`

	var types []entity.EventType
	if err := r.DB.SelectContext(ctx, &types, query); err != nil {
		logger.Error("EventRepository:ListEventTypes", err)
		return nil, err
	}
	return types, nil
}
