package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/core/params"
	"social-events-api/modules/company/entity"
)

type CompanyRepository struct {
	DB database.Database
}

func NewCompanyRepository(db database.Database) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

// CompanyRepositoryInterface defines the repository contract.
type CompanyRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	GetByResponsibleID(ctx context.Context, responsibleID uuid.UUID) (*entity.Company, error)
	List(ctx context.Context, search string, p params.QueryParams) (*entity.PaginatedCompanyEntity, error)
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	query := `
		SELECT id, name, description, photo, responsible_id, lifecycle, created_at, updated_at
		FROM companies
		WHERE id = $1 AND lifecycle = 'active'
	`

	var company entity.Company
	err := r.DB.GetContext(ctx, &company, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CompanyRepository:GetByID", err)
		return nil, err
	}

	return &company, nil
}

func (r *CompanyRepository) GetByResponsibleID(ctx context.Context, responsibleID uuid.UUID) (*entity.Company, error) {
	query := `
		SELECT id, name, description, photo, responsible_id, lifecycle, created_at, updated_at
		FROM companies
		WHERE responsible_id = $1 AND lifecycle = 'active'
	`

	var company entity.Company
	err := r.DB.GetContext(ctx, &company, query, responsibleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CompanyRepository:GetByResponsibleID", err)
		return nil, err
	}

	return &company, nil
}

func (r *CompanyRepository) List(ctx context.Context, search string, p params.QueryParams) (*entity.PaginatedCompanyEntity, error) {
	baseQuery := `FROM companies WHERE lifecycle = 'active'`
	args := []any{}

	if search != "" {
		baseQuery += ` AND name ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		logger.Error("CompanyRepository:List:Count", err)
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, photo, responsible_id, lifecycle, created_at, updated_at
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d`, baseQuery, len(args)+1, len(args)+2)
	args = append(args, p.PageSize, p.Offset())

	var companies []entity.Company
	if err := r.DB.SelectContext(ctx, &companies, query, args...); err != nil {
		logger.Error("CompanyRepository:List:Select", err)
		return nil, err
	}

	return &entity.PaginatedCompanyEntity{
		Items:      companies,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}
