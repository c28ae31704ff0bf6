package service

import (
	"context"

	"github.com/google/uuid"

	"social-events-api/core/errors"
	"social-events-api/core/params"
	"social-events-api/modules/company/entity"
	"social-events-api/modules/company/repository"
)

type CompanyService struct {
	repo repository.CompanyRepositoryInterface
}

// CompanyServiceInterface defines the service contract.
type CompanyServiceInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, *errors.AppError)
	GetMyCompany(ctx context.Context, userID uuid.UUID) (*entity.Company, *errors.AppError)
	List(ctx context.Context, search string, p params.QueryParams) (*entity.PaginatedCompanyEntity, *errors.AppError)
}

func NewCompanyService(repo repository.CompanyRepositoryInterface) CompanyServiceInterface {
	return &CompanyService{repo: repo}
}

func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, *errors.AppError) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
	}
	if company == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Company not found", nil)
	}
	return company, nil
}

// GetMyCompany returns the company the user is responsible for, or a
// Forbidden error when they are responsible for none.
func (s *CompanyService) GetMyCompany(ctx context.Context, userID uuid.UUID) (*entity.Company, *errors.AppError) {
	company, err := s.repo.GetByResponsibleID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
	}
	if company == nil {
		return nil, errors.NewAppError(errors.ErrForbidden, "You are not responsible for any company", nil)
	}
	return company, nil
}

func (s *CompanyService) List(ctx context.Context, search string, p params.QueryParams) (*entity.PaginatedCompanyEntity, *errors.AppError) {
	result, err := s.repo.List(ctx, search, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list companies", err)
	}
	return result, nil
}
