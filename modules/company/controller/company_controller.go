package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"social-events-api/core/constants"
	"social-events-api/core/controller"
	"social-events-api/core/errors"
	"social-events-api/core/params"
	"social-events-api/core/utils"
	"social-events-api/modules/company/service"
)

type CompanyController struct {
	controller.BaseController
	CompanyService service.CompanyServiceInterface
}

func NewCompanyController(svc service.CompanyServiceInterface) *CompanyController {
	return &CompanyController{
		BaseController: controller.NewBaseController(),
		CompanyService: svc,
	}
}

func getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// List handles GET /companies
// @Summary List companies
// @Tags Company
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Name filter"
// @Success 200 {object} entity.PaginatedCompanyEntity
// @Router /companies [get]
func (c *CompanyController) List(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	search := ctx.QueryParam("search")

	result, appErr := c.CompanyService.List(ctx.Request().Context(), search, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetByID handles GET /company/:id
// @Summary Get a company
// @Tags Company
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} entity.Company
// @Failure 404 {object} errors.AppError
// @Router /company/{id} [get]
func (c *CompanyController) GetByID(ctx echo.Context) error {
	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid company ID")
	}

	result, appErr := c.CompanyService.GetByID(ctx.Request().Context(), companyID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMyCompany handles GET /private/my-company
// @Summary Get the company the caller is responsible for
// @Tags Company
// @Security BearerAuth
// @Produce json
// @Success 200 {object} entity.Company
// @Failure 403 {object} errors.AppError
// @Router /private/my-company [get]
func (c *CompanyController) GetMyCompany(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.CompanyService.GetMyCompany(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
