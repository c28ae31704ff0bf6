package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"social-events-api/core/constants"
	"social-events-api/core/controller"
	"social-events-api/core/errors"
	"social-events-api/core/params"
	"social-events-api/core/utils"
	"social-events-api/modules/capacity/dto"
	"social-events-api/modules/capacity/service"
)

type CapacityController struct {
	controller.BaseController
	CapacityService service.CapacityServiceInterface
}

func NewCapacityController(svc service.CapacityServiceInterface) *CapacityController {
	return &CapacityController{
		BaseController:  controller.NewBaseController(),
		CapacityService: svc,
	}
}

func getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims, nil
}

// Deposit handles POST /private/event-capacity/deposit
// @Summary Add capacity to an event
// @Tags Capacity
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.DepositRequest true "Deposit"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /private/event-capacity/deposit [post]
func (c *CapacityController) Deposit(ctx echo.Context) error {
	claims, err := getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.DepositRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.CapacityService.Deposit(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Capacity deposit recorded")
}

// Withdraw handles POST /private/event-capacity/checkin
// @Summary Remove capacity from an event (check-in)
// @Tags Capacity
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.WithdrawRequest true "Withdrawal"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/event-capacity/checkin [post]
func (c *CapacityController) Withdraw(ctx echo.Context) error {
	claims, err := getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.WithdrawRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	actorClientID := uuid.Nil
	if claims.ClientID != nil {
		actorClientID = *claims.ClientID
	}

	result, appErr := c.CapacityService.Withdraw(ctx.Request().Context(), claims.UserID, actorClientID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Check-in recorded")
}

// GetEventCapacity handles GET /event-capacity/:eventId
// @Summary Get the current capacity of an event
// @Tags Capacity
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} dto.CapacityResponse
// @Failure 404 {object} errors.AppError
// @Router /event-capacity/{eventId} [get]
func (c *CapacityController) GetEventCapacity(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.CapacityService.GetEventCapacity(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetHistory handles GET /event-capacity/:eventId/history
// @Summary Get the capacity ledger of an event
// @Tags Capacity
// @Produce json
// @Param eventId path string true "Event ID"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.HistoryResponse
// @Failure 404 {object} errors.AppError
// @Router /event-capacity/{eventId}/history [get]
func (c *CapacityController) GetHistory(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.CapacityService.GetHistory(ctx.Request().Context(), eventID, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetCompanySummary handles GET /private/my-company-capacity-summary
// @Summary Capacity summary for every event of the caller's company
// @Tags Capacity
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CompanySummaryResponse
// @Failure 403 {object} errors.AppError
// @Router /private/my-company-capacity-summary [get]
func (c *CapacityController) GetCompanySummary(ctx echo.Context) error {
	claims, err := getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.CapacityService.GetCompanySummary(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
