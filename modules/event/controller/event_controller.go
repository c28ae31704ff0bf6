package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"social-events-api/core/constants"
	"social-events-api/core/controller"
	"social-events-api/core/errors"
	"social-events-api/core/params"
	"social-events-api/core/utils"
	"social-events-api/modules/event/dto"
	"social-events-api/modules/event/service"
)

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
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

// Create handles POST /private/event
// @Summary Create an event for the caller's company
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /private/event [post]
func (c *EventController) Create(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.EventService.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Event created")
}

// Update handles PUT /private/event
// @Summary Update an event
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateEventRequest true "Event"
// @Success 200 {object} entity.Event
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /private/event [put]
func (c *EventController) Update(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.EventService.Update(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event updated")
}

// Delete handles DELETE /private/event/:id
// @Summary Soft-delete an event
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/event/{id} [delete]
func (c *EventController) Delete(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.EventService.Delete(ctx.Request().Context(), userID, eventID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted")
}

// GetByID handles GET /event/:id
// @Summary Get an event by ID
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} entity.Event
// @Failure 404 {object} errors.AppError
// @Router /event/{id} [get]
func (c *EventController) GetByID(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.GetByID(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListPublic handles GET /events/public
// @Summary List public events
// @Tags Events
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} entity.PaginatedEventEntity
// @Router /events/public [get]
func (c *EventController) ListPublic(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.EventService.ListPublic(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// List handles GET /events
// @Summary List events with optional name search
// @Tags Events
// @Produce json
// @Param search query string false "Name filter"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} entity.PaginatedEventEntity
// @Router /events [get]
func (c *EventController) List(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	search := ctx.QueryParam("search")

	result, appErr := c.EventService.List(ctx.Request().Context(), search, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListMyCompany handles GET /private/my-company-events
// @Summary List the caller's company events
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} entity.PaginatedEventEntity
// @Failure 403 {object} errors.AppError
// @Router /private/my-company-events [get]
func (c *EventController) ListMyCompany(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.EventService.ListMyCompany(ctx.Request().Context(), userID, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListByCompany handles GET /company/:companyId/events
// @Summary List events of a company
// @Tags Events
// @Produce json
// @Param companyId path string true "Company ID"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} entity.PaginatedEventEntity
// @Router /company/{companyId}/events [get]
func (c *EventController) ListByCompany(ctx echo.Context) error {
	companyID, err := uuid.Parse(ctx.Param("companyId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid company ID")
	}

	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.EventService.ListByCompany(ctx.Request().Context(), companyID, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListEventTypes handles GET /event-types
// @Summary List available event types
// @Tags Events
// @Produce json
// @Success 200 {array} entity.EventType
// @Router /event-types [get]
func (c *EventController) ListEventTypes(ctx echo.Context) error {
	result, appErr := c.EventService.ListEventTypes(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
