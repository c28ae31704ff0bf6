package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"social-events-api/core/constants"
	"social-events-api/core/controller"
	"social-events-api/core/errors"
	"social-events-api/core/utils"
	"social-events-api/modules/block/dto"
	"social-events-api/modules/block/service"
)

type BlockController struct {
	controller.BaseController
	BlockService service.BlockServiceInterface
}

func NewBlockController(svc service.BlockServiceInterface) *BlockController {
	return &BlockController{
		BaseController: controller.NewBaseController(),
		BlockService:   svc,
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

// Create handles POST /private/block
// @Summary Block a user (admin only)
// @Tags Blocks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockRequest true "Block"
// @Success 201 {object} dto.BlockResponse
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/block [post]
func (c *BlockController) Create(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateBlockRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.BlockService.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "User blocked")
}

// Remove handles DELETE /private/block
// @Summary Lift a block (admin only)
// @Tags Blocks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RemoveBlockRequest true "Block"
// @Success 200 {object} entity.Block
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/block [delete]
func (c *BlockController) Remove(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.RemoveBlockRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.BlockService.Remove(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Block removed")
}

// ListByUser handles GET /private/blocks/:targetUserId
// @Summary List a user's blocks (admin only)
// @Tags Blocks
// @Security BearerAuth
// @Produce json
// @Param targetUserId path string true "Target user ID"
// @Success 200 {array} entity.BlockWithAlert
// @Failure 403 {object} errors.AppError
// @Router /private/blocks/{targetUserId} [get]
func (c *BlockController) ListByUser(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	targetUserID, err := uuid.Parse(ctx.Param("targetUserId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid target user ID")
	}

	result, appErr := c.BlockService.ListByUser(ctx.Request().Context(), userID, targetUserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
