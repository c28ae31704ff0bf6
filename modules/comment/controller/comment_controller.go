package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"social-events-api/core/constants"
	"social-events-api/core/controller"
	"social-events-api/core/errors"
	"social-events-api/core/utils"
	"social-events-api/modules/comment/dto"
	"social-events-api/modules/comment/service"
)

type CommentController struct {
	controller.BaseController
	CommentService service.CommentServiceInterface
}

func NewCommentController(svc service.CommentServiceInterface) *CommentController {
	return &CommentController{
		BaseController: controller.NewBaseController(),
		CommentService: svc,
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

// Create handles POST /private/comment
// @Summary Comment on a post, or reply to a comment
// @Tags Comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/comment [post]
func (c *CommentController) Create(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateCommentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.CommentService.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Comment created")
}

// Update handles PUT /private/comment
// @Summary Edit the caller's own comment
// @Tags Comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateCommentRequest true "Comment"
// @Success 200 {object} dto.CommentResponse
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/comment [put]
func (c *CommentController) Update(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.UpdateCommentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.CommentService.Update(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Comment updated")
}

// Delete handles DELETE /private/comment/:id
// @Summary Soft-delete a comment
// @Tags Comments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/comment/{id} [delete]
func (c *CommentController) Delete(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	commentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid comment ID")
	}

	if appErr := c.CommentService.Delete(ctx.Request().Context(), userID, commentID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Comment deleted")
}

// ListByPost handles GET /private/comments/:postId
// @Summary List a post's comments, threaded
// @Tags Comments
// @Security BearerAuth
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {array} entity.ThreadedComment
// @Router /private/comments/{postId} [get]
func (c *CommentController) ListByPost(ctx echo.Context) error {
	postID, err := uuid.Parse(ctx.Param("postId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid post ID")
	}

	result, appErr := c.CommentService.ListByPost(ctx.Request().Context(), postID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
