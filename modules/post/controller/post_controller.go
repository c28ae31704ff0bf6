package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"social-events-api/core/constants"
	"social-events-api/core/controller"
	"social-events-api/core/errors"
	"social-events-api/core/params"
	"social-events-api/core/utils"
	"social-events-api/modules/post/dto"
	"social-events-api/modules/post/service"
)

type PostController struct {
	controller.BaseController
	PostService service.PostServiceInterface
}

func NewPostController(svc service.PostServiceInterface) *PostController {
	return &PostController{
		BaseController: controller.NewBaseController(),
		PostService:    svc,
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

// Create handles POST /private/post
// @Summary Publish a post
// @Tags Posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Post"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /private/post [post]
func (c *PostController) Create(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreatePostRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.PostService.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Post created")
}

// Update handles PUT /private/post
// @Summary Edit a post
// @Tags Posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePostRequest true "Post"
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /private/post [put]
func (c *PostController) Update(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.UpdatePostRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.PostService.Update(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Post updated")
}

// Delete handles DELETE /private/post/:id
// @Summary Soft-delete a post
// @Tags Posts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/post/{id} [delete]
func (c *PostController) Delete(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid post ID")
	}

	if appErr := c.PostService.Delete(ctx.Request().Context(), userID, postID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Post deleted")
}

// Feed handles GET /private/posts
// @Summary Ranked post feed
// @Tags Posts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} entity.PaginatedFeedEntity
// @Router /private/posts [get]
func (c *PostController) Feed(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.PostService.Feed(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// MyPosts handles GET /private/my-posts
// @Summary List the caller's posts
// @Tags Posts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} entity.PaginatedFeedEntity
// @Router /private/my-posts [get]
func (c *PostController) MyPosts(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.PostService.MyPosts(ctx.Request().Context(), userID, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UserPosts handles GET /private/user-posts/:clientId
// @Summary List a user's public posts
// @Tags Posts
// @Security BearerAuth
// @Produce json
// @Param clientId path string true "Client ID"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} entity.PaginatedFeedEntity
// @Router /private/user-posts/{clientId} [get]
func (c *PostController) UserPosts(ctx echo.Context) error {
	clientID, err := uuid.Parse(ctx.Param("clientId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid client ID")
	}

	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.PostService.UserPosts(ctx.Request().Context(), clientID, *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
