package controller

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"social-events-api/core/constants"
	"social-events-api/core/controller"
	"social-events-api/core/errors"
	"social-events-api/core/utils"
	"social-events-api/modules/image/dto"
	"social-events-api/modules/image/service"
)

type ImageController struct {
	controller.BaseController
	ImageService service.ImageServiceInterface
}

func NewImageController(svc service.ImageServiceInterface) *ImageController {
	return &ImageController{
		BaseController: controller.NewBaseController(),
		ImageService:   svc,
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

// Upload handles POST /private/image/upload
// @Summary Upload an image file and append it to the caller's gallery
// @Tags Images
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} entity.Image
// @Failure 400 {object} errors.AppError
// @Router /private/image/upload [post]
func (c *ImageController) Upload(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Could not read image file")
	}
	defer file.Close()

	result, appErr := c.ImageService.Upload(ctx.Request().Context(), userID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Image uploaded")
}

// Add handles POST /private/image
// @Summary Append an image URL to the caller's gallery
// @Tags Images
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AddImageRequest true "Image"
// @Success 201 {object} entity.Image
// @Failure 400 {object} errors.AppError
// @Router /private/image [post]
func (c *ImageController) Add(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.AddImageRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.ImageService.Add(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Image added")
}

// Delete handles DELETE /private/image
// @Summary Soft-delete one of the caller's images
// @Tags Images
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.DeleteImageRequest true "Image"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.AppError
// @Router /private/image [delete]
func (c *ImageController) Delete(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.DeleteImageRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if appErr := c.ImageService.Delete(ctx.Request().Context(), userID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Image deleted")
}

// Reorder handles PUT /private/images/reorder
// @Summary Reorder the caller's gallery
// @Tags Images
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ReorderImagesRequest true "New order"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Router /private/images/reorder [put]
func (c *ImageController) Reorder(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.ReorderImagesRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if appErr := c.ImageService.Reorder(ctx.Request().Context(), userID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Images reordered")
}

// ListMine handles GET /private/my-images
// @Summary List the caller's gallery
// @Tags Images
// @Security BearerAuth
// @Produce json
// @Success 200 {array} entity.Image
// @Router /private/my-images [get]
func (c *ImageController) ListMine(ctx echo.Context) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.ImageService.ListMine(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListByClient handles GET /private/user-images/:clientId
// @Summary List a user's gallery
// @Tags Images
// @Security BearerAuth
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {array} entity.Image
// @Router /private/user-images/{clientId} [get]
func (c *ImageController) ListByClient(ctx echo.Context) error {
	clientID, err := uuid.Parse(ctx.Param("clientId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid client ID")
	}

	result, appErr := c.ImageService.ListByClient(ctx.Request().Context(), clientID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
