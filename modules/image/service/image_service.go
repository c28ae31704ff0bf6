package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"social-events-api/core/errors"
	"social-events-api/core/storage"
	"social-events-api/core/utils"
	"social-events-api/modules/image/dto"
	"social-events-api/modules/image/entity"
	"social-events-api/modules/image/repository"
	userRepository "social-events-api/modules/user/repository"
)

type ImageService struct {
	repo    repository.ImageRepositoryInterface
	users   userRepository.UserRepositoryInterface
	storage storage.ObjectStorage
}

// ImageServiceInterface defines the service contract.
type ImageServiceInterface interface {
	Upload(ctx context.Context, actorID uuid.UUID, filename, contentType string, body io.Reader) (*entity.Image, *errors.AppError)
	Add(ctx context.Context, actorID uuid.UUID, req *dto.AddImageRequest) (*entity.Image, *errors.AppError)
	Delete(ctx context.Context, actorID uuid.UUID, req *dto.DeleteImageRequest) *errors.AppError
	Reorder(ctx context.Context, actorID uuid.UUID, req *dto.ReorderImagesRequest) *errors.AppError
	ListMine(ctx context.Context, actorID uuid.UUID) ([]entity.Image, *errors.AppError)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Image, *errors.AppError)
}

func NewImageService(
	repo repository.ImageRepositoryInterface,
	users userRepository.UserRepositoryInterface,
	objectStorage storage.ObjectStorage,
) ImageServiceInterface {
	return &ImageService{repo: repo, users: users, storage: objectStorage}
}

func (s *ImageService) requireClient(ctx context.Context, actorID uuid.UUID) (uuid.UUID, *errors.AppError) {
	client, err := s.users.GetClientByUserID(ctx, actorID)
	if err != nil {
		return uuid.Nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get client", err)
	}
	if client == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrForbidden, "A client profile is required", nil)
	}
	return client.ID, nil
}

// Upload stores the file object and appends it to the caller's gallery.
func (s *ImageService) Upload(ctx context.Context, actorID uuid.UUID, filename, contentType string, body io.Reader) (*entity.Image, *errors.AppError) {
	clientID, appErr := s.requireClient(ctx, actorID)
	if appErr != nil {
		return nil, appErr
	}

	key := fmt.Sprintf("images/%s/%s%s", clientID, utils.GenerateReference(), path.Ext(filename))
	url, err := s.storage.Upload(ctx, key, body, contentType)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload image", err)
	}

	return s.append(ctx, clientID, url)
}

// Add appends an externally hosted object URL to the caller's gallery.
func (s *ImageService) Add(ctx context.Context, actorID uuid.UUID, req *dto.AddImageRequest) (*entity.Image, *errors.AppError) {
	clientID, appErr := s.requireClient(ctx, actorID)
	if appErr != nil {
		return nil, appErr
	}

	if req.URL == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Image URL is required", nil)
	}

	return s.append(ctx, clientID, req.URL)
}

func (s *ImageService) append(ctx context.Context, clientID uuid.UUID, url string) (*entity.Image, *errors.AppError) {
	position, err := s.repo.NextPosition(ctx, clientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to determine image position", err)
	}

	image := &entity.Image{
		ClientID: clientID,
		URL:      url,
		Position: position,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save image", err)
	}
	return image, nil
}

func (s *ImageService) Delete(ctx context.Context, actorID uuid.UUID, req *dto.DeleteImageRequest) *errors.AppError {
	clientID, appErr := s.requireClient(ctx, actorID)
	if appErr != nil {
		return appErr
	}

	imageID, parseErr := uuid.Parse(req.ImageID)
	if parseErr != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Invalid image ID", parseErr)
	}

	image, err := s.repo.GetOwnedByID(ctx, imageID, clientID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get image", err)
	}
	if image == nil {
		return errors.NewAppError(errors.ErrForbidden, "Image not found or not yours", nil)
	}

	if err := s.repo.SoftDelete(ctx, imageID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete image", err)
	}
	return nil
}

// Reorder repositions the caller's gallery. Images not owned by the
// caller are silently skipped.
func (s *ImageService) Reorder(ctx context.Context, actorID uuid.UUID, req *dto.ReorderImagesRequest) *errors.AppError {
	clientID, appErr := s.requireClient(ctx, actorID)
	if appErr != nil {
		return appErr
	}

	if len(req.Images) == 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "Images array is required", nil)
	}

	for _, img := range req.Images {
		imageID, parseErr := uuid.Parse(img.ID)
		if parseErr != nil {
			return errors.NewAppError(errors.ErrInvalidInput, "Invalid image ID", parseErr)
		}
		if err := s.repo.SetPosition(ctx, imageID, clientID, img.Position); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "Failed to reorder images", err)
		}
	}
	return nil
}

func (s *ImageService) ListMine(ctx context.Context, actorID uuid.UUID) ([]entity.Image, *errors.AppError) {
	clientID, appErr := s.requireClient(ctx, actorID)
	if appErr != nil {
		return nil, appErr
	}
	return s.ListByClient(ctx, clientID)
}

func (s *ImageService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Image, *errors.AppError) {
	images, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list images", err)
	}
	return images, nil
}
