package image

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/database"
	"social-events-api/core/middleware"
	"social-events-api/core/storage"
	"social-events-api/modules/image/controller"
	"social-events-api/modules/image/repository"
	"social-events-api/modules/image/router"
	"social-events-api/modules/image/service"
	userRepository "social-events-api/modules/user/repository"
)

// Init wires the image module and registers its routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, objectStorage storage.ObjectStorage) service.ImageServiceInterface {
	repo := repository.NewImageRepository(db)
	userRepo := userRepository.NewUserRepository(db)

	svc := service.NewImageService(repo, userRepo, objectStorage)
	ctrl := controller.NewImageController(svc)

	router.NewImageRouter(ctrl).Setup(e, mw)

	return svc
}
