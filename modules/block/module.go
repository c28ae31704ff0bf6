package block

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/database"
	"social-events-api/core/middleware"
	"social-events-api/modules/block/controller"
	"social-events-api/modules/block/repository"
	"social-events-api/modules/block/router"
	"social-events-api/modules/block/service"
	moderationRepository "social-events-api/modules/moderation/repository"
	userRepository "social-events-api/modules/user/repository"
)

// Init wires the block module and registers its routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) service.BlockServiceInterface {
	repo := repository.NewBlockRepository(db)
	userRepo := userRepository.NewUserRepository(db)
	alertRepo := moderationRepository.NewModerationRepository(db)

	svc := service.NewBlockService(repo, userRepo, alertRepo)
	ctrl := controller.NewBlockController(svc)

	router.NewBlockRouter(ctrl).Setup(e, mw)

	return svc
}
