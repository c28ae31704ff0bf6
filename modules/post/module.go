package post

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/database"
	"social-events-api/core/middleware"
	companyRepository "social-events-api/modules/company/repository"
	"social-events-api/modules/moderation/filter"
	moderationService "social-events-api/modules/moderation/service"
	"social-events-api/modules/post/controller"
	"social-events-api/modules/post/repository"
	"social-events-api/modules/post/router"
	"social-events-api/modules/post/service"
	userRepository "social-events-api/modules/user/repository"
)

// Init wires the post module and registers its routes. The returned
// service is consumed by the comment module for delete authorization.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, moderation moderationService.ModerationServiceInterface) service.PostServiceInterface {
	repo := repository.NewPostRepository(db)
	userRepo := userRepository.NewUserRepository(db)
	companyRepo := companyRepository.NewCompanyRepository(db)

	svc := service.NewPostService(repo, userRepo, companyRepo, moderation, filter.Default())
	ctrl := controller.NewPostController(svc)

	router.NewPostRouter(ctrl).Setup(e, mw)

	return svc
}
