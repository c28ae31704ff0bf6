package comment

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/database"
	"social-events-api/core/middleware"
	"social-events-api/modules/comment/controller"
	"social-events-api/modules/comment/repository"
	"social-events-api/modules/comment/router"
	"social-events-api/modules/comment/service"
	companyRepository "social-events-api/modules/company/repository"
	"social-events-api/modules/moderation/filter"
	moderationService "social-events-api/modules/moderation/service"
	postRepository "social-events-api/modules/post/repository"
	userRepository "social-events-api/modules/user/repository"
)

// Init wires the comment module and registers its routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, moderation moderationService.ModerationServiceInterface) service.CommentServiceInterface {
	repo := repository.NewCommentRepository(db)
	postRepo := postRepository.NewPostRepository(db)
	userRepo := userRepository.NewUserRepository(db)
	companyRepo := companyRepository.NewCompanyRepository(db)

	svc := service.NewCommentService(repo, postRepo, userRepo, companyRepo, moderation, filter.Default())
	ctrl := controller.NewCommentController(svc)

	router.NewCommentRouter(ctrl).Setup(e, mw)

	return svc
}
