package user

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/database"
	"social-events-api/core/middleware"
	"social-events-api/modules/user/controller"
	"social-events-api/modules/user/repository"
	"social-events-api/modules/user/router"
	"social-events-api/modules/user/service"
)

// Init wires the user module and registers its routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) service.UserServiceInterface {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)

	router.NewUserRouter(ctrl).Setup(e, mw)

	return svc
}
