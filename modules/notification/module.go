package notification

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/database"
	"social-events-api/core/middleware"
	"social-events-api/modules/notification/controller"
	"social-events-api/modules/notification/repository"
	"social-events-api/modules/notification/router"
	"social-events-api/modules/notification/service"
	userRepository "social-events-api/modules/user/repository"
)

// Init wires the notification module and registers its routes. The
// returned service also provides the handler the background worker uses
// to turn moderation alerts into notifications.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) service.NotificationServiceInterface {
	repo := repository.NewNotificationRepository(db)
	userRepo := userRepository.NewUserRepository(db)

	svc := service.NewNotificationService(repo, userRepo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Setup(e, mw)

	return svc
}
