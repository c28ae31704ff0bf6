package capacity

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/database"
	"social-events-api/core/middleware"
	"social-events-api/modules/capacity/controller"
	"social-events-api/modules/capacity/repository"
	"social-events-api/modules/capacity/router"
	"social-events-api/modules/capacity/service"
	companyRepository "social-events-api/modules/company/repository"
	eventRepository "social-events-api/modules/event/repository"
)

// Init wires the capacity module and registers its routes. The returned
// service is consumed by the event module to bootstrap new events.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) service.CapacityServiceInterface {
	repo := repository.NewCapacityRepository(db)
	eventRepo := eventRepository.NewEventRepository(db)
	companyRepo := companyRepository.NewCompanyRepository(db)

	svc := service.NewCapacityService(repo, eventRepo, companyRepo)
	ctrl := controller.NewCapacityController(svc)

	router.NewCapacityRouter(ctrl).Setup(e, mw)

	return svc
}
