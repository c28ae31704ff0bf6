package event

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/database"
	"social-events-api/core/middleware"
	capacityService "social-events-api/modules/capacity/service"
	companyRepository "social-events-api/modules/company/repository"
	"social-events-api/modules/event/controller"
	"social-events-api/modules/event/repository"
	"social-events-api/modules/event/router"
	"social-events-api/modules/event/service"
)

// Init wires the event module and registers its routes. It receives the
// capacity service so every new event gets its opening deposit.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, capacitySvc capacityService.CapacityServiceInterface) service.EventServiceInterface {
	repo := repository.NewEventRepository(db)
	companyRepo := companyRepository.NewCompanyRepository(db)

	svc := service.NewEventService(repo, companyRepo, capacitySvc)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Setup(e, mw)

	return svc
}
