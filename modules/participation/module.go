package participation

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/database"
	"social-events-api/core/middleware"
	companyRepository "social-events-api/modules/company/repository"
	eventRepository "social-events-api/modules/event/repository"
	"social-events-api/modules/participation/controller"
	"social-events-api/modules/participation/repository"
	"social-events-api/modules/participation/router"
	"social-events-api/modules/participation/service"
)

// Init wires the participation module and registers its routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) service.ParticipationServiceInterface {
	repo := repository.NewParticipationRepository(db)
	eventRepo := eventRepository.NewEventRepository(db)
	companyRepo := companyRepository.NewCompanyRepository(db)

	svc := service.NewParticipationService(repo, eventRepo, companyRepo)
	ctrl := controller.NewParticipationController(svc)

	router.NewParticipationRouter(ctrl).Setup(e, mw)

	return svc
}
