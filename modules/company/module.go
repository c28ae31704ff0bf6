package company

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/database"
	"social-events-api/core/middleware"
	"social-events-api/modules/company/controller"
	"social-events-api/modules/company/repository"
	"social-events-api/modules/company/router"
	"social-events-api/modules/company/service"
)

// Init wires the company module and registers its routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) service.CompanyServiceInterface {
	repo := repository.NewCompanyRepository(db)
	svc := service.NewCompanyService(repo)
	ctrl := controller.NewCompanyController(svc)

	router.NewCompanyRouter(ctrl).Setup(e, mw)

	return svc
}
