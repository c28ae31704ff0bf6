package router

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/middleware"
	"social-events-api/modules/company/controller"
)

type CompanyRouter struct {
	CompanyController *controller.CompanyController
}

func NewCompanyRouter(companyController *controller.CompanyController) *CompanyRouter {
	return &CompanyRouter{CompanyController: companyController}
}

func (r *CompanyRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.GET("/companies", r.CompanyController.List)
	v1.GET("/company/:id", r.CompanyController.GetByID)

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.GET("/my-company", r.CompanyController.GetMyCompany)
}
