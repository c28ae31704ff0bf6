package router

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/middleware"
	"social-events-api/modules/capacity/controller"
)

type CapacityRouter struct {
	CapacityController *controller.CapacityController
}

func NewCapacityRouter(capacityController *controller.CapacityController) *CapacityRouter {
	return &CapacityRouter{CapacityController: capacityController}
}

func (r *CapacityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.GET("/event-capacity/:eventId", r.CapacityController.GetEventCapacity)
	v1.GET("/event-capacity/:eventId/history", r.CapacityController.GetHistory)

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.POST("/event-capacity/deposit", r.CapacityController.Deposit)
	privateRoutes.POST("/event-capacity/checkin", r.CapacityController.Withdraw)
	privateRoutes.GET("/my-company-capacity-summary", r.CapacityController.GetCompanySummary)
}
