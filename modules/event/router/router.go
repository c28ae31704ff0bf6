package router

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/middleware"
	"social-events-api/modules/event/controller"
)

type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.GET("/events", r.EventController.List)
	v1.GET("/events/public", r.EventController.ListPublic)
	v1.GET("/event/:id", r.EventController.GetByID)
	v1.GET("/event-types", r.EventController.ListEventTypes)
	v1.GET("/company/:companyId/events", r.EventController.ListByCompany)

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.POST("/event", r.EventController.Create)
	privateRoutes.PUT("/event", r.EventController.Update)
	privateRoutes.DELETE("/event/:id", r.EventController.Delete)
	privateRoutes.GET("/my-company-events", r.EventController.ListMyCompany)
}
