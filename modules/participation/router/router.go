package router

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/middleware"
	"social-events-api/modules/participation/controller"
)

type ParticipationRouter struct {
	ParticipationController *controller.ParticipationController
}

func NewParticipationRouter(participationController *controller.ParticipationController) *ParticipationRouter {
	return &ParticipationRouter{ParticipationController: participationController}
}

func (r *ParticipationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.POST("/participation", r.ParticipationController.Upsert)
	privateRoutes.GET("/participation/:eventId", r.ParticipationController.GetMine)
	privateRoutes.GET("/event-participations/:eventId", r.ParticipationController.EventParticipations)
}
