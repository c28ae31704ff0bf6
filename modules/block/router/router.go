package router

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/middleware"
	"social-events-api/modules/block/controller"
)

type BlockRouter struct {
	BlockController *controller.BlockController
}

func NewBlockRouter(blockController *controller.BlockController) *BlockRouter {
	return &BlockRouter{BlockController: blockController}
}

func (r *BlockRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.POST("/block", r.BlockController.Create)
	privateRoutes.DELETE("/block", r.BlockController.Remove)
	privateRoutes.GET("/blocks/:targetUserId", r.BlockController.ListByUser)
}
