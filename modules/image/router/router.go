package router

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/middleware"
	"social-events-api/modules/image/controller"
)

type ImageRouter struct {
	ImageController *controller.ImageController
}

func NewImageRouter(imageController *controller.ImageController) *ImageRouter {
	return &ImageRouter{ImageController: imageController}
}

func (r *ImageRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.POST("/image/upload", r.ImageController.Upload)
	privateRoutes.POST("/image", r.ImageController.Add)
	privateRoutes.DELETE("/image", r.ImageController.Delete)
	privateRoutes.PUT("/images/reorder", r.ImageController.Reorder)
	privateRoutes.GET("/my-images", r.ImageController.ListMine)
	privateRoutes.GET("/user-images/:clientId", r.ImageController.ListByClient)
}
