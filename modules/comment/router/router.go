package router

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/middleware"
	"social-events-api/modules/comment/controller"
)

type CommentRouter struct {
	CommentController *controller.CommentController
}

func NewCommentRouter(commentController *controller.CommentController) *CommentRouter {
	return &CommentRouter{CommentController: commentController}
}

func (r *CommentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.POST("/comment", r.CommentController.Create)
	privateRoutes.PUT("/comment", r.CommentController.Update)
	privateRoutes.DELETE("/comment/:id", r.CommentController.Delete)
	privateRoutes.GET("/comments/:postId", r.CommentController.ListByPost)
}
