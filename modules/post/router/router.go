package router

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/middleware"
	"social-events-api/modules/post/controller"
)

type PostRouter struct {
	PostController *controller.PostController
}

func NewPostRouter(postController *controller.PostController) *PostRouter {
	return &PostRouter{PostController: postController}
}

func (r *PostRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.POST("/post", r.PostController.Create)
	privateRoutes.PUT("/post", r.PostController.Update)
	privateRoutes.DELETE("/post/:id", r.PostController.Delete)
	privateRoutes.GET("/posts", r.PostController.Feed)
	privateRoutes.GET("/my-posts", r.PostController.MyPosts)
	privateRoutes.GET("/user-posts/:clientId", r.PostController.UserPosts)
}
