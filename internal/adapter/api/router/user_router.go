package router

import (
	"github.com/labstack/echo/v4"

	"filesmanager/internal/adapter/api/handler"
	"filesmanager/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, authMiddleware *middleware.AuthMiddleware) {
	e.POST("/users", userHandler.PostNew)
	e.GET("/users/me", userHandler.GetMe, authMiddleware.Authenticate)
}
