package router

import (
	"github.com/labstack/echo/v4"

	"filesmanager/internal/adapter/api/handler"
	"filesmanager/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, appHandler *handler.AppHandler, userHandler *handler.UserHandler, authHandler *handler.AuthHandler, fileHandler *handler.FileHandler, authMiddleware *middleware.AuthMiddleware) {
	SetupAppRouter(e, appHandler)
	SetupAuthRouter(e, authHandler)
	SetupUserRouter(e, userHandler, authMiddleware)
	SetupFileRouter(e, fileHandler, authMiddleware)
}
