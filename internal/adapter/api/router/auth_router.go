package router

import (
	"github.com/labstack/echo/v4"

	"filesmanager/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler) {
	e.GET("/connect", authHandler.GetConnect)
	e.GET("/disconnect", authHandler.GetDisconnect)
}
