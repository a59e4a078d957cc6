package router

import (
	"github.com/labstack/echo/v4"

	"filesmanager/internal/adapter/api/handler"
)

func SetupAppRouter(e *echo.Echo, appHandler *handler.AppHandler) {
	e.GET("/status", appHandler.GetStatus)
	e.GET("/stats", appHandler.GetStats)
}
