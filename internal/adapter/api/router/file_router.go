package router

import (
	"github.com/labstack/echo/v4"

	"filesmanager/internal/adapter/api/handler"
	"filesmanager/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, fileHandler *handler.FileHandler, authMiddleware *middleware.AuthMiddleware) {
	e.POST("/files", fileHandler.PostUpload, authMiddleware.Authenticate)
	e.GET("/files", fileHandler.GetIndex, authMiddleware.Authenticate)
	e.GET("/files/:id", fileHandler.GetShow, authMiddleware.Authenticate)
	e.PUT("/files/:id/publish", fileHandler.PutPublish, authMiddleware.Authenticate)
	e.PUT("/files/:id/unpublish", fileHandler.PutUnpublish, authMiddleware.Authenticate)

	// Content serving decides visibility itself; a token is optional here.
	e.GET("/files/:id/data", fileHandler.GetFile, authMiddleware.OptionalAuthenticate)
}
