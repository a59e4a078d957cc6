package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"filesmanager/internal/usecase"
	"filesmanager/pkg/response"
)

type AppHandler struct {
	appUseCase *usecase.AppUseCase
}

func NewAppHandler(appUseCase *usecase.AppUseCase) *AppHandler {
	return &AppHandler{appUseCase: appUseCase}
}

func (h *AppHandler) GetStatus(c echo.Context) error {
	dbAlive, cacheAlive := h.appUseCase.Status(c.Request().Context())

	body := map[string]bool{"redis": cacheAlive, "db": dbAlive}
	if dbAlive && cacheAlive {
		return c.JSON(http.StatusOK, body)
	}
	return c.JSON(http.StatusInternalServerError, body)
}

func (h *AppHandler) GetStats(c echo.Context) error {
	stats, err := h.appUseCase.Stats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, stats)
}
