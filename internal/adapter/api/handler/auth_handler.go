package handler

import (
	"github.com/labstack/echo/v4"

	"filesmanager/internal/adapter/api/middleware"
	"filesmanager/internal/usecase"
	"filesmanager/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

func (h *AuthHandler) GetConnect(c echo.Context) error {
	token, err := h.authUseCase.Login(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, map[string]string{"token": token})
}

func (h *AuthHandler) GetDisconnect(c echo.Context) error {
	token := c.Request().Header.Get(middleware.TokenHeader)
	if err := h.authUseCase.Logout(c.Request().Context(), token); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}
