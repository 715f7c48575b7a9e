package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"game-api/internal/dto"
	"game-api/internal/services"
	"game-api/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if _, err := bindBody(c, &payload); err != nil {
		ctrl.logger.Warn("Login: datos de acceso no válidos", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	result, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Login: autenticación fallida", zap.String("username", payload.Username), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, result, "Inicio de sesión exitoso", http.StatusOK)
}

func (ctrl *AuthController) Refresh(c echo.Context) error {
	var payload dto.RefreshTokenDTO
	if _, err := bindBody(c, &payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	result, err := ctrl.authService.Refresh(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, result, "Token renovado", http.StatusOK)
}
