package handler

import (
	"log/slog"
	"net/http"

	"socialdesk/internal/delivery/api/response"
	"socialdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest represents the request body for owner login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges owner credentials for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
