package handler

import (
	"log/slog"
	"net/http"

	"socialdesk/internal/delivery/api/response"
	"socialdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConnectionHandlerParams holds dependencies for ConnectionHandler, injected by Fx.
type ConnectionHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	Logger       *slog.Logger
}

// ConnectionHandler runs the Meta OAuth flow.
type ConnectionHandler struct {
	connectionUC usecase.ConnectionUsecase
	logger       *slog.Logger
}

func NewConnectionHandler(params ConnectionHandlerParams) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUC: params.ConnectionUC,
		logger:       params.Logger,
	}
}

// BeginConnect returns the Meta dialog URL. With ?redirect=true the owner is redirected to it.
func (h *ConnectionHandler) BeginConnect(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	start, err := h.connectionUC.BeginConnect(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if queryBool(c, "redirect") {
		return c.Redirect(http.StatusTemporaryRedirect, start.AuthorizationURL)
	}

	return response.Success(c, http.StatusOK, start)
}

func (h *ConnectionHandler) ListConnections(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	connections, err := h.connectionUC.ListConnections(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, connections)
}

// OAuthCallback is the Meta redirect target. The owner is identified by the state, not a token.
func (h *ConnectionHandler) OAuthCallback(c echo.Context) error {
	if reason := c.QueryParam("error_reason"); reason != "" {
		h.logger.Warn("Meta authorization declined",
			slog.String("reason", reason),
			slog.String("description", c.QueryParam("error_description")),
		)

		return response.BadRequest(c, "OAUTH_DECLINED", "The Meta authorization was declined")
	}

	connection, err := h.connectionUC.CompleteConnect(c.Request().Context(), c.QueryParam("state"), c.QueryParam("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, connection)
}
