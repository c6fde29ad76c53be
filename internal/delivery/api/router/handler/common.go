// Package handler contains the HTTP handlers of the owner API and the Meta endpoints.
package handler

import (
	"net/http"
	"strconv"

	"socialdesk/internal/delivery/api/middleware"
	"socialdesk/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// requireUser returns the authenticated owner, writing a 401 when missing.
func requireUser(c echo.Context) (uuid.UUID, bool, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, true, nil
}

// pathID parses the :name path parameter as a UUID, writing a 400 on failure.
func pathID(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+name)
	}

	return id, true, nil
}

// bindAndValidate binds the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

// pagination reads limit and offset, clamping limit to maxPageLimit.
func pagination(c echo.Context) (limit, offset int) {
	limit = queryInt(c, "limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	limit = min(limit, maxPageLimit)

	return limit, max(queryInt(c, "offset", 0), 0)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return n
}

func queryBool(c echo.Context, name string) bool {
	b, _ := strconv.ParseBool(c.QueryParam(name))

	return b
}

// ArchiveRequest toggles the archived flag of a product or customer.
type ArchiveRequest struct {
	Archived *bool `json:"archived" validate:"required"`
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
