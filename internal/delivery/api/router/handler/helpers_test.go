package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	apimiddleware "socialdesk/internal/delivery/api/middleware"
	"socialdesk/internal/delivery/api/validator"
	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testServer wires one route with the API error handler and validator.
type testServer struct {
	echo   *echo.Echo
	userID uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger(), metrics.NewIsolated("test")).HandleHTTPError

	return &testServer{echo: e, userID: uuid.New()}
}

// authenticated registers route behind a middleware that sets the test owner.
func (s *testServer) authenticated(method, path string, h echo.HandlerFunc) {
	s.echo.Add(method, path, h, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUserID(c, s.userID)

			return next(c)
		}
	})
}

func (s *testServer) public(method, path string, h echo.HandlerFunc) {
	s.echo.Add(method, path, h)
}

func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

// envelope decodes the JSON envelope of rec.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Warning *struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"warning"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

