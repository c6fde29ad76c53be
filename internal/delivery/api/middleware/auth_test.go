package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"socialdesk/internal/domain/service"
	mockSvc "socialdesk/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func createTestAuthServer(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	auth := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		userID, ok := GetUserID(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.String(http.StatusOK, userID.String())
	}, auth.Authenticate)

	return e, tokenSvc
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockSvc.MockTokenService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   userID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tokenSvc := createTestAuthServer(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
