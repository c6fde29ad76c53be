package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "socialdesk/internal/domain/errors"
	mockUsecase "socialdesk/internal/mocks/usecase"
	"socialdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*mockUsecase.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "issues a token",
			body: map[string]any{"email": "owner@example.com", "password": "secret-pass"},
			setupMock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Login(mock.Anything, "owner@example.com", "secret-pass").
					Return(&usecase.LoginOutput{AccessToken: "tok", TokenType: "Bearer"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: map[string]any{"email": "owner@example.com", "password": "nope"},
			setupMock: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Login(mock.Anything, "owner@example.com", "nope").
					Return(nil, domainerrors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "malformed email is rejected before the usecase",
			body:       map[string]any{"email": "not-an-email", "password": "x"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			if tt.setupMock != nil {
				tt.setupMock(authUC)
			}
			h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
			srv := newTestServer(t)
			srv.public(http.MethodPost, "/auth/login", h.Login)

			rec := srv.do(t, http.MethodPost, "/auth/login", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}
			var out usecase.LoginOutput
			require.NoError(t, json.Unmarshal(env.Data, &out))
			assert.Equal(t, "tok", out.AccessToken)
		})
	}
}
