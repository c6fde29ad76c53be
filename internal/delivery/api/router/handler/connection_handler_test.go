package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	mockUsecase "socialdesk/internal/mocks/usecase"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestConnectionHandler(t *testing.T) (*testServer, *mockUsecase.MockConnectionUsecase) {
	connectionUC := mockUsecase.NewMockConnectionUsecase(t)
	h := NewConnectionHandler(ConnectionHandlerParams{ConnectionUC: connectionUC, Logger: newDiscardLogger()})

	srv := newTestServer(t)
	srv.authenticated(http.MethodGet, "/connections/meta/start", h.BeginConnect)
	srv.authenticated(http.MethodGet, "/connections", h.ListConnections)
	srv.public(http.MethodGet, "/connections/meta/callback", h.OAuthCallback)

	return srv, connectionUC
}

func TestConnectionHandler_BeginConnect(t *testing.T) {
	srv, connectionUC := createTestConnectionHandler(t)
	start := &usecase.ConnectStart{AuthorizationURL: "https://www.facebook.com/dialog/oauth?state=abc", State: "abc"}
	connectionUC.EXPECT().BeginConnect(mock.Anything, srv.userID).Return(start, nil).Twice()

	rec := srv.do(t, http.MethodGet, "/connections/meta/start", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got usecase.ConnectStart
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, "abc", got.State)

	rec = srv.do(t, http.MethodGet, "/connections/meta/start?redirect=true", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, start.AuthorizationURL, rec.Header().Get("Location"))
}

func TestConnectionHandler_OAuthCallback(t *testing.T) {
	t.Run("completes with state and code", func(t *testing.T) {
		srv, connectionUC := createTestConnectionHandler(t)
		connectionUC.EXPECT().CompleteConnect(mock.Anything, "st-1", "code-1").
			Return(&entity.SocialConnection{ID: uuid.New(), PageID: "page-1", AccessToken: "secret"}, nil)

		rec := srv.do(t, http.MethodGet, "/connections/meta/callback?state=st-1&code=code-1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "page-1")
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("declined dialog never reaches the usecase", func(t *testing.T) {
		srv, _ := createTestConnectionHandler(t)

		rec := srv.do(t, http.MethodGet, "/connections/meta/callback?error_reason=user_denied&state=st-1", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "OAUTH_DECLINED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("unknown state", func(t *testing.T) {
		srv, connectionUC := createTestConnectionHandler(t)
		connectionUC.EXPECT().CompleteConnect(mock.Anything, "stale", "code-1").
			Return(nil, domainerrors.ErrUnauthorized.WithDetails("oauth state expired or already used"))

		rec := srv.do(t, http.MethodGet, "/connections/meta/callback?state=stale&code=code-1", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestConnectionHandler_ListConnections(t *testing.T) {
	srv, connectionUC := createTestConnectionHandler(t)
	connectionUC.EXPECT().ListConnections(mock.Anything, srv.userID).
		Return([]*entity.SocialConnection{{ID: uuid.New(), PageID: "page-1"}}, nil)

	rec := srv.do(t, http.MethodGet, "/connections", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []entity.SocialConnection
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "page-1", got[0].PageID)
}
