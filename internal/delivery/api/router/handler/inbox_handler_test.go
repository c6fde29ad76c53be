package handler

import (
	"net/http"
	"testing"

	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	mockUsecase "socialdesk/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestInboxHandler(t *testing.T) (*testServer, *mockUsecase.MockInboxUsecase) {
	inboxUC := mockUsecase.NewMockInboxUsecase(t)
	h := NewInboxHandler(InboxHandlerParams{InboxUC: inboxUC, Logger: newDiscardLogger()})

	srv := newTestServer(t)
	srv.authenticated(http.MethodPost, "/conversations/:id/messages", h.SendMessage)

	return srv, inboxUC
}

func TestInboxHandler_SendMessage(t *testing.T) {
	conversationID := uuid.New()

	tests := []struct {
		name       string
		message    *entity.Message
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "sent and stored",
			message:    &entity.Message{ID: uuid.New(), Text: "Bonjour", Direction: entity.MessageDirectionOutbound},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "sent but not stored",
			message:    &entity.Message{ID: uuid.New(), Text: "Bonjour", Direction: entity.MessageDirectionOutbound},
			err:        domainerrors.NewPartialConsistencyWarning(conversationID, "store_outbound_message", errors.New("db down")),
			wantStatus: http.StatusMultiStatus,
		},
		{
			name:       "send failed",
			err:        errors.Wrap(domainerrors.ErrMetaSendFailed, "graph api"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "META_SEND_FAILED",
		},
		{
			name:       "no connected account",
			err:        domainerrors.ErrMetaNotConnected,
			wantStatus: http.StatusConflict,
			wantCode:   "META_NOT_CONNECTED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, inboxUC := createTestInboxHandler(t)

			inboxUC.EXPECT().SendMessage(mock.Anything, srv.userID, conversationID, "Bonjour").Return(tt.message, tt.err)

			rec := srv.do(t, http.MethodPost, "/conversations/"+conversationID.String()+"/messages", map[string]any{"text": "Bonjour"})

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
			}
		})
	}
}

func TestInboxHandler_SendMessageRequiresText(t *testing.T) {
	srv, _ := createTestInboxHandler(t)

	rec := srv.do(t, http.MethodPost, "/conversations/"+uuid.NewString()+"/messages", map[string]any{"text": ""})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
