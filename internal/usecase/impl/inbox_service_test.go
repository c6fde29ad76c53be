package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"socialdesk/config"
	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/service"
	mockSvc "socialdesk/internal/mocks/service"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inboxServiceFixtures struct {
	service usecase.InboxUsecase
	store   *memoryStore
	graph   *mockSvc.MockMetaGraphClient
	userID  uuid.UUID
}

const testPageID = "page-100"

func createTestInboxService(t *testing.T) inboxServiceFixtures {
	t.Helper()

	store := newMemoryStore()
	graph := mockSvc.NewMockMetaGraphClient(t)
	repos := memoryFactory{store: store}

	userID := uuid.New()
	require.NoError(t, repos.SocialConnectionRepo().Upsert(context.Background(), &entity.SocialConnection{
		UserID:         userID,
		Platform:       entity.PlatformFacebook,
		PlatformUserID: "owner-1",
		PageID:         testPageID,
		AccessToken:    "page-token",
	}))

	service := NewInboxService(InboxServiceParams{
		TxManager:        store,
		ConversationRepo: repos.ConversationRepo(),
		MessageRepo:      repos.MessageRepo(),
		ConnectionRepo:   repos.SocialConnectionRepo(),
		Graph:            graph,
		Config:           &config.Config{Meta: &config.MetaConfig{}},
		Logger:           newDiscardLogger(),
	})

	return inboxServiceFixtures{service: service, store: store, graph: graph, userID: userID}
}

func inbound(mid, sender, text string) usecase.InboundMessage {
	return usecase.InboundMessage{
		Platform:           entity.PlatformFacebook,
		PageID:             testPageID,
		CustomerPlatformID: sender,
		PlatformMessageID:  mid,
		Text:               text,
		Timestamp:          time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestInboxService_OnInboundMessage_CreatesProspectConversation(t *testing.T) {
	fx := createTestInboxService(t)
	ctx := context.Background()

	result, err := fx.service.OnInboundMessage(ctx, inbound("m_1", "psid-7", "Salam, dispo ?"))
	require.NoError(t, err)
	assert.Equal(t, usecase.InboundStored, result)

	conversations, err := fx.service.ListConversations(ctx, fx.userID, 20, 0)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.True(t, conversations[0].IsProspect())
	assert.Equal(t, "psid-7", conversations[0].ParticipantPlatformID)

	conversation, err := fx.service.GetConversation(ctx, fx.userID, conversations[0].ID)
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 1)
	assert.Equal(t, entity.MessageDirectionInbound, conversation.Messages[0].Direction)
	assert.Equal(t, "Salam, dispo ?", conversation.Messages[0].Text)
}

func TestInboxService_OnInboundMessage_DuplicateIsAbsorbed(t *testing.T) {
	fx := createTestInboxService(t)
	ctx := context.Background()

	_, err := fx.service.OnInboundMessage(ctx, inbound("m_1", "psid-7", "first"))
	require.NoError(t, err)

	result, err := fx.service.OnInboundMessage(ctx, inbound("m_1", "psid-7", "first"))
	require.NoError(t, err)
	assert.Equal(t, usecase.InboundDuplicate, result)
	assert.Len(t, fx.store.state.messages, 1)
}

func TestInboxService_OnInboundMessage_UnknownPageIsDropped(t *testing.T) {
	fx := createTestInboxService(t)
	msg := inbound("m_1", "psid-7", "hello")
	msg.PageID = "someone-else"

	result, err := fx.service.OnInboundMessage(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, usecase.InboundDropped, result)
	assert.Empty(t, fx.store.state.conversations)
}

func TestInboxService_OnInboundMessage_LinksKnownCustomer(t *testing.T) {
	fx := createTestInboxService(t)
	ctx := context.Background()
	psid := "psid-9"
	customer := &entity.Customer{UserID: fx.userID, FullName: "Yasmine", Platform: entity.PlatformFacebook, PlatformUserID: &psid}
	require.NoError(t, memoryFactory{store: fx.store}.CustomerRepo().Create(ctx, customer))

	_, err := fx.service.OnInboundMessage(ctx, inbound("m_2", psid, "je confirme"))
	require.NoError(t, err)

	conversations, err := fx.service.ListConversations(ctx, fx.userID, 20, 0)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	require.NotNil(t, conversations[0].CustomerID)
	assert.Equal(t, customer.ID, *conversations[0].CustomerID)
}

func TestInboxService_OnInboundMessage_Validation(t *testing.T) {
	fx := createTestInboxService(t)

	_, err := fx.service.OnInboundMessage(context.Background(), inbound("", "psid-7", "x"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	msg := inbound("m_1", "psid-7", "x")
	msg.Platform = entity.PlatformManual
	_, err = fx.service.OnInboundMessage(context.Background(), msg)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInboxService_ProcessWebhookEvent(t *testing.T) {
	fx := createTestInboxService(t)
	payload := json.RawMessage(`{
		"object": "page",
		"entry": [{
			"id": "page-100",
			"time": 1714557600000,
			"messaging": [
				{"sender": {"id": "psid-1"}, "recipient": {"id": "page-100"}, "timestamp": 1714557600000, "message": {"mid": "m_a", "text": "prix ?"}},
				{"sender": {"id": "psid-1"}, "recipient": {"id": "page-100"}, "timestamp": 1714557601000, "message": {"mid": "m_a", "text": "prix ?"}},
				{"sender": {"id": "page-100"}, "recipient": {"id": "psid-1"}, "timestamp": 1714557602000, "message": {"mid": "m_echo", "text": "3000 DA", "is_echo": true}},
				{"sender": {"id": "psid-1"}, "recipient": {"id": "page-100"}, "timestamp": 1714557603000, "read": {"watermark": 1}}
			]
		}, {
			"id": "unknown-page",
			"messaging": [
				{"sender": {"id": "psid-2"}, "recipient": {"id": "unknown-page"}, "timestamp": 1714557600000, "message": {"mid": "m_b", "text": "hi"}}
			]
		}]
	}`)

	report, err := fx.service.ProcessWebhookEvent(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, usecase.WebhookReport{Stored: 1, Duplicates: 1, Dropped: 1, Skipped: 2}, *report)
}

func TestInboxService_ProcessWebhookEvent_MalformedPayload(t *testing.T) {
	fx := createTestInboxService(t)

	_, err := fx.service.ProcessWebhookEvent(context.Background(), json.RawMessage(`{"object": `))
	assert.ErrorIs(t, err, usecase.ErrMalformedPayload)

	_, err = fx.service.ProcessWebhookEvent(context.Background(), json.RawMessage(`{"entry": []}`))
	assert.ErrorIs(t, err, usecase.ErrMalformedPayload)
}

func (fx inboxServiceFixtures) seedConversation(t *testing.T) *entity.Conversation {
	t.Helper()

	_, err := fx.service.OnInboundMessage(context.Background(), inbound("m_seed", "psid-7", "bonjour"))
	require.NoError(t, err)
	conversations, err := fx.service.ListConversations(context.Background(), fx.userID, 20, 0)
	require.NoError(t, err)
	require.Len(t, conversations, 1)

	return conversations[0]
}

func TestInboxService_SendMessage_Success(t *testing.T) {
	fx := createTestInboxService(t)
	ctx := context.Background()
	conversation := fx.seedConversation(t)

	fx.graph.EXPECT().
		SendMessage(ctx, service.SendMessageRequest{
			AccessToken: "page-token",
			RecipientID: "psid-7",
			Text:        "Oui, disponible",
			Tag:         "HUMAN_AGENT",
		}).
		Return(&service.SendMessageResult{RecipientID: "psid-7", MessageID: "m_out"}, nil)

	message, err := fx.service.SendMessage(ctx, fx.userID, conversation.ID, " Oui, disponible ")
	require.NoError(t, err)

	assert.Equal(t, "m_out", message.PlatformMessageID)
	assert.Equal(t, entity.MessageDirectionOutbound, message.Direction)
	assert.Len(t, fx.store.state.messages, 2)
}

func TestInboxService_SendMessage_GraphFailureStoresNothing(t *testing.T) {
	fx := createTestInboxService(t)
	ctx := context.Background()
	conversation := fx.seedConversation(t)

	fx.graph.EXPECT().SendMessage(ctx, mock.Anything).Return(nil, errors.New("(#10) outside of allowed window"))

	_, err := fx.service.SendMessage(ctx, fx.userID, conversation.ID, "hello")

	assert.ErrorIs(t, err, domainerrors.ErrMetaSendFailed)
	assert.Len(t, fx.store.state.messages, 1)
}

func TestInboxService_SendMessage_ScopedToOwner(t *testing.T) {
	fx := createTestInboxService(t)
	conversation := fx.seedConversation(t)

	_, err := fx.service.SendMessage(context.Background(), uuid.New(), conversation.ID, "hello")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = fx.service.SendMessage(context.Background(), fx.userID, conversation.ID, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInboxService_PromoteProspect(t *testing.T) {
	fx := createTestInboxService(t)
	ctx := context.Background()
	conversation := fx.seedConversation(t)

	customer, err := fx.service.PromoteProspect(ctx, fx.userID, conversation.ID, usecase.PromoteInput{Phone: "0661"})
	require.NoError(t, err)

	assert.Equal(t, "Prospect psid-7", customer.FullName)
	assert.Equal(t, entity.PlatformFacebook, customer.Platform)
	require.NotNil(t, customer.PlatformUserID)
	assert.Equal(t, "psid-7", *customer.PlatformUserID)

	linked, err := fx.service.GetConversation(ctx, fx.userID, conversation.ID)
	require.NoError(t, err)
	require.NotNil(t, linked.CustomerID)
	assert.Equal(t, customer.ID, *linked.CustomerID)

	_, err = fx.service.PromoteProspect(ctx, fx.userID, conversation.ID, usecase.PromoteInput{FullName: "Again"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}
