package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"socialdesk/config"
	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/service"
	mockRepo "socialdesk/internal/mocks/repository"
	mockSvc "socialdesk/internal/mocks/service"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type connectionServiceFixtures struct {
	service        usecase.ConnectionUsecase
	connectionRepo *mockRepo.MockSocialConnectionRepository
	stateStore     *mockSvc.MockOAuthStateStore
	graph          *mockSvc.MockMetaGraphClient
}

func createTestConnectionService(t *testing.T) connectionServiceFixtures {
	connectionRepo := mockRepo.NewMockSocialConnectionRepository(t)
	stateStore := mockSvc.NewMockOAuthStateStore(t)
	graph := mockSvc.NewMockMetaGraphClient(t)

	service := NewConnectionService(ConnectionServiceParams{
		ConnectionRepo: connectionRepo,
		StateStore:     stateStore,
		Graph:          graph,
		Config:         &config.Config{Meta: &config.MetaConfig{StateTTL: 5 * time.Minute}},
		Logger:         newDiscardLogger(),
	})

	return connectionServiceFixtures{
		service:        service,
		connectionRepo: connectionRepo,
		stateStore:     stateStore,
		graph:          graph,
	}
}

func TestConnectionService_BeginConnect(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()
	userID := uuid.New()

	var saved string
	fx.stateStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), userID, 5*time.Minute).
		Run(func(_ context.Context, state string, _ uuid.UUID, _ time.Duration) { saved = state }).
		Return(nil)
	fx.graph.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string { return "https://www.facebook.com/dialog/oauth?state=" + state })

	start, err := fx.service.BeginConnect(ctx, userID)
	require.NoError(t, err)

	assert.Len(t, start.State, 64)
	assert.False(t, strings.Contains(start.State, "-"))
	assert.Equal(t, saved, start.State)
	assert.True(t, strings.HasSuffix(start.AuthorizationURL, start.State))
}

func TestConnectionService_CompleteConnect_StoresPageToken(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()
	userID := uuid.New()
	expires := time.Now().Add(60 * 24 * time.Hour)

	fx.stateStore.EXPECT().Consume(ctx, "state-1").Return(userID, true, nil)
	fx.graph.EXPECT().ExchangeCode(ctx, "code-1").Return(&service.MetaToken{AccessToken: "user-token", ExpiresAt: &expires}, nil)
	fx.graph.EXPECT().FetchProfile(ctx, "user-token").Return(&service.MetaProfile{
		PlatformUserID: "1789",
		Name:           "Boutique Lina",
		PageID:         "page-42",
		PageToken:      "page-token",
	}, nil)
	fx.connectionRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(c *entity.SocialConnection) bool {
			return c.UserID == userID && c.PageID == "page-42" && c.AccessToken == "page-token" &&
				c.Platform == entity.PlatformFacebook && c.PlatformUserID == "1789"
		})).
		Return(nil)

	connection, err := fx.service.CompleteConnect(ctx, "state-1", "code-1")
	require.NoError(t, err)

	assert.Equal(t, &expires, connection.TokenExpiresAt)
}

func TestConnectionService_CompleteConnect_RejectsUnknownState(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.stateStore.EXPECT().Consume(ctx, "replayed").Return(uuid.Nil, false, nil)

	_, err := fx.service.CompleteConnect(ctx, "replayed", "code")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = fx.service.CompleteConnect(ctx, "", "code")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestConnectionService_CompleteConnect_ExchangeFailure(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.stateStore.EXPECT().Consume(ctx, "state-1").Return(uuid.New(), true, nil)
	fx.graph.EXPECT().ExchangeCode(ctx, "bad-code").Return(nil, errors.New("OAuthException: code has expired"))

	_, err := fx.service.CompleteConnect(ctx, "state-1", "bad-code")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}
