package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"socialdesk/config"
	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/domain/service"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type connectionService struct {
	connectionRepo repository.SocialConnectionRepository
	stateStore     service.OAuthStateStore
	graph          service.MetaGraphClient
	stateTTL       time.Duration
	logger         *slog.Logger
}

// ConnectionServiceParams holds dependencies for ConnectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	ConnectionRepo repository.SocialConnectionRepository
	StateStore     service.OAuthStateStore
	Graph          service.MetaGraphClient
	Config         *config.Config
	Logger         *slog.Logger
}

func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	ttl := 10 * time.Minute
	if params.Config != nil && params.Config.Meta != nil && params.Config.Meta.StateTTL > 0 {
		ttl = params.Config.Meta.StateTTL
	}

	return &connectionService{
		connectionRepo: params.ConnectionRepo,
		stateStore:     params.StateStore,
		graph:          params.Graph,
		stateTTL:       ttl,
		logger:         params.Logger,
	}
}

func (srv *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginConnect binds a random state to userID. The callback carries no bearer token,
// so the state is the only link back to the owner.
func (srv *connectionService) BeginConnect(ctx context.Context, userID uuid.UUID) (*usecase.ConnectStart, error) {
	state := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")

	if err := srv.stateStore.Save(ctx, state, userID, srv.stateTTL); err != nil {
		return nil, errors.Wrap(err, "failed to store oauth state")
	}

	return &usecase.ConnectStart{
		AuthorizationURL: srv.graph.AuthorizationURL(state),
		State:            state,
	}, nil
}

func (srv *connectionService) CompleteConnect(ctx context.Context, state, code string) (*entity.SocialConnection, error) {
	if state == "" || code == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("missing state or code")
	}

	userID, ok, err := srv.stateStore.Consume(ctx, state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume oauth state")
	}
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WithDetails("unknown or expired state")
	}

	token, err := srv.graph.ExchangeCode(ctx, code)
	if err != nil {
		srv.log(ctx).Error("Meta code exchange failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	profile, err := srv.graph.FetchProfile(ctx, token.AccessToken)
	if err != nil {
		srv.log(ctx).Error("Meta profile lookup failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	// Messages are sent with the page token when the account manages a page.
	accessToken := token.AccessToken
	if profile.PageToken != "" {
		accessToken = profile.PageToken
	}

	connection := &entity.SocialConnection{
		UserID:         userID,
		Platform:       entity.PlatformFacebook,
		PlatformUserID: profile.PlatformUserID,
		PageID:         profile.PageID,
		AccessToken:    accessToken,
		TokenExpiresAt: token.ExpiresAt,
	}
	if err := srv.connectionRepo.Upsert(ctx, connection); err != nil {
		return nil, errors.Wrap(err, "failed to save social connection")
	}

	srv.log(ctx).Info("Meta account connected",
		slog.Any("userID", userID),
		slog.String("platformUserID", profile.PlatformUserID),
		slog.String("pageID", profile.PageID),
	)

	return connection, nil
}

func (srv *connectionService) ListConnections(ctx context.Context, userID uuid.UUID) ([]*entity.SocialConnection, error) {
	connections, err := srv.connectionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	return connections, nil
}
