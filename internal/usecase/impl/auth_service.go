package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"socialdesk/config"
	deliverycontext "socialdesk/internal/delivery/context"
	"socialdesk/internal/domain/entity"
	domainerrors "socialdesk/internal/domain/errors"
	"socialdesk/internal/domain/repository"
	"socialdesk/internal/domain/service"
	"socialdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	tokenTTL     time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var ttl time.Duration
	if params.Config != nil && params.Config.Auth != nil {
		ttl = params.Config.Auth.AccessTokenTTL
	}

	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		tokenTTL:     ttl,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Register(ctx context.Context, email, name, password string) (*entity.User, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if len(password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{Email: email, Name: name, PasswordHash: hash}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Owner account registered", slog.Any("userID", user.ID))

	return user, nil
}

func (srv *authService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.LoginOutput{
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(srv.tokenTTL.Seconds()),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
