package auth

import (
	"time"

	"socialdesk/config"
	"socialdesk/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenIssuer       = "socialdesk"
	defaultAccessTTL  = 12 * time.Hour
	minimumSecretSize = 16
)

// jwtService implements service.TokenService with HS256 signed tokens.
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService signs access tokens with secretKey.access.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if len(cfg.SecretKey.Access) < minimumSecretSize {
		return nil, errors.Errorf("jwt secret must be at least %d characters", minimumSecretSize)
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: ttl,
		now:       time.Now,
	}, nil
}

func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if claims.UserID == uuid.Nil {
		return nil, errors.New("access token has no user")
	}

	return claims, nil
}
