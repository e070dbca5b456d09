// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"library/config"
	"library/internal/domain/entity"
	"library/internal/domain/repository"
	"library/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	claimUserName = "name"
	claimEmail    = entity.ClaimTypeEmail
	claimRole     = entity.ClaimTypeRole
)

// jwtService is a concrete implementation of the TokenService interface.
// Access tokens are HS256 JWTs; refresh tokens are opaque random values
// whose state lives in the refresh token repository.
type jwtService struct {
	key         []byte
	issuer      string
	audience    string
	accessTTL   time.Duration
	refreshTTL  time.Duration
	refreshRepo repository.RefreshTokenRepository
}

// NewJWTService is the constructor for jwtService. A missing signing key is
// a configuration error and fails at startup, not at call time.
func NewJWTService(cfg *config.Config, refreshRepo repository.RefreshTokenRepository) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Key == "" {
		return nil, errors.New("jwt signing key must be provided")
	}

	accessMinutes := cfg.JWT.AccessTokenMinutes
	if accessMinutes <= 0 {
		accessMinutes = 5
	}
	refreshHours := cfg.JWT.RefreshTokenHours
	if refreshHours <= 0 {
		refreshHours = 24
	}

	return &jwtService{
		key:         []byte(cfg.JWT.Key),
		issuer:      cfg.JWT.Issuer,
		audience:    cfg.JWT.Audience,
		accessTTL:   time.Duration(accessMinutes) * time.Minute,
		refreshTTL:  time.Duration(refreshHours) * time.Hour,
		refreshRepo: refreshRepo,
	}, nil
}

// GenerateAccessToken mints a signed access token carrying the user's id,
// display name and stored claims.
func (s *jwtService) GenerateAccessToken(user *entity.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":         user.ID.String(),
		claimUserName: user.UserName,
		"iss":         s.issuer,
		"aud":         s.audience,
		"iat":         now.Unix(),
		"exp":         now.Add(s.accessTTL).Unix(),
	}

	// User claims of one type may repeat (e.g. several roles); collect them
	// into a list so none are dropped.
	for _, c := range user.Claims {
		switch existing := claims[c.Type].(type) {
		case nil:
			claims[c.Type] = c.Value
		case string:
			claims[c.Type] = []string{existing, c.Value}
		case []string:
			claims[c.Type] = append(existing, c.Value)
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateAccessToken verifies signature, issuer, audience and expiry.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.key, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected access token claims type")
	}

	return parseAccessClaims(mapClaims)
}

// GenerateRefreshTokenValue returns a 128-bit random identifier (dashless
// UUID) joined with a millisecond timestamp. No character in the result
// requires escaping, and the generator alone carries the collision-avoidance
// burden.
func (s *jwtService) GenerateRefreshTokenValue() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)

	return id + "_" + timestamp
}

// IsRefreshTokenLive reports whether a refresh token with the given value
// exists and has not expired. It does not mutate state.
func (s *jwtService) IsRefreshTokenLive(ctx context.Context, value string) (bool, error) {
	token, err := s.refreshRepo.FindByValue(ctx, value)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to look up refresh token")
	}

	return token.Live(time.Now()), nil
}

// VerifyUserToken reports whether the presented value matches the refresh
// token currently stored for (user, provider, name). The stored value is
// compared against the presented one, so a value that has been rotated away
// no longer verifies.
func (s *jwtService) VerifyUserToken(ctx context.Context, userID uuid.UUID, value, loginProvider, tokenName string) (bool, error) {
	stored, err := s.refreshRepo.FindByOwner(ctx, userID, loginProvider, tokenName)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to look up stored refresh token")
	}

	return stored.Value == value, nil
}

// RefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func parseAccessClaims(mapClaims jwt.MapClaims) (*service.AccessClaims, error) {
	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "access token has no subject")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "access token subject is not a user id")
	}

	claims := &service.AccessClaims{UserID: userID}

	if name, ok := mapClaims[claimUserName].(string); ok {
		claims.UserName = name
	}

	for _, claimType := range []string{claimEmail, claimRole} {
		switch v := mapClaims[claimType].(type) {
		case string:
			claims.Claims = append(claims.Claims, entity.Claim{Type: claimType, Value: v})
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					claims.Claims = append(claims.Claims, entity.Claim{Type: claimType, Value: s})
				}
			}
		}
	}

	return claims, nil
}
