package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"library/config"
	"library/internal/domain/entity"
	"library/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			Key:                "test_signing_key_very_long_for_testing",
			Issuer:             "library-api",
			Audience:           "library-client",
			AccessTokenMinutes: 5,
			RefreshTokenHours:  24,
			LoginProvider:      "LibraryApi",
			RefreshTokenName:   "RefreshToken",
		},
	}
}

// stubRefreshRepo is an in-memory RefreshTokenRepository for token service tests.
type stubRefreshRepo struct {
	tokens map[string]*entity.RefreshToken
}

func newStubRefreshRepo() *stubRefreshRepo {
	return &stubRefreshRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (r *stubRefreshRepo) FindByValue(_ context.Context, value string) (*entity.RefreshToken, error) {
	if token, ok := r.tokens[value]; ok {
		return token, nil
	}

	return nil, repository.ErrRefreshTokenNotFound
}

func (r *stubRefreshRepo) FindUserByValue(_ context.Context, _ string) (*entity.User, error) {
	return nil, repository.ErrRefreshTokenNotFound
}

func (r *stubRefreshRepo) FindByOwner(_ context.Context, userID uuid.UUID, loginProvider, tokenName string) (*entity.RefreshToken, error) {
	for _, token := range r.tokens {
		if token.UserID == userID && token.LoginProvider == loginProvider && token.TokenName == tokenName {
			return token, nil
		}
	}

	return nil, repository.ErrRefreshTokenNotFound
}

func (r *stubRefreshRepo) Rotate(_ context.Context, token *entity.RefreshToken) error {
	for value, existing := range r.tokens {
		if existing.UserID == token.UserID &&
			existing.LoginProvider == token.LoginProvider &&
			existing.TokenName == token.TokenName {
			delete(r.tokens, value)
		}
	}
	r.tokens[token.Value] = token

	return nil
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(), newStubRefreshRepo())
	require.NoError(t, err)

	user := &entity.User{
		ID:       uuid.New(),
		UserName: "reader one",
		Claims: []entity.Claim{
			{Type: entity.ClaimTypeEmail, Value: "reader@example.com"},
			{Type: entity.ClaimTypeRole, Value: entity.RoleAdmin},
		},
	}

	tokenString, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := svc.ValidateAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.UserName, claims.UserName)
	assert.Contains(t, claims.Claims, entity.Claim{Type: entity.ClaimTypeEmail, Value: "reader@example.com"})
	assert.Contains(t, claims.Claims, entity.Claim{Type: entity.ClaimTypeRole, Value: entity.RoleAdmin})
}

func TestJWTService_ValidateAccessToken_WrongAudience(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(), newStubRefreshRepo())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.JWT.Audience = "someone-else"
	otherSvc, err := NewJWTService(otherCfg, newStubRefreshRepo())
	require.NoError(t, err)

	tokenString, err := otherSvc.GenerateAccessToken(&entity.User{ID: uuid.New(), UserName: "reader"})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateAccessToken_Garbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(), newStubRefreshRepo())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingKey(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.Key = ""

	svc, err := NewJWTService(cfg, newStubRefreshRepo())
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt signing key must be provided")
}

func TestJWTService_GenerateRefreshTokenValue(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(), newStubRefreshRepo())
	require.NoError(t, err)

	value := svc.GenerateRefreshTokenValue()

	parts := strings.Split(value, "_")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 32) // dashless UUID
	assert.NotEmpty(t, parts[1])

	// Practical collision resistance: repeated generation never repeats.
	seen := map[string]bool{value: true}
	for range 1000 {
		next := svc.GenerateRefreshTokenValue()
		assert.False(t, seen[next], "generated refresh value repeated")
		seen[next] = true
	}
}

func TestJWTService_IsRefreshTokenLive(t *testing.T) {
	repo := newStubRefreshRepo()
	svc, err := NewJWTService(newTestJWTConfig(), repo)
	require.NoError(t, err)

	ctx := context.Background()
	userID := uuid.New()

	live, err := svc.IsRefreshTokenLive(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, live, "absent value must not be live")

	expired := &entity.RefreshToken{
		UserID:        userID,
		LoginProvider: "LibraryApi",
		TokenName:     "RefreshToken",
		Value:         "expired-value",
		ExpiresAt:     time.Now().Add(-time.Second),
	}
	require.NoError(t, repo.Rotate(ctx, expired))

	live, err = svc.IsRefreshTokenLive(ctx, "expired-value")
	require.NoError(t, err)
	assert.False(t, live, "expired value must not be live")

	fresh := &entity.RefreshToken{
		UserID:        userID,
		LoginProvider: "LibraryApi",
		TokenName:     "RefreshToken",
		Value:         "fresh-value",
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Rotate(ctx, fresh))

	live, err = svc.IsRefreshTokenLive(ctx, "fresh-value")
	require.NoError(t, err)
	assert.True(t, live)
}

func TestJWTService_VerifyUserToken(t *testing.T) {
	repo := newStubRefreshRepo()
	svc, err := NewJWTService(newTestJWTConfig(), repo)
	require.NoError(t, err)

	ctx := context.Background()
	userID := uuid.New()

	stored := &entity.RefreshToken{
		UserID:        userID,
		LoginProvider: "LibraryApi",
		TokenName:     "RefreshToken",
		Value:         "stored-value",
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Rotate(ctx, stored))

	ok, err := svc.VerifyUserToken(ctx, userID, "stored-value", "LibraryApi", "RefreshToken")
	require.NoError(t, err)
	assert.True(t, ok)

	// A rotated-away value no longer verifies even though a row exists
	// for the same (user, provider, name) triple.
	ok, err = svc.VerifyUserToken(ctx, userID, "some-older-value", "LibraryApi", "RefreshToken")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.VerifyUserToken(ctx, uuid.New(), "stored-value", "LibraryApi", "RefreshToken")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(), newStubRefreshRepo())
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, svc.RefreshTokenDuration())
}
