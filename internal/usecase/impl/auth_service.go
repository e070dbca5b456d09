package impl

import (
	"context"
	"log/slog"
	"time"

	"library/config"
	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	"library/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	validate         *validator.Validate
	loginProvider    string
	tokenName        string
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	loginProvider := "LibraryApi"
	tokenName := "RefreshToken"
	if params.Config != nil && params.Config.JWT != nil {
		if params.Config.JWT.LoginProvider != "" {
			loginProvider = params.Config.JWT.LoginProvider
		}
		if params.Config.JWT.RefreshTokenName != "" {
			tokenName = params.Config.JWT.RefreshTokenName
		}
	}

	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		validate:         newInputValidator(),
		loginProvider:    loginProvider,
		tokenName:        tokenName,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process and issues the
// first token pair for the new account.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := validateInput(srv.validate, input); err != nil {
		srv.log(ctx).Warn("Registration input validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var pair *usecase.TokenPairOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for existing user")
		}

		newUser := &entity.User{
			Email:        input.Email,
			UserName:     input.UserName,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		// Every account starts with an email claim carried into access tokens.
		emailClaim := entity.Claim{Type: entity.ClaimTypeEmail, Value: input.Email}
		if err := userRepo.AddClaim(ctx, newUser.ID, emailClaim); err != nil {
			return errors.Wrap(err, "failed to grant email claim during registration")
		}
		newUser.Claims = append(newUser.Claims, emailClaim)

		var issueErr error
		pair, issueErr = srv.issueTokenPair(ctx, repoFactory.RefreshTokenRepo(), newUser)

		return issueErr
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.String("email", input.Email))

	return pair, nil
}

// Login verifies credentials and issues a fresh token pair. An unknown email
// and a wrong password both surface ErrInvalidCredentials so the two cases
// stay indistinguishable from the response alone.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	pair, err := srv.issueTokenPair(ctx, srv.refreshTokenRepo, user)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return pair, nil
}

// Refresh exchanges a live refresh token for a new pair. The returned refresh
// value is always the one just stored; the presented value is never echoed back.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh token pair")

	live, err := srv.tokenService.IsRefreshTokenLive(ctx, refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check refresh token liveness")
	}
	if !live {
		srv.log(ctx).Warn("Refresh rejected: token not live")

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.refreshTokenRepo.FindUserByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Refresh rejected: owner not found")

			return nil, domainerrors.ErrRefreshUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve refresh token owner")
	}

	ok, err := srv.tokenService.VerifyUserToken(ctx, user.ID, refreshToken, srv.loginProvider, srv.tokenName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify refresh token ownership")
	}
	if !ok {
		srv.log(ctx).Warn("Refresh rejected: ownership mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "refresh token ownership mismatch")
	}

	pair, err := srv.issueTokenPair(ctx, srv.refreshTokenRepo, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Token pair refreshed", slog.Any("userID", user.ID))

	return pair, nil
}

// issueTokenPair mints an access token for the user and rotates their stored
// refresh token. Rotation is a single upsert on the (user, provider, name)
// triple, so concurrent issuance leaves exactly one surviving row.
func (srv *authService) issueTokenPair(ctx context.Context, refreshRepo repository.RefreshTokenRepository, user *entity.User) (*usecase.TokenPairOutput, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	newValue := srv.tokenService.GenerateRefreshTokenValue()
	now := time.Now()

	token := &entity.RefreshToken{
		UserID:        user.ID,
		LoginProvider: srv.loginProvider,
		TokenName:     srv.tokenName,
		Value:         newValue,
		CreatedAt:     now,
		ExpiresAt:     now.Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := refreshRepo.Rotate(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to rotate refresh token")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: newValue,
	}, nil
}
