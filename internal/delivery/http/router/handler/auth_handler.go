package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"library/internal/delivery/http/response"
	"library/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type registerRequest struct {
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func toTokenPairResponse(pair *usecase.TokenPairOutput) tokenPairResponse {
	return tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	pair, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTokenPairResponse(pair), "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	pair, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTokenPairResponse(pair), "Login successful")
}

// Refresh handles the token refresh request. The body carries the refresh
// token either as a bare JSON string or as {"refreshToken": "..."}.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken, err := readRefreshToken(c.Request().Body)
	if err != nil || refreshToken == "" {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	pair, err := h.uc.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTokenPairResponse(pair), "Token refreshed successfully")
}

func readRefreshToken(body io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return "", errors.Wrap(err, "read refresh token body")
	}

	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") {
		var wrapped struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return "", errors.Wrap(err, "decode refresh token body")
		}

		return wrapped.RefreshToken, nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return "", errors.Wrap(err, "decode refresh token body")
		}

		return value, nil
	}

	return trimmed, nil
}
