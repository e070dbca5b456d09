package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"library/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase records inputs and returns a fixed pair.
type fakeAuthUsecase struct {
	pair         usecase.TokenPairOutput
	refreshInput string
}

func (f *fakeAuthUsecase) Register(_ context.Context, _ usecase.RegisterInput) (*usecase.TokenPairOutput, error) {
	pair := f.pair

	return &pair, nil
}

func (f *fakeAuthUsecase) Login(_ context.Context, _ usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	pair := f.pair

	return &pair, nil
}

func (f *fakeAuthUsecase) Refresh(_ context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	f.refreshInput = refreshToken
	pair := f.pair

	return &pair, nil
}

func TestAuthHandler_Register_ReturnsPair(t *testing.T) {
	uc := &fakeAuthUsecase{pair: usecase.TokenPairOutput{AccessToken: "access", RefreshToken: "refresh"}}
	handler := NewAuthHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"reader@example.com","userName":"bookworm","password":"secret1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"access"`)
	assert.Contains(t, rec.Body.String(), `"refreshToken":"refresh"`)
}

func TestAuthHandler_Refresh_AcceptsBareJSONString(t *testing.T) {
	uc := &fakeAuthUsecase{pair: usecase.TokenPairOutput{AccessToken: "access", RefreshToken: "next"}}
	handler := NewAuthHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(`"opaque-token-value"`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "opaque-token-value", uc.refreshInput)
}

func TestAuthHandler_Refresh_AcceptsWrappedObject(t *testing.T) {
	uc := &fakeAuthUsecase{pair: usecase.TokenPairOutput{AccessToken: "access", RefreshToken: "next"}}
	handler := NewAuthHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh",
		strings.NewReader(`{"refreshToken":"opaque-token-value"}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, "opaque-token-value", uc.refreshInput)
}

func TestAuthHandler_Refresh_EmptyBodyIsBadRequest(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReadRefreshToken(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bare json string", body: `"abc_123"`, want: "abc_123"},
		{name: "wrapped object", body: `{"refreshToken":"abc_123"}`, want: "abc_123"},
		{name: "raw text", body: "abc_123\n", want: "abc_123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readRefreshToken(strings.NewReader(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
