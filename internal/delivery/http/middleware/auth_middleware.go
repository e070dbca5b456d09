package middleware

import (
	"strings"

	deliverycontext "library/internal/delivery/context"
	"library/internal/delivery/http/response"
	"library/internal/domain/entity"
	"library/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set("userID", claims.UserID)
		c.Set("userName", claims.UserName)
		c.Set("claims", claims.Claims)

		// Propagate the user onto the request context so request-scoped logs
		// carry it.
		ctx := c.Request().Context()
		logger := deliverycontext.GetLogger(ctx)
		if logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("userID", claims.UserID.String()))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireClaim is a middleware factory that checks if the user carries the
// given claim with one of the accepted values. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireClaim(claimType string, values ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claimsVal := c.Get("claims")
			claims, ok := claimsVal.([]entity.Claim)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: claim information missing")
			}

			for _, claim := range claims {
				if claim.Type != claimType {
					continue
				}
				for _, value := range values {
					if claim.Value == value {
						return next(c)
					}
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+claimType+"' claim")
		}
	}
}
