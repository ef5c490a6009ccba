package middleware

import (
	"strings"

	deliverycontext "assetverse/internal/delivery/context"
	"assetverse/internal/delivery/http/response"
	"assetverse/internal/domain/entity"
	"assetverse/internal/domain/repository"
	"assetverse/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// unauthorizedMessage is the fixed body for every authentication failure;
// verifier detail is never echoed back.
const unauthorizedMessage = "Unauthorized access"

// AuthMiddleware provides middleware for bearer-token authentication and
// role-based authorization.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, userRepo: userRepo}
}

// Authenticate validates the Authorization header and attaches the verified
// principal to the request context. The header shape is checked before the
// verifier is consulted at all.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", unauthorizedMessage)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", unauthorizedMessage)
		}

		principal, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", unauthorizedMessage)
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the principal's stored
// role against requiredRole. It must be used AFTER Authenticate. The role
// is read live from storage on every call so a role change takes effect
// on the very next request.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c.Request().Context())
			if principal == nil {
				return response.Unauthorized(c, "UNAUTHORIZED", unauthorizedMessage)
			}

			user, err := m.userRepo.FindByEmail(c.Request().Context(), principal.Email)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return response.Forbidden(c, "FORBIDDEN", "Forbidden access")
				}

				return errors.WithStack(err)
			}

			if user.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Forbidden access")
			}

			return next(c)
		}
	}
}
