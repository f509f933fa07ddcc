package middleware

import (
	"log/slog"
	"strings"

	"planner/internal/delivery/api/response"
	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller as an entity.Actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.VerifyToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		SetActor(c, entity.Actor{
			UserID:   claims.UserID,
			UserName: claims.UserName,
			Role:     claims.Role,
		})
		deliverycontext.EnrichLogger(c, slog.Default(),
			slog.String("user_id", claims.UserID),
			slog.String("role", claims.Role.String()),
		)

		return next(c)
	}
}

// RequireRole rejects callers without the role. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
			}
			if actor.Role != role {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetActor returns the authenticated caller.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(actorKey).(entity.Actor)

	return actor, ok
}

// SetActor stores the authenticated caller on the request context.
func SetActor(c echo.Context, actor entity.Actor) {
	c.Set(actorKey, actor)
}
