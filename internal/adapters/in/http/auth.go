package http

import (
	"context"
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the verified caller id. The upstream auth gateway
// authenticates the session and sets this header before the request reaches
// this service; it is trusted, not re-verified here.
const userIDHeader = "X-User-Id"

const principalContextKey = "dispatch.principal"

// Principal is the verified caller of a request: a numeric user id plus the
// capability set resolved once at the edge. Handlers branch on the flags and
// never re-query membership.
type Principal struct {
	UserID       int64
	Capabilities queries.Capabilities
}

// CapabilityResolver resolves a caller's capability set.
type CapabilityResolver interface {
	Handle(ctx context.Context, query queries.ResolveCapabilitiesQuery) (queries.Capabilities, error)
}

// NewAuthMiddleware builds the echo middleware that turns the gateway's
// verified user id into a Principal. Requests without a parseable user id
// are rejected with 401 before any handler runs.
func NewAuthMiddleware(resolver CapabilityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := strconv.ParseInt(c.Request().Header.Get(userIDHeader), 10, 64)
			if err != nil || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
			}

			query, err := queries.NewResolveCapabilitiesQuery(userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
			}

			capabilities, err := resolver.Handle(c.Request().Context(), query)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to resolve caller"})
			}

			c.Set(principalContextKey, Principal{UserID: userID, Capabilities: capabilities})
			return next(c)
		}
	}
}

// PrincipalFrom extracts the Principal stored by the auth middleware.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(principalContextKey).(Principal)
	return principal, ok
}
