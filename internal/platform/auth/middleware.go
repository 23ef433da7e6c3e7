package auth

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// HeaderUserID is the legacy identity header accepted from clients that
// predate token auth. A Bearer token always wins over the header.
const HeaderUserID = "X-User-Id"

// Identity resolves the caller's account id and stores it on the request
// context. Resolution order: a valid Bearer token, then the X-User-Id
// header. Requests without either still pass through; handlers that need
// an identity are guarded by RequireUser.
func Identity(issuer *Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id, ok := resolveUser(c, issuer); ok {
				ctx := context.WithValue(c.Request().Context(), UserIDKey, id)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

// RequireUser rejects requests that carry no resolvable identity.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UserIDFromContext(c.Request().Context()); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

func resolveUser(c echo.Context, issuer *Issuer) (int64, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			if id, err := issuer.Parse(parts[1]); err == nil {
				return id, true
			}
			// A malformed or expired token does not fall back to the
			// header; the client clearly intended token auth.
			return 0, false
		}
	}

	if raw := c.Request().Header.Get(HeaderUserID); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			return id, true
		}
	}

	return 0, false
}

// UserIDFromContext returns the authenticated account id, if any.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}
