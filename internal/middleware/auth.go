package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/study-event-tracker/internal/auth"
	"github.com/iliyamo/study-event-tracker/internal/model"
)

// UserFinder looks up a user by id. *repository.UserRepo satisfies it.
type UserFinder interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// Authenticate returns middleware that resolves a bearer token into a
// caller identity. It runs once per request, before any resolver, and it
// ALWAYS proceeds: a missing header, an empty token, a failed
// verification or an unknown user id all leave the request
// unauthenticated rather than rejecting it. Each resolver enforces its
// own authorization requirement and produces the user-visible error.
func Authenticate(secret string, users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return next(c)
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			if raw == "" {
				return next(c)
			}

			userID, ok := auth.VerifyToken(secret, raw)
			if !ok {
				return next(c)
			}

			u, err := users.GetByID(c.Request().Context(), userID)
			if err != nil {
				return next(c)
			}

			// Attach the identity to the request context so it reaches the
			// GraphQL execution layer.
			ctx := auth.WithIdentity(c.Request().Context(), auth.Identity{ID: u.ID, Email: u.Email})
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
