package http

import (
	"context"
	"strings"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/user"
	"fornello/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// callerContextKey is where the authenticated caller is stashed on the
// request context.
const callerContextKey = "caller"

// Caller is the authenticated identity resolved from a bearer token.
type Caller struct {
	ID    kernel.UUID
	Email string
	Roles []user.Role
}

// IsAdministrator reports whether the caller holds the administrator role.
func (c Caller) IsAdministrator() bool {
	for _, role := range c.Roles {
		if role == user.RoleAdministrator {
			return true
		}
	}
	return false
}

// CallerAccounts resolves an authenticated email to its user account.
type CallerAccounts interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// authMiddleware turns bearer tokens into a Caller on the request context.
// Token verification yields the subject email; the account lookup resolves
// the caller's identity and roles for the route guards downstream.
type authMiddleware struct {
	tokens   ports.TokenProvider
	accounts CallerAccounts
}

func newAuthMiddleware(tokens ports.TokenProvider, accounts CallerAccounts) authMiddleware {
	return authMiddleware{
		tokens:   tokens,
		accounts: accounts,
	}
}

// Authenticate rejects requests without a valid bearer token and attaches
// the resolved Caller to the echo context.
func (m authMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token, ok := bearerToken(ctx)
		if !ok {
			return writeUnauthorized(ctx, "missing bearer token")
		}

		email, err := m.tokens.Verify(token)
		if err != nil {
			return writeUnauthorized(ctx, "invalid token")
		}

		account, err := m.accounts.GetByEmail(ctx.Request().Context(), email)
		if err != nil {
			return writeUnauthorized(ctx, "unknown token subject")
		}

		ctx.Set(callerContextKey, Caller{
			ID:    account.ID(),
			Email: account.Email(),
			Roles: account.Roles(),
		})
		return next(ctx)
	}
}

// RequireAdministrator rejects authenticated callers that do not hold the
// administrator role. Must run after Authenticate.
func (m authMiddleware) RequireAdministrator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		caller, ok := callerFromContext(ctx)
		if !ok {
			return writeUnauthorized(ctx, "missing bearer token")
		}
		if !caller.IsAdministrator() {
			return writeForbidden(ctx, "administrator role required")
		}
		return next(ctx)
	}
}

func bearerToken(ctx echo.Context) (string, bool) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}
	return token, true
}

func callerFromContext(ctx echo.Context) (Caller, bool) {
	caller, ok := ctx.Get(callerContextKey).(Caller)
	return caller, ok
}
