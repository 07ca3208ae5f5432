package middleware

import (
	"fmt"
	"strings"
	"ticketing-service/internal/module/auth/repositories"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"
	"ticketing-service/internal/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookie   = "admin_session"
	SessionTokenKey = "session_token"
)

type Middleware struct {
	Log  log.Logger
	Repo repositories.Repositories
}

// RequireSession authenticates admin requests against the persisted session
// store. The token comes from the session cookie, or a Bearer header for
// API clients.
func (m *Middleware) RequireSession(ctx *fiber.Ctx) error {
	token := ctx.Cookies(SessionCookie)
	if token == "" {
		auth := ctx.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if token == "" {
		m.Log.Error(ctx.UserContext(), "error get session token from request")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("authentication required"))
	}

	session, err := m.Repo.FindSessionByToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate session: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("authentication required"))
	}

	if session.Expired(time.Now()) {
		m.Log.Error(ctx.UserContext(), "error validate session: expired")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("session expired"))
	}

	ctx.Locals(SessionTokenKey, token)

	return ctx.Next()
}
