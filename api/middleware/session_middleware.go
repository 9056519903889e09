package middleware

import (
	"net/http"

	"mercadovecino/api/render"
	"mercadovecino/internal/repository"
	"mercadovecino/internal/utils"

	"github.com/labstack/echo/v4"
)

const SessionCookieName = "sesion"

type SessionMiddleware struct {
	Tokens   *utils.SessionTokenManager
	Sessions repository.SessionRepository
}

// LoadSession resolves the session cookie into a server-side session and puts
// it on the request context. Requests without a valid session pass through
// anonymously.
func (m SessionMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		claims, err := m.Tokens.Parse(cookie.Value)
		if err != nil {
			return next(c)
		}
		sessionID, err := claims.SessionID()
		if err != nil {
			return next(c)
		}

		session, err := m.Sessions.FindActive(c.Request().Context(), sessionID)
		if err != nil || session == nil {
			return next(c)
		}

		SetSessionContext(c, session)
		return next(c)
	}
}

// RequireAuth redirects anonymous requests to the login page.
func (m SessionMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := SessionFromContext(c); !ok {
			render.SetFlash(c, "error", "Debes iniciar sesión para acceder a esta página")
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}
