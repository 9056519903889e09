package middleware

import (
	"mercadovecino/internal/entity"

	"github.com/labstack/echo/v4"
)

const contextSessionKey = "auth_session"

func SetSessionContext(c echo.Context, session *entity.Session) {
	c.Set(contextSessionKey, session)
}

func SessionFromContext(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(contextSessionKey).(*entity.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

func UserIDFromContext(c echo.Context) (uint, bool) {
	session, ok := SessionFromContext(c)
	if !ok {
		return 0, false
	}
	return session.UserID, true
}

func RoleFromContext(c echo.Context) (entity.UserRole, bool) {
	session, ok := SessionFromContext(c)
	if !ok {
		return "", false
	}
	return session.Role, true
}
