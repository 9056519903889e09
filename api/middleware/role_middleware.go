package middleware

import (
	"net/http"

	"mercadovecino/api/render"
	"mercadovecino/internal/entity"

	"github.com/labstack/echo/v4"
)

func RequireRole(role entity.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			currentRole, ok := RoleFromContext(c)
			if !ok || currentRole != role {
				render.SetFlash(c, "error", "No tienes permisos para acceder a esta página")
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}
