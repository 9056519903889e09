package handler

import (
	"errors"
	"strings"

	"mercadovecino/api/middleware"
	"mercadovecino/api/render"
	"mercadovecino/internal/service"

	"github.com/labstack/echo/v4"
)

// flashMessageFor translates a service error into the user-facing message
// shown as a flash on the next page.
func flashMessageFor(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return "Por favor completa todos los campos obligatorios"
	case errors.Is(err, service.ErrPasswordMismatch):
		return "Las contraseñas no coinciden"
	case errors.Is(err, service.ErrPasswordTooShort):
		return "La contraseña debe tener al menos 6 caracteres"
	case errors.Is(err, service.ErrEmailTaken):
		return "Ya existe una cuenta con este correo electrónico"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Correo o contraseña incorrectos"
	case errors.Is(err, service.ErrInvalidInput):
		return "Datos inválidos, revisa el formulario"
	case errors.Is(err, service.ErrNotFound):
		return "Recurso no encontrado"
	case errors.Is(err, service.ErrFileTooLarge):
		return "El archivo supera el tamaño máximo permitido"
	case errors.Is(err, service.ErrFileType):
		return "Tipo de archivo no permitido"
	default:
		return "Error interno del servidor"
	}
}

// pageData assembles the common template payload: current session (nil when
// anonymous) and any pending flash message.
func pageData(c echo.Context, extra echo.Map) echo.Map {
	data := echo.Map{}
	for key, value := range extra {
		data[key] = value
	}
	if session, ok := middleware.SessionFromContext(c); ok {
		data["Session"] = session
	}
	if flash := render.TakeFlash(c); flash != nil {
		data["Flash"] = flash
	}
	return data
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
