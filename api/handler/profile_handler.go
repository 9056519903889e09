package handler

import (
	"net/http"

	"mercadovecino/api/middleware"
	"mercadovecino/api/render"
	"mercadovecino/internal/dto"
	"mercadovecino/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	Service  *service.ProfileService
	Validate *validator.Validate
	Logger   logrus.FieldLogger
}

func NewProfileHandler(svc *service.ProfileService, validate *validator.Validate, logger logrus.FieldLogger) *ProfileHandler {
	return &ProfileHandler{Service: svc, Validate: validate, Logger: logger}
}

// Show renders the profile page from the session snapshot; no user query.
func (h *ProfileHandler) Show(c echo.Context) error {
	return c.Render(http.StatusOK, "perfil.html", pageData(c, echo.Map{"Title": "Mi Perfil"}))
}

func (h *ProfileHandler) Update(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	var form dto.EditProfileForm
	if err := c.Bind(&form); err != nil {
		render.SetFlash(c, "error", "Solicitud inválida")
		return c.Redirect(http.StatusFound, "/perfil_comprador")
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(form); err != nil {
			render.SetFlash(c, "error", "El correo electrónico no es válido")
			return c.Redirect(http.StatusFound, "/perfil_comprador")
		}
	}

	input := service.UpdateProfileInput{
		Name:    form.Name,
		Surname: form.Surname,
		Email:   form.Email,
		Phone:   form.Phone,
		Address: form.Address,
	}
	// Photo upload is optional.
	if photo, err := c.FormFile("foto"); err == nil && photo != nil && photo.Filename != "" {
		input.Photo = photo
	}

	if err := h.Service.Update(c.Request().Context(), session.UserID, session.ID, input); err != nil {
		h.Logger.WithError(err).Warn("profile update rejected")
		render.SetFlash(c, "error", flashMessageFor(err))
		return c.Redirect(http.StatusFound, "/perfil_comprador")
	}

	render.SetFlash(c, "success", "Perfil actualizado correctamente")
	return c.Redirect(http.StatusFound, "/perfil_comprador")
}
