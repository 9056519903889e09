package handler

import (
	"net/http"
	"time"

	"mercadovecino/api/middleware"
	"mercadovecino/api/render"
	"mercadovecino/internal/dto"
	"mercadovecino/internal/service"
	"mercadovecino/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Service       *service.AuthService
	Tokens        *utils.SessionTokenManager
	Validate      *validator.Validate
	Logger        logrus.FieldLogger
	SecureCookies bool
}

func NewAuthHandler(svc *service.AuthService, tokens *utils.SessionTokenManager, validate *validator.Validate, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		Service:       svc,
		Tokens:        tokens,
		Validate:      validate,
		Logger:        logger,
		SecureCookies: true,
	}
}

func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", pageData(c, echo.Map{"Title": "Iniciar Sesión"}))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var form dto.LoginForm
	if err := c.Bind(&form); err != nil {
		render.SetFlash(c, "error", "Solicitud inválida")
		return c.Redirect(http.StatusFound, "/login")
	}
	if err := h.validate(form); err != nil {
		render.SetFlash(c, "error", "Correo o contraseña incorrectos")
		return c.Redirect(http.StatusFound, "/login")
	}

	session, err := h.Service.Login(
		c.Request().Context(),
		form.Email,
		form.Password,
		stringPtr(c.RealIP()),
		stringPtr(c.Request().UserAgent()),
	)
	if err != nil {
		h.logUnexpected(err)
		render.SetFlash(c, "error", flashMessageFor(err))
		return c.Redirect(http.StatusFound, "/login")
	}

	token, err := h.Tokens.Issue(session.ID, session.UserID, string(session.Role))
	if err != nil {
		h.logUnexpected(err)
		render.SetFlash(c, "error", "Error interno del servidor")
		return c.Redirect(http.StatusFound, "/login")
	}
	h.setSessionCookie(c, token, time.Until(session.ExpiresAt))

	render.SetFlash(c, "success", "Bienvenido "+session.FullName())
	return c.Redirect(http.StatusFound, "/perfil_comprador")
}

func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "registro.html", pageData(c, echo.Map{"Title": "Registro"}))
}

func (h *AuthHandler) Register(c echo.Context) error {
	var form dto.RegisterForm
	if err := c.Bind(&form); err != nil {
		render.SetFlash(c, "error", "Solicitud inválida")
		return c.Redirect(http.StatusFound, "/registro")
	}
	if err := h.validate(form); err != nil {
		render.SetFlash(c, "error", "El correo electrónico no es válido")
		return c.Redirect(http.StatusFound, "/registro")
	}

	_, err := h.Service.Register(c.Request().Context(), service.RegisterInput{
		Name:            form.Name,
		Surname:         form.Surname,
		Email:           form.Email,
		Phone:           form.Phone,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		RoleLabel:       form.RoleLabel,
		Address:         form.Address,
	})
	if err != nil {
		h.logUnexpected(err)
		render.SetFlash(c, "error", flashMessageFor(err))
		return c.Redirect(http.StatusFound, "/registro")
	}

	render.SetFlash(c, "success", "Cuenta creada exitosamente. Ahora puedes iniciar sesión.")
	return c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if session, ok := middleware.SessionFromContext(c); ok {
		userID := session.UserID
		if err := h.Service.Logout(c.Request().Context(), session.ID, &userID, stringPtr(c.RealIP())); err != nil {
			h.logUnexpected(err)
		}
	}
	h.clearSessionCookie(c)

	render.SetFlash(c, "success", "Sesión cerrada exitosamente")
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// logUnexpected logs persistence-level failures; user-correctable errors are
// already reported through the flash message.
func (h *AuthHandler) logUnexpected(err error) {
	if h.Logger == nil {
		return
	}
	if flashMessageFor(err) == "Error interno del servidor" {
		h.Logger.WithError(err).Error("auth handler failure")
	}
}
