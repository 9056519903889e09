package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"mercadovecino/api/handler"
	"mercadovecino/api/middleware"
	"mercadovecino/internal/entity"
	"mercadovecino/internal/repository"
	"mercadovecino/internal/service"
	"mercadovecino/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateFields(_ context.Context, _ uint, _ map[string]any) error {
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uuid.UUID]*entity.Session{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) FindActive(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	session, ok := r.sessions[id]
	if !ok || session.RevokedAt != nil {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (r *fakeSessionRepo) RefreshSnapshot(_ context.Context, _ uuid.UUID, _ *entity.User) error {
	return nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, id uuid.UUID) error {
	if session, ok := r.sessions[id]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (r *fakeSessionRepo) RevokeAllByUser(_ context.Context, _ uint) error { return nil }

func (r *fakeSessionRepo) CleanupExpired(_ context.Context) error { return nil }

type testApp struct {
	echo     *echo.Echo
	users    *fakeUserRepo
	sessions *fakeSessionRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	authService := service.NewAuthService(
		users,
		sessions,
		nil,
		nil,
		service.BcryptPasswordHasher{Cost: 4},
		service.RealClock{},
		time.Hour,
	)
	tokens := &utils.SessionTokenManager{Secret: []byte("clave-de-prueba"), TTL: time.Hour}

	authHandler := handler.NewAuthHandler(authService, tokens, validator.New(), logger)
	authHandler.SecureCookies = false

	sessionMiddleware := middleware.SessionMiddleware{Tokens: tokens, Sessions: sessions}

	e := echo.New()
	e.Use(sessionMiddleware.LoadSession)
	e.POST("/login", authHandler.Login)
	e.POST("/registro", authHandler.Register)
	e.GET("/logout", authHandler.Logout, sessionMiddleware.RequireAuth)

	return &testApp{echo: e, users: users, sessions: sessions}
}

func postForm(e *echo.Echo, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerForm() url.Values {
	return url.Values{
		"nombre":           {"Ana"},
		"apellido":         {"Gomez"},
		"correo":           {"ana@mail.com"},
		"telefono":         {"5551234"},
		"contraseña":       {"secreta123"},
		"confirm_password": {"secreta123"},
		"rol":              {"cliente"},
		"direccion":        {"Calle 10 #4-56"},
	}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("valid form redirects to login", func(t *testing.T) {
		app := newTestApp(t)

		rec := postForm(app.echo, "/registro", registerForm())

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		stored, err := app.users.FindByEmail(context.Background(), "ana@mail.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, "secreta123", stored.PasswordHash)
	})

	t.Run("duplicate email goes back to the form", func(t *testing.T) {
		app := newTestApp(t)

		postForm(app.echo, "/registro", registerForm())
		rec := postForm(app.echo, "/registro", registerForm())

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/registro", rec.Header().Get("Location"))
	})

	t.Run("password mismatch goes back to the form", func(t *testing.T) {
		app := newTestApp(t)

		form := registerForm()
		form.Set("confirm_password", "otra123")
		rec := postForm(app.echo, "/registro", form)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/registro", rec.Header().Get("Location"))
	})

	t.Run("malformed email goes back to the form", func(t *testing.T) {
		app := newTestApp(t)

		form := registerForm()
		form.Set("correo", "no-es-correo")
		rec := postForm(app.echo, "/registro", form)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/registro", rec.Header().Get("Location"))
	})
}

func TestAuthHandler_Login(t *testing.T) {
	login := func(email, password string) url.Values {
		return url.Values{"correo": {email}, "contraseña": {password}}
	}

	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		app := newTestApp(t)
		postForm(app.echo, "/registro", registerForm())

		rec := postForm(app.echo, "/login", login("ana@mail.com", "secreta123"))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/perfil_comprador", rec.Header().Get("Location"))

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("wrong password goes back to login", func(t *testing.T) {
		app := newTestApp(t)
		postForm(app.echo, "/registro", registerForm())

		rec := postForm(app.echo, "/login", login("ana@mail.com", "equivocada"))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("unknown email behaves like wrong password", func(t *testing.T) {
		app := newTestApp(t)

		rec := postForm(app.echo, "/login", login("nadie@mail.com", "secreta123"))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	app := newTestApp(t)
	postForm(app.echo, "/registro", registerForm())

	loginRec := postForm(app.echo, "/login", url.Values{
		"correo":     {"ana@mail.com"},
		"contraseña": {"secreta123"},
	})
	cookie := sessionCookie(t, loginRec)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cleared := sessionCookie(t, rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// The server-side session is gone; the old cookie is now useless.
	reuse := httptest.NewRequest(http.MethodGet, "/logout", nil)
	reuse.AddCookie(cookie)
	reuseRec := httptest.NewRecorder()
	app.echo.ServeHTTP(reuseRec, reuse)

	assert.Equal(t, http.StatusFound, reuseRec.Code)
	assert.Equal(t, "/login", reuseRec.Header().Get("Location"))
}
