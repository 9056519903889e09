package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mercadovecino/api/middleware"
	"mercadovecino/internal/entity"
	"mercadovecino/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionRepoStub struct {
	active map[uuid.UUID]*entity.Session
}

func (s *sessionRepoStub) Create(_ context.Context, session *entity.Session) error {
	s.active[session.ID] = session
	return nil
}

func (s *sessionRepoStub) FindActive(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	return s.active[id], nil
}

func (s *sessionRepoStub) RefreshSnapshot(_ context.Context, _ uuid.UUID, _ *entity.User) error {
	return nil
}

func (s *sessionRepoStub) Revoke(_ context.Context, id uuid.UUID) error {
	delete(s.active, id)
	return nil
}

func (s *sessionRepoStub) RevokeAllByUser(_ context.Context, _ uint) error { return nil }

func (s *sessionRepoStub) CleanupExpired(_ context.Context) error { return nil }

func newTestSessionMiddleware() (middleware.SessionMiddleware, *sessionRepoStub, *utils.SessionTokenManager) {
	tokens := &utils.SessionTokenManager{Secret: []byte("clave-de-prueba"), TTL: time.Hour}
	repo := &sessionRepoStub{active: map[uuid.UUID]*entity.Session{}}
	return middleware.SessionMiddleware{Tokens: tokens, Sessions: repo}, repo, tokens
}

func buyerSession() *entity.Session {
	return &entity.Session{
		ID:        uuid.New(),
		UserID:    7,
		Name:      "Ana",
		Surname:   "Gomez",
		Role:      entity.RoleBuyer,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestLoadSession(t *testing.T) {
	sessionMiddleware, repo, tokens := newTestSessionMiddleware()

	session := buyerSession()
	repo.active[session.ID] = session

	e := echo.New()
	e.Use(sessionMiddleware.LoadSession)
	e.GET("/", func(c echo.Context) error {
		if loaded, ok := middleware.SessionFromContext(c); ok {
			return c.String(http.StatusOK, loaded.Name)
		}
		return c.String(http.StatusOK, "anonimo")
	})

	t.Run("valid cookie resolves the session", func(t *testing.T) {
		token, err := tokens.Issue(session.ID, session.UserID, string(session.Role))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Ana", rec.Body.String())
	})

	t.Run("no cookie stays anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "anonimo", rec.Body.String())
	})

	t.Run("tampered token stays anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "token-falso"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "anonimo", rec.Body.String())
	})

	t.Run("revoked session stays anonymous", func(t *testing.T) {
		revoked := buyerSession()
		token, err := tokens.Issue(revoked.ID, revoked.UserID, string(revoked.Role))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "anonimo", rec.Body.String())
	})
}

func TestRequireAuth(t *testing.T) {
	sessionMiddleware, repo, tokens := newTestSessionMiddleware()

	e := echo.New()
	e.Use(sessionMiddleware.LoadSession)
	e.GET("/perfil_comprador", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, sessionMiddleware.RequireAuth)

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/perfil_comprador", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("authenticated passes", func(t *testing.T) {
		session := buyerSession()
		repo.active[session.ID] = session
		token, err := tokens.Issue(session.ID, session.UserID, string(session.Role))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/perfil_comprador", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	sessionMiddleware, repo, tokens := newTestSessionMiddleware()

	e := echo.New()
	e.Use(sessionMiddleware.LoadSession)
	e.GET("/mis_productos", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, sessionMiddleware.RequireAuth, middleware.RequireRole(entity.RoleSeller))

	t.Run("buyer is redirected home", func(t *testing.T) {
		session := buyerSession()
		repo.active[session.ID] = session
		token, err := tokens.Issue(session.ID, session.UserID, string(session.Role))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/mis_productos", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("seller passes", func(t *testing.T) {
		session := buyerSession()
		session.Role = entity.RoleSeller
		repo.active[session.ID] = session
		token, err := tokens.Issue(session.ID, session.UserID, string(session.Role))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/mis_productos", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
