package render_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mercadovecino/api/render"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	e := echo.New()

	// First response sets the flash cookie.
	setRec := httptest.NewRecorder()
	setCtx := e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), setRec)
	render.SetFlash(setCtx, "success", "Bienvenido Ana Gomez")

	cookies := setRec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)

	// Next request carries it back and reads it once.
	readReq := httptest.NewRequest(http.MethodGet, "/", nil)
	readReq.AddCookie(cookies[0])
	readRec := httptest.NewRecorder()
	readCtx := e.NewContext(readReq, readRec)

	flash := render.TakeFlash(readCtx)
	require.NotNil(t, flash)
	assert.Equal(t, "success", flash.Kind)
	assert.Equal(t, "Bienvenido Ana Gomez", flash.Message)

	// Reading clears the cookie.
	var cleared *http.Cookie
	for _, cookie := range readRec.Result().Cookies() {
		if cookie.Name == "flash" {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestTakeFlash_NoCookie(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, render.TakeFlash(ctx))
}

func TestTakeFlash_GarbageCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "%%basura%%"})
	ctx := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, render.TakeFlash(ctx))
}
