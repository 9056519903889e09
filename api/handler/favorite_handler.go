package handler

import (
	"net/http"
	"strconv"

	"mercadovecino/api/middleware"
	"mercadovecino/api/render"
	"mercadovecino/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type FavoriteHandler struct {
	Service *service.FavoriteService
	Logger  logrus.FieldLogger
}

func NewFavoriteHandler(svc *service.FavoriteService, logger logrus.FieldLogger) *FavoriteHandler {
	return &FavoriteHandler{Service: svc, Logger: logger}
}

func (h *FavoriteHandler) List(c echo.Context) error {
	userID, _ := middleware.UserIDFromContext(c)
	products, err := h.Service.List(c.Request().Context(), userID)
	if err != nil {
		h.Logger.WithError(err).Error("favorites listing failed")
		render.SetFlash(c, "error", "Error interno del servidor")
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "favoritos.html", pageData(c, echo.Map{
		"Title":    "Mis Favoritos",
		"Products": products,
	}))
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, _ := middleware.UserIDFromContext(c)
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		render.SetFlash(c, "error", "Producto no encontrado")
		return c.Redirect(http.StatusFound, "/productos")
	}

	if err := h.Service.Add(c.Request().Context(), userID, uint(productID)); err != nil {
		render.SetFlash(c, "error", flashMessageFor(err))
		return c.Redirect(http.StatusFound, "/productos")
	}
	render.SetFlash(c, "success", "Producto agregado a favoritos")
	return c.Redirect(http.StatusFound, "/producto/"+c.Param("id"))
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, _ := middleware.UserIDFromContext(c)
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		render.SetFlash(c, "error", "Producto no encontrado")
		return c.Redirect(http.StatusFound, "/favoritos")
	}

	if err := h.Service.Remove(c.Request().Context(), userID, uint(productID)); err != nil {
		h.Logger.WithError(err).Error("favorite removal failed")
		render.SetFlash(c, "error", "Error interno del servidor")
		return c.Redirect(http.StatusFound, "/favoritos")
	}
	render.SetFlash(c, "success", "Producto eliminado de favoritos")
	return c.Redirect(http.StatusFound, "/favoritos")
}
