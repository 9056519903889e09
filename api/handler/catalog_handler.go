package handler

import (
	"net/http"
	"strconv"

	"mercadovecino/api/middleware"
	"mercadovecino/api/render"
	"mercadovecino/internal/repository"
	"mercadovecino/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	Catalog   *service.CatalogService
	Favorites *service.FavoriteService
	Logger    logrus.FieldLogger
}

func NewCatalogHandler(catalog *service.CatalogService, favorites *service.FavoriteService, logger logrus.FieldLogger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Favorites: favorites, Logger: logger}
}

func (h *CatalogHandler) Index(c echo.Context) error {
	products, err := h.Catalog.FeaturedProducts(c.Request().Context())
	if err != nil {
		h.Logger.WithError(err).Error("featured products lookup failed")
		products = nil
	}
	return c.Render(http.StatusOK, "index.html", pageData(c, echo.Map{
		"Title":    "Mercado Vecino",
		"Products": products,
	}))
}

func (h *CatalogHandler) List(c echo.Context) error {
	filter := repository.ProductFilter{
		Category: c.QueryParam("categoria"),
		Search:   c.QueryParam("busqueda"),
		Limit:    50,
	}

	products, err := h.Catalog.ListProducts(c.Request().Context(), filter)
	if err != nil {
		h.Logger.WithError(err).Error("product listing failed")
		render.SetFlash(c, "error", "Error interno del servidor")
		return c.Redirect(http.StatusFound, "/")
	}

	categories, err := h.Catalog.Categories(c.Request().Context())
	if err != nil {
		h.Logger.WithError(err).Error("category listing failed")
	}

	return c.Render(http.StatusOK, "productos.html", pageData(c, echo.Map{
		"Title":      "Productos",
		"Products":   products,
		"Categories": categories,
		"Category":   filter.Category,
		"Search":     filter.Search,
	}))
}

func (h *CatalogHandler) Detail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		render.SetFlash(c, "error", "Producto no encontrado")
		return c.Redirect(http.StatusFound, "/productos")
	}

	product, reviews, err := h.Catalog.ProductDetail(c.Request().Context(), uint(id))
	if err != nil {
		render.SetFlash(c, "error", flashMessageFor(err))
		return c.Redirect(http.StatusFound, "/productos")
	}

	isFavorite := false
	if userID, ok := middleware.UserIDFromContext(c); ok {
		isFavorite, _ = h.Favorites.IsFavorite(c.Request().Context(), userID, product.ID)
	}

	return c.Render(http.StatusOK, "detalle_producto.html", pageData(c, echo.Map{
		"Title":      product.Name,
		"Product":    product,
		"Reviews":    reviews,
		"IsFavorite": isFavorite,
	}))
}
