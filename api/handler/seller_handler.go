package handler

import (
	"fmt"
	"net/http"

	"mercadovecino/api/middleware"
	"mercadovecino/api/render"
	"mercadovecino/internal/dto"
	"mercadovecino/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type SellerHandler struct {
	Catalog  *service.CatalogService
	Validate *validator.Validate
	Logger   logrus.FieldLogger
}

func NewSellerHandler(catalog *service.CatalogService, validate *validator.Validate, logger logrus.FieldLogger) *SellerHandler {
	return &SellerHandler{Catalog: catalog, Validate: validate, Logger: logger}
}

// MyProducts lists the products owned by the logged-in seller.
func (h *SellerHandler) MyProducts(c echo.Context) error {
	userID, _ := middleware.UserIDFromContext(c)

	products, err := h.Catalog.SellerProducts(c.Request().Context(), userID)
	if err != nil {
		h.Logger.WithError(err).Error("listando productos del vendedor")
		render.SetFlash(c, "error", flashMessageFor(err))
		return c.Redirect(http.StatusFound, "/")
	}

	return c.Render(http.StatusOK, "mis_productos.html", pageData(c, echo.Map{
		"Products": products,
	}))
}

func (h *SellerHandler) ShowNewProduct(c echo.Context) error {
	return c.Render(http.StatusOK, "nuevo_producto.html", pageData(c, nil))
}

func (h *SellerHandler) CreateProduct(c echo.Context) error {
	userID, _ := middleware.UserIDFromContext(c)

	var form dto.NewProductForm
	if err := c.Bind(&form); err != nil {
		render.SetFlash(c, "error", "Solicitud inválida")
		return c.Redirect(http.StatusFound, "/productos/nuevo")
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(form); err != nil {
			render.SetFlash(c, "error", "Datos inválidos, revisa el formulario")
			return c.Redirect(http.StatusFound, "/productos/nuevo")
		}
	}

	productID, err := h.Catalog.CreateProduct(c.Request().Context(), userID, service.CreateProductInput{
		Name:        form.Name,
		Description: form.Description,
		Category:    form.Category,
		Price:       form.Price,
		Stock:       form.Stock,
	})
	if err != nil {
		render.SetFlash(c, "error", flashMessageFor(err))
		return c.Redirect(http.StatusFound, "/productos/nuevo")
	}

	h.Logger.WithFields(logrus.Fields{
		"producto_id": productID,
		"vendedor_id": userID,
	}).Info("producto publicado")

	render.SetFlash(c, "success", "Producto publicado exitosamente")
	return c.Redirect(http.StatusFound, fmt.Sprintf("/producto/%d", productID))
}
