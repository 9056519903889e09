package handler

import (
	"net/http"
	"strconv"

	"mercadovecino/api/middleware"
	"mercadovecino/api/render"
	"mercadovecino/internal/dto"
	"mercadovecino/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	Service  *service.OrderService
	Validate *validator.Validate
	Logger   logrus.FieldLogger
}

func NewOrderHandler(svc *service.OrderService, validate *validator.Validate, logger logrus.FieldLogger) *OrderHandler {
	return &OrderHandler{Service: svc, Validate: validate, Logger: logger}
}

func (h *OrderHandler) List(c echo.Context) error {
	userID, _ := middleware.UserIDFromContext(c)
	orders, err := h.Service.ListForBuyer(c.Request().Context(), userID)
	if err != nil {
		h.Logger.WithError(err).Error("order listing failed")
		render.SetFlash(c, "error", "Error interno del servidor")
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "pedidos.html", pageData(c, echo.Map{
		"Title":  "Mis Pedidos",
		"Orders": orders,
	}))
}

func (h *OrderHandler) Create(c echo.Context) error {
	userID, _ := middleware.UserIDFromContext(c)

	var form dto.NewOrderForm
	if err := c.Bind(&form); err != nil {
		render.SetFlash(c, "error", "Solicitud inválida")
		return c.Redirect(http.StatusFound, "/productos")
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(form); err != nil {
			render.SetFlash(c, "error", "Datos inválidos, revisa el formulario")
			return c.Redirect(http.StatusFound, "/productos")
		}
	}

	if _, err := h.Service.Create(c.Request().Context(), userID, form.ProductID, form.Quantity); err != nil {
		h.Logger.WithError(err).Warn("order rejected")
		render.SetFlash(c, "error", flashMessageFor(err))
		return c.Redirect(http.StatusFound, "/producto/"+strconv.FormatUint(uint64(form.ProductID), 10))
	}

	render.SetFlash(c, "success", "Pedido realizado exitosamente")
	return c.Redirect(http.StatusFound, "/pedidos")
}
