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
)

type ReviewHandler struct {
	Service  *service.ReviewService
	Validate *validator.Validate
}

func NewReviewHandler(svc *service.ReviewService, validate *validator.Validate) *ReviewHandler {
	return &ReviewHandler{Service: svc, Validate: validate}
}

func (h *ReviewHandler) Create(c echo.Context) error {
	userID, _ := middleware.UserIDFromContext(c)
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		render.SetFlash(c, "error", "Producto no encontrado")
		return c.Redirect(http.StatusFound, "/productos")
	}
	back := "/producto/" + c.Param("id")

	var form dto.NewReviewForm
	if err := c.Bind(&form); err != nil {
		render.SetFlash(c, "error", "Solicitud inválida")
		return c.Redirect(http.StatusFound, back)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(form); err != nil {
			render.SetFlash(c, "error", "La calificación debe estar entre 1 y 5")
			return c.Redirect(http.StatusFound, back)
		}
	}

	if err := h.Service.Create(c.Request().Context(), userID, uint(productID), form.Rating, form.Comment); err != nil {
		render.SetFlash(c, "error", flashMessageFor(err))
		return c.Redirect(http.StatusFound, back)
	}

	render.SetFlash(c, "success", "Reseña publicada")
	return c.Redirect(http.StatusFound, back)
}
