package handler

import (
	"net/http"
	"strconv"

	"mercadovecino/internal/repository"
	"mercadovecino/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// APIHandler serves the JSON endpoints: the published-product feed and the
// datastore health check.
type APIHandler struct {
	Catalog *service.CatalogService
	DB      *gorm.DB
}

func NewAPIHandler(catalog *service.CatalogService, db *gorm.DB) *APIHandler {
	return &APIHandler{Catalog: catalog, DB: db}
}

type apiProduct struct {
	ID          uint    `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	Category    string  `json:"categoria"`
	Seller      string  `json:"vendedor"`
}

func (h *APIHandler) Products(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limite"))
	filter := repository.ProductFilter{
		Category: c.QueryParam("categoria"),
		Search:   c.QueryParam("busqueda"),
		Limit:    limit,
	}

	listings, err := h.Catalog.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  "error",
			"message": "Error al obtener productos",
		})
	}

	products := make([]apiProduct, 0, len(listings))
	for _, listing := range listings {
		products = append(products, apiProduct{
			ID:          listing.ID,
			Name:        listing.Name,
			Description: listing.Description,
			Price:       listing.Price,
			Category:    listing.Category,
			Seller:      listing.SellerName,
		})
	}
	return c.JSON(http.StatusOK, products)
}

func (h *APIHandler) TestDB(c echo.Context) error {
	if err := repository.Ping(c.Request().Context(), h.DB); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  "error",
			"message": "Error de conexión a BD",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "Conexión a BD exitosa",
	})
}
