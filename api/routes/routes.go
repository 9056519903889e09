package routes

import (
	"time"

	"mercadovecino/api/handler"
	"mercadovecino/api/middleware"
	"mercadovecino/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo     *echo.Echo
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Profile  *handler.ProfileHandler
	Favorite *handler.FavoriteHandler
	Order    *handler.OrderHandler
	Review   *handler.ReviewHandler
	Seller   *handler.SellerHandler
	API      *handler.APIHandler

	Session   middleware.SessionMiddleware
	AuthRate  *middleware.RateLimiter
	LoginRate *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	catalog *handler.CatalogHandler,
	profile *handler.ProfileHandler,
	favorite *handler.FavoriteHandler,
	order *handler.OrderHandler,
	review *handler.ReviewHandler,
	seller *handler.SellerHandler,
	api *handler.APIHandler,
	session middleware.SessionMiddleware,
) *Router {
	return &Router{
		Echo:      e,
		Auth:      auth,
		Catalog:   catalog,
		Profile:   profile,
		Favorite:  favorite,
		Order:     order,
		Review:    review,
		Seller:    seller,
		API:       api,
		Session:   session,
		AuthRate:  middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate: middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	e.Use(r.Session.LoadSession)
	e.Static("/static", "static")

	e.GET("/", r.Catalog.Index)
	e.GET("/productos", r.Catalog.List)
	e.GET("/producto/:id", r.Catalog.Detail)

	e.GET("/login", r.Auth.ShowLogin)
	e.POST("/login", r.Auth.Login, r.LoginRate.Middleware())
	e.GET("/registro", r.Auth.ShowRegister)
	e.POST("/registro", r.Auth.Register, r.AuthRate.Middleware())
	// The original registration form lived at /registrar; both paths stay
	// routed so old bookmarks keep working.
	e.GET("/registrar", r.Auth.ShowRegister)
	e.POST("/registrar", r.Auth.Register, r.AuthRate.Middleware())
	e.GET("/logout", r.Auth.Logout, r.Session.RequireAuth)

	authed := e.Group("", r.Session.RequireAuth)
	authed.GET("/perfil", r.Profile.Show)
	authed.GET("/perfil_comprador", r.Profile.Show)
	authed.POST("/editar_perfil", r.Profile.Update)

	authed.GET("/favoritos", r.Favorite.List)
	authed.POST("/favoritos/:id", r.Favorite.Add)
	authed.POST("/favoritos/:id/eliminar", r.Favorite.Remove)

	authed.GET("/pedidos", r.Order.List)
	authed.POST("/pedidos", r.Order.Create)

	authed.POST("/producto/:id/resena", r.Review.Create)

	seller := e.Group("", r.Session.RequireAuth, middleware.RequireRole(entity.RoleSeller))
	seller.GET("/mis_productos", r.Seller.MyProducts)
	seller.GET("/productos/nuevo", r.Seller.ShowNewProduct)
	seller.POST("/productos/nuevo", r.Seller.CreateProduct)

	api := e.Group("/api")
	api.GET("/productos", r.API.Products)
	api.GET("/test-db", r.API.TestDB)
}
