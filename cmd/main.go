package main

import (
	"net/http"
	"os"
	"time"

	"mercadovecino/api/handler"
	apiMiddleware "mercadovecino/api/middleware"
	"mercadovecino/api/render"
	"mercadovecino/api/routes"
	"mercadovecino/config"
	"mercadovecino/internal/repository"
	"mercadovecino/internal/service"
	"mercadovecino/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if cfg.SessionSecret == "" {
		logger.Fatal("SESSION_SECRET is required")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.WithError(err).Fatal("conectando a la base de datos")
	}

	tokens := &utils.SessionTokenManager{
		Secret: []byte(cfg.SessionSecret),
		Issuer: "mercadovecino",
		TTL:    cfg.SessionTTL,
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)

	var emailSender service.EmailSender
	if resend := service.NewResendEmailSender(cfg.ResendAPIKey, cfg.EmailFrom); resend != nil {
		emailSender = resend
	}

	photoStore := service.NewLocalPhotoStore(cfg.UploadDir, cfg.MaxUploadSize, cfg.AllowedExtensions)

	authService := service.NewAuthService(
		userRepo,
		sessionRepo,
		securityRepo,
		emailSender,
		service.BcryptPasswordHasher{},
		service.RealClock{},
		cfg.SessionTTL,
	)
	catalogService := service.NewCatalogService(productRepo, reviewRepo)
	profileService := service.NewProfileService(userRepo, sessionRepo, securityRepo, photoStore)
	orderService := service.NewOrderService(orderRepo, productRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, productRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo)

	authHandler := handler.NewAuthHandler(authService, tokens, validate, logger)
	authHandler.SecureCookies = cfg.IsProd()
	catalogHandler := handler.NewCatalogHandler(catalogService, favoriteService, logger)
	profileHandler := handler.NewProfileHandler(profileService, validate, logger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, logger)
	orderHandler := handler.NewOrderHandler(orderService, validate, logger)
	reviewHandler := handler.NewReviewHandler(reviewService, validate)
	sellerHandler := handler.NewSellerHandler(catalogService, validate, logger)
	apiHandler := handler.NewAPIHandler(catalogService, db)

	renderer, err := render.NewTemplateRenderer("templates/*.html")
	if err != nil {
		logger.WithError(err).Fatal("cargando plantillas")
	}

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Renderer = renderer
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	sessionMiddleware := apiMiddleware.SessionMiddleware{Tokens: tokens, Sessions: sessionRepo}
	router := routes.NewRouter(
		app,
		authHandler,
		catalogHandler,
		profileHandler,
		favoriteHandler,
		orderHandler,
		reviewHandler,
		sellerHandler,
		apiHandler,
		sessionMiddleware,
	)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
