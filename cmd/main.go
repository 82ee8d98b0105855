package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"ferrestock/internal/config"
	"ferrestock/internal/handlers"
	"ferrestock/internal/jobs"
	"ferrestock/internal/middleware"
	"ferrestock/internal/render"
	"ferrestock/internal/repositories"
	"ferrestock/internal/services"
	"ferrestock/internal/sessions"
	"ferrestock/pkg/database"
)

func main() {
	cfg := config.Load()

	logger, err := cfg.BuildLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Bootstrap(ctx, pool, logger); err != nil {
		logger.Fatal("failed to bootstrap database", zap.Error(err))
	}

	// Session store
	store := sessions.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Session.Secret, cfg.Session.TTL)

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	stockRepo := repositories.NewStockRepo(pool)
	inventoryRepo := repositories.NewInventoryRepo(pool)
	movimientoRepo := repositories.NewMovimientoRepo(pool)

	// Services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	stockService := services.NewStockService(stockRepo, movimientoRepo, logger)
	inventoryService := services.NewInventoryService(inventoryRepo, stockRepo)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authService, store, cfg.Session.TTL, logger)
	pageHandlers := handlers.NewPageHandlers(productRepo, stockService, inventoryService)
	stockHandlers := handlers.NewStockHandlers(stockService)
	inventoryHandlers := handlers.NewInventoryHandlers(inventoryService)
	userHandlers := handlers.NewUserHandlers(userService)

	renderer, err := render.New()
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(logger)

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(middleware.NewSessionMiddleware(store, logger).LoadSession())

	e.GET("/health", handlers.HealthCheck(pool))

	// Pages
	e.GET("/", authHandlers.LoginForm)
	e.POST("/", authHandlers.Login)
	e.GET("/login", authHandlers.LoginForm)
	e.POST("/login", authHandlers.Login)
	e.GET("/logout", authHandlers.Logout)
	e.GET("/base", pageHandlers.Base)
	e.GET("/contacto", pageHandlers.Contacto)
	e.GET("/productos", pageHandlers.Productos)
	e.GET("/stock", pageHandlers.Stock)
	e.GET("/inventario", pageHandlers.Inventario)

	// JSON API
	e.GET("/api/stock", stockHandlers.ListStock)
	e.POST("/api/stock", stockHandlers.CreateStock)
	e.PUT("/api/stock/:id", stockHandlers.UpdateStock)
	e.DELETE("/api/stock/:id", stockHandlers.DeleteStock)

	e.GET("/api/inventario", inventoryHandlers.ListInventario)
	e.POST("/api/inventario", inventoryHandlers.CreateInventario)
	e.PUT("/api/inventario/:id", inventoryHandlers.UpdateInventario)
	e.DELETE("/api/inventario/:id", inventoryHandlers.DeleteInventario)

	e.GET("/api/usuarios", userHandlers.ListUsers)
	e.POST("/api/usuarios", userHandlers.CreateUser)

	// Background jobs
	if cfg.Jobs.LowStockInterval > 0 {
		alertSvc := jobs.NewStockAlertService(stockRepo, logger)
		scheduler, err := jobs.NewScheduler(alertSvc, cfg.Jobs.LowStockInterval, logger)
		if err != nil {
			logger.Fatal("failed to create job scheduler", zap.Error(err))
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				logger.Warn("failed to stop job scheduler", zap.Error(err))
			}
		}()
	}

	logger.Info("ferrestock server starting", zap.String("addr", cfg.Server.Addr))
	if err := e.Start(cfg.Server.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
