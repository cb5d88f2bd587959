package main

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/hakikifaturrahman/simlog/internal/handler"
	"github.com/hakikifaturrahman/simlog/internal/middleware"
	"github.com/hakikifaturrahman/simlog/internal/seed"
	"github.com/hakikifaturrahman/simlog/pkg/config"
	"github.com/hakikifaturrahman/simlog/pkg/database"
	"github.com/hakikifaturrahman/simlog/pkg/jwtutil"
	"github.com/hakikifaturrahman/simlog/pkg/logger"
	"github.com/hakikifaturrahman/simlog/prometheus"
)

// CustomValidator wires go-playground/validator into echo
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting logistics service...", zap.String("environment", cfg.Server.Env))

	// Initialize JWT utilities
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utilities initialized")

	// Initialize database and run migrations
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed",
		zap.String("db_host", cfg.DB.Host), zap.String("db_name", cfg.DB.DBName))

	// Bootstrap the default admin account
	if err := seed.EnsureDefaultAdmin(database.GetDB()); err != nil {
		log.Fatal("Failed to ensure default admin", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := c.Response().Status

			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Float64("duration_s", duration),
				zap.String("ip", c.RealIP()),
			)

			prometheus.HTTPRequestCounter.WithLabelValues(
				c.Path(), c.Request().Method, strconv.Itoa(status),
			).Inc()
			prometheus.RequestDuration.WithLabelValues(
				c.Path(), c.Request().Method, strconv.Itoa(status),
			).Observe(duration)

			return err
		}
	})

	// Public routes
	e.GET("/", handler.Hello)
	e.GET("/health", handler.Hello)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))
	e.POST("/register", handler.Register)
	e.POST("/login", handler.Login)

	// Authenticated routes
	api := e.Group("")
	api.Use(middleware.AuthMiddleware)

	api.GET("/dashboard", handler.UserDashboard)
	api.GET("/products", handler.ListProducts)
	api.GET("/products/low-stock", handler.ListLowStockProducts)
	api.GET("/suppliers", handler.ListSuppliers)
	api.GET("/orders", handler.ListOrders)
	api.POST("/orders/create", handler.CreateOrder)
	api.POST("/orders/:id/confirm", handler.ConfirmOrder)
	api.GET("/shipments", handler.ListShipments)

	// Admin routes
	admin := e.Group("/admin")
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.RequireAdmin)

	admin.GET("/dashboard", handler.AdminDashboard)
	admin.GET("/orders", handler.AdminListOrders)
	admin.GET("/shipments", handler.AdminListShipments)
	admin.POST("/products/create", handler.CreateProduct)
	admin.POST("/products/:id/update", handler.UpdateProductStock)
	admin.POST("/suppliers/create", handler.CreateSupplier)
	admin.POST("/shipments/:id/update", handler.UpdateShipmentStatus)
	admin.GET("/financial", handler.AdminFinancial)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
