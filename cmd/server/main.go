// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"log"
	"time"

	"pullapi/internal/config"
	"pullapi/internal/gateway"
	"pullapi/internal/handlers"
	"pullapi/internal/repositories"
	"pullapi/internal/services/auth"
	"pullapi/internal/services/cards"
	"pullapi/internal/services/fee"
	"pullapi/internal/services/selfservice"
	"pullapi/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	maxIdleConns := config.GetIntEnv("DB_MAX_IDLE_CONNS", 10)
	maxOpenConns := config.GetIntEnv("DB_MAX_OPEN_CONNS", 100)
	connMaxLifetime := config.GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour)
	connMaxIdleTime := config.GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute)

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("✅ Successfully connected to database with connection pooling")

	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("⚠️ Failed to close database connection: %v", err)
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	// Wire the services
	userRepo := repositories.NewUserRepository(repositories.DB)
	feeRuleRepo := repositories.NewFeeRuleRepository(repositories.DB)
	transferRepo := repositories.NewTransferRepository(repositories.DB)

	gatewayClient := gateway.NewHTTPClient(gateway.Config{
		BaseURL: config.GetEnv("GATEWAY_BASE_URL", "http://localhost:8081"),
		APIKey:  config.GetEnv("GATEWAY_API_KEY", ""),
		Timeout: config.GetDurationEnv("GATEWAY_TIMEOUT", 30*time.Second),
	})

	feeService := fee.NewService(feeRuleRepo, gatewayClient, repositories.CacheService)
	cardService := cards.NewService()
	selfServiceSvc := selfservice.NewService(feeService, gatewayClient, transferRepo, cardService)
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/register", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	app.Use("/api/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	handlers.SetupRoutes(app, handlers.Handlers{
		Auth:        handlers.NewAuthHandler(authService, userService),
		SelfService: handlers.NewSelfServiceHandler(selfServiceSvc, userRepo),
	})

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
