package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-pos-ledger/internal/handler"
	"go-pos-ledger/internal/middleware"
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/service"
	"go-pos-ledger/internal/ws"
	"go-pos-ledger/pkg/config"
	"go-pos-ledger/pkg/database"
	"go-pos-ledger/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// 2. Setup Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	if cfg.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			slog.Error("auto migrate failed", "error", err)
			os.Exit(1)
		}
	}

	// 3. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	saleItemRepo := repository.NewSaleItemRepo(db)
	adjustmentRepo := repository.NewStockAdjustmentRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	// 4. Seed default privileges, roles, and admin user
	seedService := service.NewSeedService(privilegeRepo, roleRepo, userRepo)
	if err := seedService.SeedAccessControl(); err != nil {
		slog.Warn("failed to seed access control", "error", err)
	}
	if _, created, err := seedService.EnsureStaffUser(cfg.AdminEmail, "Master Administrator", model.RoleMasterAdmin, cfg.AdminPassword, false); err != nil {
		slog.Warn("failed to create admin user", "email", cfg.AdminEmail, "error", err)
	} else if created {
		slog.Info("admin user created", "email", cfg.AdminEmail)
	}

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	tokens := jwt.NewManager(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)

	handlers := handler.Handlers{
		Auth:    handler.NewAuthHandler(service.NewAuthService(userRepo, tokens)),
		Admin:   handler.NewAdminHandler(service.NewAdminService(productRepo, saleRepo, saleItemRepo, adjustmentRepo, expenseRepo)),
		Role:    handler.NewRoleHandler(roleRepo, privilegeRepo),
		Product: handler.NewProductHandler(service.NewCatalogService(productRepo, saleItemRepo, adjustmentRepo, db, nil, wsHub)),
		Sale:    handler.NewSaleHandler(service.NewSaleService(saleRepo, saleItemRepo, productRepo, db, nil, wsHub)),
		Stock:   handler.NewStockHandler(service.NewStockService(adjustmentRepo, productRepo, nil, wsHub)),
		Expense: handler.NewExpenseHandler(service.NewExpenseService(expenseRepo, nil, wsHub)),
		WS:      handler.NewWSHandler(wsHub),
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Ledger v1.0",
	})

	// Middleware
	app.Use(recover.New())   // Panic recovery
	app.Use(requestid.New()) // X-Request-ID
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New())

	loginLimiter := limiter.New(limiter.Config{
		Max:        cfg.LoginRateLimit,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many login attempts, try again later"})
		},
	})

	// 7. Routes
	handler.SetupRoutes(app, handlers, handler.Guards{
		RequireAuth:       middleware.RequireAuth(userRepo, tokens),
		RequireQueryToken: middleware.RequireQueryToken(userRepo, tokens, "token"),
		LoginLimiter:      loginLimiter,
	})

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	slog.Info("server exited")
}
