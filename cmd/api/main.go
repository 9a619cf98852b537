package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/dukaops/enterprise-api/internal/application/service"
	"github.com/dukaops/enterprise-api/internal/config"
	"github.com/dukaops/enterprise-api/internal/infrastructure/cache"
	"github.com/dukaops/enterprise-api/internal/infrastructure/database"
	"github.com/dukaops/enterprise-api/internal/infrastructure/repository"
	"github.com/dukaops/enterprise-api/internal/presentation/http/handler"
	"github.com/dukaops/enterprise-api/internal/presentation/http/routes"
	"github.com/dukaops/enterprise-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Dashboard stats cache; falls back to a no-op when Redis is not configured
	var statsCache cache.StatsCache = cache.NoopStatsCache{}
	if cfg.Redis.Addr != "" {
		statsCache = cache.NewRedisStatsCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	procurementRepo := repository.NewProcurementRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	importOrderRepo := repository.NewImportOrderRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	accessGate := service.NewAccessService(userRepo)
	catalogService := service.NewCatalogService(productRepo, branchRepo)
	posService := service.NewPOSService(checkoutRepo, invoiceRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, statsCache)
	procurementService := service.NewProcurementService(procurementRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	importOrderService := service.NewImportOrderService(importOrderRepo)
	financeService := service.NewFinanceService(expenseRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Catalog:     handler.NewCatalogHandler(catalogService),
		POS:         handler.NewPOSHandler(posService),
		Procurement: handler.NewProcurementHandler(procurementService),
		Attendance:  handler.NewAttendanceHandler(attendanceService),
		ImportOrder: handler.NewImportOrderHandler(importOrderService),
		Finance:     handler.NewFinanceHandler(financeService),
		User:        handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		AccessGate: accessGate,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "3000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
