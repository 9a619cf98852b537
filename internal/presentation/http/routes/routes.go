package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dukaops/enterprise-api/internal/application/service"
	"github.com/dukaops/enterprise-api/internal/config"
	"github.com/dukaops/enterprise-api/internal/domain/enum"
	"github.com/dukaops/enterprise-api/internal/presentation/http/handler"
	"github.com/dukaops/enterprise-api/internal/presentation/http/middleware"
	"github.com/dukaops/enterprise-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Dashboard   *handler.DashboardHandler
	Catalog     *handler.CatalogHandler
	POS         *handler.POSHandler
	Procurement *handler.ProcurementHandler
	Attendance  *handler.AttendanceHandler
	ImportOrder *handler.ImportOrderHandler
	Finance     *handler.FinanceHandler
	User        *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	AccessGate *service.AccessService
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	api := router.Group("/api")
	api.Use(middleware.CallerID(deps.JWTManager))
	{
		loginLimiter := middleware.NewLoginRateLimiter(
			deps.Cfg.RateLimit.LoginAttempts,
			time.Duration(deps.Cfg.RateLimit.Duration)*time.Second,
		)
		api.POST("/auth/login", loginLimiter.Middleware(), h.Auth.Login)

		api.GET("/dashboard/stats", h.Dashboard.Stats)

		api.GET("/products", h.Catalog.ListProducts)
		api.POST("/products", h.Catalog.CreateProduct)
		api.GET("/branches", h.Catalog.ListBranches)

		api.POST("/pos/checkout", h.POS.Checkout)
		api.GET("/pos/history", h.POS.History)

		api.GET("/procurement", h.Procurement.List)
		api.POST("/procurement", h.Procurement.Create)

		api.GET("/attendance", h.Attendance.List)
		api.POST("/attendance", h.Attendance.Clock)

		api.GET("/expenses", h.Finance.ListExpenses)
		api.POST("/expenses", h.Finance.CreateExpense)

		// Import order reads and updates are permission gated; creation
		// stays open so branch staff can log incoming orders.
		gated := middleware.RequirePermission(deps.AccessGate, enum.PermissionImportOrders)
		api.GET("/import-orders", gated, h.ImportOrder.List)
		api.POST("/import-orders", h.ImportOrder.Create)
		api.PATCH("/import-orders/:id", gated, h.ImportOrder.Update)

		api.GET("/users/by-role/:roleName", h.User.ListByRole)
	}

	return router
}
