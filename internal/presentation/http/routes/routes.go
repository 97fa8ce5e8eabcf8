package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sewlanka/pos-api/internal/config"
	domainRepo "github.com/sewlanka/pos-api/internal/domain/repository"
	"github.com/sewlanka/pos-api/internal/presentation/http/handler"
	"github.com/sewlanka/pos-api/internal/presentation/http/middleware"
	"github.com/sewlanka/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Inventory *handler.InventoryHandler
	Sale      *handler.SaleHandler
	Quotation *handler.QuotationHandler
	Credit    *handler.CreditHandler
	Expense   *handler.ExpenseHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(deps.Cfg.RateLimit)
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Inventory: any cashier can browse, only managers can change stock
	registerInventoryRoutes(protected, h)

	// Sales
	registerSaleRoutes(protected, h, deps)

	// Quotations
	registerQuotationRoutes(protected, h)

	// Credit book
	registerCreditRoutes(protected, h)

	// Manager-only surfaces
	registerExpenseRoutes(protected, h)
	registerDashboardRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.POST("", middleware.RequireManager(), h.Inventory.Create)
		inventory.PUT("/:id", middleware.RequireManager(), h.Inventory.Update)
		inventory.DELETE("/:id", middleware.RequireManager(), h.Inventory.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Sale creation uses idempotency middleware so a retried
		// submission cannot decrement stock twice
		sales.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Sale.Create)
		sales.GET("/summary", h.Sale.DailySummary)
		sales.GET("/:id", h.Sale.Get)
		sales.PUT("/:id", h.Sale.Update)
		sales.DELETE("/:id", middleware.RequireManager(), h.Sale.Delete)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.DELETE("/:id", h.Quotation.Delete)
	}
}

func registerCreditRoutes(protected *gin.RouterGroup, h *Handlers) {
	credit := protected.Group("/credit")
	{
		credit.GET("", h.Credit.ListOutstanding)
		credit.GET("/:id/payments", h.Credit.ListPayments)
		credit.POST("/:id/payments", h.Credit.RecordPayment)
		credit.DELETE("/payments/:paymentId", middleware.RequireManager(), h.Credit.DeletePayment)
	}
}

func registerExpenseRoutes(protected *gin.RouterGroup, h *Handlers) {
	expenses := protected.Group("/expenses")
	expenses.Use(middleware.RequireManager())
	{
		expenses.GET("", h.Expense.List)
		expenses.GET("/total", h.Expense.Total)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequireManager())
	{
		dashboard.GET("", h.Dashboard.Stats)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireManager())
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}
