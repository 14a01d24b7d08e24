package routes

import (
	"time"

	"github.com/andespos/terminal-api/internal/config"
	"github.com/andespos/terminal-api/internal/presentation/http/handler"
	"github.com/andespos/terminal-api/internal/presentation/http/middleware"
	"github.com/andespos/terminal-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Catalog  *handler.CatalogHandler
	Terminal *handler.TerminalHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	CashGate   *middleware.CashGate
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

	// API v1 routes. Every endpoint requires an authenticated cashier
	// and an identified terminal.
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(deps.JWTManager))
	v1.Use(middleware.TerminalMiddleware())

	// Per-terminal rate limiter
	rateLimiter := middleware.NewTerminalRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	v1.Use(rateLimiter.Middleware())

	registerTerminalRoutes(v1, h)
	registerCatalogRoutes(v1, h)

	// Selling requires an open cash session; read-only status and the
	// session reset stay reachable with the register closed.
	selling := v1.Group("")
	selling.Use(deps.CashGate.Middleware())

	registerCartRoutes(selling, h)
	registerCheckoutRoutes(v1, selling, h)

	return router
}

func registerTerminalRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/payment-methods", h.Terminal.PaymentMethods)
	v1.GET("/cash-session", h.Terminal.CashSession)
	v1.DELETE("/terminal/session", h.Checkout.EndSession)
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/catalog/products", h.Catalog.Search)
}

func registerCartRoutes(selling *gin.RouterGroup, h *Handlers) {
	cart := selling.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:product_id", h.Cart.UpdateQuantity)
		cart.DELETE("/items/:product_id", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}
}

func registerCheckoutRoutes(v1, selling *gin.RouterGroup, h *Handlers) {
	// Read-only and reset endpoints bypass the cash gate.
	checkout := v1.Group("/checkout")
	{
		checkout.GET("", h.Checkout.Status)
		checkout.GET("/suggestions", h.Checkout.Suggestions)
		checkout.DELETE("/session", h.Checkout.Reset)
	}

	gated := selling.Group("/checkout")
	{
		gated.POST("/tenders", h.Checkout.AddTender)
		gated.PUT("/tenders/:index", h.Checkout.UpdateTender)
		gated.DELETE("/tenders/:index", h.Checkout.RemoveTender)
		gated.POST("/quick-cash", h.Checkout.QuickCash)
		gated.PUT("/customer", h.Checkout.SetCustomer)
		gated.PUT("/document-type", h.Checkout.SetDocumentType)
		gated.POST("/confirm", h.Checkout.Confirm)
	}
}
