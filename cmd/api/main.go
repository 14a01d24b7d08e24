package main

import (
	"log"
	"os"

	"github.com/andespos/terminal-api/internal/application/service"
	"github.com/andespos/terminal-api/internal/config"
	"github.com/andespos/terminal-api/internal/domain/entity"
	"github.com/andespos/terminal-api/internal/infrastructure/backend"
	"github.com/andespos/terminal-api/internal/infrastructure/memory"
	"github.com/andespos/terminal-api/internal/presentation/http/handler"
	"github.com/andespos/terminal-api/internal/presentation/http/middleware"
	"github.com/andespos/terminal-api/internal/presentation/http/routes"
	"github.com/andespos/terminal-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret)

	// Initialize backend client and gateways
	client, err := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	if err != nil {
		log.Fatalf("Failed to initialize backend client: %v", err)
	}
	catalogGateway := backend.NewCatalogGateway(client)
	paymentMethodGateway := backend.NewPaymentMethodGateway(client)
	saleGateway := backend.NewSaleGateway(client)
	cashSessionGateway := backend.NewCashSessionGateway(client)

	// Per-terminal checkout sessions live in memory; the backend is the
	// system of record once a sale is confirmed.
	store := memory.NewSessionStore()

	placeholder := entity.Customer{
		Name:  cfg.POS.PlaceholderCustomerName,
		TaxID: cfg.POS.PlaceholderCustomerRUT,
	}

	// Initialize services
	cartService := service.NewCartService(store, catalogGateway)
	settlementService := service.NewSettlementService(store, paymentMethodGateway, cfg.POS.CashMethodCode)
	checkoutService := service.NewCheckoutService(store, saleGateway, cashSessionGateway, placeholder)
	catalogService := service.NewCatalogService(catalogGateway)
	terminalService := service.NewTerminalService(paymentMethodGateway, cashSessionGateway)

	// Initialize handlers
	handlers := &routes.Handlers{
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService, settlementService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Terminal: handler.NewTerminalHandler(terminalService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		CashGate:   middleware.NewCashGate(cashSessionGateway, cfg.POS.CashGateTTL),
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8090"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
