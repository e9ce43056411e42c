package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finhub/internal/config"
	"finhub/internal/database"
	"finhub/internal/handlers"
	"finhub/internal/llm"
	"finhub/internal/middleware"
	"finhub/internal/models"
	"finhub/internal/providers"
	"finhub/internal/repositories"
	"finhub/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	scope := resolveTenantScope(cfg, db)

	// Repositories
	tenantRepo := repositories.NewTenantRepository(db.DB)
	connectionRepo := repositories.NewConnectionRepository(db.DB)

	// Services
	vault := services.NewCredentialVault(cfg.Vault.SealingKey)
	metrics := services.NewPrometheusMetrics()
	tenantService := services.NewTenantService(tenantRepo, logger)
	connectionService := services.NewConnectionRegistryService(connectionRepo, tenantRepo, vault, logger)
	registry := providers.NewRegistry(cfg.Providers, &http.Client{Timeout: cfg.Providers.FetchTimeout + time.Second})
	aggregatorService := services.NewAggregatorService(
		registry,
		connectionService,
		metrics,
		cfg.Providers.FetchTimeout,
		cfg.Providers.SummaryWindowDays,
		logger,
	)
	optimizationService := services.NewOptimizationService(metrics)
	formatterService := services.NewFormatterService(optimizationService)
	sessionService := services.NewSessionService(&cfg.Session)
	assistant := llm.NewClient(cfg.Assistant.Endpoint, cfg.Assistant.Model)

	// Handlers
	connectorHandler := handlers.NewUniversalConnectorHandler(
		tenantService, connectionService, aggregatorService, formatterService, scope)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	connectionHandler := handlers.NewConnectionHandler(connectionService)
	dashboardHandler := handlers.NewDashboardHandler(tenantService, aggregatorService, metrics, assistant)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	healthHandler := handlers.NewHealthHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewCustomValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))

	// Published connector contract
	e.GET("/api/universal-connector", connectorHandler.GetConnectorData)
	e.GET("/api/universal-connector/secured", connectorHandler.GetSecuredConnectorData,
		middleware.RequireSession(sessionService))

	// Tenant lifecycle
	e.POST("/api/tenants", tenantHandler.CreateTenant)
	e.GET("/api/tenants", tenantHandler.ListTenants)
	e.GET("/api/tenants/:tenantId", tenantHandler.GetTenant)
	e.PATCH("/api/tenants/:tenantId/activation", tenantHandler.UpdateTenantActivation)
	e.DELETE("/api/tenants/:tenantId", tenantHandler.DeleteTenant)

	// Provider connections
	e.GET("/api/tenants/:tenantId/connections", connectionHandler.ListConnections)
	e.POST("/api/tenants/:tenantId/connections/:providerType", connectionHandler.Connect)
	e.DELETE("/api/tenants/:tenantId/connections/:providerType", connectionHandler.Disconnect)
	e.PUT("/api/tenants/:tenantId/connections/mercury_bank/accounts", connectionHandler.SelectAccounts)

	// Dashboard
	e.GET("/api/dashboard/:tenantId", dashboardHandler.GetSnapshot)
	e.POST("/api/dashboard/:tenantId/ask", dashboardHandler.AskAssistant)

	// Operational
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Headless session minting and sandbox data are development conveniences;
	// production deployments issue session tokens out of band.
	if cfg.IsDevelopment() {
		e.POST("/api/session", sessionHandler.IssueSession)
		sandboxHandler := handlers.NewSandboxHandler()
		e.GET("/api/dev/sandbox", sandboxHandler.GenerateSandboxData)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"tenant_scope", string(scope.Mode),
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}

// resolveTenantScope builds the deployment's tenant scope. Standalone mode
// either pins an existing tenant by id or seeds a default one on first boot.
func resolveTenantScope(cfg *config.Config, db *database.DB) models.TenantScope {
	if cfg.Server.TenantScopeMode != string(models.TenantScopeStandalone) {
		return models.TenantScope{Mode: models.TenantScopeSystem}
	}

	if cfg.Server.StandaloneTenant != "" {
		tenantID, err := uuid.Parse(cfg.Server.StandaloneTenant)
		if err != nil {
			log.Fatalf("Invalid TENANT_SCOPE_TENANT_ID: %v", err)
		}
		return models.TenantScope{Mode: models.TenantScopeStandalone, TenantID: tenantID}
	}

	tenant, err := db.SeedStandaloneTenant("Standalone")
	if err != nil {
		log.Fatalf("Failed to seed standalone tenant: %v", err)
	}
	return models.TenantScope{Mode: models.TenantScopeStandalone, TenantID: tenant.ID}
}
