package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	gameUseCase "github.com/ramadhanf/slot-portal/internal/domain/usecase/game"
	ledgerUseCase "github.com/ramadhanf/slot-portal/internal/domain/usecase/ledger"
	walletUseCase "github.com/ramadhanf/slot-portal/internal/domain/usecase/wallet"

	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/handler"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/routes"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/database"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/database/migration"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/logger"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/repository"
	timeProvider "github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/time"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Wallet amounts are decimal strings in config; convert them to cents once
	ledgerParams, walletParams, err := loadAmountParams(cfg)
	if err != nil {
		appLogger.Error("Invalid wallet amount configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewManager(dbManager.DB(), appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(dbManager.DB(), tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), tp, appLogger)
	gameRepo := repository.NewGameRepository(dbManager.DB(), appLogger)
	identityRepo := repository.NewIdentityRepository(dbManager.DB(), tp, appLogger)

	// Seed the game catalog
	if err := migration.SeedGames(context.Background(), gameRepo, tp, appLogger); err != nil {
		appLogger.Error("Failed to seed game catalog", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	ledgerService := ledgerUseCase.NewService(profileRepo, identityRepo, tp, appLogger, ledgerParams)
	walletService := walletUseCase.NewService(transactionRepo, tp, appLogger, walletParams)
	gameService := gameUseCase.NewService(gameRepo, ledgerService, tp, appLogger)

	// Initialize API handlers
	userHandler := handler.NewUserHandler(ledgerService, appLogger)
	walletHandler := handler.NewWalletHandler(walletService, appLogger)
	gameHandler := handler.NewGameHandler(gameService, appLogger)
	adminHandler := handler.NewAdminHandler(ledgerService, walletService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigin)

	// Setup routes
	routes.SetupRoutes(router, userHandler, walletHandler, gameHandler, adminHandler, routes.AuthConfig{
		IdentityRepo: identityRepo,
		Ledger:       ledgerService,
		CookieName:   cfg.Session.CookieName,
	}, tp, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	_ = appLogger.Flush()
}

// loadAmountParams converts the configured decimal amount strings into cents
func loadAmountParams(cfg *config.Config) (ledgerUseCase.Params, walletUseCase.Params, error) {
	signupBonus, err := entity.ValidateAndConvertAmount(cfg.Wallet.SignupBonus)
	if err != nil {
		return ledgerUseCase.Params{}, walletUseCase.Params{}, fmt.Errorf("wallet.signupBonus: %w", err)
	}
	minPlayBalance, err := entity.ValidateAndConvertAmount(cfg.Wallet.MinPlayBalance)
	if err != nil {
		return ledgerUseCase.Params{}, walletUseCase.Params{}, fmt.Errorf("wallet.minPlayBalance: %w", err)
	}
	minTransaction, err := entity.ValidateAndConvertAmount(cfg.Wallet.MinTransactionAmount)
	if err != nil {
		return ledgerUseCase.Params{}, walletUseCase.Params{}, fmt.Errorf("wallet.minTransactionAmount: %w", err)
	}

	ledgerParams := ledgerUseCase.Params{
		SignupBonusInCents:    signupBonus,
		MinPlayBalanceInCents: minPlayBalance,
	}
	walletParams := walletUseCase.Params{
		MinAmountInCents: minTransaction,
	}
	return ledgerParams, walletParams, nil
}
