package routes

import (
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
	ledgerUseCase "github.com/ramadhanf/slot-portal/internal/domain/usecase/ledger"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/handler"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthConfig carries what the auth middlewares need
type AuthConfig struct {
	IdentityRepo persistence.IdentityRepository
	Ledger       *ledgerUseCase.Service
	CookieName   string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	walletHandler *handler.WalletHandler,
	gameHandler *handler.GameHandler,
	adminHandler *handler.AdminHandler,
	auth AuthConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) {
	api := router.Group("/api")

	// Public routes: the catalog is browsable without a session
	api.GET("/games", gameHandler.List)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.Auth(auth.IdentityRepo, timeProvider, logger, auth.CookieName))
	{
		authed.GET("/user/me", userHandler.Me)
		authed.PUT("/user/bank", userHandler.UpdateBank)

		authed.POST("/wallet/deposit", walletHandler.Deposit)
		authed.POST("/wallet/withdraw", walletHandler.Withdraw)
		authed.GET("/wallet/history", walletHandler.History)

		authed.POST("/games/:gameId/play", gameHandler.Play)
	}

	// Admin console routes
	admin := authed.Group("/admin")
	admin.Use(middleware.AdminOnly(auth.Ledger, logger))
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.PATCH("/users/:userId", adminHandler.UpdateUser)
		admin.GET("/transactions", adminHandler.ListTransactions)
		admin.POST("/transactions/:transactionId/process", adminHandler.ProcessTransaction)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigin string,
) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigin))
}
