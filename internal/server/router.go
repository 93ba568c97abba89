// Package server builds the gin engine with every feature mounted under /api.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "trading-platform-backend/docs"
	"trading-platform-backend/internal/common/config"
	"trading-platform-backend/internal/common/middleware"
	documentHTTP "trading-platform-backend/internal/features/document/delivery/http"
	documentService "trading-platform-backend/internal/features/document/service"
	marketHTTP "trading-platform-backend/internal/features/market/delivery/http"
	marketService "trading-platform-backend/internal/features/market/service"
	notificationHTTP "trading-platform-backend/internal/features/notification/delivery/http"
	notificationService "trading-platform-backend/internal/features/notification/service"
	paymentHTTP "trading-platform-backend/internal/features/payment/delivery/http"
	paymentService "trading-platform-backend/internal/features/payment/service"
	tierHTTP "trading-platform-backend/internal/features/tier/delivery/http"
	transactionHTTP "trading-platform-backend/internal/features/transaction/delivery/http"
	transactionService "trading-platform-backend/internal/features/transaction/service"
	userHTTP "trading-platform-backend/internal/features/user/delivery/http"
	userService "trading-platform-backend/internal/features/user/service"
	"trading-platform-backend/internal/storage"
)

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Services groups the application services the routes delegate to.
type Services struct {
	Users         userService.UserService
	Transactions  transactionService.TransactionService
	Notifications notificationService.NotificationService
	Documents     documentService.DocumentService
	Payments      paymentService.PaymentService
	Market        marketService.MarketService
}

// NewServices builds one service per collection of store.
func NewServices(store *storage.Store, logger *zap.Logger) *Services {
	return &Services{
		Users:         userService.NewUserService(store.Users, logger),
		Transactions:  transactionService.NewTransactionService(store.Transactions, logger),
		Notifications: notificationService.NewNotificationService(store.Notifications, logger),
		Documents:     documentService.NewDocumentService(store.Documents, logger),
		Payments:      paymentService.NewPaymentService(store.Payments, logger),
		Market:        marketService.NewMarketService(store.Market, logger),
	}
}

// NewRouter wires middleware, feature routes and health endpoints.
func NewRouter(cfg *config.Config, store *storage.Store, services *Services, logger *zap.Logger) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	// Символы вида BTC%2FUSD приходят одним сегментом пути
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.Origins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	wrap := middleware.HandleErrorWrapper(logger)

	api := router.Group("/api")
	{
		api.GET("/health", health)

		userHTTP.NewUserHandler(services.Users).RegisterRoutes(api, wrap)
		transactionHTTP.NewTransactionHandler(services.Transactions).RegisterRoutes(api, wrap)
		notificationHTTP.NewNotificationHandler(services.Notifications).RegisterRoutes(api, wrap)
		documentHTTP.NewDocumentHandler(services.Documents).RegisterRoutes(api, wrap)
		paymentHTTP.NewPaymentHandler(services.Payments).RegisterRoutes(api, wrap)
		marketHTTP.NewMarketHandler(services.Market).RegisterRoutes(api, wrap)
		tierHTTP.NewTierHandler().RegisterRoutes(api)
	}

	// Liveness
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Readiness: хранилище отвечает на ping
	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.Warn("Storage is not ready", zap.String("driver", store.Driver()), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unready",
				"driver": store.Driver(),
				"error":  "storage unavailable",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"driver":    store.Driver(),
			"timestamp": time.Now().UTC(),
		})
	})

	if cfg.Server.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
