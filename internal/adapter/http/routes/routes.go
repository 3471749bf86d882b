package routes

import (
	_ "unimarket/docs" // swagger docs, generated by swag
	"unimarket/internal/adapter/http/handlers"
	"unimarket/internal/adapter/http/middleware"
	"unimarket/internal/config"
	"unimarket/internal/infrastructure/marketplace"
	"unimarket/internal/infrastructure/shipping"
	"unimarket/internal/logger"
	"unimarket/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires the service together and starts the server.
func Run() {
	cfg := config.Load()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	logger.L().Info("starting server", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config) {
	marketplaceClient := marketplace.NewClient(cfg.MarketplaceAPIURL)
	shippingClient := shipping.NewClient(cfg.ShippingAPIURL)

	quotationUseCase := usecase.NewQuotationSessionUseCase(
		marketplaceClient,
		marketplaceClient,
		shippingClient,
		cfg.CarrierID,
	)
	orderUseCase := usecase.NewOrderUseCase(marketplaceClient)
	sizeUseCase := usecase.NewSizeUseCase(marketplaceClient)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	sizeHandler := handlers.NewSizeHandler(sizeUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, sizeHandler)
	addQuotationRoutes(v1, quotationHandler)
}

func setMiddlewares() {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.L().Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.RateLimit())
}
