package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	_ "nbtech_pricing/docs" // swagger spec
	request "nbtech_pricing/internal/adapter/http/dto/request"
	"nbtech_pricing/internal/adapter/http/handlers"
	"nbtech_pricing/internal/adapter/persistence/repository"
	"nbtech_pricing/internal/infrastructure/config"
	"nbtech_pricing/internal/infrastructure/database"
	"nbtech_pricing/internal/infrastructure/metrics"
	"nbtech_pricing/internal/usecase"
	"nbtech_pricing/internal/usecase/interfaces"
	"nbtech_pricing/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run loads the configuration and serves HTTP until the process exits.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic("invalid configuration: " + err.Error())
	}
	logger.InitLoggerWithConfig(cfg.AppEnv, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	router, err := NewRouter(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	logger.Info("starting pricing api",
		zap.Int("port", cfg.Port),
		zap.String("tax_table_source", cfg.TaxTableSource),
		zap.String("tax_table_year", cfg.TaxTableYear),
	)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}

// NewRouter builds the gin engine with every middleware and route.
func NewRouter(ctx context.Context, cfg config.Config) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := request.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	m := metrics.NewMetrics(cfg.MetricsNamespace)

	router := gin.New()
	setMiddlewares(router, cfg, m)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	tables := taxTableRepository(ctx, cfg)
	quoteUseCase := usecase.NewQuoteUseCase(tables, m, usecase.DefaultServiceCostTable(), cfg.TaxTableYear)
	referenceUseCase := usecase.NewReferenceUseCase(tables, cfg.TaxTableYear)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	referenceHandler := handlers.NewReferenceHandler(referenceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, quoteHandler, referenceHandler)

	return router, nil
}

func taxTableRepository(ctx context.Context, cfg config.Config) interfaces.ITaxTableRepository {
	static := repository.NewTaxTableStaticRepository()
	if cfg.TaxTableSource != config.TaxTableSourceDynamoDB {
		return static
	}
	ddb := database.ConnectDynamoDB(ctx, cfg)
	return repository.NewTaxTableFallbackRepository(
		repository.NewTaxTableDynamoRepository(ddb, cfg.TaxTablesTable),
		static,
	)
}

func setMiddlewares(router *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	router.Use(ginzapLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(configureCORS(cfg))
	router.Use(m.Middleware())
}

func configureCORS(cfg config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowMethods = cfg.CORSAllowedMethods
	corsConfig.AllowHeaders = cfg.CORSAllowedHeaders
	return cors.New(corsConfig)
}
