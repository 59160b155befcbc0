package routes

import (
	"context"
	"net/http"
	"sync"

	_ "paint_estimator/docs" // swagger docs
	"paint_estimator/internal/config"
	pkglog "paint_estimator/pkg/log"
	"paint_estimator/pkg/metrics"
	"paint_estimator/pkg/requestid"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const serviceName = "paint_estimator"

var (
	httpMetrics         = metrics.NewMiddleware(serviceName)
	registerHTTPMetrics sync.Once
)

// Run starts the server and blocks until ctx is cancelled. Cancelling ctx
// during startup also aborts the catalog load.
func Run(ctx context.Context) {
	lvl := zap.NewAtomicLevel()
	logger := pkglog.InitLog(lvl)
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	cfg, err := config.New()
	if err != nil {
		zap.S().Fatalw("failed to load configuration", "error", err)
	}
	lvl.SetLevel(pkglog.ParseLevel(cfg.Service.LogLevel).Level())

	deps, err := BuildDependencies(ctx, *cfg)
	if err != nil {
		zap.S().Fatalw("failed to build dependencies", "error", err)
	}

	router := NewRouter(logger, deps)
	srv := NewServer(*cfg, router)
	if err := Serve(ctx, srv, cfg.Service.ShutdownTimeout); err != nil {
		zap.S().Fatalw("server stopped with error", "error", err)
	}
}

// NewRouter wires middlewares and every route on a fresh gin engine.
func NewRouter(logger *zap.Logger, deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	registerHTTPMetrics.Do(httpMetrics.MustRegisterDefault)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", healthHandler(deps))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, deps.EstimateHandler)
	addCatalogRoutes(v1, deps.CatalogHandler)
	addPriceRoutes(v1, deps.PriceHandler)

	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestid.Middleware())
	router.Use(pkglog.GinLogger(logger, "http"))
	router.Use(httpMetrics.Handler())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.S().Named("http").Errorw("recovered from panic",
			"request_id", requestid.FromContext(c.Request.Context()),
			"panic", recovered,
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func healthHandler(deps Dependencies) gin.HandlerFunc {
	priceLookup := "serpapi"
	if deps.MockPricing {
		priceLookup = "mock"
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":           "ok",
			"catalog_source":   deps.CatalogSource,
			"catalog_products": deps.CatalogProducts,
			"price_lookup":     priceLookup,
		})
	}
}
