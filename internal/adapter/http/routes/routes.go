package routes

import (
	_ "rxquote/docs" // registers the swagger spec
	"rxquote/internal/adapter/http/handlers"
	"rxquote/internal/adapter/http/middleware"
	"rxquote/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies is everything the router needs, built by the serve command.
type Dependencies struct {
	Log                 *zap.Logger
	Metrics             *metrics.Collector
	Verifier            *middleware.TokenVerifier
	EmailLimiter        *middleware.IPRateLimiter
	PrescriptionHandler *handlers.PrescriptionHandler
	QuoteHandler        *handlers.QuoteHandler
	EmailHandler        *handlers.EmailHandler
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))
	}

	// Rotas publicas
	addEmailRoutes(router.Group(""), deps.EmailHandler, deps.EmailLimiter)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.Auth(deps.Verifier))
	addPrescriptionRoutes(authed, deps.PrescriptionHandler, deps.QuoteHandler)
	addQuoteRoutes(authed, deps.QuoteHandler)

	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}
}
