package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"watchthis/sharing/internal/auth"
	"watchthis/sharing/internal/handler"
	"watchthis/sharing/internal/metrics"
	"watchthis/sharing/internal/middleware"
	"watchthis/sharing/internal/service"
)

// ServiceName identifies this service in /ping and /health.
const ServiceName = "sharing-service"

// Deps is everything the HTTP surface needs.
type Deps struct {
	Logger   *zap.Logger
	Service  *service.ShareService
	Resolver auth.Resolver
	DB       handler.Pinger
	Metrics  *metrics.Metrics
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Version  string

	CORSOrigins []string
	// TrustedProxies may set X-Forwarded-For. Empty trusts none, so the
	// client address is the connection's remote address.
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// New builds the gin engine with every route registered.
func New(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Resolver == nil {
		d.Resolver = auth.Anonymous
	}

	rm := middleware.NewRequestMiddleware(d.Logger, d.Metrics)

	r := gin.New()
	r.HandleMethodNotAllowed = false
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		d.Logger.Warn("Invalid trusted proxies, trusting none", zap.Strings("trusted_proxies", d.TrustedProxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(rm.RequestID(), rm.LogRequest(), rm.RecoverPanic())
	r.Use(middleware.SecurityHeaders("/swagger/"))
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	health := handler.NewHealthHandler(ServiceName, d.Version, d.DB)
	r.GET("/ping", health.Ping)
	r.GET("/health", health.Health)
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := r.Group("/api/v1")
	if d.RateLimitRPS > 0 {
		apiV1.Use(middleware.RateLimit(middleware.NewRateLimiter(d.RateLimitRPS, d.RateLimitBurst)))
	}
	{
		apiV1.GET("/status", health.Status)

		shares := handler.NewShareHandler(d.Service, d.Logger)
		shareRoutes := apiV1.Group("/shares")
		shareRoutes.Use(auth.OptionalAuth(d.Resolver), auth.RequireAuth())
		{
			shareRoutes.POST("", shares.CreateShare)
			shareRoutes.GET("/sent", shares.ListSentShares) // Must be before /:id
			shareRoutes.GET("/received", shares.ListReceivedShares)
			shareRoutes.GET("/stats", shares.GetShareStats)
			shareRoutes.GET("/:id", shares.GetShareByID)
			shareRoutes.PATCH("/:id", shares.UpdateShare)
			shareRoutes.DELETE("/:id", shares.DeleteShare)
		}
	}

	r.NoRoute(handler.NotFound)
	return r
}
