package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/joshu-sajeev/contactrelay/common"
	"github.com/joshu-sajeev/contactrelay/internal/config"
	"github.com/joshu-sajeev/contactrelay/internal/contact"
	"github.com/joshu-sajeev/contactrelay/internal/dto"
	"github.com/joshu-sajeev/contactrelay/internal/mailer"
	"github.com/joshu-sajeev/contactrelay/internal/metrics"
	"github.com/joshu-sajeev/contactrelay/middleware"
)

// Deps carries the collaborators the router is assembled from.
type Deps struct {
	Logger   *zap.Logger
	Sender   mailer.Sender
	Registry *prometheus.Registry
	// StartedAt is the reference for the uptime reported by /health.
	StartedAt time.Time
}

// NewRouter wires middleware and routes. The configuration is read once and
// only passed down, never re-read from the environment.
func NewRouter(cfg *config.Config, deps Deps) (*gin.Engine, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}
	if deps.StartedAt.IsZero() {
		deps.StartedAt = time.Now()
	}

	router := gin.New()
	// "/api/contact/" is served as-is rather than redirected
	router.RedirectTrailingSlash = false
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	httpMetrics := metrics.NewHTTPMetrics(deps.Registry)
	contactMetrics := metrics.NewContactMetrics(deps.Registry)

	router.Use(
		middleware.RequestLogger(deps.Logger.Named("http")),
		middleware.Metrics(httpMetrics),
		middleware.ErrorHandler(deps.Logger.Named("errors")),
		middleware.Recovery(),
		middleware.SecurityHeaders(),
		middleware.CORS(middleware.CORSOptions{
			AllowOrigin: cfg.OriginAllowed,
			Methods:     config.AllowedMethods,
			Headers:     config.AllowedHeaders,
		}),
		middleware.BodyLimit(cfg.BodyLimitBytes),
	)

	service := contact.NewContactService(cfg.SMTP, deps.Sender, contactMetrics, deps.Logger)
	handler := contact.NewContactHandler(service)

	router.GET("/", Root)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	handleWithSlash(router, http.MethodGet, "/health", Health(deps.StartedAt))
	handleWithSlash(router, http.MethodGet, "/api/contact", handler.Describe)
	handleWithSlash(router, http.MethodPost, "/api/contact", handler.Submit)

	router.NoRoute(NotFound)

	return router, nil
}

// handleWithSlash registers path and path + "/" for the same handler.
func handleWithSlash(router gin.IRoutes, method, path string, handler gin.HandlerFunc) {
	router.Handle(method, path, handler)
	router.Handle(method, path+"/", handler)
}

// Health reports liveness and seconds elapsed since startedAt. The
// monotonic clock reading keeps uptime non-decreasing.
func Health(startedAt time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:    "OK",
			Message:   "Server is running",
			Timestamp: common.Timestamp(now),
			Uptime:    now.Sub(startedAt).Seconds(),
		})
	}
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{
		Message: "Contact Form API Server",
		Version: config.APIVersion,
		Endpoints: map[string]string{
			"health":  "GET /health",
			"contact": "POST /api/contact",
		},
	})
}

func NotFound(c *gin.Context) {
	c.Error(common.NotFoundError(c.Request.URL.RequestURI()))
	c.Abort()
}
