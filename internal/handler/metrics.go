package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/videostream-app/videostream-go/internal/service"
)

// Metrics holds all Prometheus collectors for the gallery API.
var Metrics = struct {
	SubmissionsTotal *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	CacheHits        prometheus.CounterFunc
	CacheMisses      prometheus.CounterFunc
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(cache *service.CacheService) {
	Metrics.SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videostream_submissions_total",
			Help: "Submission workflow events, by outcome.",
		},
		[]string{"outcome"},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "videostream_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "videostream_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	prometheus.MustRegister(
		Metrics.SubmissionsTotal,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
	)

	if cache != nil {
		Metrics.CacheHits = prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "videostream_cache_hits_total",
				Help: "Total Redis cache hits.",
			},
			func() float64 { return float64(cache.Hits()) },
		)

		Metrics.CacheMisses = prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "videostream_cache_misses_total",
				Help: "Total Redis cache misses.",
			},
			func() float64 { return float64(cache.Misses()) },
		)

		prometheus.MustRegister(Metrics.CacheHits, Metrics.CacheMisses)
	}
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers.
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/video/"):
		if strings.HasSuffix(path, "/recommended") {
			return "/api/video/:id/recommended"
		}
		return "/api/video/:id"
	case strings.HasPrefix(path, "/api/category/"):
		return "/api/category/:name"
	case strings.HasPrefix(path, "/api/admin/videos/"):
		return "/api/admin/videos/:id"
	case strings.HasPrefix(path, "/api/admin/submissions/"):
		if strings.HasSuffix(path, "/approve") {
			return "/api/admin/submissions/:id/approve"
		}
		return "/api/admin/submissions/:id/reject"
	case strings.HasPrefix(path, "/api/admin/notifications/"):
		return "/api/admin/notifications/:id/read"
	default:
		return path
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.Context())
		return nil
	}
}
