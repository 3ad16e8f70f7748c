package metrics

import (
	"strconv" // Status code label formatting
	"time"    // Request latency measurement

	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus"          // Prometheus client
	"github.com/prometheus/client_golang/prometheus/promhttp" // Exposition handler
)

// HTTP metrics:
// - http_requests_total: request count by path, method and status
// - http_request_duration_seconds: latency distribution by path and method
var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP request count by path/method/status"},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency) // Register at load time
}

// Handler returns middleware recording the request counter and latency
// histogram for every request
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Start of request handling
		c.Next()

		path := c.FullPath() // Route template, not the raw URL
		if path == "" {
			path = c.Request.URL.Path // Unmatched route (404)
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Exposer returns the standard Prometheus exposition handler wrapped for gin
func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }
