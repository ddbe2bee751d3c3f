package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "balanza_"

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	balanceBuilds  *prometheus.CounterVec
	balanceLatency prometheus.Histogram

	exportsTotal *prometheus.CounterVec
)

// Init registers all metrics exactly once.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)
		balanceBuilds = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "balance_builds_total",
				Help: "Total balance sheet builds by result",
			},
			[]string{"result"},
		)
		balanceLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "balance_build_duration_seconds",
				Help:    "Balance sheet build latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		)
		exportsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Total balance exports by format and result",
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(httpRequests, httpLatency, balanceBuilds, balanceLatency, exportsTotal)
	})
}

// GinMiddleware records per-request counters and latency. Routes are labeled
// by their template (e.g. /api/v1/companies/:companyID) to bound cardinality.
func GinMiddleware() gin.HandlerFunc {
	Init()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint as a Gin handler.
func Handler() gin.HandlerFunc {
	Init()
	return gin.WrapH(promhttp.Handler())
}

// ObserveBalanceBuild records one balance sheet build.
func ObserveBalanceBuild(err error, seconds float64) {
	Init()
	result := "success"
	if err != nil {
		result = "error"
	}
	balanceBuilds.WithLabelValues(result).Inc()
	balanceLatency.Observe(seconds)
}

// ObserveExport records one export attempt.
func ObserveExport(format string, err error) {
	Init()
	result := "success"
	if err != nil {
		result = "error"
	}
	exportsTotal.WithLabelValues(format, result).Inc()
}
