package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ModalEvaluations counts display decisions by outcome: "shown" or the
	// suppression reason (page, device, frequency, trigger).
	ModalEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "launchkit_modal_evaluations_total",
		Help: "Modal display evaluations by outcome",
	}, []string{"outcome"})

	// ModalImpressions counts recorded modal impressions.
	ModalImpressions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "launchkit_modal_impressions_total",
		Help: "Recorded modal impressions",
	})

	// PageSaves counts persisted document writes from the builder.
	PageSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "launchkit_page_saves_total",
		Help: "Landing page document saves",
	})

	// PageRenders counts public render-plan requests.
	PageRenders = promauto.NewCounter(prometheus.CounterOpts{
		Name: "launchkit_page_renders_total",
		Help: "Public page render requests",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "launchkit_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "launchkit_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// RecordEvaluation tracks one evaluation outcome.
func RecordEvaluation(reason string) {
	outcome := reason
	if outcome == "" {
		outcome = "shown"
	}
	ModalEvaluations.WithLabelValues(outcome).Inc()
}

// Middleware instruments every request with count and latency metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
