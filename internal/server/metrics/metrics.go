// Package metrics records Prometheus metrics for the identity server and
// serves them for scraping.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Recorder is what the services report to.
type Recorder interface {
	RecordSignUp(provider string)
	RecordSignInThrottled()
}

// Collector is the Prometheus implementation of Recorder plus the per-RPC
// metrics.
type Collector struct {
	rpcTotal        *prometheus.CounterVec
	rpcLatency      *prometheus.HistogramVec
	signUps         *prometheus.CounterVec
	signInThrottled prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		rpcTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esgportal_rpc_requests_total",
			Help: "Handled gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		rpcLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "esgportal_rpc_duration_seconds",
			Help:    "gRPC handler latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		signUps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esgportal_accounts_created_total",
			Help: "Accounts created by login method.",
		}, []string{"provider"}),
		signInThrottled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "esgportal_sign_in_throttled_total",
			Help: "Password sign-ins refused by the rate limiter.",
		}),
	}

	reg.MustRegister(c.rpcTotal, c.rpcLatency, c.signUps, c.signInThrottled)

	return c
}

func (c *Collector) RecordSignUp(provider string) {
	c.signUps.WithLabelValues(provider).Inc()
}

func (c *Collector) RecordSignInThrottled() {
	c.signInThrottled.Inc()
}

// RecordRPC counts one finished call.
func (c *Collector) RecordRPC(method string, err error, d time.Duration) {
	c.rpcTotal.WithLabelValues(method, status.Code(err).String()).Inc()
	c.rpcLatency.WithLabelValues(method).Observe(d.Seconds())
}

// UnaryInterceptor records every unary call.
func (c *Collector) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		c.RecordRPC(info.FullMethod, err, time.Since(start))
		return resp, err
	}
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) RecordSignUp(string)    {}
func (NopRecorder) RecordSignInThrottled() {}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute returns a mux serving /metrics.
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
