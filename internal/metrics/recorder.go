package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "loro"

// Recorder collects upstream call and gateway response metrics.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry         *prom.Registry
	upstreamCalls    *prom.CounterVec
	upstreamDuration *prom.HistogramVec
	responses        *prom.CounterVec
}

// NewRecorder constructs the metrics and registers them on reg,
// a fresh registry when reg is nil.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	r := &Recorder{
		registry: reg,
		upstreamCalls: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "GitHub API requests by operation and response status",
		}, []string{"operation", "status"}),
		upstreamDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of GitHub API requests",
			Buckets:   prom.DefBuckets,
		}, []string{"operation"}),
		responses: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "responses_total",
			Help:      "Gateway responses by route and outcome",
		}, []string{"route", "outcome"}),
	}
	reg.MustRegister(r.upstreamCalls, r.upstreamDuration, r.responses)

	return r
}

// ObserveUpstreamCall records one GitHub API call. A zero status
// means no response was received.
func (r *Recorder) ObserveUpstreamCall(operation string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	r.upstreamCalls.WithLabelValues(operation, label).Inc()
	r.upstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// IncResponse records one gateway response.
func (r *Recorder) IncResponse(route, outcome string) {
	if r == nil {
		return
	}
	r.responses.WithLabelValues(route, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
