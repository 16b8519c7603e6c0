package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/five82/xsortlab/internal/results"
	"github.com/five82/xsortlab/internal/sortlab"
)

const namespace = "xsortlab"

// Metrics collects sort statistics on a private registry. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	steps       *prometheus.CounterVec
	runs        *prometheus.CounterVec
	comparisons *prometheus.HistogramVec
	copies      *prometheus.HistogramVec
	duration    *prometheus.HistogramVec
}

// New registers the xsortlab collectors on a fresh registry.
func New() *Metrics {
	countBuckets := prometheus.ExponentialBuckets(4, 2, 12)
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "steps_total",
				Help:      "Step events delivered, by algorithm and step kind",
			},
			[]string{"algorithm", "kind"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_completed_total",
				Help:      "Sorts run to completion",
			},
			[]string{"algorithm"},
		),
		comparisons: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_comparisons",
				Help:      "Comparisons per completed sort",
				Buckets:   countBuckets,
			},
			[]string{"algorithm"},
		),
		copies: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_copies",
				Help:      "Moves and swaps per completed sort",
				Buckets:   countBuckets,
			},
			[]string{"algorithm"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Wall time per completed sort in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"algorithm"},
		),
	}
	m.registry.MustRegister(m.steps, m.runs, m.comparisons, m.copies, m.duration)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveStep counts one delivered step event.
func (m *Metrics) ObserveStep(alg sortlab.Algorithm, kind sortlab.StepKind) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(string(alg), string(kind)).Inc()
}

// ObserveRun records a finished result. Batches from the benchmark count
// every run they cover and observe per-run averages.
func (m *Metrics) ObserveRun(r results.TimedSortResult) {
	if m == nil || r.RunCount <= 0 {
		return
	}
	alg := string(r.Algorithm)
	m.runs.WithLabelValues(alg).Add(float64(r.RunCount))
	m.comparisons.WithLabelValues(alg).Observe(r.AverageComparisons())
	m.copies.WithLabelValues(alg).Observe(r.AverageCopies())
	m.duration.WithLabelValues(alg).Observe(r.Elapsed.Seconds() / float64(r.RunCount))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger zerolog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen metrics %s: %w", addr, err)
	}
	return m.serve(ctx, ln, logger)
}

func (m *Metrics) serve(ctx context.Context, ln net.Listener, logger zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", ln.Addr().String()).Msg("metrics endpoint listening")
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve metrics: %w", err)
	}
	return nil
}
