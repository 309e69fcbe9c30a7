package daemon

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
)

// Metrics exposes watch mode counters on a private registry.
type Metrics struct {
	registry      *prom.Registry
	events        prom.Counter
	regenerations prom.Counter
	failures      prom.Counter
	lastSuccess   prom.Gauge
	duration      prom.Histogram
}

// NewMetrics registers the watch mode collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry:      prom.NewRegistry(),
		events:        prom.NewCounter(prom.CounterOpts{Namespace: "docsconfig", Name: "watch_events_total", Help: "File events that scheduled a regeneration"}),
		regenerations: prom.NewCounter(prom.CounterOpts{Namespace: "docsconfig", Name: "regenerations_total", Help: "Completed regenerations"}),
		failures:      prom.NewCounter(prom.CounterOpts{Namespace: "docsconfig", Name: "regenerations_failed_total", Help: "Failed regenerations"}),
		lastSuccess:   prom.NewGauge(prom.GaugeOpts{Namespace: "docsconfig", Name: "last_success_timestamp_seconds", Help: "Unix time of the last successful regeneration"}),
		duration:      prom.NewHistogram(prom.HistogramOpts{Namespace: "docsconfig", Name: "regeneration_duration_seconds", Help: "Regeneration duration", Buckets: prom.DefBuckets}),
	}
	m.registry.MustRegister(m.events, m.regenerations, m.failures, m.lastSuccess, m.duration)
	m.registry.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))
	return m
}

func (m *Metrics) observe(err error, d time.Duration) {
	m.duration.Observe(d.Seconds())
	if err != nil {
		m.failures.Inc()
		return
	}
	m.regenerations.Inc()
	m.lastSuccess.SetToCurrentTime()
}

// Record counts a regeneration that ran outside the watch loop.
func (m *Metrics) Record(err error, d time.Duration) { m.observe(err, d) }

// Registry returns the registry backing the metrics.
func (m *Metrics) Registry() *prom.Registry { return m.registry }

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ServeMetrics serves /metrics on addr until ctx is canceled.
func ServeMetrics(ctx context.Context, addr string, m *Metrics) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Serving metrics", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "serve metrics").
			WithContext("addr", addr).Build()
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
