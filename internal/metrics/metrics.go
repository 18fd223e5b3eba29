package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	// FilesProcessed counts files handled, by outcome.
	FilesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fa2emoji_files_processed_total",
			Help: "Total number of template files processed.",
		},
		[]string{"status"}, // modified, unchanged, error
	)

	// IconsReplaced counts individual icon substitutions.
	IconsReplaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fa2emoji_icons_replaced_total",
			Help: "Total number of icon elements replaced with emoji.",
		},
	)

	// RunDuration reports how long the last full pass took.
	RunDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fa2emoji_run_duration_seconds",
			Help: "Wall-clock duration of the last rewrite pass.",
		},
	)
)

// ObserveResult records one file outcome.
func ObserveResult(count int, modified bool, failed bool) {
	switch {
	case failed:
		FilesProcessed.WithLabelValues("error").Inc()
	case modified:
		FilesProcessed.WithLabelValues("modified").Inc()
	default:
		FilesProcessed.WithLabelValues("unchanged").Inc()
	}
	if count > 0 {
		IconsReplaced.Add(float64(count))
	}
}

// StartServer starts the Prometheus metrics HTTP server. Only useful on
// long runs over large trees; disabled when addr is empty.
func StartServer(addr string) {
	if addr == "" {
		log.Debug().Msg("Metrics server address not configured, Prometheus endpoint will not be available.")
		return
	}

	mux := chi.NewRouter()
	mux.Handle("/metrics", promhttp.Handler())

	log.Info().Str("address", addr).Msg("Starting Prometheus metrics server")
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Prometheus metrics server failed")
		}
	}()
}
