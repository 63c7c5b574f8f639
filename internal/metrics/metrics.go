package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PalettesGenerated counts generated palettes by the surface that asked
	// for them (page, api, css, library).
	PalettesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "themebuilder_palettes_generated_total",
		Help: "Total palettes generated by surface",
	}, []string{"surface"})

	// PalettesClamped counts requests whose sliders were outside [0,100].
	PalettesClamped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "themebuilder_palettes_clamped_total",
		Help: "Total palettes generated from out-of-range sliders",
	})

	// GenerateErrors counts rejected generation requests by reason.
	GenerateErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "themebuilder_generate_errors_total",
		Help: "Total rejected generation requests by reason",
	}, []string{"reason"})

	// SavedThemes tracks library writes by operation.
	SavedThemes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "themebuilder_library_writes_total",
		Help: "Total saved-theme library writes by operation",
	}, []string{"op"})

	// WritesRejected counts library writes refused before auth, by reason.
	WritesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "themebuilder_writes_rejected_total",
		Help: "Total library write requests rejected by the blocklist or rate limiter",
	}, []string{"reason"})

	// RequestDuration tracks HTTP latency by route and status.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "themebuilder_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method", "status"})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
