package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Configuration metrics. A fallback is a setting that was out of range and
// replaced by its default.
var (
	// ConfigLoadTimestamp records the Unix timestamp of the last configuration load.
	ConfigLoadTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "og_config_load_timestamp",
		Help: "Unix timestamp of last OG service configuration load",
	})

	// ConfigFallbacksTotal counts fallbacks by field.
	ConfigFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "og_config_fallbacks_total",
		Help: "Total number of OG service configuration fallback operations",
	}, []string{"field"})

	// ConfigFallbackActive is 1 if the last load applied any fallback, 0 otherwise.
	ConfigFallbackActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "og_config_fallback_active",
		Help: "1 if any OG service configuration fallback is active, 0 otherwise",
	})
)

// fallbackRecorder tracks the fallbacks applied during one load.
type fallbackRecorder struct {
	fields []string
}

func (f *fallbackRecorder) record(field string) {
	ConfigFallbacksTotal.WithLabelValues(field).Inc()
	f.fields = append(f.fields, field)
}

func (f *fallbackRecorder) finish() {
	ConfigLoadTimestamp.SetToCurrentTime()
	if len(f.fields) > 0 {
		ConfigFallbackActive.Set(1)
	} else {
		ConfigFallbackActive.Set(0)
	}
}
