// internal/metrics/metrics.go
package metrics

import (
	"line-defense/internal/event"
	"line-defense/internal/interfaces"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics — метрики забегов на собственном реестре, без глобального состояния.
// Ярлык run ограничен числом прогонов симулятора.
type Metrics struct {
	registry *prometheus.Registry

	fields       *prometheus.GaugeVec
	damage       *prometheus.GaugeVec
	runsEnded    *prometheus.CounterVec
	wavesReached prometheus.Histogram
	tickDuration prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		fields: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "line_defense_hud_value",
			Help: "Last numeric HUD field pushed by a run",
		}, []string{"run", "field"}),
		damage: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "line_defense_damage_total",
			Help: "Damage dealt so far by source",
		}, []string{"run", "source"}),
		runsEnded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "line_defense_runs_ended_total",
			Help: "Finished runs by outcome",
		}, []string{"outcome"}), // victory, defeat
		wavesReached: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "line_defense_wave_reached",
			Help:    "Wave reached when a run ended",
			Buckets: prometheus.LinearBuckets(1, 2, 15),
		}),
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "line_defense_tick_duration_seconds",
			Help:    "Wall time spent in one simulation tick",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// HUD returns a sink that labels every value with run.
func (m *Metrics) HUD(run string) interfaces.HUD {
	return &hudSink{m: m, run: run}
}

// ObserveRunEnded counts a finished run.
func (m *Metrics) ObserveRunEnded(d event.RunEndedData) {
	outcome := "defeat"
	if d.Victory {
		outcome = "victory"
	}
	m.runsEnded.WithLabelValues(outcome).Inc()
	m.wavesReached.Observe(float64(d.Wave))
}

func (m *Metrics) ObserveTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}

type hudSink struct {
	m   *Metrics
	run string
}

func (h *hudSink) SetNumber(name string, v float64) {
	h.m.fields.WithLabelValues(h.run, name).Set(v)
}

// Текст в Prometheus не кладём.
func (h *hudSink) SetText(string, string) {}

func (h *hudSink) SetDamageBreakdown(entries []interfaces.DamageEntry) {
	for _, e := range entries {
		h.m.damage.WithLabelValues(h.run, e.Source).Set(e.Amount)
	}
}
