package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"line-defense/internal/event"
	"line-defense/internal/interfaces"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// find returns the metric of family name whose labels include want.
func find(t *testing.T, m *Metrics, name string, want map[string]string) *dto.Metric {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	next:
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			for k, v := range want {
				if labels[k] != v {
					continue next
				}
			}
			return metric
		}
	}
	t.Fatalf("metric %s %v not found", name, want)
	return nil
}

func TestHUDSinkSetsGauges(t *testing.T) {
	m := New()
	hud := m.HUD("3")

	hud.SetNumber(interfaces.FieldKills, 12)
	hud.SetNumber(interfaces.FieldKills, 14)
	hud.SetText(interfaces.FieldPhase, "running")
	hud.SetDamageBreakdown([]interfaces.DamageEntry{
		{Source: "main_weapon", Amount: 120, Share: 0.8},
		{Source: "Aurora", Amount: 30, Share: 0.2},
	})

	kills := find(t, m, "line_defense_hud_value", map[string]string{"run": "3", "field": "kills"})
	assert.Equal(t, 14.0, kills.GetGauge().GetValue())
	aurora := find(t, m, "line_defense_damage_total", map[string]string{"run": "3", "source": "Aurora"})
	assert.Equal(t, 30.0, aurora.GetGauge().GetValue())
}

func TestRunsAreLabelledSeparately(t *testing.T) {
	m := New()
	m.HUD("a").SetNumber(interfaces.FieldWave, 4)
	m.HUD("b").SetNumber(interfaces.FieldWave, 9)

	a := find(t, m, "line_defense_hud_value", map[string]string{"run": "a", "field": "wave"})
	b := find(t, m, "line_defense_hud_value", map[string]string{"run": "b", "field": "wave"})
	assert.Equal(t, 4.0, a.GetGauge().GetValue())
	assert.Equal(t, 9.0, b.GetGauge().GetValue())
}

func TestObserveRunEnded(t *testing.T) {
	m := New()
	m.ObserveRunEnded(event.RunEndedData{Victory: false, Wave: 7})
	m.ObserveRunEnded(event.RunEndedData{Victory: false, Wave: 3})
	m.ObserveRunEnded(event.RunEndedData{Victory: true, Wave: 20})
	m.ObserveTick(time.Millisecond)

	defeats := find(t, m, "line_defense_runs_ended_total", map[string]string{"outcome": "defeat"})
	assert.Equal(t, 2.0, defeats.GetCounter().GetValue())
	waves := find(t, m, "line_defense_wave_reached", nil)
	assert.Equal(t, uint64(3), waves.GetHistogram().GetSampleCount())
	assert.Equal(t, 30.0, waves.GetHistogram().GetSampleSum())
}

func TestHandlerServesPrivateRegistry(t *testing.T) {
	m := New()
	m.HUD("1").SetNumber(interfaces.FieldLevel, 5)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `line_defense_hud_value{field="level",run="1"} 5`)
	assert.NotContains(t, string(body), "go_goroutines", "default collectors are not registered")
}
