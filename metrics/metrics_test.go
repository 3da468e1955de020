package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/shipyard/ontology"
	"github.com/c360studio/shipyard/population"
)

func gaugeValue(t *testing.T, families []*dto.MetricFamily, name string, labels map[string]string) float64 {
	t.Helper()
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
	metric:
		for _, m := range fam.GetMetric() {
			for k, want := range labels {
				found := false
				for _, lp := range m.GetLabel() {
					if lp.GetName() == k && lp.GetValue() == want {
						found = true
						break
					}
				}
				if !found {
					continue metric
				}
			}
			return m.GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s %v not found", name, labels)
	return 0
}

func TestCollectorUpdate(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())
	require.NoError(t, population.Populate(g))

	c := NewCollector()
	c.Update(g)

	families, err := c.Registry().Gather()
	require.NoError(t, err)

	assert.Equal(t, 2.0, gaugeValue(t, families, "shipyard_population", map[string]string{"branch": "vessels"}))
	assert.Equal(t, 8.0, gaugeValue(t, families, "shipyard_population", map[string]string{"branch": "people"}))
	assert.InDelta(t, 52.5, gaugeValue(t, families, "shipyard_vessel_completion_percent", nil), 1e-9)
	assert.InDelta(t, 100.0, gaugeValue(t, families, "shipyard_equipment_utilization_percent", nil), 1e-9)
	assert.Equal(t, 1.0, gaugeValue(t, families, "shipyard_processes", map[string]string{"status": "in_progress"}))
}

func TestCollectorEmptyGraph(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())

	c := NewCollector()
	c.Update(g)

	families, err := c.Registry().Gather()
	require.NoError(t, err)

	assert.Zero(t, gaugeValue(t, families, "shipyard_vessel_completion_percent", nil))
}

func TestHandlerServesMetrics(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())
	require.NoError(t, population.Populate(g))

	c := NewCollector()
	c.Update(g)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shipyard_vessel_completion_percent 52.5")
}
