// Package metrics exposes yard KPIs as Prometheus gauges.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360studio/shipyard/analytics"
	"github.com/c360studio/shipyard/ontology"
)

// Collector holds the KPI gauges on a private registry so tests and
// embedders never collide with the default global registry.
type Collector struct {
	registry *prometheus.Registry

	population           *prometheus.GaugeVec
	vesselCompletion     prometheus.Gauge
	equipmentUtilization prometheus.Gauge
	componentQuality     prometheus.Gauge
	workforceExperience  prometheus.Gauge
	processStatus        *prometheus.GaugeVec
}

// NewCollector creates a collector with all gauges registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		population: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "shipyard",
			Name:      "population",
			Help:      "Number of individuals per taxonomy branch.",
		}, []string{"branch"}),
		vesselCompletion: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shipyard",
			Name:      "vessel_completion_percent",
			Help:      "Average completion across vessels under construction.",
		}),
		equipmentUtilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shipyard",
			Name:      "equipment_utilization_percent",
			Help:      "Share of equipment currently operational.",
		}),
		componentQuality: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shipyard",
			Name:      "component_quality_score",
			Help:      "Average quality score of inspected components.",
		}),
		workforceExperience: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shipyard",
			Name:      "workforce_experience_years",
			Help:      "Average years of experience across personnel.",
		}),
		processStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "shipyard",
			Name:      "processes",
			Help:      "Number of processes per lifecycle status.",
		}, []string{"status"}),
	}

	c.registry.MustRegister(
		c.population,
		c.vesselCompletion,
		c.equipmentUtilization,
		c.componentQuality,
		c.workforceExperience,
		c.processStatus,
	)
	return c
}

// Update refreshes all gauges from the graph. Averages with no
// contributing individuals leave their gauge at zero.
func (c *Collector) Update(g *ontology.Graph) {
	snap := analytics.TakeSnapshot(g)
	c.population.WithLabelValues("vessels").Set(float64(snap.Vessels))
	c.population.WithLabelValues("components").Set(float64(snap.Components))
	c.population.WithLabelValues("facilities").Set(float64(snap.Facilities))
	c.population.WithLabelValues("equipment").Set(float64(snap.Equipment))
	c.population.WithLabelValues("sensors").Set(float64(snap.Sensors))
	c.population.WithLabelValues("people").Set(float64(snap.People))
	c.population.WithLabelValues("processes").Set(float64(snap.Processes))
	c.population.WithLabelValues("materials").Set(float64(snap.Materials))
	c.population.WithLabelValues("systems").Set(float64(snap.Systems))

	if avg, ok := analytics.AverageCompletion(g); ok {
		c.vesselCompletion.Set(avg)
	}
	if util, ok := analytics.EquipmentUtilization(g); ok {
		c.equipmentUtilization.Set(util)
	}
	if avg, ok := analytics.AverageQualityScore(g); ok {
		c.componentQuality.Set(avg)
	}
	if avg, ok := analytics.AverageExperience(g); ok {
		c.workforceExperience.Set(avg)
	}
	for status, n := range analytics.ProcessStatusDistribution(g) {
		c.processStatus.WithLabelValues(string(status)).Set(float64(n))
	}
}

// Handler returns an HTTP handler serving the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for test gathering.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
