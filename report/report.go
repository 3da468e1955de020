// Package report renders a human-readable yard status report.
package report

import (
	"fmt"
	"io"

	"github.com/c360studio/shipyard/analytics"
	"github.com/c360studio/shipyard/ontology"
	"github.com/c360studio/shipyard/query"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

// Thresholds configure the highlight queries: vessels past Completion
// percent and workers with more than Experience years.
type Thresholds struct {
	Completion float64
	Experience int
}

// DefaultThresholds returns the built-in highlight cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Completion: 50.0, Experience: 10}
}

// Write renders the full yard report to w. Sections follow the order of
// the taxonomy: vessels, workforce, sensors, processes, equipment,
// inventory, digital systems, then KPIs and highlight queries.
func Write(w io.Writer, g *ontology.Graph, th Thresholds) error {
	sections := []func(io.Writer, *ontology.Graph) error{
		writeVessels,
		writeWorkforce,
		writeSensors,
		writeProcesses,
		writeEquipment,
		writeInventory,
		writeDigitalSystems,
		writeKPIs,
	}
	for _, section := range sections {
		if err := section(w, g); err != nil {
			return err
		}
	}
	return writeHighlights(w, g, th)
}

func header(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "\n=== %s ===\n", title)
	return err
}

func writeVessels(w io.Writer, g *ontology.Graph) error {
	if err := header(w, "Vessels Under Construction"); err != nil {
		return err
	}
	for _, v := range g.InstancesOf(ontology.ClassVessel) {
		vtype, _ := v.String(ontology.PropVesselType)
		completion, _ := v.Float(ontology.PropCompletion)
		if _, err := fmt.Fprintf(w, "%s (%s): %.1f%% complete\n", v.Label(), vtype, completion); err != nil {
			return err
		}
		for _, c := range query.ComponentsOf(g, v) {
			line := "  - " + c.Label()
			if score, ok := c.Float(ontology.PropQualityScore); ok {
				line += fmt.Sprintf(" (quality %.1f)", score)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeWorkforce(w io.Writer, g *ontology.Graph) error {
	if err := header(w, "Workforce"); err != nil {
		return err
	}
	for _, p := range g.InstancesOf(ontology.ClassPerson) {
		years, _ := p.Int(ontology.PropExperience)
		if _, err := fmt.Fprintf(w, "%s (%s): %d years", p.Label(), p.Class, years); err != nil {
			return err
		}
		if certs := p.Strings(ontology.PropCertification); len(certs) > 0 {
			if _, err := fmt.Fprintf(w, ", certifications: %v", certs); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeSensors(w io.Writer, g *ontology.Graph) error {
	if err := header(w, "Sensor Network"); err != nil {
		return err
	}
	for _, s := range g.InstancesOf(ontology.ClassSensor) {
		line := s.Label()
		if reading, ok := s.Float(ontology.PropReading); ok {
			line += fmt.Sprintf(": reading %.1f", reading)
		}
		if host, ok := g.Object(s, ontology.PropInstalledOn); ok {
			line += " on " + host.Label()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeProcesses(w io.Writer, g *ontology.Graph) error {
	if err := header(w, "Manufacturing Processes"); err != nil {
		return err
	}
	for _, p := range g.InstancesOf(ontology.ClassProcess) {
		status, _ := p.String(ontology.PropStatus)
		completion, _ := p.Float(ontology.PropCompletion)
		line := fmt.Sprintf("%s: %s, %.0f%%", p.Label(), status, completion)
		if priority, ok := p.String(ontology.PropPriority); ok {
			line += ", priority " + priority
		}
		if op, ok := g.Object(p, ontology.PropOperatedBy); ok {
			line += ", operator " + op.Label()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeEquipment(w io.Writer, g *ontology.Graph) error {
	if err := header(w, "Equipment"); err != nil {
		return err
	}
	for _, e := range g.InstancesOf(ontology.ClassEquipment) {
		status, _ := e.String(ontology.PropStatus)
		line := fmt.Sprintf("%s: %s", e.Label(), status)
		if loc, ok := g.Object(e, ontology.PropLocatedIn); ok {
			line += " at " + loc.Label()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeInventory(w io.Writer, g *ontology.Graph) error {
	if err := header(w, "Material Inventory"); err != nil {
		return err
	}
	for _, m := range g.InstancesOf(ontology.ClassMaterial) {
		qty, _ := m.Int(ontology.PropQuantity)
		line := m.Label()
		if kind, ok := vocab.MaterialKindMap[string(m.Class)]; ok {
			line += fmt.Sprintf(" [%s]", kind)
		}
		if _, err := fmt.Fprintf(w, "%s: %d in stock\n", line, qty); err != nil {
			return err
		}
	}
	return nil
}

func writeDigitalSystems(w io.Writer, g *ontology.Graph) error {
	if err := header(w, "Digital Systems"); err != nil {
		return err
	}
	for _, s := range g.InstancesOf(ontology.ClassDigitalSystem) {
		managed := query.ManagedBy(g, s)
		line := s.Label()
		if kind, ok := vocab.SystemKindMap[string(s.Class)]; ok {
			line += fmt.Sprintf(" [%s]", kind)
		}
		if _, err := fmt.Fprintf(w, "%s: managing %d items\n", line, len(managed)); err != nil {
			return err
		}
	}
	return nil
}

func writeKPIs(w io.Writer, g *ontology.Graph) error {
	if err := header(w, "Key Performance Indicators"); err != nil {
		return err
	}

	snap := analytics.TakeSnapshot(g)
	if _, err := fmt.Fprintf(w, "Population: %d vessels, %d processes, %d people, %d sensors\n",
		snap.Vessels, snap.Processes, snap.People, snap.Sensors); err != nil {
		return err
	}

	if avg, ok := analytics.AverageCompletion(g); ok {
		if _, err := fmt.Fprintf(w, "Average vessel completion: %.1f%%\n", avg); err != nil {
			return err
		}
	}
	if util, ok := analytics.EquipmentUtilization(g); ok {
		if _, err := fmt.Fprintf(w, "Equipment utilization: %.1f%%\n", util); err != nil {
			return err
		}
	}
	if avg, ok := analytics.AverageQualityScore(g); ok {
		if _, err := fmt.Fprintf(w, "Average component quality: %.2f\n", avg); err != nil {
			return err
		}
	}
	if avg, ok := analytics.AverageExperience(g); ok {
		if _, err := fmt.Fprintf(w, "Average workforce experience: %.1f years\n", avg); err != nil {
			return err
		}
	}

	dist := analytics.ProcessStatusDistribution(g)
	for _, status := range []vocab.ProcessStatus{
		vocab.ProcessStatusScheduled, vocab.ProcessStatusPending,
		vocab.ProcessStatusInProgress, vocab.ProcessStatusCompleted,
	} {
		if n, ok := dist[status]; ok {
			if _, err := fmt.Fprintf(w, "Processes %s: %d\n", status, n); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeHighlights(w io.Writer, g *ontology.Graph, th Thresholds) error {
	if err := header(w, "Highlights"); err != nil {
		return err
	}

	for _, v := range query.VesselsAboveCompletion(g, th.Completion) {
		if _, err := fmt.Fprintf(w, "Ahead: %s past %.0f%% completion\n", v.Label(), th.Completion); err != nil {
			return err
		}
	}
	for _, p := range query.WorkersWithExperience(g, th.Experience) {
		years, _ := p.Int(ontology.PropExperience)
		if _, err := fmt.Fprintf(w, "Senior: %s with %d years\n", p.Label(), years); err != nil {
			return err
		}
	}
	for _, p := range query.HighPriorityProcesses(g) {
		if _, err := fmt.Fprintf(w, "High priority: %s\n", p.Label()); err != nil {
			return err
		}
	}
	return nil
}
