// Package analytics computes shipyard KPIs from a populated graph. All
// averages return a second boolean that is false when the contributing
// set is empty; callers must not read the zero value as a measurement.
package analytics

import (
	"github.com/c360studio/shipyard/ontology"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

// Snapshot is a point-in-time census of the yard.
type Snapshot struct {
	Vessels    int
	Components int
	Facilities int
	Equipment  int
	Sensors    int
	People     int
	Processes  int
	Materials  int
	Systems    int
}

// TakeSnapshot counts the population per top-level branch.
func TakeSnapshot(g *ontology.Graph) Snapshot {
	return Snapshot{
		Vessels:    len(g.InstancesOf(ontology.ClassVessel)),
		Components: len(g.InstancesOf(ontology.ClassVesselComponent)),
		Facilities: len(g.InstancesOf(ontology.ClassShipyardFacility)),
		Equipment:  len(g.InstancesOf(ontology.ClassEquipment)),
		Sensors:    len(g.InstancesOf(ontology.ClassSensor)),
		People:     len(g.InstancesOf(ontology.ClassPerson)),
		Processes:  len(g.InstancesOf(ontology.ClassProcess)),
		Materials:  len(g.InstancesOf(ontology.ClassMaterial)),
		Systems:    len(g.InstancesOf(ontology.ClassDigitalSystem)),
	}
}

// AverageCompletion averages completion over all vessels carrying a
// completion value.
func AverageCompletion(g *ontology.Graph) (float64, bool) {
	return averageFloat(g, ontology.ClassVessel, ontology.PropCompletion)
}

// AverageQualityScore averages the quality score over inspected
// components. Components never inspected do not drag the average down.
func AverageQualityScore(g *ontology.Graph) (float64, bool) {
	return averageFloat(g, ontology.ClassVesselComponent, ontology.PropQualityScore)
}

// AverageExperience averages years of experience across all personnel.
func AverageExperience(g *ontology.Graph) (float64, bool) {
	sum, n := 0, 0
	for _, p := range g.InstancesOf(ontology.ClassPerson) {
		if y, ok := p.Int(ontology.PropExperience); ok {
			sum += y
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// EquipmentUtilization returns the share of equipment currently
// operational, as a percentage of equipment with a known status.
func EquipmentUtilization(g *ontology.Graph) (float64, bool) {
	operational, total := 0, 0
	for _, e := range g.InstancesOf(ontology.ClassEquipment) {
		status, ok := e.String(ontology.PropStatus)
		if !ok {
			continue
		}
		total++
		if status == string(vocab.EquipmentStatusOperational) {
			operational++
		}
	}
	if total == 0 {
		return 0, false
	}
	return 100 * float64(operational) / float64(total), true
}

// ProcessStatusDistribution counts processes per lifecycle status.
// Statuses absent from the yard are absent from the map.
func ProcessStatusDistribution(g *ontology.Graph) map[vocab.ProcessStatus]int {
	dist := make(map[vocab.ProcessStatus]int)
	for _, p := range g.InstancesOf(ontology.ClassProcess) {
		if s, ok := p.String(ontology.PropStatus); ok {
			dist[vocab.ProcessStatus(s)]++
		}
	}
	return dist
}

func averageFloat(g *ontology.Graph, class ontology.Class, prop string) (float64, bool) {
	sum, n := 0.0, 0
	for _, ind := range g.InstancesOf(class) {
		if v, ok := ind.Float(prop); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
