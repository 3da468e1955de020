// Package query provides read-only selections over a populated shipyard
// graph. Every function walks insertion order, so results are stable
// across runs for the same population.
package query

import (
	"github.com/c360studio/shipyard/ontology"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

// VesselsBelowCompletion returns vessels whose completion is strictly
// below the threshold. Vessels without a completion value are skipped.
func VesselsBelowCompletion(g *ontology.Graph, threshold float64) []*ontology.Individual {
	var out []*ontology.Individual
	for _, v := range g.InstancesOf(ontology.ClassVessel) {
		if c, ok := v.Float(ontology.PropCompletion); ok && c < threshold {
			out = append(out, v)
		}
	}
	return out
}

// VesselsAboveCompletion returns vessels whose completion is strictly
// above the threshold.
func VesselsAboveCompletion(g *ontology.Graph, threshold float64) []*ontology.Individual {
	var out []*ontology.Individual
	for _, v := range g.InstancesOf(ontology.ClassVessel) {
		if c, ok := v.Float(ontology.PropCompletion); ok && c > threshold {
			out = append(out, v)
		}
	}
	return out
}

// SensorsAboveReading returns sensors whose current reading is strictly
// above the threshold. Sensors without a numeric reading (position,
// safety, quality) never match.
func SensorsAboveReading(g *ontology.Graph, threshold float64) []*ontology.Individual {
	var out []*ontology.Individual
	for _, s := range g.InstancesOf(ontology.ClassSensor) {
		if r, ok := s.Float(ontology.PropReading); ok && r > threshold {
			out = append(out, s)
		}
	}
	return out
}

// WorkersWithExperience returns workers with strictly more than the given
// years of experience. Only Worker subclasses count; engineers, inspectors
// and managers sit outside the Worker branch.
func WorkersWithExperience(g *ontology.Graph, years int) []*ontology.Individual {
	var out []*ontology.Individual
	for _, w := range g.InstancesOf(ontology.ClassWorker) {
		if y, ok := w.Int(ontology.PropExperience); ok && y > years {
			out = append(out, w)
		}
	}
	return out
}

// HighPriorityProcesses returns processes flagged with high priority.
func HighPriorityProcesses(g *ontology.Graph) []*ontology.Individual {
	return ProcessesWithPriority(g, vocab.PriorityHigh)
}

// ProcessesWithPriority returns processes carrying the given priority.
func ProcessesWithPriority(g *ontology.Graph, priority vocab.Priority) []*ontology.Individual {
	var out []*ontology.Individual
	for _, p := range g.InstancesOf(ontology.ClassProcess) {
		if v, ok := p.String(ontology.PropPriority); ok && v == string(priority) {
			out = append(out, p)
		}
	}
	return out
}

// ProcessesWithStatus returns processes in the given lifecycle status.
func ProcessesWithStatus(g *ontology.Graph, status vocab.ProcessStatus) []*ontology.Individual {
	var out []*ontology.Individual
	for _, p := range g.InstancesOf(ontology.ClassProcess) {
		if v, ok := p.String(ontology.PropStatus); ok && v == string(status) {
			out = append(out, p)
		}
	}
	return out
}

// ComponentsOf returns the components asserted as part of the vessel.
func ComponentsOf(g *ontology.Graph, vessel *ontology.Individual) []*ontology.Individual {
	return g.Subjects(ontology.PropPartOf, vessel)
}

// SensorsOn returns the sensors installed on the given asset.
func SensorsOn(g *ontology.Graph, asset *ontology.Individual) []*ontology.Individual {
	return g.Subjects(ontology.PropInstalledOn, asset)
}

// MaterialsUsedIn returns the materials consumed by the given process.
func MaterialsUsedIn(g *ontology.Graph, process *ontology.Individual) []*ontology.Individual {
	return g.Subjects(ontology.PropUsedIn, process)
}

// ManagedBy returns everything the given digital system manages.
func ManagedBy(g *ontology.Graph, system *ontology.Individual) []*ontology.Individual {
	return g.Objects(system, ontology.PropManages)
}

// IndividualsLocatedIn returns everything located in the given facility.
func IndividualsLocatedIn(g *ontology.Graph, facility *ontology.Individual) []*ontology.Individual {
	return g.Subjects(ontology.PropLocatedIn, facility)
}
