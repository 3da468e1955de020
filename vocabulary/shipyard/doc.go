// Package shipyard provides domain vocabulary predicates for the smart
// shipyard ontology.
//
// The vocabulary covers the physical and organisational entities of a
// shipbuilding yard: vessels under construction and their components,
// yard facilities, equipment, IoT sensors, workforce, manufacturing
// processes, materials, and the digital systems that coordinate them.
//
// # Semstreams Integration
//
// This package follows semstreams vocabulary patterns:
//   - Predicates use three-level dotted notation (domain.category.property)
//   - Predicates are registered in init() using vocabulary.Register()
//   - IRI mappings use vocabulary.WithIRI() for RDF export compatibility
//   - Metadata includes description and data type
//
// # Domain Vocabularies
//
// The package consolidates predicates from the yard's domains:
//   - Asset: shared physical-asset attributes (shipyard.asset.*)
//   - Vessel: ships under construction (shipyard.vessel.*)
//   - Component: vessel components (shipyard.component.*)
//   - Sensor: IoT sensor network (shipyard.sensor.*)
//   - Person: workforce and roles (shipyard.person.*)
//   - Process: manufacturing operations (shipyard.process.*)
//   - Material: stock and consumables (shipyard.material.*)
//   - System: digital infrastructure (shipyard.system.*)
//
// # Usage
//
// Import the package to register predicates, then use predicate constants:
//
//	import (
//	    "github.com/c360studio/shipyard/vocabulary/shipyard"
//	    "github.com/c360studio/semstreams/message"
//	)
//
//	func buildTriples(entityID string, v *Vessel) []message.Triple {
//	    return []message.Triple{
//	        {Subject: entityID, Predicate: shipyard.VesselType, Object: v.Type},
//	        {Subject: entityID, Predicate: shipyard.VesselCompletion, Object: v.Completion},
//	        {Subject: entityID, Predicate: shipyard.AssetStatus, Object: string(shipyard.VesselStatusUnderConstruction)},
//	    }
//	}
//
// # RDF Export
//
// The mappings.go file resolves dotted predicates and class names to IRIs
// for RDF export:
//
//	iri := shipyard.GetPredicateIRI(shipyard.VesselCompletion)
//	classIRI := shipyard.ClassIRIMap["Vessel"]
package shipyard
