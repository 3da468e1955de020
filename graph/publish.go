// Package graph publishes shipyard individuals to the knowledge graph.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/shipyard/ontology"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

// Subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// EntityIngestMessage is the message format for graph ingestion.
// Matches the format used by other semstreams components.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Publisher pushes shipyard individuals to the knowledge graph over NATS.
// A nil client disables publishing (graceful degradation).
type Publisher struct {
	nc     *natsclient.Client
	source string
}

// NewPublisher creates a publisher. Each publisher instance carries a
// unique source tag so downstream consumers can attribute a run.
func NewPublisher(nc *natsclient.Client) *Publisher {
	return &Publisher{
		nc:     nc,
		source: "shipyard.populate." + uuid.NewString(),
	}
}

// PublishGraph publishes every individual in the graph.
func (p *Publisher) PublishGraph(ctx context.Context, g *ontology.Graph) error {
	if p.nc == nil {
		return nil
	}
	for _, ind := range g.Individuals() {
		if err := p.PublishIndividual(ctx, g, ind); err != nil {
			return err
		}
	}
	return nil
}

// PublishIndividual publishes one individual's triples.
func (p *Publisher) PublishIndividual(ctx context.Context, g *ontology.Graph, ind *ontology.Individual) error {
	if p.nc == nil {
		return nil
	}

	entityID := EntityID(g.Schema(), ind)
	now := time.Now()

	msg := EntityIngestMessage{
		ID:        entityID,
		Triples:   p.triplesFor(g, ind, entityID, now),
		UpdatedAt: now,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal entity %s: %w", entityID, err)
	}

	if err := p.nc.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
		return fmt.Errorf("publish entity %s: %w", entityID, err)
	}
	return nil
}

// triplesFor converts an individual's attributes and outgoing edges to
// graph triples with dotted predicates.
func (p *Publisher) triplesFor(g *ontology.Graph, ind *ontology.Individual, entityID string, now time.Time) []message.Triple {
	var triples []message.Triple

	add := func(predicate string, object any) {
		triples = append(triples, message.Triple{
			Subject:    entityID,
			Predicate:  predicate,
			Object:     object,
			Source:     p.source,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}

	schema := g.Schema()

	// Class triples lead so consumers can type the entity before
	// reading its attributes.
	for _, typeIRI := range vocab.GetTypesForEntity(entityTypeOf(schema, ind.Class)) {
		add(vocab.EntityClass, typeIRI)
	}

	for _, prop := range schema.DataProperties() {
		if !ind.Has(prop.Name) {
			continue
		}
		pred, ok := dataPredicate(schema, ind.Class, prop.Name)
		if !ok {
			continue
		}
		switch prop.Kind {
		case ontology.KindString:
			for _, s := range ind.Strings(prop.Name) {
				add(pred, s)
			}
		case ontology.KindInt:
			if v, ok := ind.Int(prop.Name); ok {
				add(pred, v)
			}
		case ontology.KindFloat:
			if v, ok := ind.Float(prop.Name); ok {
				add(pred, v)
			}
		}
	}

	// Personnel carry their role as an explicit predicate; the class
	// encodes it in the local graph but consumers only see triples.
	if schema.IsSubclassOf(ind.Class, ontology.ClassPerson) {
		add(vocab.PersonRole, roleOf(ind.Class))
	}

	for _, prop := range schema.ObjectProperties() {
		pred, ok := objectPredicate(prop.Name)
		if !ok {
			continue
		}
		for _, obj := range g.Objects(ind, prop.Name) {
			add(pred, EntityID(schema, obj))
		}
	}

	return triples
}

// EntityID generates a consistent knowledge-graph ID for an individual.
// Format: shipyard.local.yard.<entity-type>.<slug>
func EntityID(schema *ontology.Schema, ind *ontology.Individual) string {
	return fmt.Sprintf("shipyard.local.yard.%s.%s", entityTypeOf(schema, ind.Class), slugify(ind.ID))
}

// entityTypeOf maps a class to its top-level entity type by walking the
// taxonomy branches.
func entityTypeOf(schema *ontology.Schema, class ontology.Class) vocab.EntityType {
	switch {
	case schema.IsSubclassOf(class, ontology.ClassVessel):
		return vocab.EntityTypeVessel
	case schema.IsSubclassOf(class, ontology.ClassVesselComponent):
		return vocab.EntityTypeComponent
	case schema.IsSubclassOf(class, ontology.ClassShipyardFacility):
		return vocab.EntityTypeFacility
	case schema.IsSubclassOf(class, ontology.ClassEquipment):
		return vocab.EntityTypeEquipment
	case schema.IsSubclassOf(class, ontology.ClassSensor):
		return vocab.EntityTypeSensor
	case schema.IsSubclassOf(class, ontology.ClassPerson):
		return vocab.EntityTypePerson
	case schema.IsSubclassOf(class, ontology.ClassProcess):
		return vocab.EntityTypeProcess
	case schema.IsSubclassOf(class, ontology.ClassMaterial):
		return vocab.EntityTypeMaterial
	case schema.IsSubclassOf(class, ontology.ClassDigitalSystem):
		return vocab.EntityTypeSystem
	default:
		return vocab.EntityType("thing")
	}
}

// dataPredicate maps a schema data property to its dotted predicate.
// Status and completion are branch-dependent; everything else is fixed.
func dataPredicate(schema *ontology.Schema, class ontology.Class, name string) (string, bool) {
	isProcess := schema.IsSubclassOf(class, ontology.ClassProcess)

	switch name {
	case ontology.PropName:
		return vocab.AssetName, true
	case ontology.PropID:
		return vocab.AssetID, true
	case ontology.PropStatus:
		if isProcess {
			return vocab.ProcessStatusPredicate, true
		}
		return vocab.AssetStatus, true
	case ontology.PropCapacity:
		return vocab.AssetCapacity, true
	case ontology.PropCompletion:
		if isProcess {
			return vocab.ProcessCompletion, true
		}
		return vocab.VesselCompletion, true
	case ontology.PropVesselType:
		return vocab.VesselType, true
	case ontology.PropLength:
		return vocab.VesselLength, true
	case ontology.PropDeadweight:
		return vocab.VesselDeadweight, true
	case ontology.PropQualityScore:
		return vocab.ComponentQuality, true
	case ontology.PropReading:
		return vocab.SensorReading, true
	case ontology.PropCoordinates:
		return vocab.SensorCoordinates, true
	case ontology.PropTimestamp:
		return vocab.SensorTimestamp, true
	case ontology.PropExperience:
		return vocab.PersonExperience, true
	case ontology.PropCertification:
		return vocab.PersonCertification, true
	case ontology.PropPriority:
		return vocab.ProcessPriority, true
	case ontology.PropTemperature:
		return vocab.ProcessTemperature, true
	case ontology.PropQuantity:
		return vocab.MaterialQuantity, true
	default:
		return "", false
	}
}

// objectPredicate maps a schema object property to its dotted predicate.
func objectPredicate(name string) (string, bool) {
	switch name {
	case ontology.PropLocatedIn:
		return vocab.AssetLocation, true
	case ontology.PropPartOf:
		return vocab.ComponentVessel, true
	case ontology.PropInstalledOn:
		return vocab.SensorInstalledOn, true
	case ontology.PropMonitors:
		return vocab.SensorMonitors, true
	case ontology.PropOperatedBy:
		return vocab.ProcessOperator, true
	case ontology.PropSupervisedBy:
		return vocab.ProcessSupervisor, true
	case ontology.PropInspectedBy:
		return vocab.ProcessInspector, true
	case ontology.PropProduces:
		return vocab.ProcessProduces, true
	case ontology.PropRequires:
		return vocab.ProcessRequires, true
	case ontology.PropUsedIn:
		return vocab.MaterialUsedIn, true
	case ontology.PropManages:
		return vocab.SystemManages, true
	default:
		return "", false
	}
}

// roleOf derives the workforce role string from a person class.
func roleOf(class ontology.Class) string {
	switch class {
	case ontology.ClassWelder:
		return string(vocab.RoleWelder)
	case ontology.ClassElectrician:
		return string(vocab.RoleElectrician)
	case ontology.ClassPainter:
		return string(vocab.RolePainter)
	case ontology.ClassEngineer:
		return string(vocab.RoleEngineer)
	case ontology.ClassQualityInspector:
		return string(vocab.RoleInspector)
	case ontology.ClassSafetyOfficer:
		return string(vocab.RoleSafetyOfficer)
	case ontology.ClassManager:
		return string(vocab.RoleManager)
	default:
		return strings.ToLower(string(class))
	}
}

// slugify lowercases an individual ID for use in entity IDs.
func slugify(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "_", "-"))
}
