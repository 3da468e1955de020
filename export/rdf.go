// Package export serializes a shipyard graph to RDF.
package export

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/shipyard/ontology"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// Triple represents a property assertion for export. Predicate holds a
// property name from the schema; the exporter resolves it to an IRI.
type Triple struct {
	Subject   string
	Predicate string
	Object    any
}

// Entity represents an exportable individual with its class and triples.
type Entity struct {
	ID      string
	Class   ontology.Class
	Triples []Triple
}

// RDFExporter exports shipyard entities to RDF. Type assertions cover the
// entity's full superclass chain so consumers get taxonomy membership
// without running inference.
type RDFExporter struct {
	schema   *ontology.Schema
	entities []Entity
	prefixes map[string]string
}

// NewRDFExporter creates an exporter over the given schema.
func NewRDFExporter(schema *ontology.Schema) *RDFExporter {
	return &RDFExporter{
		schema:   schema,
		entities: make([]Entity, 0),
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the standard namespace prefixes for RDF export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":      "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":     "http://www.w3.org/2000/01/rdf-schema#",
		"owl":      "http://www.w3.org/2002/07/owl#",
		"xsd":      "http://www.w3.org/2001/XMLSchema#",
		"shipyard": vocab.Namespace,
		"entity":   vocab.EntityNamespace,
	}
}

// FromGraph builds an exporter holding every individual in the graph, in
// insertion order. Data properties and outgoing edges become triples.
func FromGraph(g *ontology.Graph) *RDFExporter {
	e := NewRDFExporter(g.Schema())
	for _, ind := range g.Individuals() {
		e.AddEntity(entityFromIndividual(g, ind))
	}
	return e
}

func entityFromIndividual(g *ontology.Graph, ind *ontology.Individual) Entity {
	entity := Entity{ID: ind.ID, Class: ind.Class}

	// Schema declaration order keeps output stable across runs.
	for _, prop := range g.Schema().DataProperties() {
		for _, v := range valuesOf(ind, prop) {
			entity.Triples = append(entity.Triples, Triple{
				Subject:   ind.ID,
				Predicate: prop.Name,
				Object:    v,
			})
		}
	}

	for _, prop := range g.Schema().ObjectProperties() {
		for _, obj := range g.Objects(ind, prop.Name) {
			entity.Triples = append(entity.Triples, Triple{
				Subject:   ind.ID,
				Predicate: prop.Name,
				Object:    entityIDToIRI(obj.ID),
			})
		}
	}
	return entity
}

func valuesOf(ind *ontology.Individual, prop ontology.DataProperty) []any {
	if !ind.Has(prop.Name) {
		return nil
	}
	switch prop.Kind {
	case ontology.KindString:
		strs := ind.Strings(prop.Name)
		out := make([]any, 0, len(strs))
		for _, s := range strs {
			out = append(out, s)
		}
		return out
	case ontology.KindInt:
		if v, ok := ind.Int(prop.Name); ok {
			return []any{v}
		}
	case ontology.KindFloat:
		if v, ok := ind.Float(prop.Name); ok {
			return []any{v}
		}
	}
	return nil
}

// AddEntity adds an entity to be exported.
func (e *RDFExporter) AddEntity(entity Entity) {
	e.entities = append(e.entities, entity)
}

// Export serializes all entities to the specified format.
func (e *RDFExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	case FormatJSONLD:
		return e.toJSONLD(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile serializes to format and writes the result to path.
func (e *RDFExporter) WriteFile(path string, format Format) error {
	out, err := e.Export(format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// typeIRIs returns the rdf:type assertions for a class: its own IRI plus
// every ancestor up to the root.
func (e *RDFExporter) typeIRIs(class ontology.Class) []string {
	chain := e.schema.Ancestors(class)
	out := make([]string, 0, len(chain))
	for _, c := range chain {
		if iri, ok := vocab.ClassIRIMap[string(c)]; ok {
			out = append(out, iri)
		}
	}
	return out
}

// propertyIRI resolves a schema property name to its vocabulary IRI.
func propertyIRI(name string) string {
	if iri, ok := vocab.DataPropertyIRIMap[name]; ok {
		return iri
	}
	if iri, ok := vocab.ObjectPropertyIRIMap[name]; ok {
		return iri
	}
	return vocab.Namespace + name
}

// toTurtle serializes to Turtle format.
func (e *RDFExporter) toTurtle() string {
	var sb strings.Builder

	for _, prefix := range sortedKeys(e.prefixes) {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")

	for _, entity := range e.entities {
		e.writeEntityTurtle(&sb, entity)
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeEntityTurtle writes a single entity in Turtle format.
func (e *RDFExporter) writeEntityTurtle(sb *strings.Builder, entity Entity) {
	iri := entityIDToIRI(entity.ID)
	sb.WriteString(fmt.Sprintf("<%s>\n", iri))

	types := e.typeIRIs(entity.Class)
	for i, typeIRI := range types {
		sb.WriteString(fmt.Sprintf("    a <%s>", typeIRI))
		if i < len(types)-1 || len(entity.Triples) > 0 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}

	for i, triple := range entity.Triples {
		sb.WriteString(fmt.Sprintf("    <%s> %s", propertyIRI(triple.Predicate), formatObject(triple.Object)))
		if i < len(entity.Triples)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// toNTriples serializes to N-Triples format.
func (e *RDFExporter) toNTriples() string {
	var sb strings.Builder

	for _, entity := range e.entities {
		iri := entityIDToIRI(entity.ID)

		for _, typeIRI := range e.typeIRIs(entity.Class) {
			sb.WriteString(fmt.Sprintf("<%s> <%s> <%s> .\n", iri, rdfTypeIRI, typeIRI))
		}

		for _, triple := range entity.Triples {
			sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n",
				iri, propertyIRI(triple.Predicate), formatObjectNTriples(triple.Object)))
		}
	}

	return sb.String()
}

// toJSONLD serializes to JSON-LD format.
func (e *RDFExporter) toJSONLD() string {
	var sb strings.Builder

	sb.WriteString("{\n")
	sb.WriteString("  \"@context\": {\n")

	prefixKeys := sortedKeys(e.prefixes)
	for i, prefix := range prefixKeys {
		sb.WriteString(fmt.Sprintf("    \"%s\": \"%s\"", prefix, e.prefixes[prefix]))
		if i < len(prefixKeys)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  },\n")
	sb.WriteString("  \"@graph\": [\n")

	for i, entity := range e.entities {
		e.writeEntityJSONLD(&sb, entity)
		if i < len(e.entities)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  ]\n")
	sb.WriteString("}\n")

	return sb.String()
}

// writeEntityJSONLD writes a single entity in JSON-LD format.
func (e *RDFExporter) writeEntityJSONLD(sb *strings.Builder, entity Entity) {
	iri := entityIDToIRI(entity.ID)
	types := e.typeIRIs(entity.Class)

	sb.WriteString("    {\n")
	sb.WriteString(fmt.Sprintf("      \"@id\": \"%s\",\n", iri))

	sb.WriteString("      \"@type\": [")
	for i, t := range types {
		sb.WriteString(fmt.Sprintf("%q", t))
		if i < len(types)-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")

	for _, triple := range entity.Triples {
		sb.WriteString(",\n")
		sb.WriteString(fmt.Sprintf("      \"%s\": %s",
			propertyIRI(triple.Predicate), formatObjectJSONLD(triple.Object)))
	}

	sb.WriteString("\n    }")
}

// entityIDToIRI converts a graph individual ID to its entity IRI.
func entityIDToIRI(id string) string {
	return vocab.EntityNamespace + id
}

// formatObject formats an object value for Turtle output.
func formatObject(obj any) string {
	switch v := obj.(type) {
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("<%s>", v)
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("\"%s\"^^xsd:dateTime", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^xsd:integer", v)
	case float32:
		return fmt.Sprintf("\"%s\"^^xsd:decimal", strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return fmt.Sprintf("\"%s\"^^xsd:decimal", strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		return fmt.Sprintf("\"%t\"^^xsd:boolean", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// formatObjectNTriples formats an object value for N-Triples output.
func formatObjectNTriples(obj any) string {
	switch v := obj.(type) {
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("<%s>", v)
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("\"%s\"^^<http://www.w3.org/2001/XMLSchema#dateTime>", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^<http://www.w3.org/2001/XMLSchema#integer>", v)
	case float32:
		return fmt.Sprintf("\"%s\"^^<http://www.w3.org/2001/XMLSchema#decimal>",
			strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return fmt.Sprintf("\"%s\"^^<http://www.w3.org/2001/XMLSchema#decimal>",
			strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		return fmt.Sprintf("\"%t\"^^<http://www.w3.org/2001/XMLSchema#boolean>", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// formatObjectJSONLD formats an object value for JSON-LD output.
func formatObjectJSONLD(obj any) string {
	switch v := obj.(type) {
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("{\"@id\": \"%s\"}", v)
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("{\"@value\": \"%s\", \"@type\": \"xsd:dateTime\"}", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("%d", v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
