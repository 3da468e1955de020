package ontology

import "fmt"

// Edge is a directed, named association between two individuals.
type Edge struct {
	Subject  *Individual
	Property string
	Object   *Individual
}

// Graph is the explicit context object holding all individuals and edges
// of one run. It is built once at population time and read-only afterwards;
// nothing in this package keeps process-wide state.
type Graph struct {
	schema *Schema

	individuals []*Individual
	byID        map[string]*Individual

	edges []Edge
	out   map[string]map[string][]*Individual
	in    map[string]map[string][]*Individual
}

// NewGraph creates an empty graph over the given schema.
func NewGraph(schema *Schema) *Graph {
	return &Graph{
		schema: schema,
		byID:   make(map[string]*Individual),
		out:    make(map[string]map[string][]*Individual),
		in:     make(map[string]map[string][]*Individual),
	}
}

// Schema returns the schema the graph was built against.
func (g *Graph) Schema() *Schema { return g.schema }

// AddIndividual creates an individual of the given class. IDs must be
// unique within the graph.
func (g *Graph) AddIndividual(class Class, id string) (*Individual, error) {
	if !g.schema.HasClass(class) {
		return nil, fmt.Errorf("add %s: class %s: %w", id, class, ErrUnknownClass)
	}
	if id == "" {
		return nil, fmt.Errorf("add individual: empty ID")
	}
	if _, exists := g.byID[id]; exists {
		return nil, fmt.Errorf("add %s: %w", id, ErrDuplicateID)
	}

	ind := &Individual{
		ID:    id,
		Class: class,
		attrs: make(map[string][]Value),
	}
	g.individuals = append(g.individuals, ind)
	g.byID[id] = ind
	return ind, nil
}

// Relate asserts the edge (subject, property, object). The subject's class
// must fall within the property's domain and the object's class within its
// range; functional properties reject a second outgoing edge.
func (g *Graph) Relate(subject *Individual, property string, object *Individual) error {
	prop, ok := g.schema.ObjectProperty(property)
	if !ok {
		return fmt.Errorf("relate %s -[%s]-> %s: %w", subject.ID, property, object.ID, ErrUnknownProperty)
	}
	if !g.schema.inDomain(subject.Class, prop.Domain) {
		return fmt.Errorf("relate %s -[%s]-> %s: subject class %s: %w",
			subject.ID, property, object.ID, subject.Class, ErrDomainViolation)
	}
	if !g.schema.inDomain(object.Class, prop.Range) {
		return fmt.Errorf("relate %s -[%s]-> %s: object class %s: %w",
			subject.ID, property, object.ID, object.Class, ErrRangeViolation)
	}
	if prop.Functional && len(g.out[subject.ID][property]) > 0 {
		return fmt.Errorf("relate %s -[%s]-> %s: %w",
			subject.ID, property, object.ID, ErrFunctionalViolation)
	}

	g.edges = append(g.edges, Edge{Subject: subject, Property: property, Object: object})
	if g.out[subject.ID] == nil {
		g.out[subject.ID] = make(map[string][]*Individual)
	}
	g.out[subject.ID][property] = append(g.out[subject.ID][property], object)
	if g.in[object.ID] == nil {
		g.in[object.ID] = make(map[string][]*Individual)
	}
	g.in[object.ID][property] = append(g.in[object.ID][property], subject)
	return nil
}

// SetString sets a string data property on an individual.
func (g *Graph) SetString(ind *Individual, property, value string) error {
	return g.setValue(ind, property, Value{Kind: KindString, Str: value}, true)
}

// AddString appends a string value to a non-functional data property.
func (g *Graph) AddString(ind *Individual, property, value string) error {
	return g.setValue(ind, property, Value{Kind: KindString, Str: value}, false)
}

// SetInt sets an integer data property on an individual.
func (g *Graph) SetInt(ind *Individual, property string, value int) error {
	return g.setValue(ind, property, Value{Kind: KindInt, Int: value}, true)
}

// SetFloat sets a float data property on an individual.
func (g *Graph) SetFloat(ind *Individual, property string, value float64) error {
	return g.setValue(ind, property, Value{Kind: KindFloat, Float: value}, true)
}

func (g *Graph) setValue(ind *Individual, property string, v Value, replace bool) error {
	prop, ok := g.schema.DataProperty(property)
	if !ok {
		return fmt.Errorf("set %s.%s: %w", ind.ID, property, ErrUnknownProperty)
	}
	if prop.Kind != v.Kind {
		return fmt.Errorf("set %s.%s: have %s, want %s: %w",
			ind.ID, property, v.Kind, prop.Kind, ErrKindMismatch)
	}
	if !g.schema.inDomain(ind.Class, prop.Domain) {
		return fmt.Errorf("set %s.%s: class %s: %w",
			ind.ID, property, ind.Class, ErrDomainViolation)
	}
	if !replace && prop.Functional {
		return fmt.Errorf("set %s.%s: %w", ind.ID, property, ErrFunctionalViolation)
	}

	if replace {
		ind.attrs[property] = []Value{v}
	} else {
		ind.attrs[property] = append(ind.attrs[property], v)
	}
	return nil
}

// Individual looks up an individual by ID.
func (g *Graph) Individual(id string) (*Individual, bool) {
	ind, ok := g.byID[id]
	return ind, ok
}

// Individuals returns all individuals in insertion order.
func (g *Graph) Individuals() []*Individual {
	out := make([]*Individual, len(g.individuals))
	copy(out, g.individuals)
	return out
}

// InstancesOf returns all individuals whose class is c or a descendant of
// c, in insertion order.
func (g *Graph) InstancesOf(c Class) []*Individual {
	var out []*Individual
	for _, ind := range g.individuals {
		if g.schema.IsSubclassOf(ind.Class, c) {
			out = append(out, ind)
		}
	}
	return out
}

// Objects returns the objects of edges (subject, property, *).
func (g *Graph) Objects(subject *Individual, property string) []*Individual {
	return g.out[subject.ID][property]
}

// Object returns the single object of a functional property edge.
func (g *Graph) Object(subject *Individual, property string) (*Individual, bool) {
	objs := g.out[subject.ID][property]
	if len(objs) == 0 {
		return nil, false
	}
	return objs[0], true
}

// Subjects returns the subjects of edges (*, property, object).
func (g *Graph) Subjects(property string, object *Individual) []*Individual {
	return g.in[object.ID][property]
}

// Edges returns all edges in assertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Len returns the number of individuals.
func (g *Graph) Len() int { return len(g.individuals) }

// EdgeCount returns the number of asserted edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
