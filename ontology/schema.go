package ontology

import "fmt"

// Schema holds the validated class taxonomy and property tables.
// Construct one with NewSchema; the value is immutable afterwards and safe
// to share between graphs.
type Schema struct {
	order       []Class
	parents     map[Class]Class
	objectProps map[string]ObjectProperty
	dataProps   map[string]DataProperty
	objectOrder []string
	dataOrder   []string
}

// NewSchema builds the shipyard schema from the static declaration tables
// and validates it: every non-root class must name a declared parent, and
// every property must have a non-empty domain and range of declared
// classes. A malformed table is a programming error and aborts startup.
func NewSchema() (*Schema, error) {
	s := &Schema{
		parents:     make(map[Class]Class, len(classDeclarations)),
		objectProps: make(map[string]ObjectProperty, len(objectPropertyTable)),
		dataProps:   make(map[string]DataProperty, len(dataPropertyTable)),
	}

	for _, decl := range classDeclarations {
		if _, dup := s.parents[decl.class]; dup {
			return nil, fmt.Errorf("class %s declared twice", decl.class)
		}
		if decl.class != ClassThing {
			if _, ok := s.parents[decl.parent]; !ok && decl.parent != ClassThing {
				return nil, fmt.Errorf("class %s: parent %s: %w", decl.class, decl.parent, ErrUnknownClass)
			}
		}
		s.parents[decl.class] = decl.parent
		s.order = append(s.order, decl.class)
	}

	for _, prop := range objectPropertyTable {
		if err := s.checkProperty(prop.Name, prop.Domain, prop.Range); err != nil {
			return nil, err
		}
		s.objectProps[prop.Name] = prop
		s.objectOrder = append(s.objectOrder, prop.Name)
	}

	for _, prop := range dataPropertyTable {
		if err := s.checkProperty(prop.Name, prop.Domain, nil); err != nil {
			return nil, err
		}
		if _, clash := s.objectProps[prop.Name]; clash {
			return nil, fmt.Errorf("property %s declared as both object and data property", prop.Name)
		}
		s.dataProps[prop.Name] = prop
		s.dataOrder = append(s.dataOrder, prop.Name)
	}

	return s, nil
}

// MustSchema is NewSchema for static initialization paths where a table
// error is unrecoverable.
func MustSchema() *Schema {
	s, err := NewSchema()
	if err != nil {
		panic("ontology: invalid schema: " + err.Error())
	}
	return s
}

func (s *Schema) checkProperty(name string, domain, rng []Class) error {
	if name == "" {
		return fmt.Errorf("property with empty name")
	}
	if _, dup := s.objectProps[name]; dup {
		return fmt.Errorf("property %s declared twice", name)
	}
	if _, dup := s.dataProps[name]; dup {
		return fmt.Errorf("property %s declared twice", name)
	}
	if len(domain) == 0 {
		return fmt.Errorf("property %s: empty domain", name)
	}
	for _, c := range domain {
		if !s.HasClass(c) {
			return fmt.Errorf("property %s: domain %s: %w", name, c, ErrUnknownClass)
		}
	}
	for _, c := range rng {
		if !s.HasClass(c) {
			return fmt.Errorf("property %s: range %s: %w", name, c, ErrUnknownClass)
		}
	}
	return nil
}

// HasClass reports whether c is declared in the taxonomy.
func (s *Schema) HasClass(c Class) bool {
	_, ok := s.parents[c]
	return ok
}

// Parent returns the declared parent of c. The root returns "".
func (s *Schema) Parent(c Class) Class {
	return s.parents[c]
}

// IsSubclassOf reports whether c equals ancestor or descends from it.
func (s *Schema) IsSubclassOf(c, ancestor Class) bool {
	for cur := c; cur != ""; cur = s.parents[cur] {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Ancestors returns the chain from c up to and including the root.
func (s *Schema) Ancestors(c Class) []Class {
	var chain []Class
	for cur := c; cur != ""; cur = s.parents[cur] {
		chain = append(chain, cur)
	}
	return chain
}

// Classes returns all declared classes in declaration order.
func (s *Schema) Classes() []Class {
	out := make([]Class, len(s.order))
	copy(out, s.order)
	return out
}

// ObjectProperty looks up an object property by name.
func (s *Schema) ObjectProperty(name string) (ObjectProperty, bool) {
	p, ok := s.objectProps[name]
	return p, ok
}

// DataProperty looks up a data property by name.
func (s *Schema) DataProperty(name string) (DataProperty, bool) {
	p, ok := s.dataProps[name]
	return p, ok
}

// ObjectProperties returns all object properties in declaration order.
func (s *Schema) ObjectProperties() []ObjectProperty {
	out := make([]ObjectProperty, 0, len(s.objectOrder))
	for _, name := range s.objectOrder {
		out = append(out, s.objectProps[name])
	}
	return out
}

// DataProperties returns all data properties in declaration order.
func (s *Schema) DataProperties() []DataProperty {
	out := make([]DataProperty, 0, len(s.dataOrder))
	for _, name := range s.dataOrder {
		out = append(out, s.dataProps[name])
	}
	return out
}

// inDomain reports whether class c satisfies any of the listed classes.
func (s *Schema) inDomain(c Class, allowed []Class) bool {
	for _, a := range allowed {
		if s.IsSubclassOf(c, a) {
			return true
		}
	}
	return false
}
