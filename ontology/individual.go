package ontology

// Value is a literal attribute value tagged with its kind.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int
	Float float64
}

// Individual is an instance of a class. Attribute values are held per
// data-property name; mutation goes through the owning Graph so domain
// and kind checks apply.
type Individual struct {
	ID    string
	Class Class

	attrs map[string][]Value
}

// Label returns the display name of the individual: the hasName value
// when set, otherwise the ID.
func (i *Individual) Label() string {
	if name, ok := i.String(PropName); ok {
		return name
	}
	return i.ID
}

// String returns the first string value of prop.
func (i *Individual) String(prop string) (string, bool) {
	vals := i.attrs[prop]
	if len(vals) == 0 || vals[0].Kind != KindString {
		return "", false
	}
	return vals[0].Str, true
}

// Strings returns all string values of prop.
func (i *Individual) Strings(prop string) []string {
	vals := i.attrs[prop]
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v.Kind == KindString {
			out = append(out, v.Str)
		}
	}
	return out
}

// Int returns the integer value of prop.
func (i *Individual) Int(prop string) (int, bool) {
	vals := i.attrs[prop]
	if len(vals) == 0 || vals[0].Kind != KindInt {
		return 0, false
	}
	return vals[0].Int, true
}

// Float returns the float value of prop.
func (i *Individual) Float(prop string) (float64, bool) {
	vals := i.attrs[prop]
	if len(vals) == 0 || vals[0].Kind != KindFloat {
		return 0, false
	}
	return vals[0].Float, true
}

// Has reports whether the individual carries any value for prop.
func (i *Individual) Has(prop string) bool {
	return len(i.attrs[prop]) > 0
}

// Attributes returns the data-property names the individual carries,
// in no particular order.
func (i *Individual) Attributes() []string {
	out := make([]string, 0, len(i.attrs))
	for name := range i.attrs {
		out = append(out, name)
	}
	return out
}
