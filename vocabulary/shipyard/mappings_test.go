package shipyard

import "testing"

func TestClassIRIMapRoundTrip(t *testing.T) {
	for name, iri := range ClassIRIMap {
		got, ok := ClassNameForIRI(iri)
		if !ok {
			t.Errorf("ClassNameForIRI(%s): no reverse mapping", iri)
			continue
		}
		if got != name {
			t.Errorf("ClassNameForIRI(%s) = %s, want %s", iri, got, name)
		}
	}
}

func TestClassIRIsUseNamespace(t *testing.T) {
	for name, iri := range ClassIRIMap {
		if len(iri) <= len(Namespace) || iri[:len(Namespace)] != Namespace {
			t.Errorf("class %s IRI %s is outside the shipyard namespace", name, iri)
		}
	}
}

func TestObjectPropertyIRIMapRoundTrip(t *testing.T) {
	for name, iri := range ObjectPropertyIRIMap {
		got, ok := ObjectPropertyNameForIRI(iri)
		if !ok {
			t.Errorf("ObjectPropertyNameForIRI(%s): no reverse mapping", iri)
			continue
		}
		if got != name {
			t.Errorf("ObjectPropertyNameForIRI(%s) = %s, want %s", iri, got, name)
		}
	}
}

func TestPredicateIRIMapTargetsKnownIRIs(t *testing.T) {
	known := make(map[string]bool)
	for _, iri := range DataPropertyIRIMap {
		known[iri] = true
	}
	for _, iri := range ObjectPropertyIRIMap {
		known[iri] = true
	}
	known[Namespace+"role"] = true
	known[RDFType] = true

	for pred, iri := range PredicateIRIMap {
		if !known[iri] {
			t.Errorf("predicate %s maps to %s, which is not a declared property IRI", pred, iri)
		}
	}
}

func TestGetTypesForEntity(t *testing.T) {
	tests := []struct {
		entityType EntityType
		want       []string
	}{
		{EntityTypeVessel, []string{ClassVessel, ClassThing}},
		{EntityTypeSensor, []string{ClassSensor, ClassThing}},
		{EntityTypeMaterial, []string{ClassMaterial, ClassThing}},
		{EntityType("unknown"), []string{ClassThing}},
	}

	for _, tt := range tests {
		got := GetTypesForEntity(tt.entityType)
		if len(got) != len(tt.want) {
			t.Errorf("GetTypesForEntity(%s) = %v, want %v", tt.entityType, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("GetTypesForEntity(%s)[%d] = %s, want %s", tt.entityType, i, got[i], tt.want[i])
			}
		}
	}
}

func TestEntityTypeClassMapCoversAllEntityTypes(t *testing.T) {
	for _, et := range []EntityType{
		EntityTypeVessel, EntityTypeComponent, EntityTypeFacility,
		EntityTypeEquipment, EntityTypeSensor, EntityTypePerson,
		EntityTypeProcess, EntityTypeMaterial, EntityTypeSystem,
	} {
		if _, ok := EntityTypeClassMap[et]; !ok {
			t.Errorf("entity type %s has no class IRI", et)
		}
	}
}

func TestKindMaps(t *testing.T) {
	if got := SensorKindMap["TemperatureSensor"]; got != SensorKindTemperature {
		t.Errorf("TemperatureSensor kind = %s", got)
	}
	if got := MaterialKindMap["SteelPlate"]; got != MaterialKindSteelPlate {
		t.Errorf("SteelPlate kind = %s", got)
	}
	if got := SystemKindMap["DigitalTwin"]; got != SystemKindDigitalTwin {
		t.Errorf("DigitalTwin kind = %s", got)
	}
}
