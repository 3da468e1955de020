package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.True(t, s.HasClass(ClassThing))
	assert.True(t, s.HasClass(ClassVessel))
	assert.False(t, s.HasClass(Class("Submarine")))
}

func TestSchemaSingleRoot(t *testing.T) {
	s := MustSchema()

	for _, c := range s.Classes() {
		assert.True(t, s.IsSubclassOf(c, ClassThing), "class %s must descend from Thing", c)
	}
}

func TestIsSubclassOf(t *testing.T) {
	s := MustSchema()

	tests := []struct {
		name     string
		class    Class
		ancestor Class
		want     bool
	}{
		{"reflexive", ClassVessel, ClassVessel, true},
		{"direct parent", ClassVessel, ClassPhysicalAsset, true},
		{"transitive to root", ClassHull, ClassThing, true},
		{"hull is component", ClassHull, ClassVesselComponent, true},
		{"hull is physical asset", ClassHull, ClassPhysicalAsset, true},
		{"welding station is workshop", ClassWeldingStation, ClassWorkshop, true},
		{"welding station is facility", ClassWeldingStation, ClassShipyardFacility, true},
		{"welder is worker", ClassWelder, ClassWorker, true},
		{"welder is person", ClassWelder, ClassPerson, true},
		{"crane is equipment", ClassCrane, ClassEquipment, true},
		{"crane is physical asset", ClassCrane, ClassPhysicalAsset, true},
		{"engineer is not worker", ClassEngineer, ClassWorker, false},
		{"sensor is not physical asset", ClassTemperatureSensor, ClassPhysicalAsset, false},
		{"vessel is not facility", ClassVessel, ClassShipyardFacility, false},
		{"parent is not subclass of child", ClassPerson, ClassWorker, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsSubclassOf(tt.class, tt.ancestor))
		})
	}
}

func TestAncestors(t *testing.T) {
	s := MustSchema()

	chain := s.Ancestors(ClassHull)
	assert.Equal(t, []Class{ClassHull, ClassVesselComponent, ClassPhysicalAsset, ClassThing}, chain)

	root := s.Ancestors(ClassThing)
	assert.Equal(t, []Class{ClassThing}, root)
}

func TestObjectPropertyLookup(t *testing.T) {
	s := MustSchema()

	partOf, ok := s.ObjectProperty(PropPartOf)
	require.True(t, ok)
	assert.Equal(t, []Class{ClassVesselComponent}, partOf.Domain)
	assert.Equal(t, []Class{ClassVessel}, partOf.Range)
	assert.False(t, partOf.Functional)

	monitors, ok := s.ObjectProperty(PropMonitors)
	require.True(t, ok)
	assert.True(t, monitors.Functional)

	_, ok = s.ObjectProperty("derivedFrom")
	assert.False(t, ok)
}

func TestDataPropertyLookup(t *testing.T) {
	s := MustSchema()

	completion, ok := s.DataProperty(PropCompletion)
	require.True(t, ok)
	assert.Equal(t, KindFloat, completion.Kind)
	assert.True(t, completion.Functional)

	cert, ok := s.DataProperty(PropCertification)
	require.True(t, ok)
	assert.False(t, cert.Functional, "certifications accumulate")

	_, ok = s.DataProperty("hasColor")
	assert.False(t, ok)
}

func TestPropertyTablesDeclared(t *testing.T) {
	s := MustSchema()

	// Every property's domain and range must reference declared classes.
	for _, prop := range s.ObjectProperties() {
		assert.NotEmpty(t, prop.Domain, "object property %s", prop.Name)
		assert.NotEmpty(t, prop.Range, "object property %s", prop.Name)
		for _, c := range prop.Domain {
			assert.True(t, s.HasClass(c), "object property %s domain %s", prop.Name, c)
		}
		for _, c := range prop.Range {
			assert.True(t, s.HasClass(c), "object property %s range %s", prop.Name, c)
		}
	}
	for _, prop := range s.DataProperties() {
		assert.NotEmpty(t, prop.Domain, "data property %s", prop.Name)
		for _, c := range prop.Domain {
			assert.True(t, s.HasClass(c), "data property %s domain %s", prop.Name, c)
		}
	}
}
