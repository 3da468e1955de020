package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(t *testing.T) *Graph {
	t.Helper()
	return NewGraph(MustSchema())
}

func TestAddIndividual(t *testing.T) {
	g := newTestGraph(t)

	v, err := g.AddIndividual(ClassVessel, "Vessel_001")
	require.NoError(t, err)
	assert.Equal(t, "Vessel_001", v.ID)
	assert.Equal(t, ClassVessel, v.Class)
	assert.Equal(t, 1, g.Len())

	got, ok := g.Individual("Vessel_001")
	require.True(t, ok)
	assert.Same(t, v, got)
}

func TestAddIndividualErrors(t *testing.T) {
	g := newTestGraph(t)

	_, err := g.AddIndividual(Class("Spaceship"), "X_001")
	assert.ErrorIs(t, err, ErrUnknownClass)

	_, err = g.AddIndividual(ClassVessel, "")
	assert.Error(t, err)

	_, err = g.AddIndividual(ClassVessel, "Vessel_001")
	require.NoError(t, err)
	_, err = g.AddIndividual(ClassCrane, "Vessel_001")
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestRelate(t *testing.T) {
	g := newTestGraph(t)

	vessel, err := g.AddIndividual(ClassVessel, "Vessel_001")
	require.NoError(t, err)
	hull, err := g.AddIndividual(ClassHull, "Hull_001")
	require.NoError(t, err)

	require.NoError(t, g.Relate(hull, PropPartOf, vessel))

	objs := g.Objects(hull, PropPartOf)
	require.Len(t, objs, 1)
	assert.Same(t, vessel, objs[0])

	subs := g.Subjects(PropPartOf, vessel)
	require.Len(t, subs, 1)
	assert.Same(t, hull, subs[0])

	assert.Equal(t, 1, g.EdgeCount())
}

func TestRelateSubclassDomain(t *testing.T) {
	g := newTestGraph(t)

	// Crane is Equipment is PhysicalAsset; locatedIn's domain is
	// PhysicalAsset|Person, so subclass instances must be accepted.
	crane, err := g.AddIndividual(ClassCrane, "Crane_001")
	require.NoError(t, err)
	dock, err := g.AddIndividual(ClassDryDock, "DryDock_01")
	require.NoError(t, err)

	assert.NoError(t, g.Relate(crane, PropLocatedIn, dock))

	welder, err := g.AddIndividual(ClassWelder, "Welder_001")
	require.NoError(t, err)
	shop, err := g.AddIndividual(ClassWeldingStation, "WeldingShop_01")
	require.NoError(t, err)

	assert.NoError(t, g.Relate(welder, PropLocatedIn, shop))
}

func TestRelateViolations(t *testing.T) {
	g := newTestGraph(t)

	vessel, _ := g.AddIndividual(ClassVessel, "Vessel_001")
	hull, _ := g.AddIndividual(ClassHull, "Hull_001")
	sensor, _ := g.AddIndividual(ClassTemperatureSensor, "TempSensor_001")
	welder, _ := g.AddIndividual(ClassWelder, "Welder_001")

	t.Run("unknown property", func(t *testing.T) {
		err := g.Relate(hull, "attachedTo", vessel)
		assert.ErrorIs(t, err, ErrUnknownProperty)
	})

	t.Run("domain violation", func(t *testing.T) {
		// partOf's domain is VesselComponent; a vessel is not one.
		err := g.Relate(vessel, PropPartOf, vessel)
		assert.ErrorIs(t, err, ErrDomainViolation)
	})

	t.Run("range violation", func(t *testing.T) {
		// monitors ranges over PhysicalAsset|Process, not Person.
		err := g.Relate(sensor, PropMonitors, welder)
		assert.ErrorIs(t, err, ErrRangeViolation)
	})

	t.Run("functional violation", func(t *testing.T) {
		crane, _ := g.AddIndividual(ClassCrane, "Crane_001")
		require.NoError(t, g.Relate(sensor, PropInstalledOn, crane))
		err := g.Relate(sensor, PropInstalledOn, vessel)
		assert.ErrorIs(t, err, ErrFunctionalViolation)
	})
}

func TestEdgesSatisfyDomainAndRange(t *testing.T) {
	g := newTestGraph(t)

	vessel, _ := g.AddIndividual(ClassVessel, "Vessel_001")
	hull, _ := g.AddIndividual(ClassHull, "Hull_001")
	engine, _ := g.AddIndividual(ClassEngine, "Engine_001")
	require.NoError(t, g.Relate(hull, PropPartOf, vessel))
	require.NoError(t, g.Relate(engine, PropPartOf, vessel))

	s := g.Schema()
	for _, e := range g.Edges() {
		prop, ok := s.ObjectProperty(e.Property)
		require.True(t, ok, "edge property %s must be declared", e.Property)
		assert.True(t, s.inDomain(e.Subject.Class, prop.Domain),
			"edge %s -[%s]-> %s: subject outside domain", e.Subject.ID, e.Property, e.Object.ID)
		assert.True(t, s.inDomain(e.Object.Class, prop.Range),
			"edge %s -[%s]-> %s: object outside range", e.Subject.ID, e.Property, e.Object.ID)
	}
}

func TestDataPropertySetters(t *testing.T) {
	g := newTestGraph(t)

	vessel, _ := g.AddIndividual(ClassVessel, "Vessel_001")

	require.NoError(t, g.SetString(vessel, PropName, "Pacific Star"))
	require.NoError(t, g.SetFloat(vessel, PropCompletion, 65.0))

	name, ok := vessel.String(PropName)
	require.True(t, ok)
	assert.Equal(t, "Pacific Star", name)

	completion, ok := vessel.Float(PropCompletion)
	require.True(t, ok)
	assert.Equal(t, 65.0, completion)

	assert.Equal(t, "Pacific Star", vessel.Label())
}

func TestDataPropertyErrors(t *testing.T) {
	g := newTestGraph(t)

	vessel, _ := g.AddIndividual(ClassVessel, "Vessel_001")
	welder, _ := g.AddIndividual(ClassWelder, "Welder_001")

	t.Run("unknown property", func(t *testing.T) {
		err := g.SetString(vessel, "hasFlag", "Panama")
		assert.ErrorIs(t, err, ErrUnknownProperty)
	})

	t.Run("kind mismatch", func(t *testing.T) {
		err := g.SetString(vessel, PropCompletion, "65%")
		assert.ErrorIs(t, err, ErrKindMismatch)
	})

	t.Run("domain violation", func(t *testing.T) {
		// hasQuantity belongs to Material, not Vessel.
		err := g.SetInt(vessel, PropQuantity, 3)
		assert.ErrorIs(t, err, ErrDomainViolation)
	})

	t.Run("multi-valued certification", func(t *testing.T) {
		require.NoError(t, g.AddString(welder, PropCertification, "AWS D1.1"))
		require.NoError(t, g.AddString(welder, PropCertification, "6G Position"))
		assert.Equal(t, []string{"AWS D1.1", "6G Position"}, welder.Strings(PropCertification))
	})

	t.Run("append to functional property", func(t *testing.T) {
		err := g.AddString(vessel, PropName, "Second Name")
		assert.ErrorIs(t, err, ErrFunctionalViolation)
	})
}

func TestInstancesOfIncludesSubclasses(t *testing.T) {
	g := newTestGraph(t)

	welder, _ := g.AddIndividual(ClassWelder, "Welder_001")
	electrician, _ := g.AddIndividual(ClassElectrician, "Electrician_001")
	engineer, _ := g.AddIndividual(ClassEngineer, "Engineer_001")
	_, _ = g.AddIndividual(ClassCrane, "Crane_001")

	workers := g.InstancesOf(ClassWorker)
	assert.Equal(t, []*Individual{welder, electrician}, workers)

	people := g.InstancesOf(ClassPerson)
	assert.Equal(t, []*Individual{welder, electrician, engineer}, people)

	assert.Empty(t, g.InstancesOf(ClassVessel))
}

func TestInstancesOfDeterministicOrder(t *testing.T) {
	g := newTestGraph(t)

	ids := []string{"V_03", "V_01", "V_02"}
	for _, id := range ids {
		_, err := g.AddIndividual(ClassVessel, id)
		require.NoError(t, err)
	}

	// Insertion order, not lexical order.
	var got []string
	for _, v := range g.InstancesOf(ClassVessel) {
		got = append(got, v.ID)
	}
	assert.Equal(t, ids, got)
}
