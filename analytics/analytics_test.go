package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/shipyard/ontology"
	"github.com/c360studio/shipyard/population"
	"github.com/c360studio/shipyard/query"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

func sampleGraph(t *testing.T) *ontology.Graph {
	t.Helper()
	g := ontology.NewGraph(ontology.MustSchema())
	require.NoError(t, population.Populate(g))
	return g
}

func TestTakeSnapshot(t *testing.T) {
	g := sampleGraph(t)

	snap := TakeSnapshot(g)
	assert.Equal(t, Snapshot{
		Vessels:    2,
		Components: 4,
		Facilities: 6,
		Equipment:  3,
		Sensors:    5,
		People:     8,
		Processes:  4,
		Materials:  4,
		Systems:    4,
	}, snap)
}

func TestAverageCompletion(t *testing.T) {
	g := sampleGraph(t)

	// (65 + 40) / 2
	avg, ok := AverageCompletion(g)
	require.True(t, ok)
	assert.InDelta(t, 52.5, avg, 1e-9)
}

func TestAverageCompletionEmpty(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())

	avg, ok := AverageCompletion(g)
	assert.False(t, ok)
	assert.Zero(t, avg)
}

func TestAverageCompletionScenario(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())

	for i, c := range []float64{20, 55, 90} {
		v, err := g.AddIndividual(ontology.ClassVessel, "V_"+string(rune('A'+i)))
		require.NoError(t, err)
		require.NoError(t, g.SetFloat(v, ontology.PropCompletion, c))
	}

	avg, ok := AverageCompletion(g)
	require.True(t, ok)
	assert.InDelta(t, 55.0, avg, 1e-9)

	// The same fleet filtered at 60% keeps exactly the first two vessels,
	// in insertion order.
	below := query.VesselsBelowCompletion(g, 60)
	require.Len(t, below, 2)
	assert.Equal(t, "V_A", below[0].ID)
	assert.Equal(t, "V_B", below[1].ID)
}

func TestAverageQualityScore(t *testing.T) {
	g := sampleGraph(t)

	// Hull 95.5 and engine 98.0 are scored; nav and electrical are not.
	avg, ok := AverageQualityScore(g)
	require.True(t, ok)
	assert.InDelta(t, 96.75, avg, 1e-9)
}

func TestAverageExperience(t *testing.T) {
	g := sampleGraph(t)

	// 15+12+10+8+20+18+12+25 over 8 people.
	avg, ok := AverageExperience(g)
	require.True(t, ok)
	assert.InDelta(t, 15.0, avg, 1e-9)
}

func TestAverageExperienceEmpty(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())

	_, ok := AverageExperience(g)
	assert.False(t, ok)
}

func TestEquipmentUtilization(t *testing.T) {
	g := sampleGraph(t)

	util, ok := EquipmentUtilization(g)
	require.True(t, ok)
	assert.InDelta(t, 100.0, util, 1e-9)
}

func TestEquipmentUtilizationMixed(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())

	crane, err := g.AddIndividual(ontology.ClassCrane, "Crane_001")
	require.NoError(t, err)
	require.NoError(t, g.SetString(crane, ontology.PropStatus, string(vocab.EquipmentStatusOperational)))

	robot, err := g.AddIndividual(ontology.ClassWeldingRobot, "WeldRobot_001")
	require.NoError(t, err)
	require.NoError(t, g.SetString(robot, ontology.PropStatus, string(vocab.EquipmentStatusMaintenance)))

	util, ok := EquipmentUtilization(g)
	require.True(t, ok)
	assert.InDelta(t, 50.0, util, 1e-9)
}

func TestEquipmentUtilizationEmpty(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())

	_, ok := EquipmentUtilization(g)
	assert.False(t, ok)
}

func TestProcessStatusDistribution(t *testing.T) {
	g := sampleGraph(t)

	dist := ProcessStatusDistribution(g)
	assert.Equal(t, map[vocab.ProcessStatus]int{
		vocab.ProcessStatusInProgress: 1,
		vocab.ProcessStatusScheduled:  1,
		vocab.ProcessStatusCompleted:  1,
		vocab.ProcessStatusPending:    1,
	}, dist)
}

func TestProcessStatusDistributionEmpty(t *testing.T) {
	g := ontology.NewGraph(ontology.MustSchema())

	assert.Empty(t, ProcessStatusDistribution(g))
}
