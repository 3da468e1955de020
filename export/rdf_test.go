package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/shipyard/ontology"
	"github.com/c360studio/shipyard/population"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

func sampleGraph(t *testing.T) *ontology.Graph {
	t.Helper()
	g := ontology.NewGraph(ontology.MustSchema())
	require.NoError(t, population.Populate(g))
	return g
}

func TestExportTurtle(t *testing.T) {
	g := sampleGraph(t)

	out, err := FromGraph(g).Export(FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix shipyard: <"+vocab.Namespace+"> .")
	assert.Contains(t, out, "@prefix entity: <"+vocab.EntityNamespace+"> .")
	assert.Contains(t, out, "<"+vocab.EntityNamespace+"Vessel_Container_001>")
	assert.Contains(t, out, `"Container Ship Pacific Star"`)
	assert.Contains(t, out, `"65"^^xsd:decimal`)
}

func TestExportTurtleSuperclassChain(t *testing.T) {
	g := sampleGraph(t)

	out, err := FromGraph(g).Export(FormatTurtle)
	require.NoError(t, err)

	// A hull is typed as Hull, VesselComponent, PhysicalAsset, and Thing.
	for _, iri := range []string{
		vocab.ClassHull, vocab.ClassVesselComponent,
		vocab.ClassPhysicalAsset, vocab.ClassThing,
	} {
		assert.Contains(t, out, "a <"+iri+">")
	}
}

func TestExportNTriplesRoundTrip(t *testing.T) {
	g := sampleGraph(t)

	out, err := FromGraph(g).Export(FormatNTriples)
	require.NoError(t, err)

	statements, err := ParseNTriples(strings.NewReader(out))
	require.NoError(t, err)

	summary := Summarize(statements)
	assert.Equal(t, g.Len(), summary.Subjects)
	assert.Equal(t, g.EdgeCount(), summary.Edges)
	assert.Equal(t, len(strings.Split(strings.TrimRight(out, "\n"), "\n")), summary.Statements)

	// Every individual contributes at least its own type and Thing.
	assert.GreaterOrEqual(t, summary.TypeCount, 2*g.Len())

	// The class-name set survives the round trip: every class on the
	// superclass chain of some individual, and nothing else.
	classes := make(map[string]bool)
	for _, ind := range g.Individuals() {
		for _, c := range g.Schema().Ancestors(ind.Class) {
			classes[string(c)] = true
		}
	}
	assert.Equal(t, classes, summary.Classes)

	for _, st := range statements {
		assert.True(t, strings.HasPrefix(st.Subject, vocab.EntityNamespace),
			"subject %s outside entity namespace", st.Subject)
	}
}

func TestExportNTriplesLiterals(t *testing.T) {
	g := sampleGraph(t)

	out, err := FromGraph(g).Export(FormatNTriples)
	require.NoError(t, err)

	assert.Contains(t, out,
		`"45.5"^^<http://www.w3.org/2001/XMLSchema#decimal>`)
	assert.Contains(t, out,
		`"15"^^<http://www.w3.org/2001/XMLSchema#integer>`)
	assert.Contains(t, out,
		`"`+population.SampleTimestamp+`"^^<http://www.w3.org/2001/XMLSchema#dateTime>`)
}

func TestExportJSONLDIsValidJSON(t *testing.T) {
	g := sampleGraph(t)

	out, err := FromGraph(g).Export(FormatJSONLD)
	require.NoError(t, err)

	var doc struct {
		Context map[string]string `json:"@context"`
		Graph   []map[string]any  `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, vocab.Namespace, doc.Context["shipyard"])
	assert.Len(t, doc.Graph, g.Len())
}

func TestExportUnsupportedFormat(t *testing.T) {
	g := sampleGraph(t)

	_, err := FromGraph(g).Export(Format("rdfxml"))
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	g := sampleGraph(t)

	path := filepath.Join(t.TempDir(), "shipyard.nt")
	require.NoError(t, FromGraph(g).WriteFile(path, FormatNTriples))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestParseNTriplesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing dot", `<http://a> <http://b> <http://c>`},
		{"bare object", `<http://a> <http://b> nonsense .`},
		{"unterminated literal", `<http://a> <http://b> "open .`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNTriples(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseNTriplesSkipsComments(t *testing.T) {
	input := "# header\n\n<http://a> <http://b> \"x\" .\n"
	statements, err := ParseNTriples(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, "x", statements[0].Object)
	assert.True(t, statements[0].IsLiteral)
}

func TestGetFormatInfo(t *testing.T) {
	info, ok := GetFormatInfo(FormatTurtle)
	require.True(t, ok)
	assert.Equal(t, ".ttl", info.Extension)

	_, ok = GetFormatInfo(Format("rdfxml"))
	assert.False(t, ok)
}
