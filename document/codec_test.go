package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-viz/lattice/errors"
	"github.com/lattice-viz/lattice/geom"
)

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("graph.toml"))
	assert.Equal(t, FormatYAML, FormatForPath("graph.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("graph.YML"))
	assert.Equal(t, FormatTOML, FormatForPath("graph"))
}

func TestDecodeTOML(t *testing.T) {
	data := []byte(`
name = "wheel"
directed = false

[[nodes]]
name = "hub"
pos = { x = 0.0, y = 0.0 }
label = "center"

[[nodes]]
name = "rim"
pos = { x = 50.0, y = 0.0 }

[[edges]]
from = "hub"
to = "rim"
`)

	doc, err := Decode(data, FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "wheel", doc.Name)
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, geom.V(50, 0), doc.Nodes[1].Pos)
	require.Len(t, doc.Edges, 1)
	assert.Equal(t, "hub", doc.Edges[0].From)
}

func TestDecodeYAML(t *testing.T) {
	data := []byte(`
name: wheel
directed: true
nodes:
  - name: hub
    pos: {x: 0, y: 0}
  - name: rim
    pos: {x: 50, y: 0}
edges:
  - from: hub
    to: rim
`)

	doc, err := Decode(data, FormatYAML)
	require.NoError(t, err)

	assert.True(t, doc.Directed)
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "rim", doc.Nodes[1].Name)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("{{{not a document"), FormatTOML)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidDocumentError(err))
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"doc.toml", "doc.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, SaveFile(path, sampleDocument()))

		loaded, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, sampleDocument(), loaded, name)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
