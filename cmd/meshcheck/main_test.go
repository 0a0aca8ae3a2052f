package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hajimehoshi/go-halfedge"
)

// gridOBJ is a 2x2 grid of counter-clockwise quads.
const gridOBJ = `# 2x2 grid
v 0 0 0
v 1 0 0
v 2 0 0
v 0 1 0
v 1 1 0
v 2 1 0
v 0 2 0
v 1 2 0
v 2 2 0
f 1 2 5 4
f 2 3 6 5
f 4 5 8 7
f 5 6 9 8
`

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (Report, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--yaml"}, args...))
	err := root.Execute()

	var r Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &r), out.String())
	return r, err
}

func TestStats(t *testing.T) {
	r, err := run(t, "stats", writeOBJ(t, gridOBJ))
	require.NoError(t, err)

	assert.Equal(t, 9, r.Vertices)
	assert.Equal(t, 24, r.HalfEdges)
	assert.Equal(t, 4, r.Faces)
	assert.Equal(t, 1, r.BoundaryLoops)
	assert.Equal(t, 8, r.BoundaryEdges)
	assert.Equal(t, 8, r.Triangles)
	assert.Empty(t, r.Rejected)
}

func TestStatsRejected(t *testing.T) {
	_, err := run(t, "stats", writeOBJ(t, gridOBJ+"f 1 2 5 4\nf 1 2\n"))
	require.Error(t, err, "two-vertex faces are not valid OBJ")

	r, err := run(t, "stats", writeOBJ(t, gridOBJ+"f 1 2 5 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, r.Faces)
	require.Len(t, r.Rejected, 1)
	assert.Equal(t, 4, r.Rejected[0].Face)
	assert.Equal(t, halfedge.ErrComplexEdge.Error(), r.Rejected[0].Reason)
}

func TestCheck(t *testing.T) {
	r, err := run(t, "check", writeOBJ(t, gridOBJ))
	require.NoError(t, err)
	assert.Empty(t, r.Error)
}

func TestDual(t *testing.T) {
	r, err := run(t, "dual", writeOBJ(t, gridOBJ))
	require.NoError(t, err)

	assert.Equal(t, 4, r.Vertices)
	assert.Equal(t, 1, r.Faces)
	assert.Equal(t, 8, r.HalfEdges)
	assert.Equal(t, 1, r.BoundaryLoops)
	assert.Equal(t, 2, r.Triangles)
	assert.Empty(t, r.Error)
}

func TestStrip(t *testing.T) {
	r, err := run(t, "strip", "--faces", "0", writeOBJ(t, gridOBJ))
	require.NoError(t, err)

	assert.Equal(t, 8, r.Vertices)
	assert.Equal(t, 3, r.Faces)
	assert.Equal(t, 20, r.HalfEdges)
	assert.Equal(t, 1, r.BoundaryLoops)
	assert.Equal(t, 8, r.BoundaryEdges)
	assert.Equal(t, 6, r.Triangles)
	assert.Empty(t, r.Error)
}

func TestCirculatorFaultReported(t *testing.T) {
	// A quad needs four steps around its face loop.
	quad := writeOBJ(t, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")
	r, err := run(t, "--limit", "3", "stats", quad)
	require.NoError(t, err)
	assert.Equal(t, 1, r.BoundaryLoops)
	assert.Equal(t, 4, r.BoundaryEdges)
	assert.Contains(t, r.Error, "did not close within 3 steps")

	_, err = run(t, "--limit", "3", "check", quad)
	assert.Error(t, err)

	// The center vertex of the grid has four half-edges.
	_, err = run(t, "--limit", "3", "stats", writeOBJ(t, gridOBJ))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invariant violated")
}

func TestParseFaces(t *testing.T) {
	ids, err := parseFaces("0, 3,7,")
	require.NoError(t, err)
	assert.Equal(t, []halfedge.FaceIndex{0, 3, 7}, ids)

	_, err = parseFaces("1,x")
	assert.Error(t, err)
}
