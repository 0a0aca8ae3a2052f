package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/hajimehoshi/go-halfedge"
)

func addVertices(m *Mesh, pts ...Point) []VertexIndex {
	vs := make([]VertexIndex, len(pts))
	for i, p := range pts {
		vs[i] = m.AddVertexPosition(p)
	}
	return vs
}

func mustAddFace(t *testing.T, m *Mesh, verts ...VertexIndex) FaceIndex {
	t.Helper()
	f, err := m.AddFace(verts)
	require.NoError(t, err, "add face %v", verts)
	require.False(t, f.IsUnset())
	return f
}

// grid builds w by h counter-clockwise unit quads in the z=0 plane. The
// vertex at column i, row j has index j*(w+1)+i.
func grid(t *testing.T, w, h int, opts ...Option) *Mesh {
	t.Helper()
	m := NewMesh(opts...)
	for j := 0; j <= h; j++ {
		for i := 0; i <= w; i++ {
			m.AddVertexPosition(Point{X: float64(i), Y: float64(j)})
		}
	}
	at := func(i, j int) VertexIndex { return VertexIndex(j*(w+1) + i) }
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			mustAddFace(t, m, at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}
	require.NoError(t, m.Check())
	return m
}

type snapshot struct {
	vertices []Vertex
	edges    []HalfEdge
	faces    []Face
}

func snapshotOf(m *Mesh) snapshot {
	var s snapshot
	for i := 0; i < m.VertexCount(); i++ {
		s.vertices = append(s.vertices, m.Vertex(VertexIndex(i)))
	}
	for i := 0; i < m.HalfEdgeCount(); i++ {
		s.edges = append(s.edges, m.HalfEdge(HalfEdgeIndex(i)))
	}
	for i := 0; i < m.FaceCount(); i++ {
		s.faces = append(s.faces, m.Face(FaceIndex(i)))
	}
	return s
}

// facePositions lists the corner positions of every live face in index
// order.
func facePositions(m *Mesh) [][]Point {
	var out [][]Point
	for f := FaceIndex(0); int(f) < m.FaceCount(); f++ {
		if m.Face(f).IsUnused() {
			continue
		}
		var ps []Point
		for _, v := range m.FaceVertices(f) {
			ps = append(ps, m.Vertex(v).Position)
		}
		out = append(out, ps)
	}
	return out
}

// permutations calls fn with every ordering of 0..n-1.
func permutations(n int, fn func([]int)) {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			fn(p)
			return
		}
		for i := k; i < n; i++ {
			p[k], p[i] = p[i], p[k]
			rec(k + 1)
			p[k], p[i] = p[i], p[k]
		}
	}
	rec(0)
}
