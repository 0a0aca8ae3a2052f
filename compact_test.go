package halfedge_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/hajimehoshi/go-halfedge"
)

func TestCompactKeepsFaces(t *testing.T) {
	m := grid(t, 3, 3)
	for _, f := range []FaceIndex{0, 4, 7} {
		require.NoError(t, m.RemoveFace(f))
	}
	want := facePositions(m)

	m.Compact()
	require.NoError(t, m.Check())
	assert.Equal(t, 6, m.FaceCount())
	assert.Equal(t, want, facePositions(m))
	for i := 0; i < m.VertexCount(); i++ {
		assert.False(t, m.Vertex(VertexIndex(i)).IsUnused(), "v%d", i)
	}
	for i := 0; i < m.HalfEdgeCount(); i++ {
		assert.False(t, m.HalfEdge(HalfEdgeIndex(i)).IsUnused(), "e%d", i)
	}

	before := snapshotOf(m)
	m.Compact()
	assert.Equal(t, before, snapshotOf(m), "compacting twice changes nothing")
}

func TestCompactDropsIsolatedVertices(t *testing.T) {
	m, _ := triangle(t)
	m.AddVertexPosition(Point{9, 9, 9})
	mustAddFace(t, m, addVertices(m, Point{3, 0, 0}, Point{4, 0, 0}, Point{4, 1, 0})...)
	require.NoError(t, m.RemoveFace(0))

	m.Compact()
	require.NoError(t, m.Check())
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 6, m.HalfEdgeCount())
	assert.Equal(t, 1, m.FaceCount())
	assert.Equal(t, [][]Point{{{3, 0, 0}, {4, 0, 0}, {4, 1, 0}}}, facePositions(m))
}

func TestRandomRemoveCompact(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for round := 0; round < 20; round++ {
		m := grid(t, 4, 4)
		for removed := 1; ; removed++ {
			var live []FaceIndex
			for f := FaceIndex(0); int(f) < m.FaceCount(); f++ {
				if !m.Face(f).IsUnused() {
					live = append(live, f)
				}
			}
			if len(live) == 0 {
				break
			}
			require.NoError(t, m.RemoveFace(live[r.Intn(len(live))]))
			require.NoError(t, m.Check(), "round %d after %d removals", round, removed)

			if removed%3 == 0 {
				want := facePositions(m)
				m.Compact()
				require.NoError(t, m.Check(), "round %d after compaction", round)
				require.Equal(t, want, facePositions(m))
			}
		}
		m.Compact()
		assert.Equal(t, 0, m.VertexCount())
		assert.Equal(t, 0, m.HalfEdgeCount())
		assert.Equal(t, 0, m.FaceCount())
	}
}

func TestRemoveAndRefill(t *testing.T) {
	m := grid(t, 3, 3)
	want := facePositions(m)
	// Removing the center quad and putting it back.
	require.NoError(t, m.RemoveFace(4))
	m.Compact()
	mustAddFace(t, m, 5, 6, 10, 9)
	require.NoError(t, m.Check())
	assert.Equal(t, 9, m.FaceCount())
	assert.ElementsMatch(t, want, facePositions(m))
}
