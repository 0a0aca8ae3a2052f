package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/hajimehoshi/go-halfedge"
)

func TestTriangulateQuad(t *testing.T) {
	m := NewMesh()
	vs := addVertices(m, Point{0, 0, 0}, Point{1, 0, 0}, Point{1, 1, 0}, Point{0, 1, 0})
	mustAddFace(t, m, vs...)

	e, v, err := m.Triangulate()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0, 2, 3}, e)
	assert.Equal(t, []Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, v)
}

func TestTriangulateSkipsUnused(t *testing.T) {
	m := NewMesh()
	vs := addVertices(m, Point{0, 0, 0}, Point{1, 0, 0}, Point{1, 1, 0}, Point{0, 1, 0})
	mustAddFace(t, m, vs[0], vs[1], vs[2])
	mustAddFace(t, m, vs[2], vs[0], vs[3])
	require.NoError(t, m.RemoveFace(0))
	require.True(t, m.Vertex(vs[1]).IsUnused())

	e, v, err := m.Triangulate()
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}}, v)
	assert.Equal(t, []int{2, 0, 1}, e)
}

func TestTriangulateEmpty(t *testing.T) {
	e, v, err := NewMesh().Triangulate()
	require.NoError(t, err)
	assert.Empty(t, e)
	assert.Empty(t, v)
}
