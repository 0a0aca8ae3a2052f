package halfedge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/hajimehoshi/go-halfedge"
)

func TestPoint(t *testing.T) {
	p := Point{1, 2, 3}
	q := Point{4, 5, 6}
	assert.Equal(t, Point{5, 7, 9}, p.Add(q))
	assert.Equal(t, Point{3, 3, 3}, q.Sub(p))
	assert.Equal(t, Point{2, 4, 6}, p.Scale(2))
	assert.Equal(t, 32.0, p.Dot(q))
	assert.Equal(t, Point{-3, 6, -3}, p.Cross(q))
	assert.Equal(t, 5.0, Point{3, 4, 0}.Len())
}

func TestFaceGeometry(t *testing.T) {
	m, _ := triangle(t)
	assert.InDelta(t, 2, m.FaceArea(0), 1e-12)
	assert.Equal(t, Point{0, 0, 1}, m.FaceNormal(0))
	c := m.FaceCentroid(0)
	assert.InDelta(t, 4.0/3, c.X, 1e-12)
	assert.InDelta(t, 2.0/3, c.Y, 1e-12)

	sq := NewMesh()
	vs := addVertices(sq, Point{0, 0, 1}, Point{0, 1, 1}, Point{1, 1, 1}, Point{1, 0, 1})
	f := mustAddFace(t, sq, vs...)
	assert.Equal(t, Point{0, 0, -1}, sq.FaceNormal(f), "clockwise seen from +z")
	assert.InDelta(t, 1, sq.FaceArea(f), 1e-12)
	assert.Equal(t, Point{0.5, 0.5, 1}, sq.FaceCentroid(f))
}

func TestDegenerateNormal(t *testing.T) {
	m := NewMesh()
	vs := addVertices(m, Point{0, 0, 0}, Point{1, 0, 0}, Point{2, 0, 0})
	f := mustAddFace(t, m, vs...)
	assert.Equal(t, Point{}, m.FaceNormal(f))
	assert.Equal(t, 0.0, m.FaceArea(f))
}
