//go:build example
// +build example

package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"

	"github.com/hajimehoshi/go-halfedge"
)

const (
	screenWidth  = 320
	screenHeight = 240
	unit         = 80
)

var (
	edgeColor     = color.RGBA{0x80, 0x80, 0x80, 0xff}
	boundaryColor = color.RGBA{0xff, 0x40, 0x40, 0xff}
)

// hexagon builds a fan of six triangles around a center vertex and opens
// a gap in it.
func hexagon() *halfedge.Mesh {
	m := halfedge.NewMesh()
	c := m.AddVertexPosition(halfedge.Point{})
	var ring []halfedge.VertexIndex
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		ring = append(ring, m.AddVertexPosition(halfedge.Point{X: math.Cos(a), Y: math.Sin(a)}))
	}
	for i := range ring {
		if _, err := m.AddFace([]halfedge.VertexIndex{c, ring[i], ring[(i+1)%6]}); err != nil {
			panic(err)
		}
	}
	if err := m.RemoveFace(2); err != nil {
		panic(err)
	}
	m.Compact()
	if err := m.Check(); err != nil {
		panic(err)
	}
	return m
}

func toScreen(p halfedge.Point) (float64, float64) {
	return screenWidth/2 + p.X*unit, screenHeight/2 - p.Y*unit
}

func main() {
	m := hexagon()
	e, v, err := m.Triangulate()
	if err != nil {
		panic(err)
	}
	for i := 0; i < len(e)/3; i++ {
		fmt.Printf("(%.1f, %.1f), (%.1f, %.1f), (%.1f, %.1f)\n",
			v[e[3*i]].X, v[e[3*i]].Y,
			v[e[3*i+1]].X, v[e[3*i+1]].Y,
			v[e[3*i+2]].X, v[e[3*i+2]].Y)
	}
	loops := m.BoundaryLoops()

	update := func(screen *ebiten.Image) error {
		if ebiten.IsDrawingSkipped() {
			return nil
		}
		for i := 0; i < len(e)/3; i++ {
			for j := 0; j < 3; j++ {
				x0, y0 := toScreen(v[e[3*i+j]])
				x1, y1 := toScreen(v[e[3*i+(j+1)%3]])
				ebitenutil.DrawLine(screen, x0, y0, x1, y1, edgeColor)
			}
		}
		for _, loop := range loops {
			for _, he := range loop {
				x0, y0 := toScreen(m.Vertex(m.HalfEdge(he).Start).Position)
				x1, y1 := toScreen(m.Vertex(m.EndVertex(he)).Position)
				ebitenutil.DrawLine(screen, x0, y0, x1, y1, boundaryColor)
			}
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("faces: %d  boundary loops: %d", m.FaceCount(), len(loops)))
		return nil
	}
	if err := ebiten.Run(update, screenWidth, screenHeight, 2, "Half-edge mesh"); err != nil {
		panic(err)
	}
}
