// Copyright 2026 The go-halfedge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package halfedge

import "math"

// Point is a vertex position. The topology never looks at it.
type Point struct {
	X, Y, Z float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

func (p Point) Len() float64 {
	return math.Sqrt(p.Dot(p))
}

// FaceCentroid returns the average of the corners of f.
func (m *Mesh) FaceCentroid(f FaceIndex) Point {
	var c Point
	loop := m.FaceHalfEdges(f)
	for _, e := range loop {
		c = c.Add(m.vertices.At(m.edges.At(e).Start).Position)
	}
	return c.Scale(1 / float64(len(loop)))
}

// FaceNormal returns the unit normal of f, oriented by its winding.
//
// Newell's method is used, so the result is well defined for non-planar
// and non-convex polygons. A face with zero area has a zero normal.
func (m *Mesh) FaceNormal(f FaceIndex) Point {
	var n Point
	loop := m.FaceHalfEdges(f)
	for _, e := range loop {
		u := m.vertices.At(m.edges.At(e).Start).Position
		v := m.vertices.At(m.EndVertex(e)).Position
		n.X += (u.Y - v.Y) * (u.Z + v.Z)
		n.Y += (u.Z - v.Z) * (u.X + v.X)
		n.Z += (u.X - v.X) * (u.Y + v.Y)
	}
	l := n.Len()
	if l == 0 {
		return Point{}
	}
	return n.Scale(1 / l)
}

// FaceArea returns the area of f, exact for planar polygons.
func (m *Mesh) FaceArea(f FaceIndex) float64 {
	var n Point
	loop := m.FaceHalfEdges(f)
	for _, e := range loop {
		u := m.vertices.At(m.edges.At(e).Start).Position
		v := m.vertices.At(m.EndVertex(e)).Position
		n = n.Add(u.Cross(v))
	}
	return n.Len() / 2
}
