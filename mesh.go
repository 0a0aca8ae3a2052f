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

import (
	"fmt"
	"log/slog"
)

// Mesh is a half-edge polygon mesh. It owns three arenas and every
// topology algorithm that touches them. Entities refer to each other only
// by index; indices are the only handles that are safe to hold outside
// the mesh, and only until the next Compact.
//
// A Mesh is not safe for concurrent use.
type Mesh struct {
	vertices vertexStore
	edges    halfEdgeStore
	faces    faceStore

	opts options
}

// NewMesh creates an empty mesh.
func NewMesh(opts ...Option) *Mesh {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Mesh{
		vertices: newStore[VertexIndex, Vertex](o.vertexCap),
		edges:    newStore[HalfEdgeIndex, HalfEdge](2 * (o.vertexCap + o.faceCap)),
		faces:    newStore[FaceIndex, Face](o.faceCap),
		opts:     o,
	}
}

func (m *Mesh) log() *slog.Logger {
	if m.opts.logger != nil {
		return m.opts.logger
	}
	return Logger()
}

func (m *Mesh) assert(cond bool, format string, args ...interface{}) {
	if !cond {
		fault(m.log(), format, args...)
	}
}

// VertexCount returns the number of vertex slots, removed ones included.
func (m *Mesh) VertexCount() int { return m.vertices.Len() }

// HalfEdgeCount returns the number of half-edge slots, removed ones included.
func (m *Mesh) HalfEdgeCount() int { return m.edges.Len() }

// FaceCount returns the number of face slots, removed ones included.
func (m *Mesh) FaceCount() int { return m.faces.Len() }

// Vertex returns a copy of the vertex at v.
func (m *Mesh) Vertex(v VertexIndex) Vertex { return *m.vertices.At(v) }

// HalfEdge returns a copy of the half-edge at e.
func (m *Mesh) HalfEdge(e HalfEdgeIndex) HalfEdge { return *m.edges.At(e) }

// Face returns a copy of the face at f.
func (m *Mesh) Face(f FaceIndex) Face { return *m.faces.At(f) }

// AddVertex appends v without touching the topology.
func (m *Mesh) AddVertex(v Vertex) VertexIndex {
	return m.vertices.Add(v)
}

// AddVertexPosition appends an unconnected vertex at p.
func (m *Mesh) AddVertexPosition(p Point) VertexIndex {
	return m.vertices.Add(NewVertex(p))
}

// AddEdgePair allocates a pair of half-edges between start and end.
// The first half-edge runs from start to end and borders face; its pair
// runs back and is a boundary half-edge. If start has no outgoing
// half-edge yet, the new one becomes it. Next and Prev are left unset for
// the caller to link.
func (m *Mesh) AddEdgePair(start, end VertexIndex, face FaceIndex) HalfEdgeIndex {
	vs := m.vertices.At(start)
	m.vertices.At(end)

	e := m.edges.Add(HalfEdge{Start: start, Face: face, Next: UnsetHalfEdge, Prev: UnsetHalfEdge})
	p := m.edges.Add(HalfEdge{Start: end, Face: UnsetFace, Next: UnsetHalfEdge, Prev: UnsetHalfEdge})
	m.assert(e%2 == 0 && p == PairIndex(e), "edge pair allocated at %s, %s", e, p)

	if vs.Outgoing.IsUnset() {
		vs.Outgoing = e
	}
	return e
}

// makeConsecutive links a and b so that b follows a. Unset ends are left
// alone.
func (m *Mesh) makeConsecutive(a, b HalfEdgeIndex) {
	if !a.IsUnset() {
		m.edges.At(a).Next = b
	}
	if !b.IsUnset() {
		m.edges.At(b).Prev = a
	}
}

// RemoveHalfEdgePair splices the half-edge i and its pair out of their
// loops, repairs the outgoing half-edges of both endpoints and marks both
// half-edges as removed. Both sides must already be free of faces.
func (m *Mesh) RemoveHalfEdgePair(i HalfEdgeIndex) error {
	pi := PairIndex(i)
	e := *m.edges.At(i)
	p := *m.edges.At(pi)

	if e.IsUnused() || p.IsUnused() {
		return fmt.Errorf("halfedge: remove %s: %w", i, ErrEdgeRemoved)
	}
	if !e.Face.IsUnset() || !p.Face.IsUnset() {
		return fmt.Errorf("halfedge: remove %s: %w", i, ErrEdgeInUse)
	}

	// Endpoints fall back to the next half-edge around them, or become
	// isolated when this was their last one.
	if va := m.vertices.At(e.Start); va.Outgoing == i {
		if p.Next == i {
			va.Outgoing = UnsetHalfEdge
		} else {
			va.Outgoing = p.Next
		}
	}
	if vb := m.vertices.At(p.Start); vb.Outgoing == pi {
		if e.Next == pi {
			vb.Outgoing = UnsetHalfEdge
		} else {
			vb.Outgoing = e.Next
		}
	}

	m.makeConsecutive(p.Prev, e.Next)
	m.makeConsecutive(e.Prev, p.Next)

	*m.edges.At(i) = unsetHalfEdge()
	*m.edges.At(pi) = unsetHalfEdge()
	return nil
}

// adjustOutgoing points v's outgoing half-edge at a boundary half-edge if
// v has one, so that boundary vertices can be recognised in O(1).
func (m *Mesh) adjustOutgoing(v VertexIndex) {
	out := m.vertices.At(v).Outgoing
	if out.IsUnset() {
		return
	}
	for _, e := range m.VertexCirculator(out) {
		if m.edges.At(e).Face.IsUnset() {
			m.vertices.At(v).Outgoing = e
			return
		}
	}
}
