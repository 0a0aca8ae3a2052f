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

// Pair returns the opposite half-edge of i. The second result is false if
// i does not address a half-edge.
func (m *Mesh) Pair(i HalfEdgeIndex) (HalfEdge, bool) {
	if !m.edges.Has(i) {
		return HalfEdge{}, false
	}
	return *m.edges.At(PairIndex(i)), true
}

// EndVertex returns the vertex half-edge i points to.
func (m *Mesh) EndVertex(i HalfEdgeIndex) VertexIndex {
	return m.edges.At(PairIndex(i)).Start
}

// VertexCirculator returns every half-edge leaving the start vertex of i,
// beginning with i, in fan order (next of pair).
func (m *Mesh) VertexCirculator(i HalfEdgeIndex) []HalfEdgeIndex {
	return m.circulate(i, "vertex fan", m.opts.circulatorLimit, func(e HalfEdgeIndex) HalfEdgeIndex {
		return m.edges.At(PairIndex(e)).Next
	})
}

// FaceCirculator returns the loop of half-edges that i belongs to,
// beginning with i. The loop is either a face or a boundary loop.
func (m *Mesh) FaceCirculator(i HalfEdgeIndex) []HalfEdgeIndex {
	return m.circulate(i, "face loop", m.opts.circulatorLimit, m.nextOf)
}

func (m *Mesh) nextOf(e HalfEdgeIndex) HalfEdgeIndex {
	return m.edges.At(e).Next
}

// circulate walks from start with step until it comes back. A walk that
// meets an unset link or takes limit steps without closing means the
// topology is broken, and is a fault.
func (m *Mesh) circulate(start HalfEdgeIndex, what string, limit int, step func(HalfEdgeIndex) HalfEdgeIndex) []HalfEdgeIndex {
	m.edges.At(start)

	var out []HalfEdgeIndex
	e := start
	for {
		out = append(out, e)
		e = step(e)
		if e == start {
			break
		}
		m.assert(!e.IsUnset(), "%s from %s reached an unset half-edge after %d steps", what, start, len(out))
		m.assert(len(out) < limit, "%s from %s did not close within %d steps", what, start, limit)
	}
	return out
}

// IsBoundary reports whether i or its pair has no face. The second result
// is false if i does not address a half-edge.
func (m *Mesh) IsBoundary(i HalfEdgeIndex) (bool, bool) {
	if !m.edges.Has(i) {
		return false, false
	}
	return m.edges.At(i).Face.IsUnset() || m.edges.At(PairIndex(i)).Face.IsUnset(), true
}

// IsBoundaryVertex reports whether a new face may be attached at v: v is
// isolated or its outgoing half-edge has no face.
func (m *Mesh) IsBoundaryVertex(v VertexIndex) bool {
	out := m.vertices.At(v).Outgoing
	return out.IsUnset() || m.edges.At(out).Face.IsUnset()
}

// FindHalfEdge returns the half-edge running from start to end.
func (m *Mesh) FindHalfEdge(start, end VertexIndex) (HalfEdgeIndex, bool) {
	out := m.vertices.At(start).Outgoing
	if out.IsUnset() {
		return UnsetHalfEdge, false
	}
	for _, e := range m.VertexCirculator(out) {
		if m.EndVertex(e) == end {
			return e, true
		}
	}
	return UnsetHalfEdge, false
}

// FaceHalfEdges returns the half-edges bounding f, starting at its first.
func (m *Mesh) FaceHalfEdges(f FaceIndex) []HalfEdgeIndex {
	return m.FaceCirculator(m.faces.At(f).First)
}

// FaceVertices returns the corners of f in loop order.
func (m *Mesh) FaceVertices(f FaceIndex) []VertexIndex {
	loop := m.FaceHalfEdges(f)
	vs := make([]VertexIndex, len(loop))
	for i, e := range loop {
		vs[i] = m.edges.At(e).Start
	}
	return vs
}

// BoundaryLoops returns every loop of boundary half-edges, each starting
// at its lowest index. A boundary loop may be as long as the mesh itself,
// so the walk is bounded by the half-edge count, not the circulator limit.
func (m *Mesh) BoundaryLoops() [][]HalfEdgeIndex {
	var loops [][]HalfEdgeIndex
	seen := make(map[HalfEdgeIndex]bool)
	for i := HalfEdgeIndex(0); int(i) < m.edges.Len(); i++ {
		e := m.edges.At(i)
		if e.IsUnused() || !e.Face.IsUnset() || seen[i] {
			continue
		}
		loop := m.circulate(i, "boundary loop", m.edges.Len()+1, m.nextOf)
		for _, b := range loop {
			seen[b] = true
		}
		loops = append(loops, loop)
	}
	return loops
}
