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

import "fmt"

// Compact physically removes every unused vertex, face and half-edge and
// renumbers all references. Indices obtained before Compact are invalid
// afterwards.
//
// The stages run in the order vertex, face, half-edge. Each stage rewrites
// the references into its own arena through a remap table, so it does not
// depend on the addressing of the other two.
func (m *Mesh) Compact() {
	nv, ne, nf := m.vertices.Len(), m.edges.Len(), m.faces.Len()
	m.VertexCompact()
	m.FaceCompact()
	m.HalfEdgeCompact()
	m.log().Debug("mesh compacted",
		"vertices", nv-m.vertices.Len(),
		"half_edges", ne-m.edges.Len(),
		"faces", nf-m.faces.Len())
}

// VertexCompact moves used vertices down over unused ones, trims the tail
// and rewrites the start vertex of every live half-edge.
func (m *Mesh) VertexCompact() {
	n := m.vertices.Len()
	remap := make([]VertexIndex, n)
	marker := VertexIndex(0)
	for i := VertexIndex(0); int(i) < n; i++ {
		if m.vertices.At(i).IsUnused() {
			remap[i] = UnsetVertex
			continue
		}
		if i != marker {
			m.vertices.Move(i, marker)
		}
		remap[i] = marker
		marker++
	}
	m.vertices.RemoveRange(marker, n-int(marker))

	for i := range m.edges.items {
		e := &m.edges.items[i]
		if e.IsUnused() {
			continue
		}
		m.assert(int(e.Start) < n, "%s starts at %s of %d vertices", HalfEdgeIndex(i), e.Start, n)
		v := remap[e.Start]
		m.assert(!v.IsUnset(), "%s starts at unused vertex %s", HalfEdgeIndex(i), e.Start)
		e.Start = v
	}
}

// FaceCompact moves used faces down over unused ones, trims the tail and
// rewrites the face of every half-edge that borders one.
func (m *Mesh) FaceCompact() {
	n := m.faces.Len()
	remap := make([]FaceIndex, n)
	marker := FaceIndex(0)
	for i := FaceIndex(0); int(i) < n; i++ {
		if m.faces.At(i).IsUnused() {
			remap[i] = UnsetFace
			continue
		}
		if i != marker {
			m.faces.Move(i, marker)
		}
		remap[i] = marker
		marker++
	}
	m.faces.RemoveRange(marker, n-int(marker))

	for i := range m.edges.items {
		e := &m.edges.items[i]
		if e.IsUnused() || e.Face.IsUnset() {
			continue
		}
		m.assert(int(e.Face) < n, "%s borders %s of %d faces", HalfEdgeIndex(i), e.Face, n)
		f := remap[e.Face]
		m.assert(!f.IsUnset(), "%s borders removed face %s", HalfEdgeIndex(i), e.Face)
		e.Face = f
	}
}

// HalfEdgeCompact moves live half-edges down over removed ones, trims the
// tail and rewrites every vertex, face and half-edge reference to them.
// Half-edges are only ever removed in pairs, so survivors keep the parity
// of their slot; anything else is corruption.
func (m *Mesh) HalfEdgeCompact() {
	n := m.edges.Len()
	remap := make([]HalfEdgeIndex, n)
	marker := HalfEdgeIndex(0)
	for i := HalfEdgeIndex(0); int(i) < n; i++ {
		if m.edges.At(i).IsUnused() {
			remap[i] = UnsetHalfEdge
			continue
		}
		m.assert(i%2 == marker%2, "half-edge %s would move to %s, breaking its pair", i, marker)
		if i != marker {
			m.edges.Move(i, marker)
		}
		remap[i] = marker
		marker++
	}
	m.assert(marker%2 == 0, "%d half-edges survived compaction", marker)
	m.edges.RemoveRange(marker, n-int(marker))

	lookup := func(e HalfEdgeIndex, owner fmt.Stringer) HalfEdgeIndex {
		if e.IsUnset() {
			return e
		}
		m.assert(int(e) < n && !remap[e].IsUnset(), "%s refers to removed half-edge %s", owner, e)
		return remap[e]
	}
	for i := range m.vertices.items {
		v := &m.vertices.items[i]
		v.Outgoing = lookup(v.Outgoing, VertexIndex(i))
	}
	for i := range m.faces.items {
		f := &m.faces.items[i]
		f.First = lookup(f.First, FaceIndex(i))
	}
	for i := range m.edges.items {
		e := &m.edges.items[i]
		e.Next = lookup(e.Next, HalfEdgeIndex(i))
		e.Prev = lookup(e.Prev, HalfEdgeIndex(i))
	}
}
