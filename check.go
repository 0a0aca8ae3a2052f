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

func invariantf(format string, args ...interface{}) error {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}

// Check verifies the mesh for self-consistency and returns the first
// violated invariant as an *InvariantError. Removed entities are skipped.
func (m *Mesh) Check() (err error) {
	defer recoverInvariant(&err)

	live := 0
	for i := HalfEdgeIndex(0); int(i) < m.edges.Len(); i++ {
		e := m.edges.At(i)
		if e.IsUnused() {
			continue
		}
		live++
		pi := PairIndex(i)
		if PairIndex(pi) != i {
			return invariantf("pair of pair of %s is %s", i, PairIndex(pi))
		}
		p := m.edges.At(pi)
		if p.IsUnused() {
			return invariantf("%s is live but its pair %s is removed", i, pi)
		}
		if p.Start == e.Start {
			return invariantf("%s and its pair both start at %s", i, e.Start)
		}
		if !m.vertices.Has(e.Start) || m.vertices.At(e.Start).IsUnused() {
			return invariantf("%s starts at unused vertex %s", i, e.Start)
		}
		if !e.Face.IsUnset() && (!m.faces.Has(e.Face) || m.faces.At(e.Face).IsUnused()) {
			return invariantf("%s borders unused face %s", i, e.Face)
		}
		if !m.edges.Has(e.Next) || !m.edges.Has(e.Prev) {
			return invariantf("%s has links %s/%s", i, e.Next, e.Prev)
		}
		if m.edges.At(e.Next).Prev != i {
			return invariantf("prev of next of %s is %s", i, m.edges.At(e.Next).Prev)
		}
		if m.edges.At(e.Prev).Next != i {
			return invariantf("next of prev of %s is %s", i, m.edges.At(e.Prev).Next)
		}
		if m.edges.At(e.Next).Start != p.Start {
			return invariantf("next of %s starts at %s, not at its end %s", i, m.edges.At(e.Next).Start, p.Start)
		}
		if m.edges.At(e.Next).Face != e.Face {
			return invariantf("%s and its next border %s and %s", i, e.Face, m.edges.At(e.Next).Face)
		}
		b, _ := m.IsBoundary(i)
		pb, _ := m.IsBoundary(pi)
		if b != pb {
			return invariantf("boundary of %s and its pair differ", i)
		}
	}

	for f := FaceIndex(0); int(f) < m.faces.Len(); f++ {
		face := m.faces.At(f)
		if face.IsUnused() {
			continue
		}
		loop := m.FaceCirculator(face.First)
		if len(loop) < 3 {
			return invariantf("%s has %d sides", f, len(loop))
		}
		for _, e := range loop {
			if m.edges.At(e).Face != f {
				return invariantf("%s in loop of %s borders %s", e, f, m.edges.At(e).Face)
			}
		}
	}

	fanned := 0
	for v := VertexIndex(0); int(v) < m.vertices.Len(); v++ {
		vert := m.vertices.At(v)
		if vert.IsUnused() {
			continue
		}
		boundary := false
		fan := m.VertexCirculator(vert.Outgoing)
		for _, e := range fan {
			he := m.edges.At(e)
			if he.Start != v {
				return invariantf("%s in fan of %s starts at %s", e, v, he.Start)
			}
			boundary = boundary || he.Face.IsUnset()
		}
		if boundary && !m.edges.At(vert.Outgoing).Face.IsUnset() {
			return invariantf("boundary vertex %s has interior outgoing %s", v, vert.Outgoing)
		}
		fanned += len(fan)
	}
	if fanned != live {
		return invariantf("vertex fans cover %d of %d half-edges", fanned, live)
	}
	return nil
}
