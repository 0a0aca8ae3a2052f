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

// Dual builds the dual of m. Every live face of m becomes a vertex at the
// face centroid, and every interior vertex of m becomes a face joining the
// centroids of the faces around it. Boundary vertices have no dual face.
//
// The dual keeps the winding of m. It is created with the same options.
func (m *Mesh) Dual() (*Mesh, error) {
	d := &Mesh{opts: m.opts}
	d.vertices = newStore[VertexIndex, Vertex](m.faces.Len())
	d.edges = newStore[HalfEdgeIndex, HalfEdge](m.edges.Len())
	d.faces = newStore[FaceIndex, Face](m.vertices.Len())

	centroid := make([]VertexIndex, m.faces.Len())
	for f := FaceIndex(0); int(f) < m.faces.Len(); f++ {
		if m.faces.At(f).IsUnused() {
			centroid[f] = UnsetVertex
			continue
		}
		centroid[f] = d.AddVertexPosition(m.FaceCentroid(f))
	}

	for v := VertexIndex(0); int(v) < m.vertices.Len(); v++ {
		if m.vertices.At(v).IsUnused() || m.IsBoundaryVertex(v) {
			continue
		}
		// The fan turns clockwise when faces wind counter-clockwise, so it
		// is read backwards.
		fan := m.VertexCirculator(m.vertices.At(v).Outgoing)
		poly := make([]VertexIndex, 0, len(fan))
		for i := len(fan) - 1; i >= 0; i-- {
			poly = append(poly, centroid[m.edges.At(fan[i]).Face])
		}
		if _, err := d.AddFace(poly); err != nil {
			return nil, fmt.Errorf("halfedge: dual face around %s: %w", v, err)
		}
	}
	return d, nil
}
