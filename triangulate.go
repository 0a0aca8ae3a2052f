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

// Triangulate fans every live face into triangles.
//
// vertices holds the positions of the used vertices in index order, and
// each consecutive triple of elements indexes into it. Faces are fanned
// from their first corner, which is exact for convex faces only.
func (m *Mesh) Triangulate() ([]int, []Point, error) {
	dense := make([]int, m.vertices.Len())
	vertices := []Point{}
	for i := range m.vertices.items {
		v := &m.vertices.items[i]
		if v.IsUnused() {
			dense[i] = -1
			continue
		}
		dense[i] = len(vertices)
		vertices = append(vertices, v.Position)
	}

	elements := []int{}
	for f := FaceIndex(0); int(f) < m.faces.Len(); f++ {
		if m.faces.At(f).IsUnused() {
			continue
		}
		corners := m.FaceVertices(f)
		for _, c := range corners {
			if dense[c] < 0 {
				return nil, nil, fmt.Errorf("halfedge: triangulate %s: corner %s is unused", f, c)
			}
		}
		for j := 1; j+1 < len(corners); j++ {
			elements = append(elements, dense[corners[0]], dense[corners[j]], dense[corners[j+1]])
		}
	}
	return elements, vertices, nil
}
