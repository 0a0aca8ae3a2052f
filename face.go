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
	"errors"
	"fmt"
)

type faceEdge struct {
	edge        HalfEdgeIndex
	isNew       bool
	needsAdjust bool
}

// link is a pending Next/Prev assignment. Links are collected while the
// old topology is still being read and applied all at once.
type link struct {
	prev, next HalfEdgeIndex
}

// facePlan is everything AddFace learned while validating a polygon.
// Building one never mutates the mesh.
type facePlan struct {
	verts    []VertexIndex
	edges    []faceEdge
	isolated []bool
	links    []link
}

// AddFace adds the polygon verts and returns its index.
//
// A rejected polygon leaves the mesh untouched and returns UnsetFace with
// an error wrapping ErrDegenerateFace, ErrComplexVertex, ErrComplexEdge or
// ErrPatchRelink. Unless the mesh was created with WithStrictWinding, a
// polygon whose winding collides with an existing face is retried once
// reversed. The retry never applies to a polygon that repeats an existing
// face.
func (m *Mesh) AddFace(verts []VertexIndex) (FaceIndex, error) {
	plan, err := m.planFace(verts)
	if errors.Is(err, ErrComplexEdge) && !m.opts.strictWinding {
		if rplan, rerr := m.planFace(reversed(verts)); rerr == nil && !m.duplicatesFace(rplan) {
			m.log().Debug("face winding reversed", "vertices", verts)
			plan, err = rplan, nil
		}
	}
	if err != nil {
		m.log().Debug("face rejected", "vertices", verts, "err", err)
		return UnsetFace, err
	}
	return m.applyFace(plan), nil
}

// duplicatesFace reports whether plan only reuses half-edges whose pairs
// all bound one existing face of the same size. Applying it would glue a
// back side onto that face.
func (m *Mesh) duplicatesFace(plan *facePlan) bool {
	f := UnsetFace
	for _, fe := range plan.edges {
		if fe.isNew {
			return false
		}
		g := m.edges.At(PairIndex(fe.edge)).Face
		if g.IsUnset() || (!f.IsUnset() && g != f) {
			return false
		}
		f = g
	}
	return len(m.FaceHalfEdges(f)) == len(plan.edges)
}

func reversed(verts []VertexIndex) []VertexIndex {
	r := make([]VertexIndex, len(verts))
	for i, v := range verts {
		r[len(verts)-1-i] = v
	}
	return r
}

// planFace runs every check AddFace needs before it may touch the arenas.
func (m *Mesh) planFace(verts []VertexIndex) (*facePlan, error) {
	n := len(verts)
	if n < 3 {
		return nil, fmt.Errorf("halfedge: face with %d vertices: %w", n, ErrDegenerateFace)
	}

	seen := make(map[VertexIndex]struct{}, n)
	for _, v := range verts {
		m.vertices.At(v)
		if _, ok := seen[v]; ok {
			return nil, fmt.Errorf("halfedge: vertex %s repeated: %w", v, ErrDegenerateFace)
		}
		seen[v] = struct{}{}
	}

	plan := &facePlan{
		verts:    verts,
		edges:    make([]faceEdge, n),
		isolated: make([]bool, n),
	}

	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if !m.IsBoundaryVertex(verts[i]) {
			return nil, fmt.Errorf("halfedge: vertex %s: %w", verts[i], ErrComplexVertex)
		}
		plan.isolated[i] = m.vertices.At(verts[i]).Outgoing.IsUnset()

		e, ok := m.FindHalfEdge(verts[i], verts[ii])
		if !ok {
			plan.edges[i].isNew = true
			continue
		}
		if !m.edges.At(e).Face.IsUnset() {
			return nil, fmt.Errorf("halfedge: edge %s-%s: %w", verts[i], verts[ii], ErrComplexEdge)
		}
		plan.edges[i].edge = e
	}

	// Two consecutive existing half-edges must be consecutive in their
	// boundary loop too. If they are not, the patch of fans between them
	// is moved into another free gap around the shared vertex.
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		if plan.edges[i].isNew || plan.edges[ii].isNew {
			continue
		}
		innerPrev := plan.edges[i].edge
		innerNext := plan.edges[ii].edge
		if m.edges.At(innerPrev).Next == innerNext {
			continue
		}

		boundaryPrev := PairIndex(innerNext)
		for steps := 0; ; steps++ {
			m.assert(steps < m.opts.circulatorLimit, "no boundary around %s within %d steps", verts[ii], m.opts.circulatorLimit)
			boundaryPrev = PairIndex(m.edges.At(boundaryPrev).Next)
			if m.edges.At(boundaryPrev).Face.IsUnset() {
				break
			}
		}
		if boundaryPrev == innerPrev {
			return nil, fmt.Errorf("halfedge: vertex %s: %w", verts[ii], ErrPatchRelink)
		}
		boundaryNext := m.edges.At(boundaryPrev).Next

		patchStart := m.edges.At(innerPrev).Next
		patchEnd := m.edges.At(innerNext).Prev

		plan.links = append(plan.links,
			link{boundaryPrev, patchStart},
			link{patchEnd, boundaryNext},
			link{innerPrev, innerNext})
	}

	return plan, nil
}

// applyFace performs a validated plan. Nothing in here can reject.
func (m *Mesh) applyFace(plan *facePlan) FaceIndex {
	verts, edges := plan.verts, plan.edges
	n := len(verts)
	f := FaceIndex(m.faces.Len())

	for i := 0; i < n; i++ {
		if edges[i].isNew {
			edges[i].edge = m.AddEdgePair(verts[i], verts[(i+1)%n], f)
		} else {
			m.edges.At(edges[i].edge).Face = f
		}
	}

	links := plan.links
	for i := 0; i < n; i++ {
		ii := (i + 1) % n
		vh := verts[ii]
		innerPrev := edges[i].edge
		innerNext := edges[ii].edge

		if !edges[i].isNew && !edges[ii].isNew {
			edges[ii].needsAdjust = m.vertices.At(vh).Outgoing == innerNext
			continue
		}

		outerPrev := PairIndex(innerNext)
		outerNext := PairIndex(innerPrev)

		switch {
		case edges[i].isNew && !edges[ii].isNew:
			boundaryPrev := m.edges.At(innerNext).Prev
			links = append(links, link{boundaryPrev, outerNext})
			m.vertices.At(vh).Outgoing = outerNext

		case !edges[i].isNew && edges[ii].isNew:
			boundaryNext := m.edges.At(innerPrev).Next
			links = append(links, link{outerPrev, boundaryNext})
			m.vertices.At(vh).Outgoing = boundaryNext

		case plan.isolated[ii]:
			m.vertices.At(vh).Outgoing = outerNext
			links = append(links, link{outerPrev, outerNext})

		default:
			// Both sides are new and vh already has a fan: splice the new
			// wedge into the gap at vh's boundary half-edge.
			boundaryNext := m.vertices.At(vh).Outgoing
			boundaryPrev := m.edges.At(boundaryNext).Prev
			links = append(links, link{boundaryPrev, outerNext}, link{outerPrev, boundaryNext})
		}
		links = append(links, link{innerPrev, innerNext})
	}

	for _, l := range links {
		m.makeConsecutive(l.prev, l.next)
	}
	for i := 0; i < n; i++ {
		if edges[i].needsAdjust {
			m.adjustOutgoing(verts[i])
		}
	}

	got := m.faces.Add(Face{First: edges[0].edge})
	m.assert(got == f, "face allocated at %s, want %s", got, f)
	return f
}

// RemoveFace removes f. Its half-edges become boundary half-edges; those
// whose pair was already on the boundary are removed altogether, and
// vertices left without half-edges become unused.
func (m *Mesh) RemoveFace(f FaceIndex) error {
	face := m.faces.At(f)
	if face.IsUnused() {
		return fmt.Errorf("halfedge: remove %s: %w", f, ErrFaceRemoved)
	}

	loop := m.FaceCirculator(face.First)
	for _, e := range loop {
		m.assert(m.edges.At(e).Face == f, "%s in loop of %s borders %s", e, f, m.edges.At(e).Face)
		m.edges.At(e).Face = UnsetFace
	}

	verts := make([]VertexIndex, 0, len(loop))
	var doomed []HalfEdgeIndex
	for _, e := range loop {
		v := m.edges.At(e).Start
		verts = append(verts, v)
		if m.edges.At(PairIndex(e)).Face.IsUnset() {
			doomed = append(doomed, e)
			continue
		}
		m.vertices.At(v).Outgoing = e
	}
	for _, e := range doomed {
		if err := m.RemoveHalfEdgePair(e); err != nil {
			fault(m.log(), "removing %s of %s: %v", e, f, err)
		}
	}
	for _, v := range verts {
		m.adjustOutgoing(v)
	}

	face.First = UnsetHalfEdge
	return nil
}
