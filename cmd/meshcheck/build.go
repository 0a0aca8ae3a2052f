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

package main

import (
	"errors"

	"github.com/hajimehoshi/go-halfedge"
	"github.com/hajimehoshi/go-halfedge/internal/obj"
)

// RejectedFace is an OBJ face that the mesh refused.
type RejectedFace struct {
	Face   int    `yaml:"face"`
	Reason string `yaml:"reason"`
}

// Report summarises a mesh.
type Report struct {
	Vertices      int            `yaml:"vertices"`
	HalfEdges     int            `yaml:"half_edges"`
	Faces         int            `yaml:"faces"`
	BoundaryLoops int            `yaml:"boundary_loops"`
	BoundaryEdges int            `yaml:"boundary_edges"`
	Triangles     int            `yaml:"triangles"`
	Rejected      []RejectedFace `yaml:"rejected,omitempty"`
	Error         string         `yaml:"error,omitempty"`
}

// buildMesh feeds the positions and faces of file into a new mesh. Faces
// the mesh rejects are reported and skipped.
func buildMesh(file *obj.File, opts ...halfedge.Option) (*halfedge.Mesh, []RejectedFace) {
	m := halfedge.NewMesh(append([]halfedge.Option{
		halfedge.WithCapacity(len(file.Positions), len(file.Faces)),
	}, opts...)...)

	for _, p := range file.Positions {
		m.AddVertexPosition(halfedge.Point{X: p[0], Y: p[1], Z: p[2]})
	}

	var rejected []RejectedFace
	for i, face := range file.Faces {
		verts := make([]halfedge.VertexIndex, len(face))
		for j, v := range face {
			verts[j] = halfedge.VertexIndex(v)
		}
		if _, err := m.AddFace(verts); err != nil {
			rejected = append(rejected, RejectedFace{Face: i, Reason: reason(err)})
		}
	}
	return m, rejected
}

func reason(err error) string {
	for _, target := range []error{
		halfedge.ErrDegenerateFace,
		halfedge.ErrComplexVertex,
		halfedge.ErrComplexEdge,
		halfedge.ErrPatchRelink,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

// faultError turns the value recovered from a topology fault into an
// error. Any other panic is re-raised.
func faultError(p interface{}) error {
	var ie *halfedge.InvariantError
	if err, ok := p.(error); ok && errors.As(err, &ie) {
		return ie
	}
	panic(p)
}

// guard runs fn and reports a topology fault as its error.
func guard(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = faultError(p)
		}
	}()
	return fn()
}

// report describes m. The check result is included when check is set. A
// topology fault met while walking the mesh ends up in Error.
func report(m *halfedge.Mesh, rejected []RejectedFace, check bool) (r Report) {
	r = Report{
		Vertices:  m.VertexCount(),
		HalfEdges: m.HalfEdgeCount(),
		Faces:     m.FaceCount(),
		Rejected:  rejected,
	}
	defer func() {
		if p := recover(); p != nil {
			r.Error = faultError(p).Error()
		}
	}()
	loops := m.BoundaryLoops()
	r.BoundaryLoops = len(loops)
	for _, l := range loops {
		r.BoundaryEdges += len(l)
	}
	if elements, _, err := m.Triangulate(); err == nil {
		r.Triangles = len(elements) / 3
	} else {
		r.Error = err.Error()
	}
	if check {
		if err := m.Check(); err != nil {
			r.Error = err.Error()
		}
	}
	return r
}
