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

import "log/slog"

// DefaultCirculatorLimit bounds every vertex-fan and face-loop walk.
// A walk that does not close within the limit means the graph is broken.
const DefaultCirculatorLimit = 100

// Option configures a Mesh in NewMesh.
//
// Example:
//
//	m := halfedge.NewMesh(
//	    halfedge.WithLogger(slog.Default()),
//	    halfedge.WithCirculatorLimit(256),
//	)
type Option func(*options)

type options struct {
	logger          *slog.Logger
	circulatorLimit int
	strictWinding   bool
	vertexCap       int
	faceCap         int
}

func defaultOptions() options {
	return options{
		circulatorLimit: DefaultCirculatorLimit,
	}
}

// WithLogger makes the mesh log to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCirculatorLimit changes the number of steps a circulator may take
// before it reports a broken vertex fan or face loop. Values below 3 are
// ignored.
func WithCirculatorLimit(n int) Option {
	return func(o *options) {
		if n >= 3 {
			o.circulatorLimit = n
		}
	}
}

// WithStrictWinding disables winding repair in AddFace: a polygon whose
// winding collides with an existing face is rejected instead of being
// inserted reversed.
func WithStrictWinding() Option {
	return func(o *options) {
		o.strictWinding = true
	}
}

// WithCapacity preallocates room for the given number of vertices and
// faces. Half-edge capacity is derived assuming a mostly-triangle mesh.
func WithCapacity(vertices, faces int) Option {
	return func(o *options) {
		if vertices > 0 {
			o.vertexCap = vertices
		}
		if faces > 0 {
			o.faceCap = faces
		}
	}
}
