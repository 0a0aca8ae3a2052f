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

// Vertex is a mesh vertex. A vertex whose Outgoing is unset is unused.
//
// Outgoing always starts at this vertex and, when the vertex lies on the
// boundary, is a half-edge without a face.
type Vertex struct {
	Outgoing HalfEdgeIndex
	Position Point
}

// NewVertex returns an unconnected vertex at p.
func NewVertex(p Point) Vertex {
	return Vertex{Outgoing: UnsetHalfEdge, Position: p}
}

func (v Vertex) IsUnused() bool {
	return v.Outgoing.IsUnset()
}

// HalfEdge is one directed side of an edge. Its pair lives at the index
// with the low bit flipped. An unset Face marks a boundary half-edge; an
// unset Start marks a removed one.
type HalfEdge struct {
	Start VertexIndex
	Face  FaceIndex
	Next  HalfEdgeIndex
	Prev  HalfEdgeIndex
}

func unsetHalfEdge() HalfEdge {
	return HalfEdge{
		Start: UnsetVertex,
		Face:  UnsetFace,
		Next:  UnsetHalfEdge,
		Prev:  UnsetHalfEdge,
	}
}

func (e HalfEdge) IsUnused() bool {
	return e.Start.IsUnset()
}

// Face is a polygon bounded by the loop starting at First.
type Face struct {
	First HalfEdgeIndex
}

func (f Face) IsUnused() bool {
	return f.First.IsUnset()
}

type index interface {
	~uint32
	IsUnset() bool
	String() string
}

// store is a dense, insertion-ordered arena. Indices stay valid until the
// next compaction.
type store[I index, T any] struct {
	items []T
}

type (
	vertexStore   = store[VertexIndex, Vertex]
	halfEdgeStore = store[HalfEdgeIndex, HalfEdge]
	faceStore     = store[FaceIndex, Face]
)

func newStore[I index, T any](capacity int) store[I, T] {
	return store[I, T]{items: make([]T, 0, capacity)}
}

func (s *store[I, T]) Len() int {
	return len(s.items)
}

// Add appends x and returns its index.
func (s *store[I, T]) Add(x T) I {
	i := I(len(s.items))
	assert(!i.IsUnset(), "store is full")
	s.items = append(s.items, x)
	return i
}

// At returns the entity at i. A stale or unset index is an invariant fault.
func (s *store[I, T]) At(i I) *T {
	assert(s.Has(i), "index %s out of range (len %d)", i, len(s.items))
	return &s.items[i]
}

// Has reports whether i addresses a slot of the arena.
func (s *store[I, T]) Has(i I) bool {
	return !i.IsUnset() && int(i) < len(s.items)
}

// Move copies the slot at from into to.
func (s *store[I, T]) Move(from, to I) {
	*s.At(to) = *s.At(from)
}

// RemoveRange physically deletes count slots starting at start.
func (s *store[I, T]) RemoveRange(start I, count int) {
	assert(int(start)+count <= len(s.items), "remove range %s+%d out of range (len %d)", start, count, len(s.items))
	s.items = append(s.items[:start], s.items[int(start)+count:]...)
}
