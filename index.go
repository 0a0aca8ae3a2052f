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
	"math"
	"strconv"
)

// unset is the reserved index value meaning "none".
const unset = math.MaxUint32

// VertexIndex addresses a vertex in a Mesh.
type VertexIndex uint32

// HalfEdgeIndex addresses a half-edge in a Mesh.
type HalfEdgeIndex uint32

// FaceIndex addresses a face in a Mesh.
type FaceIndex uint32

const (
	UnsetVertex   VertexIndex   = unset
	UnsetHalfEdge HalfEdgeIndex = unset
	UnsetFace     FaceIndex     = unset
)

func (i VertexIndex) IsUnset() bool   { return i == UnsetVertex }
func (i HalfEdgeIndex) IsUnset() bool { return i == UnsetHalfEdge }
func (i FaceIndex) IsUnset() bool     { return i == UnsetFace }

func (i VertexIndex) Next() VertexIndex     { return i + 1 }
func (i HalfEdgeIndex) Next() HalfEdgeIndex { return i + 1 }
func (i FaceIndex) Next() FaceIndex         { return i + 1 }

func (i VertexIndex) String() string   { return indexString("v", uint32(i)) }
func (i HalfEdgeIndex) String() string { return indexString("e", uint32(i)) }
func (i FaceIndex) String() string     { return indexString("f", uint32(i)) }

func indexString(prefix string, i uint32) string {
	if i == unset {
		return "unset"
	}
	return prefix + strconv.FormatUint(uint64(i), 10)
}

// PairIndex returns the index of the opposite half-edge of i.
// Half-edges are allocated in pairs at 2k and 2k+1, so no lookup is needed.
func PairIndex(i HalfEdgeIndex) HalfEdgeIndex {
	if i.IsUnset() {
		return UnsetHalfEdge
	}
	return i ^ 1
}
