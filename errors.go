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
	"log/slog"
)

// Rejections. The mesh is unchanged when one of these is returned.
var (
	ErrDegenerateFace = errors.New("halfedge: degenerate face")
	ErrComplexVertex  = errors.New("halfedge: complex vertex")
	ErrComplexEdge    = errors.New("halfedge: complex edge")
	ErrPatchRelink    = errors.New("halfedge: patch re-linking failed")
	ErrEdgeInUse      = errors.New("halfedge: edge still has a face")
	ErrEdgeRemoved    = errors.New("halfedge: edge already removed")
	ErrFaceRemoved    = errors.New("halfedge: face already removed")
)

// InvariantError describes a broken topology invariant. It is the value
// passed to panic when the mesh is found to be corrupted; Check reports it
// as an ordinary error instead.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "halfedge: invariant violated: " + e.Msg
}

func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		fault(Logger(), format, args...)
	}
}

func fault(l *slog.Logger, format string, args ...interface{}) {
	err := &InvariantError{Msg: fmt.Sprintf(format, args...)}
	l.Error("topology fault", "err", err)
	panic(err)
}

// recoverInvariant turns an InvariantError panic into *errp. Other panics
// are re-raised.
func recoverInvariant(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	var ie *InvariantError
	if err, ok := r.(error); ok && errors.As(err, &ie) {
		*errp = ie
		return
	}
	panic(r)
}
