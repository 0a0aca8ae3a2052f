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

// Package obj reads the polygon subset of Wavefront OBJ files: vertex
// positions and faces. Everything else (normals, texture coordinates,
// groups, materials) is skipped.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// File is the polygon content of an OBJ file.
type File struct {
	// Positions holds x, y, z for every "v" record.
	Positions [][3]float64

	// Faces holds 0-based position indices for every "f" record.
	Faces [][]int
}

// Load reads the OBJ file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses OBJ data from r.
func Read(r io.Reader) (*File, error) {
	file := &File{}
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		var err error
		switch fields[0] {
		case "v":
			err = file.readVertex(fields[1:])
		case "f":
			err = file.readFace(fields[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("obj: line %d: %w", line, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	return file, nil
}

func (f *File) readVertex(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("vertex with %d coordinates", len(fields))
	}
	var p [3]float64
	for i := range p {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return err
		}
		p[i] = v
	}
	f.Positions = append(f.Positions, p)
	return nil
}

func (f *File) readFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face with %d vertices", len(fields))
	}
	face := make([]int, len(fields))
	for i, field := range fields {
		idx, err := f.index(field)
		if err != nil {
			return err
		}
		face[i] = idx
	}
	f.Faces = append(f.Faces, face)
	return nil
}

// index resolves a "v", "v/vt", "v//vn" or "v/vt/vn" token. OBJ indices
// are 1-based; negative ones count back from the last vertex read.
func (f *File) index(token string) (int, error) {
	if i := strings.IndexByte(token, '/'); i >= 0 {
		token = token[:i]
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, err
	}
	switch {
	case n > 0 && n <= len(f.Positions):
		return n - 1, nil
	case n < 0 && -n <= len(f.Positions):
		return len(f.Positions) + n, nil
	}
	return 0, fmt.Errorf("vertex index %d out of range (%d vertices)", n, len(f.Positions))
}
