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

// meshcheck loads Wavefront OBJ files into a half-edge mesh and reports on
// their topology.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hajimehoshi/go-halfedge"
	"github.com/hajimehoshi/go-halfedge/internal/obj"
)

var (
	asYAML  bool
	limit   int
	strict  bool
	verbose bool
	faces   string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "meshcheck",
		Short:         "Inspect the topology of polygon meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				halfedge.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
			} else {
				halfedge.SetLogger(nil)
			}
		},
	}
	root.PersistentFlags().BoolVar(&asYAML, "yaml", false, "print reports as YAML")
	root.PersistentFlags().IntVar(&limit, "limit", 1024, "circulator step limit")
	root.PersistentFlags().BoolVar(&strict, "strict", false, "reject faces with colliding winding instead of reversing them")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log mesh operations to stderr")

	statsCmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print element counts, boundary loops and rejected faces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, rejected, err := load(args[0])
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report(m, rejected, false))
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Verify every topology invariant of the mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, rejected, err := load(args[0])
			if err != nil {
				return err
			}
			r := report(m, rejected, true)
			if err := printReport(cmd.OutOrStdout(), r); err != nil {
				return err
			}
			if r.Error != "" {
				return fmt.Errorf("%s: %s", args[0], r.Error)
			}
			return nil
		},
	}

	dualCmd := &cobra.Command{
		Use:   "dual FILE",
		Short: "Build the dual mesh and report on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := load(args[0])
			if err != nil {
				return err
			}
			var d *halfedge.Mesh
			if err := guard(func() (err error) {
				d, err = m.Dual()
				return err
			}); err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report(d, nil, true))
		},
	}

	stripCmd := &cobra.Command{
		Use:   "strip FILE",
		Short: "Remove faces, compact the mesh and report on the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseFaces(faces)
			if err != nil {
				return err
			}
			m, _, err := load(args[0])
			if err != nil {
				return err
			}
			if err := guard(func() error {
				for _, f := range ids {
					if int(f) >= m.FaceCount() {
						return fmt.Errorf("face %d out of range (%d faces)", f, m.FaceCount())
					}
					if err := m.RemoveFace(f); err != nil {
						return err
					}
				}
				m.Compact()
				return nil
			}); err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), report(m, nil, true))
		},
	}
	stripCmd.Flags().StringVar(&faces, "faces", "", "comma separated face indices to remove")

	root.AddCommand(statsCmd, checkCmd, dualCmd, stripCmd)
	return root
}

func load(path string) (*halfedge.Mesh, []RejectedFace, error) {
	file, err := obj.Load(path)
	if err != nil {
		return nil, nil, err
	}
	opts := []halfedge.Option{halfedge.WithCirculatorLimit(limit)}
	if strict {
		opts = append(opts, halfedge.WithStrictWinding())
	}
	var m *halfedge.Mesh
	var rejected []RejectedFace
	err = guard(func() error {
		m, rejected = buildMesh(file, opts...)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, rejected, nil
}

// parseFaces reads a list such as "0,3,7". Face indices refer to the mesh
// as built, so rejected OBJ faces do not count.
func parseFaces(s string) ([]halfedge.FaceIndex, error) {
	var ids []halfedge.FaceIndex
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad face index %q: %w", tok, err)
		}
		ids = append(ids, halfedge.FaceIndex(n))
	}
	return ids, nil
}

func printReport(w io.Writer, r Report) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	fmt.Fprintf(w, "vertices:       %d\n", r.Vertices)
	fmt.Fprintf(w, "half-edges:     %d\n", r.HalfEdges)
	fmt.Fprintf(w, "faces:          %d\n", r.Faces)
	fmt.Fprintf(w, "boundary loops: %d (%d edges)\n", r.BoundaryLoops, r.BoundaryEdges)
	fmt.Fprintf(w, "triangles:      %d\n", r.Triangles)
	for _, rf := range r.Rejected {
		fmt.Fprintf(w, "rejected face %d: %s\n", rf.Face, rf.Reason)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "error: %s\n", r.Error)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "meshcheck:", err)
		os.Exit(1)
	}
}
