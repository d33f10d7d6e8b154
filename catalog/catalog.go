// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog implements the Shape Catalog of spec.md 3: an
// ordered, append-only sequence of shapes referenced by an integer
// handle ("sht"), never by pointer, so it can live in a shared-read
// region once built.
package catalog

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/shdem/shape"
)

// ErrHandle is returned by Get for an out-of-range handle.
var ErrHandle = fmt.Errorf("catalog: invalid shape handle")

// Catalog holds shapes built once at startup and never mutated after.
type Catalog struct {
	shapes []*shape.Shape
}

// Add appends a shape and returns its handle.
func (c *Catalog) Add(s *shape.Shape) int {
	c.shapes = append(c.shapes, s)
	return len(c.shapes) - 1
}

// Get returns the shape for handle sht.
func (c *Catalog) Get(sht int) (*shape.Shape, error) {
	if sht < 0 || sht >= len(c.shapes) {
		return nil, fmt.Errorf("%w: sht=%d, len=%d", ErrHandle, sht, len(c.shapes))
	}
	return c.shapes[sht], nil
}

// Len returns the number of shapes in the catalog.
func (c *Catalog) Len() int { return len(c.shapes) }

// Build constructs a Catalog from coefficient files, one shape per
// path, following the lifecycle of spec.md 3: rank 0 reads every file
// from disk and builds each shape; every other rank waits and inherits
// the same deterministic build (gofem's own startup does the
// equivalent file read + mpi broadcast dance in main.go/fem.Start).
// Because Shape holds no pointers that cross process boundaries, each
// rank simply rebuilds the catalog from the same inputs rather than
// serializing it over the wire; only the rank-0-first ordering matters
// for deterministic logging.
func Build(cfg shape.Config, paths []string) (*Catalog, error) {
	cat := &Catalog{}
	if mpi.Rank() == 0 {
		if cfg.Verbose {
			io.Pf("catalog: building %d shapes\n", len(paths))
		}
		for _, p := range paths {
			s, err := buildOne(cfg, p)
			if err != nil {
				return nil, err
			}
			cat.Add(s)
		}
	}
	mpi.Barrier()
	if mpi.Rank() != 0 {
		for _, p := range paths {
			s, err := buildOne(cfg, p)
			if err != nil {
				return nil, err
			}
			cat.Add(s)
		}
	}
	return cat, nil
}

func buildOne(cfg shape.Config, path string) (*shape.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("catalog: cannot open %q: %v", path, err)
	}
	defer f.Close()
	return shape.Build(cfg, f)
}
