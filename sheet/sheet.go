// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sheet provides the 2D rectangular neuron-sheet geometry shared by the
retinal and tectal layers: sizes, unit counts, and the mapping between (row,
column) grid coordinates and linear unit indices.
*/
package sheet

import (
	"fmt"

	"github.com/emer/emergent/evec"
)

// Geom is the geometry of one rectangular sheet of neurons.
// Units are indexed row-major: idx = y*Size.X + x, matching the
// outer-to-inner (Y, X) shape convention used for the state tensors.
type Geom struct {
	Size evec.Vec2i `desc:"size of the sheet: X = width (number of columns), Y = height (number of rows)"`
}

// Set sets the sheet size: x = width, y = height.
func (gm *Geom) Set(x, y int) {
	gm.Size.Set(x, y)
}

// N returns the total number of units on the sheet.
func (gm Geom) N() int {
	return gm.Size.X * gm.Size.Y
}

// Idx returns the linear unit index for given grid coordinates.
// Coordinates must be in range: this is pure index arithmetic and
// out-of-range args are a caller bug, not a runtime condition.
func (gm Geom) Idx(y, x int) int {
	return y*gm.Size.X + x
}

// Coord returns the grid coordinates (y = row, x = column) for a
// linear unit index.
func (gm Geom) Coord(idx int) (y, x int) {
	return idx / gm.Size.X, idx % gm.Size.X
}

// Shape returns the tensor shape for sheet-shaped state: {height, width}.
func (gm Geom) Shape() []int {
	return []int{gm.Size.Y, gm.Size.X}
}

// Validate returns an error if the sheet dimensions are not positive.
func (gm Geom) Validate(name string) error {
	if gm.Size.X <= 0 || gm.Size.Y <= 0 {
		return fmt.Errorf("sheet.Geom: %s dimensions must be positive, got %d x %d", name, gm.Size.X, gm.Size.Y)
	}
	return nil
}
