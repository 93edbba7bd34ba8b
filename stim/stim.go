// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stim generates the retinal activation patterns that drive each
developmental epoch of retinotopic map formation.  A pattern is the set of
retinal units stimulated together for one epoch, returned as linear unit
indices into the retinal sheet.

Correlated local activity (Pairs, Squares, Sweep) is what drives correct
map formation.  Singles, TwoSingles and Strobe are intentionally
degenerate controls that lack the local correlations and are not expected
to produce an ordered map.  OccularDominance alternates whole half-sheets
by epoch parity.
*/
package stim

import (
	"fmt"
	"math/rand"

	"github.com/geobax/correlated-activity-76/sheet"
	"github.com/goki/ki/kit"
)

// Patterns are the selectable retinal activation patterns.
type Patterns int

//go:generate stringer -type=Patterns

var KiT_Patterns = kit.Enums.AddEnum(PatternsN, false, nil)

func (ev Patterns) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Patterns) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Pairs activates one random unit plus one randomly chosen in-bounds
	// neighbor at Manhattan distance 1 -- the standard pattern.
	Pairs Patterns = iota

	// Squares activates a 2x2 cluster anchored at a random unit, with the
	// cluster reflected inward at sheet edges.
	Squares

	// Sweep deterministically activates whole columns then whole rows,
	// keyed by epoch index with period width+height.
	Sweep

	// TwoPairs activates two Pairs-style pairs, with the second pair
	// resampled until it shares no unit with the first.
	TwoPairs

	// Singles activates one uniformly random unit.  Carries no correlation
	// structure and is not expected to form a map.
	Singles

	// Strobe activates the entire retinal sheet at once.  Not expected to
	// converge.
	Strobe

	// TwoSingles activates two distinct uniformly random units.  Not
	// expected to form a map.
	TwoSingles

	// OccularDominance alternates between the left and right halves of the
	// sheet by epoch parity.
	OccularDominance

	PatternsN
)

// Validate returns an error if the pattern cannot generate valid activation
// sets on a retinal sheet of the given geometry.  The neighbor-based
// patterns require at least a 2x2 sheet; TwoSingles needs two units;
// OccularDominance needs two columns to have two halves.
func (pat Patterns) Validate(ret sheet.Geom) error {
	if pat < 0 || pat >= PatternsN {
		return fmt.Errorf("stim: invalid pattern: %d", int(pat))
	}
	switch pat {
	case Pairs, Squares, TwoPairs:
		if ret.Size.X < 2 || ret.Size.Y < 2 {
			return fmt.Errorf("stim: %s pattern requires at least a 2x2 retina, got %d x %d", pat, ret.Size.X, ret.Size.Y)
		}
	case TwoSingles:
		if ret.N() < 2 {
			return fmt.Errorf("stim: %s pattern requires at least 2 retinal units, got %d", pat, ret.N())
		}
	case OccularDominance:
		if ret.Size.X < 2 {
			return fmt.Errorf("stim: %s pattern requires retina width >= 2, got %d", pat, ret.Size.X)
		}
	}
	return nil
}

// Gen generates one epoch's activation set for the given pattern on a
// retinal sheet of the given geometry, as linear unit indices.  epoch is
// the developmental epoch index, used only by the deterministic patterns
// (Sweep, OccularDominance).  The stochastic patterns draw from the global
// rand source, which callers seed for reproducibility.
func Gen(pat Patterns, ret sheet.Geom, epoch int) []int {
	switch pat {
	case Pairs:
		return genPairs(ret)
	case Squares:
		return genSquares(ret)
	case Sweep:
		return genSweep(ret, epoch)
	case TwoPairs:
		return genTwoPairs(ret)
	case Singles:
		return []int{rand.Intn(ret.N())}
	case Strobe:
		return genStrobe(ret)
	case TwoSingles:
		return genTwoSingles(ret)
	case OccularDominance:
		return genOccular(ret, epoch)
	}
	return nil
}

// adjacent returns the coordinates of a randomly chosen unit at Manhattan
// distance 1 from (y1, x1), clamping the choice to in-bounds directions at
// sheet edges (no wraparound).  The row is chosen first, among the rows
// available at this edge (which include staying on the same row); if the
// row is unchanged the column must move, again among in-bounds columns.
func adjacent(ret sheet.Geom, y1, x1 int) (y2, x2 int) {
	h := ret.Size.Y
	w := ret.Size.X
	switch {
	case y1 == 0:
		y2 = y1 + rand.Intn(2)
	case y1 == h-1:
		y2 = y1 - rand.Intn(2)
	default:
		y2 = y1 - 1 + rand.Intn(3)
	}
	if y2 == y1 {
		switch {
		case x1 == 0:
			x2 = x1 + 1
		case x1 == w-1:
			x2 = x1 - 1
		default:
			if rand.Intn(2) == 0 {
				x2 = x1 - 1
			} else {
				x2 = x1 + 1
			}
		}
	} else {
		x2 = x1
	}
	return
}

func genPairs(ret sheet.Geom) []int {
	y1 := rand.Intn(ret.Size.Y)
	x1 := rand.Intn(ret.Size.X)
	y2, x2 := adjacent(ret, y1, x1)
	return []int{ret.Idx(y1, x1), ret.Idx(y2, x2)}
}

func genSquares(ret sheet.Geom) []int {
	h := ret.Size.Y
	w := ret.Size.X
	y1 := rand.Intn(h)
	x1 := rand.Intn(w)
	var y2 int
	switch {
	case y1 == 0:
		y2 = 1
	case y1 == h-1:
		y2 = h - 2
	default:
		if rand.Intn(2) == 0 {
			y2 = y1 - 1
		} else {
			y2 = y1 + 1
		}
	}
	var x3 int
	switch {
	case x1 == 0:
		x3 = 1
	case x1 == w-1:
		x3 = w - 2
	default:
		if rand.Intn(2) == 0 {
			x3 = x1 - 1
		} else {
			x3 = x1 + 1
		}
	}
	return []int{ret.Idx(y1, x1), ret.Idx(y2, x1), ret.Idx(y1, x3), ret.Idx(y2, x3)}
}

func genSweep(ret sheet.Geom, epoch int) []int {
	h := ret.Size.Y
	w := ret.Size.X
	k := epoch % (w + h)
	if k < w { // columns first
		acts := make([]int, h)
		for y := 0; y < h; y++ {
			acts[y] = ret.Idx(y, k)
		}
		return acts
	}
	acts := make([]int, w)
	for x := 0; x < w; x++ {
		acts[x] = ret.Idx(k-w, x)
	}
	return acts
}

func genTwoPairs(ret sheet.Geom) []int {
	p1 := genPairs(ret)
	rn1 := p1[0]
	rn2 := p1[1]
	// second pair must share no unit with the first: resample the anchor
	// until clear, then its neighbor until clear.  The neighbor is never
	// equal to its own anchor by construction.
	rn3 := rn1
	var y3, x3 int
	for rn3 == rn1 || rn3 == rn2 {
		y3 = rand.Intn(ret.Size.Y)
		x3 = rand.Intn(ret.Size.X)
		rn3 = ret.Idx(y3, x3)
	}
	rn4 := rn1
	for rn4 == rn1 || rn4 == rn2 {
		y4, x4 := adjacent(ret, y3, x3)
		rn4 = ret.Idx(y4, x4)
	}
	return []int{rn1, rn2, rn3, rn4}
}

func genStrobe(ret sheet.Geom) []int {
	acts := make([]int, ret.N())
	for i := range acts {
		acts[i] = i
	}
	return acts
}

func genTwoSingles(ret sheet.Geom) []int {
	rn1 := rand.Intn(ret.N())
	rn2 := rn1
	for rn2 == rn1 {
		rn2 = rand.Intn(ret.N())
	}
	return []int{rn1, rn2}
}

func genOccular(ret sheet.Geom, epoch int) []int {
	h := ret.Size.Y
	w := ret.Size.X
	half := w / 2
	x0, x1 := 0, half
	if epoch%2 == 1 {
		x0, x1 = half, w
	}
	acts := make([]int, 0, h*(x1-x0))
	for y := 0; y < h; y++ {
		for x := x0; x < x1; x++ {
			acts = append(acts, ret.Idx(y, x))
		}
	}
	return acts
}
