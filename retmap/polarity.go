// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"fmt"
	"math/rand"

	"github.com/emer/emergent/evec"
	"github.com/geobax/correlated-activity-76/sheet"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// PolarParams configure the polarity markers applied to the synapse matrix
// at initialization.  The markers break the rotational and reflective
// symmetry of the initial random weights so that the map always develops in
// the same orientation.
type PolarParams struct {
	Type        PolarTypes `desc:"which style of polarity marker to apply during InitWts"`
	Strength    float32    `def:"5" min:"1" desc:"multiplicative factor for the anchor synapses (Square), or the peak factor at zero separation (Graded)"`
	RandAnchors bool       `desc:"for Square markers, draw the 2x2 anchor positions at random during InitWts instead of using the configured anchors"`
	RetAnchor   evec.Vec2i `viewif:"!RandAnchors" desc:"top-left corner of the 2x2 retinal anchor square"`
	TecAnchor   evec.Vec2i `viewif:"!RandAnchors" desc:"top-left corner of the 2x2 tectal anchor square"`
}

func (pp *PolarParams) Defaults() {
	pp.Type = Square
	pp.Strength = 5
	pp.RandAnchors = false
	pp.RetAnchor.Set(0, 0)
	pp.TecAnchor.Set(0, 0)
}

func (pp *PolarParams) Update() {
}

// Validate returns an error if the polarity configuration cannot be applied
// on sheets of the given geometries: unknown marker type, sheets too small
// to hold a 2x2 anchor, or fixed anchor corners out of range.
func (pp *PolarParams) Validate(ret, tec sheet.Geom) error {
	if pp.Type < 0 || pp.Type >= PolarTypesN {
		return fmt.Errorf("retmap: invalid polarity marker type: %d", int(pp.Type))
	}
	if pp.Type != Square {
		return nil
	}
	if ret.Size.X < 2 || ret.Size.Y < 2 || tec.Size.X < 2 || tec.Size.Y < 2 {
		return fmt.Errorf("retmap: Square polarity markers require at least 2x2 sheets, got retina %d x %d, tectum %d x %d", ret.Size.X, ret.Size.Y, tec.Size.X, tec.Size.Y)
	}
	if pp.RandAnchors {
		return nil
	}
	if pp.RetAnchor.X < 0 || pp.RetAnchor.X > ret.Size.X-2 || pp.RetAnchor.Y < 0 || pp.RetAnchor.Y > ret.Size.Y-2 {
		return fmt.Errorf("retmap: retinal polarity anchor %v out of range for %d x %d sheet", pp.RetAnchor, ret.Size.X, ret.Size.Y)
	}
	if pp.TecAnchor.X < 0 || pp.TecAnchor.X > tec.Size.X-2 || pp.TecAnchor.Y < 0 || pp.TecAnchor.Y > tec.Size.Y-2 {
		return fmt.Errorf("retmap: tectal polarity anchor %v out of range for %d x %d sheet", pp.TecAnchor, tec.Size.X, tec.Size.Y)
	}
	return nil
}

// ApplyPolarity applies the configured polarity markers to the synapse
// matrix in place.  Called by InitWts -- the markers only make sense on the
// freshly initialized weights.
func (mp *Map) ApplyPolarity() {
	switch mp.Polar.Type {
	case Square:
		mp.squarePolarity()
	case Graded:
		mp.gradedPolarity()
	}
}

// squarePolarity multiplies the 4 synapses between corresponding cells of a
// 2x2 retinal anchor square and a 2x2 tectal anchor square by Strength.
func (mp *Map) squarePolarity() {
	ra := mp.Polar.RetAnchor
	ta := mp.Polar.TecAnchor
	if mp.Polar.RandAnchors {
		ra.Set(rand.Intn(mp.Ret.Size.X-1), rand.Intn(mp.Ret.Size.Y-1))
		ta.Set(rand.Intn(mp.Tec.Size.X-1), rand.Intn(mp.Tec.Size.Y-1))
	}
	nr := mp.Ret.N()
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			ri := mp.Ret.Idx(ra.Y+dy, ra.X+dx)
			ti := mp.Tec.Idx(ta.Y+dy, ta.X+dx)
			mp.S.Values[ti*nr+ri] *= mp.Polar.Strength
		}
	}
}

// gradedPolarity strengthens every synapse between retinal and tectal units
// at similar normalized sheet positions: positions are normalized by their
// sheet dimensions, the Euclidean separation is normalized by the maximum
// possible (sqrt 2), and for separations below 0.5 the synapse is scaled by
// a factor decaying linearly from Strength at zero separation to 1 at 0.5
// (no change beyond).  This is a dense pass over every synapse -- the
// factor depends jointly on both unit positions.
func (mp *Map) gradedPolarity() {
	nt := mp.Tec.N()
	nr := mp.Ret.N()
	rh := float32(mp.Ret.Size.Y)
	rw := float32(mp.Ret.Size.X)
	th := float32(mp.Tec.Size.Y)
	tw := float32(mp.Tec.Size.X)
	slope := 2 * (mp.Polar.Strength - 1) // Strength at dist 0, 1 at dist 0.5
	invMax := float32(1) / mat32.Sqrt(2)
	for t := 0; t < nt; t++ {
		ty, tx := mp.Tec.Coord(t)
		c := float32(ty) / th
		d := float32(tx) / tw
		row := mp.S.Values[t*nr : (t+1)*nr]
		for r := 0; r < nr; r++ {
			ry, rx := mp.Ret.Coord(r)
			a := float32(ry) / rh
			b := float32(rx) / rw
			dist := mat32.Sqrt((a-c)*(a-c)+(b-d)*(b-d)) * invMax
			if dist < 0.5 {
				row[r] *= mp.Polar.Strength - slope*dist
			}
		}
	}
}

//////////////////////////////////////////////////////////////////////
// Enums

// PolarTypes are the styles of polarity marker.
type PolarTypes int

//go:generate stringer -type=PolarTypes

var KiT_PolarTypes = kit.Enums.AddEnum(PolarTypesN, false, nil)

func (ev PolarTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *PolarTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Square multiplies the synapses between a 2x2 retinal anchor square and
	// a 2x2 tectal anchor square by Strength -- the minimal orientation cue.
	Square PolarTypes = iota

	// Graded strengthens every synapse between units at nearby normalized
	// sheet positions, decaying linearly with separation.
	Graded

	PolarTypesN
)
