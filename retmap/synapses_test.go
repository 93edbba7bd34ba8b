// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func testMap(retX, retY, tecX, tecY int) *Map {
	mp := &Map{}
	mp.Defaults()
	mp.Ret.Set(retX, retY)
	mp.Tec.Set(tecX, tecY)
	mp.Update()
	mp.Build()
	return mp
}

func TestInitWts(t *testing.T) {
	rand.Seed(20)
	mp := testMap(8, 8, 10, 10)
	mp.Polar.Type = Graded // no square anchors skewing the sample mean much
	mp.Polar.Strength = 1  // graded with factor 1 leaves weights untouched
	mp.InitWts()

	sum := float32(0)
	for _, w := range mp.S.Values {
		if math32.IsNaN(w) || math32.IsInf(w, 0) {
			t.Fatalf("InitWts: non-finite weight %v", w)
		}
		sum += w
	}
	mean := sum / float32(len(mp.S.Values))
	if math32.Abs(mean-2.5) > 0.02 {
		t.Errorf("InitWts: sample mean %v, want 2.5 within 0.02", mean)
	}
}

func TestNormWts(t *testing.T) {
	rand.Seed(21)
	mp := testMap(8, 8, 10, 10)
	mp.InitWts()
	// perturb the rows away from the target mean
	for i := range mp.S.Values {
		mp.S.Values[i] += float32(i%7) * 0.3
	}
	mp.NormWts()

	nr := mp.Ret.N()
	trg := float32(mp.WtInit.Mean)
	for ti := 0; ti < mp.Tec.N(); ti++ {
		row := mp.S.Values[ti*nr : (ti+1)*nr]
		sum := float32(0)
		for _, w := range row {
			sum += w
		}
		mn := sum / float32(nr)
		if math32.Abs(mn-trg) > 1.0e-4 {
			t.Errorf("NormWts: row %d mean %v, want %v", ti, mn, trg)
		}
	}
}

func TestSquarePolarity(t *testing.T) {
	mp := testMap(8, 8, 10, 10)
	for i := range mp.S.Values {
		mp.S.Values[i] = 1
	}
	orig := make([]float32, len(mp.S.Values))
	copy(orig, mp.S.Values)

	mp.ApplyPolarity() // defaults: Square, strength 5, anchors at (0,0)

	nr := mp.Ret.N()
	nboost := 0
	for ti := 0; ti < mp.Tec.N(); ti++ {
		for ri := 0; ri < nr; ri++ {
			got := mp.S.Values[ti*nr+ri]
			ty, tx := mp.Tec.Coord(ti)
			ry, rx := mp.Ret.Coord(ri)
			anchor := ty < 2 && tx < 2 && ry == ty && rx == tx
			if anchor {
				nboost++
				if math32.Abs(got-5*orig[ti*nr+ri]) > difTol {
					t.Errorf("square polarity: anchor synapse (%d,%d) is %v, want %v", ti, ri, got, 5*orig[ti*nr+ri])
				}
			} else if got != orig[ti*nr+ri] {
				t.Errorf("square polarity: non-anchor synapse (%d,%d) changed: %v -> %v", ti, ri, orig[ti*nr+ri], got)
			}
		}
	}
	if nboost != 4 {
		t.Errorf("square polarity: %d anchor synapses boosted, want 4", nboost)
	}
}

func TestGradedPolarity(t *testing.T) {
	mp := testMap(8, 8, 8, 8) // same geometry: identical normalized positions exist
	mp.Polar.Type = Graded
	for i := range mp.S.Values {
		mp.S.Values[i] = 2
	}
	mp.ApplyPolarity()

	nr := mp.Ret.N()
	// identical normalized positions: distance 0, factor exactly 5
	for _, u := range []int{0, 9, 27, 63} {
		got := mp.S.Values[u*nr+u]
		if math32.Abs(got-10) > difTol {
			t.Errorf("graded polarity: unit %d self synapse is %v, want 10", u, got)
		}
	}
	// separation at or beyond half the maximum: unchanged
	far := mp.Ret.Idx(7, 7)
	if got := mp.S.Values[0*nr+far]; got != 2 {
		t.Errorf("graded polarity: distant synapse is %v, want unchanged 2", got)
	}
	// intermediate separation follows the linear decay
	mid := mp.Ret.Idx(0, 4) // normalized dx = 0.5, dist = 0.5/sqrt(2)
	dist := float32(0.5) / math32.Sqrt(2)
	want := (5 - 8*dist) * 2
	if got := mp.S.Values[0*nr+mid]; math32.Abs(got-want) > difTol {
		t.Errorf("graded polarity: mid synapse is %v, want %v", got, want)
	}
}

func TestPolarValidate(t *testing.T) {
	mp := testMap(8, 8, 10, 10)
	if err := mp.Polar.Validate(mp.Ret, mp.Tec); err != nil {
		t.Errorf("default polarity config returned error: %v", err)
	}
	bad := mp.Polar
	bad.RetAnchor.Set(7, 0) // 2x2 square would extend past the right edge
	if err := bad.Validate(mp.Ret, mp.Tec); err == nil {
		t.Errorf("out-of-range retinal anchor did not return error")
	}
	bad = mp.Polar
	bad.TecAnchor.Set(0, 9)
	if err := bad.Validate(mp.Ret, mp.Tec); err == nil {
		t.Errorf("out-of-range tectal anchor did not return error")
	}
	bad = mp.Polar
	bad.Type = PolarTypesN
	if err := bad.Validate(mp.Ret, mp.Tec); err == nil {
		t.Errorf("invalid polarity type did not return error")
	}
}
