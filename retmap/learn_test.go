// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestDWtFmH(t *testing.T) {
	mp := testMap(8, 8, 8, 8)
	for i := range mp.S.Values {
		mp.S.Values[i] = 1
	}
	// converged activity: unit 0 well above threshold+modification threshold,
	// unit 1 above threshold but at the modification threshold, rest below
	mp.H.SetZeros()
	mp.H.Values[0] = 15 // thresholded: 5 > ModThresh 2
	mp.H.Values[1] = 12 // thresholded: 2, not > ModThresh
	mp.H.Values[2] = 9  // below Theta

	acts := []int{2, 5}
	mp.DWtFmH(acts)

	nr := mp.Ret.N()
	lr := mp.Learn.LRate
	for ti := 0; ti < mp.Tec.N(); ti++ {
		for ri := 0; ri < nr; ri++ {
			got := mp.S.Values[ti*nr+ri]
			want := float32(1)
			if ti == 0 && (ri == 2 || ri == 5) {
				want = 1 + lr*5
			}
			if math32.Abs(got-want) > difTol {
				t.Errorf("DWt: synapse (%d,%d) is %v, want %v", ti, ri, got, want)
			}
		}
	}
}

// TestDWtMonotonic checks that in-set synapse increases are ordered by the
// thresholded activity of their tectal unit.
func TestDWtMonotonic(t *testing.T) {
	mp := testMap(8, 8, 8, 8)
	for i := range mp.S.Values {
		mp.S.Values[i] = 1
	}
	mp.H.SetZeros()
	mp.H.Values[0] = 13
	mp.H.Values[1] = 20
	mp.H.Values[2] = 40

	mp.DWtFmH([]int{7})

	nr := mp.Ret.N()
	d0 := mp.S.Values[0*nr+7] - 1
	d1 := mp.S.Values[1*nr+7] - 1
	d2 := mp.S.Values[2*nr+7] - 1
	if !(d0 < d1 && d1 < d2) {
		t.Errorf("DWt not monotonic in activity: deltas %v, %v, %v", d0, d1, d2)
	}
	if d0 <= 0 {
		t.Errorf("DWt: above-threshold unit got non-positive delta %v", d0)
	}
}
