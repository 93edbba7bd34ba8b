// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func TestRelaxConverges(t *testing.T) {
	rand.Seed(30)
	mp := testMap(8, 8, 8, 8)
	mp.InitWts()
	mp.DriveFmActs([]int{0})

	cyc, err := mp.RelaxH()
	if err != nil {
		t.Fatalf("RelaxH: %v", err)
	}
	if cyc <= 0 || cyc >= mp.Relax.MaxCycles {
		t.Errorf("RelaxH: %d cycles, want within (0, %d)", cyc, mp.Relax.MaxCycles)
	}
	// converged mean is stable to the criterion on the final iteration
	dm := math32.Abs(mp.Relax.MeanCur - mp.Relax.MeanPrv)
	if dm >= mp.Relax.ConvTol*math32.Abs(mp.Relax.MeanPrv) {
		t.Errorf("RelaxH: final mean change %v not within %v of mean %v", dm, mp.Relax.ConvTol, mp.Relax.MeanPrv)
	}
	for i, v := range mp.H.Values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			t.Fatalf("RelaxH: non-finite activity %v at %d", v, i)
		}
	}
}

// TestHStats pins the diagnostic stats on a hand-built grid.
func TestHStats(t *testing.T) {
	mp := testMap(2, 2, 2, 2)
	mp.H.Values = []float32{1, 4, 2, 3}
	mp.Relax.HStatsFmH(mp.H)
	st := &mp.Relax.HStats
	if math32.Abs(st.Avg-2.5) > difTol {
		t.Errorf("HStats.Avg = %v, want 2.5", st.Avg)
	}
	if st.Max != 4 {
		t.Errorf("HStats.Max = %v, want 4", st.Max)
	}
}

// TestRelaxLinearFixedPoint checks the sub-threshold linear regime: with all
// activity below Theta the lateral interactions are silent and the dynamics
// H += dt*(H0 + alpha*H) approach the fixed point H = -H0/alpha = 2*H0.
func TestRelaxLinearFixedPoint(t *testing.T) {
	mp := testMap(8, 8, 8, 8)
	for i := range mp.S.Values {
		mp.S.Values[i] = 1 // single-unit drive of 1, well below Theta = 10
	}
	mp.DriveFmActs([]int{5})

	if _, err := mp.RelaxH(); err != nil {
		t.Fatalf("RelaxH: %v", err)
	}
	for i, v := range mp.H.Values {
		if math32.Abs(v-2) > 0.04 { // converged to the 0.5% mean criterion
			t.Errorf("linear fixed point: H[%d] = %v, want 2 within 0.04", i, v)
		}
	}
}

// TestRelaxDivergent checks the cycle guard: excitation with no inhibition
// and no decay grows without bound and must surface ErrNotConverged rather
// than looping forever.
func TestRelaxDivergent(t *testing.T) {
	mp := testMap(8, 8, 8, 8)
	mp.Relax.Lat.Beta = 0.1
	mp.Relax.Lat.Gamma = 0
	mp.Relax.Lat.Delta = 0
	mp.Relax.Alpha = 0
	mp.Relax.MaxCycles = 50
	mp.Update()
	for i := range mp.S.Values {
		mp.S.Values[i] = 40 // drive well above Theta
	}
	mp.DriveFmActs([]int{0})

	cyc, err := mp.RelaxH()
	if err == nil {
		t.Fatalf("divergent relaxation converged in %d cycles", cyc)
	}
	if !errors.Is(err, ErrNotConverged) {
		t.Errorf("divergent relaxation error is not ErrNotConverged: %v", err)
	}
	if cyc != mp.Relax.MaxCycles {
		t.Errorf("divergent relaxation stopped at %d cycles, want %d", cyc, mp.Relax.MaxCycles)
	}
}

// TestStepNonConvergence checks that a failed epoch leaves the synapse
// matrix untouched: no plasticity from an unconverged relaxation.
func TestStepNonConvergence(t *testing.T) {
	mp := testMap(8, 8, 8, 8)
	mp.Relax.Lat.Beta = 0.1
	mp.Relax.Lat.Gamma = 0
	mp.Relax.Lat.Delta = 0
	mp.Relax.Alpha = 0
	mp.Relax.MaxCycles = 50
	mp.Update()
	for i := range mp.S.Values {
		mp.S.Values[i] = 40
	}
	orig := make([]float32, len(mp.S.Values))
	copy(orig, mp.S.Values)

	err := mp.Step([]int{0, 1})
	if !errors.Is(err, ErrNotConverged) {
		t.Fatalf("Step error: %v, want ErrNotConverged", err)
	}
	for i, w := range mp.S.Values {
		if w != orig[i] {
			t.Fatalf("Step modified synapse %d after failed relaxation: %v -> %v", i, orig[i], w)
		}
	}
}

func TestRelaxValidate(t *testing.T) {
	rx := RelaxParams{}
	rx.Defaults()
	if err := rx.Validate(); err != nil {
		t.Errorf("default relax params returned error: %v", err)
	}
	rx.Dt = 0
	if err := rx.Validate(); err == nil {
		t.Errorf("zero Dt did not return error")
	}
	rx.Defaults()
	rx.MaxCycles = 0
	if err := rx.Validate(); err == nil {
		t.Errorf("zero MaxCycles did not return error")
	}
}
