// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"errors"
	"fmt"

	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
	"github.com/geobax/correlated-activity-76/lateral"
	"github.com/goki/mat32"
)

// ErrNotConverged is returned when the tectal relaxation fails to satisfy
// the convergence criterion within MaxCycles iterations.  Parameter regimes
// where excitation dominates inhibition and decay never converge -- callers
// should treat this as a property of the parameters, abandon the epoch, and
// decide whether to abort or continue the run.
var ErrNotConverged = errors.New("tectal relaxation did not converge")

// RelaxParams govern the tectal lateral-interaction relaxation dynamics:
// each cycle thresholds the activity grid, applies the lateral interaction
// kernel to the thresholded activity, adds the retinal drive and membrane
// decay, and integrates one time step, until the relative change in the
// grid mean falls below ConvTol.  The mean is taken over the full grid --
// boundary units included -- matching the original model dynamics.
type RelaxParams struct {
	Lat       lateral.Params `view:"inline" desc:"lateral interaction strengths by Manhattan distance"`
	Dt        float32        `def:"1" min:"0" desc:"integration time step for the relaxation dynamics"`
	Alpha     float32        `def:"-0.5" desc:"membrane decay coefficient -- negative for decay"`
	Theta     float32        `def:"10" desc:"activity threshold: only activity above this engages the lateral interactions and plasticity"`
	ConvTol   float32        `def:"0.005" min:"0" desc:"relative change in the grid mean below which the relaxation has converged"`
	MaxCycles int            `def:"10000" min:"1" desc:"hard limit on relaxation cycles -- exceeding it returns ErrNotConverged instead of looping forever"`

	Cycles  int             `inactive:"+" desc:"number of cycles taken by the most recent relaxation"`
	MeanPrv float32         `inactive:"+" desc:"grid mean before the final integration step"`
	MeanCur float32         `inactive:"+" desc:"grid mean after the final integration step"`
	HStats  minmax.AvgMax32 `inactive:"+" view:"inline" desc:"avg and max of the tectal activity at the end of the most recent relaxation"`
}

func (rx *RelaxParams) Defaults() {
	rx.Lat.Defaults()
	rx.Dt = 1
	rx.Alpha = -0.5
	rx.Theta = 10
	rx.ConvTol = 0.005
	rx.MaxCycles = 10000
	rx.Update()
}

func (rx *RelaxParams) Update() {
	rx.Lat.Update()
}

// Validate returns an error for parameter values that cannot drive the
// relaxation loop at all.
func (rx *RelaxParams) Validate() error {
	if rx.Dt <= 0 {
		return fmt.Errorf("retmap: relaxation Dt must be positive, got %v", rx.Dt)
	}
	if rx.ConvTol <= 0 {
		return fmt.Errorf("retmap: relaxation ConvTol must be positive, got %v", rx.ConvTol)
	}
	if rx.MaxCycles <= 0 {
		return fmt.Errorf("retmap: relaxation MaxCycles must be positive, got %v", rx.MaxCycles)
	}
	return nil
}

// Threshold sets dst to the thresholded activity: src - Theta where src
// exceeds Theta, 0 elsewhere.
func (rx *RelaxParams) Threshold(dst, src *etensor.Float32) {
	for i, v := range src.Values {
		if v > rx.Theta {
			dst.Values[i] = v - rx.Theta
		} else {
			dst.Values[i] = 0
		}
	}
}

// HStatsFmH updates the activity diagnostics from the given grid.
func (rx *RelaxParams) HStatsFmH(h *etensor.Float32) {
	rx.HStats.Init()
	for i, v := range h.Values {
		rx.HStats.UpdateVal(v, i)
	}
	rx.HStats.CalcAvg()
}

// DriveFmActs computes the retinal drive H0 into the tectal sheet for the
// given activation set: for each tectal unit, the sum of its synapse
// strengths from every active retinal unit.  The activity grid H starts the
// epoch equal to the drive.
func (mp *Map) DriveFmActs(acts []int) {
	nt := mp.Tec.N()
	nr := mp.Ret.N()
	for t := 0; t < nt; t++ {
		row := mp.S.Values[t*nr : (t+1)*nr]
		sum := float32(0)
		for _, r := range acts {
			sum += row[r]
		}
		mp.H0.Values[t] = sum
		mp.H.Values[t] = sum
	}
}

// RelaxH iterates the lateral-interaction dynamics on the activity grid H
// until the convergence criterion is met, returning the number of cycles
// taken.  Each cycle: HStar = threshold(H); dH/dt = H0 + kernel * HStar +
// Alpha*H; H += Dt * dH/dt; converged when the grid mean changes by less
// than ConvTol relative to its previous value.  If MaxCycles is exceeded
// the wrapped ErrNotConverged is returned with the parameters that produced
// it, and H holds the last (unconverged) state.
func (mp *Map) RelaxH() (int, error) {
	rx := &mp.Relax
	nv := len(mp.H.Values)
	for cyc := 1; cyc <= rx.MaxCycles; cyc++ {
		rx.Threshold(mp.HStar, mp.H)
		rx.MeanPrv = gridMean(mp.H)
		rx.Lat.Conv(mp.DHdt, mp.HStar)
		for i := 0; i < nv; i++ {
			mp.DHdt.Values[i] += mp.H0.Values[i] + rx.Alpha*mp.H.Values[i]
		}
		for i := 0; i < nv; i++ {
			mp.H.Values[i] += rx.Dt * mp.DHdt.Values[i]
		}
		rx.MeanCur = gridMean(mp.H)
		rx.Cycles = cyc
		if mat32.Abs(rx.MeanCur-rx.MeanPrv) < rx.ConvTol*mat32.Abs(rx.MeanPrv) {
			rx.HStatsFmH(mp.H)
			return cyc, nil
		}
	}
	rx.HStatsFmH(mp.H)
	return rx.Cycles, fmt.Errorf("%w within %d cycles: |dmean| = %v vs. mean %v (beta=%v gamma=%v delta=%v alpha=%v theta=%v dt=%v)",
		ErrNotConverged, rx.MaxCycles, mat32.Abs(rx.MeanCur-rx.MeanPrv), rx.MeanPrv,
		rx.Lat.Beta, rx.Lat.Gamma, rx.Lat.Delta, rx.Alpha, rx.Theta, rx.Dt)
}

func gridMean(t *etensor.Float32) float32 {
	sum := float32(0)
	for _, v := range t.Values {
		sum += v
	}
	return sum / float32(len(t.Values))
}
