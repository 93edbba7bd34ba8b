// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package retmap implements self-organized retinotopic map formation between a
retinal and a tectal sheet of neurons, in the style of Willshaw & von der
Malsburg: a dense retinotectal synapse matrix is seeded from a normal
distribution with polarity markers to fix map orientation, and is then
shaped over developmental epochs by Hebbian plasticity driven by locally
correlated retinal activity, with short-range excitatory and longer-range
inhibitory lateral interactions relaxing the tectal activity to equilibrium
before each weight update.

The Map type owns all per-run state: the synapse matrix S and the tectal
activity grids used by the relaxation dynamics.  One developmental epoch is
Step: compute the retinal drive for an activation set, relax the tectal
sheet to convergence, and apply the Hebbian weight update.  Run drives
repeated full runs from a RunConfig and reports per-run map quality.
*/
package retmap

import (
	"fmt"

	"github.com/emer/etable/etensor"
	"github.com/geobax/correlated-activity-76/sheet"
)

// Map is the retinotopic map model state for one run: the two sheet
// geometries, all simulation parameters, the synapse matrix, and the
// tectal activity scratch grids.  It is exclusively owned by a single
// logical thread of execution -- nothing here locks.
type Map struct {
	Ret    sheet.Geom   `desc:"geometry of the retinal (input) sheet"`
	Tec    sheet.Geom   `desc:"geometry of the tectal (output) sheet"`
	WtInit WtInitParams `view:"inline" desc:"synapse initialization distribution"`
	Polar  PolarParams  `view:"inline" desc:"polarity marker parameters, applied during InitWts"`
	Relax  RelaxParams  `view:"inline" desc:"tectal lateral-interaction relaxation parameters"`
	Learn  LearnParams  `view:"inline" desc:"Hebbian plasticity parameters"`

	S     *etensor.Float32 `view:"no-inline" desc:"synapse matrix: S[t,r] is the strength of the synapse from retinal unit r to tectal unit t"`
	H     *etensor.Float32 `view:"no-inline" desc:"tectal membrane depolarization grid, relaxed to convergence each epoch"`
	H0    *etensor.Float32 `view:"-" desc:"retinal drive into the tectal sheet for the current epoch"`
	HStar *etensor.Float32 `view:"-" desc:"thresholded tectal activity scratch"`
	DHdt  *etensor.Float32 `view:"-" desc:"tectal activity derivative scratch"`
}

func (mp *Map) Defaults() {
	mp.WtInit.Defaults()
	mp.Polar.Defaults()
	mp.Relax.Defaults()
	mp.Learn.Defaults()
}

// Update must be called after any change to parameter values -- it
// recomputes the derived lateral interaction kernel.
func (mp *Map) Update() {
	mp.Relax.Update()
	mp.Learn.Update()
}

// Build allocates the synapse matrix and activity grids from the current
// sheet geometries.  Call after geometries are set, before InitWts.
func (mp *Map) Build() {
	nt := mp.Tec.N()
	nr := mp.Ret.N()
	mp.S = etensor.NewFloat32([]int{nt, nr}, nil, []string{"Tec", "Ret"})
	mp.H = etensor.NewFloat32(mp.Tec.Shape(), nil, []string{"Y", "X"})
	mp.H0 = etensor.NewFloat32(mp.Tec.Shape(), nil, []string{"Y", "X"})
	mp.HStar = etensor.NewFloat32(mp.Tec.Shape(), nil, []string{"Y", "X"})
	mp.DHdt = etensor.NewFloat32(mp.Tec.Shape(), nil, []string{"Y", "X"})
}

// Step runs one developmental epoch for the given retinal activation set:
// retinal drive, tectal relaxation to convergence, Hebbian weight update.
// If the relaxation fails to converge within the cycle guard the weight
// update is skipped and the wrapped ErrNotConverged is returned -- the
// synapse matrix is left as it was at the start of the epoch.
func (mp *Map) Step(acts []int) error {
	mp.DriveFmActs(acts)
	if _, err := mp.RelaxH(); err != nil {
		return err
	}
	mp.DWtFmH(acts)
	return nil
}

// Validate returns an error if the sheet geometries are invalid or the
// parameter values cannot produce a meaningful simulation.
func (mp *Map) Validate() error {
	if err := mp.Ret.Validate("retina"); err != nil {
		return err
	}
	if err := mp.Tec.Validate("tectum"); err != nil {
		return err
	}
	if err := mp.Polar.Validate(mp.Ret, mp.Tec); err != nil {
		return err
	}
	return mp.Relax.Validate()
}

// String returns a compact summary of the map configuration.
func (mp *Map) String() string {
	return fmt.Sprintf("retmap: retina %dx%d -> tectum %dx%d", mp.Ret.Size.X, mp.Ret.Size.Y, mp.Tec.Size.X, mp.Tec.Size.Y)
}
