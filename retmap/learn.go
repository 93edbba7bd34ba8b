// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

//////////////////////////////////////////////////////////////////////////////////////
//  LearnParams

// LearnParams are the Hebbian plasticity parameters: weight increase
// proportional to coincident pre-synaptic (retinal activation) and
// post-synaptic (converged, thresholded tectal depolarization) activity.
type LearnParams struct {
	LRate     float32 `def:"0.0008" min:"0" desc:"learning rate: scales the weight increase from the thresholded tectal activity"`
	ModThresh float32 `def:"2" desc:"modification threshold: tectal units whose thresholded activity does not exceed this are not modified this epoch"`
}

func (lp *LearnParams) Defaults() {
	lp.LRate = 0.016 * 0.05
	lp.ModThresh = 2
}

func (lp *LearnParams) Update() {
}

// DWtFmH applies the Hebbian weight update from the converged tectal
// activity: H is thresholded as in the relaxation dynamics, and for every
// tectal unit whose thresholded activity exceeds ModThresh, the synapse
// from every unit in the activation set is increased by LRate times that
// activity, in place.  Synapses outside the activation set are never
// touched.
func (mp *Map) DWtFmH(acts []int) {
	mp.Relax.Threshold(mp.HStar, mp.H)
	nt := mp.Tec.N()
	nr := mp.Ret.N()
	for t := 0; t < nt; t++ {
		hs := mp.HStar.Values[t]
		if hs <= mp.Learn.ModThresh {
			continue
		}
		dwt := mp.Learn.LRate * hs
		row := mp.S.Values[t*nr : (t+1)*nr]
		for _, r := range acts {
			row[r] += dwt
		}
	}
}
