// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"github.com/emer/emergent/erand"
)

//////////////////////////////////////////////////////////////////////////////////////
//  WtInitParams

// WtInitParams are synaptic weight initialization parameters -- the random
// distribution every entry of the synapse matrix is drawn from.
type WtInitParams struct {
	erand.RndParams
}

func (wp *WtInitParams) Defaults() {
	wp.Mean = 2.5
	wp.Var = 0.14
	wp.Dist = erand.Gaussian
}

// InitWts initializes every synapse independently from the configured
// distribution, then applies the polarity markers.  Negative draws are
// permitted and not clamped: with a sigma large relative to the mean some
// weights can start (and stay) negative, which is outside the normal
// operating regime of the model.
func (mp *Map) InitWts() {
	for i := range mp.S.Values {
		mp.S.Values[i] = float32(mp.WtInit.Gen(-1))
	}
	mp.ApplyPolarity()
}

// NormWts rescales each tectal unit's row of incoming synapses so the row
// mean equals the initial distribution mean, preventing unbounded weight
// growth from the Hebbian updates.  The epoch driver invokes this at its
// configured cadence.
func (mp *Map) NormWts() {
	nr := mp.Ret.N()
	nt := mp.Tec.N()
	trg := float32(mp.WtInit.Mean)
	for t := 0; t < nt; t++ {
		row := mp.S.Values[t*nr : (t+1)*nr]
		sum := float32(0)
		for _, w := range row {
			sum += w
		}
		mn := sum / float32(nr)
		if mn == 0 { // zero-mean row cannot be rescaled
			continue
		}
		fact := trg / mn
		for i := range row {
			row[i] *= fact
		}
	}
}
