// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/emer/emergent/evec"
	"github.com/geobax/correlated-activity-76/stim"
)

// RunConfig is the full configuration bundle for repeated map-formation
// runs: sheet geometries, all simulation parameters, the activation
// pattern, and the run schedule.
type RunConfig struct {
	Ret       evec.Vec2i    `desc:"size of the retinal sheet: X = width, Y = height"`
	Tec       evec.Vec2i    `desc:"size of the tectal sheet: X = width, Y = height"`
	WtInit    WtInitParams  `view:"inline" desc:"synapse initialization distribution"`
	Polar     PolarParams   `view:"inline" desc:"polarity marker parameters"`
	Pattern   stim.Patterns `desc:"retinal activation pattern driving each epoch"`
	Relax     RelaxParams   `view:"inline" desc:"tectal relaxation parameters"`
	Learn     LearnParams   `view:"inline" desc:"Hebbian plasticity parameters"`
	NormEvery int           `def:"1" desc:"renormalize the per-tectal-unit weight means every this many epochs -- 0 disables normalization"`
	Epochs    int           `def:"1000000" desc:"number of developmental epochs (stimulate, relax, update) per run"`
	Repeats   int           `def:"10" desc:"number of independent full runs, for statistics over map qualities"`
	Seed      int64         `desc:"base random seed -- repeat i runs with Seed+i, so each repeat is individually reproducible"`
}

func (rc *RunConfig) Defaults() {
	rc.Ret.Set(8, 8)
	rc.Tec.Set(10, 10)
	rc.WtInit.Defaults()
	rc.Polar.Defaults()
	rc.Pattern = stim.Pairs
	rc.Relax.Defaults()
	rc.Learn.Defaults()
	rc.NormEvery = 1
	rc.Epochs = 1000000
	rc.Repeats = 10
	rc.Seed = 1
}

// Validate checks the full configuration, failing fast before any
// simulation work: sheet dimensions, pattern applicability, polarity
// anchors, relaxation parameters, and the run schedule.
func (rc *RunConfig) Validate() error {
	mp := Map{}
	mp.Ret.Size = rc.Ret
	mp.Tec.Size = rc.Tec
	mp.Polar = rc.Polar
	mp.Relax = rc.Relax
	if err := mp.Validate(); err != nil {
		return err
	}
	if err := rc.Pattern.Validate(mp.Ret); err != nil {
		return err
	}
	if rc.Epochs <= 0 {
		return fmt.Errorf("retmap: Epochs must be positive, got %d", rc.Epochs)
	}
	if rc.Repeats <= 0 {
		return fmt.Errorf("retmap: Repeats must be positive, got %d", rc.Repeats)
	}
	if rc.NormEvery < 0 {
		return fmt.Errorf("retmap: NormEvery must be >= 0, got %d", rc.NormEvery)
	}
	return nil
}

// NewMap returns a Map configured from the RunConfig, built and ready for
// InitWts.
func NewMap(rc *RunConfig) *Map {
	mp := &Map{}
	mp.Ret.Size = rc.Ret
	mp.Tec.Size = rc.Tec
	mp.WtInit = rc.WtInit
	mp.Polar = rc.Polar
	mp.Relax = rc.Relax
	mp.Learn = rc.Learn
	mp.Update()
	mp.Build()
	return mp
}

// RunEpochs runs the given number of developmental epochs on the map,
// generating one activation pattern per epoch and renormalizing the weight
// rows at the given cadence (0 disables).  Returns on the first epoch
// whose relaxation fails to converge.
func (mp *Map) RunEpochs(epochs, normEvery int, pat stim.Patterns) error {
	for epc := 0; epc < epochs; epc++ {
		acts := stim.Gen(pat, mp.Ret, epc)
		if err := mp.Step(acts); err != nil {
			return fmt.Errorf("epoch %d: %w", epc, err)
		}
		if normEvery > 0 && (epc+1)%normEvery == 0 {
			mp.NormWts()
		}
	}
	return nil
}

// Run executes Repeats independent full developmental runs and returns the
// final run's Map (with its synapse matrix) and the per-repeat map
// qualities.  Each repeat reseeds the global rand source with Seed+repeat,
// builds a fresh map, runs all epochs, and scores the result.  A repeat
// that fails -- non-convergent relaxation or a degenerate receptive field
// -- records a NaN quality and is logged, and the remaining repeats still
// run; the first such failure is returned as the error alongside the
// results.  Configuration errors abort before any simulation work.
func Run(rc *RunConfig) (*Map, []float64, error) {
	if err := rc.Validate(); err != nil {
		return nil, nil, err
	}
	quals := make([]float64, rc.Repeats)
	var mp *Map
	var firstErr error
	for rep := 0; rep < rc.Repeats; rep++ {
		rand.Seed(rc.Seed + int64(rep))
		mp = NewMap(rc)
		mp.InitWts()
		err := mp.RunEpochs(rc.Epochs, rc.NormEvery, rc.Pattern)
		var q float64
		if err == nil {
			q, err = mp.Quality()
		}
		if err != nil {
			quals[rep] = math.NaN()
			log.Printf("retmap.Run: repeat %d: %v\n", rep, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("repeat %d: %w", rep, err)
			}
			continue
		}
		quals[rep] = q
	}
	return mp, quals, firstErr
}
