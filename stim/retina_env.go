// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"fmt"

	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
	"github.com/geobax/correlated-activity-76/sheet"
)

// RetinaEnv is an environment that presents one retinal activation pattern
// per Step, for driving map-formation epochs through the standard env.Env
// interface.  Each Step draws a fresh activation set under the configured
// pattern and renders it into a retina-shaped state tensor, with active
// units set to 1.
type RetinaEnv struct {
	Nm      string          `desc:"name of this environment"`
	Dsc     string          `desc:"description of this environment"`
	Pat     Patterns        `desc:"activation pattern generated each Step"`
	Ret     sheet.Geom      `desc:"geometry of the retinal sheet"`
	Acts    []int           `desc:"linear indices of the retinal units activated on the current Step"`
	Pattern etensor.Float32 `view:"no-inline" desc:"current activation pattern rendered onto the retinal sheet: 1 for active units, 0 elsewhere"`
	Run     env.Ctr         `view:"inline" desc:"current run of the model as provided during Init"`
	Epoch   env.Ctr         `view:"inline" desc:"developmental epoch counter -- one activation pattern per epoch"`
}

func (ev *RetinaEnv) Name() string { return ev.Nm }
func (ev *RetinaEnv) Desc() string { return ev.Dsc }

func (ev *RetinaEnv) Validate() error {
	if err := ev.Ret.Validate("retina"); err != nil {
		return fmt.Errorf("stim.RetinaEnv: %v: %v", ev.Nm, err)
	}
	return ev.Pat.Validate(ev.Ret)
}

func (ev *RetinaEnv) Counters() []env.TimeScales {
	return []env.TimeScales{env.Run, env.Epoch}
}

func (ev *RetinaEnv) States() env.Elements {
	return env.Elements{
		{Name: "Pattern", Shape: ev.Ret.Shape(), DimNames: []string{"Y", "X"}},
	}
}

func (ev *RetinaEnv) State(element string) etensor.Tensor {
	switch element {
	case "Pattern":
		return &ev.Pattern
	}
	return nil
}

func (ev *RetinaEnv) Actions() env.Elements {
	return nil
}

func (ev *RetinaEnv) Action(element string, input etensor.Tensor) {
	// nop
}

func (ev *RetinaEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Epoch.Scale = env.Epoch
	ev.Run.Init()
	ev.Epoch.Init()
	ev.Run.Cur = run
	ev.Pattern.SetShape(ev.Ret.Shape(), nil, []string{"Y", "X"})
	ev.Acts = nil
}

// Step draws the next activation set at the current epoch index and
// renders it into Pattern, then increments the epoch counter.
func (ev *RetinaEnv) Step() bool {
	ev.Run.Same()
	ev.Acts = Gen(ev.Pat, ev.Ret, ev.Epoch.Cur)
	ev.Pattern.SetZeros()
	for _, ri := range ev.Acts {
		ev.Pattern.Values[ri] = 1
	}
	ev.Epoch.Incr()
	return true
}

func (ev *RetinaEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Epoch:
		return ev.Epoch.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*RetinaEnv)(nil)
