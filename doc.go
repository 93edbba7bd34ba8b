// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package retinotopy is the overall repository for the correlated-activity
model of retinotopic map formation, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* sheet: 2D sheet geometry shared by the retinal and tectal surfaces,
with linear / coordinate indexing.

* stim: the correlated retinal activation patterns (pairs, squares, sweeps,
strobe, ocular dominance, etc) that drive development, and an environment
(env.Env) presenting one pattern per epoch.

* lateral: the short-range excitatory / longer-range inhibitory lateral
interaction kernel applied over the tectal sheet.

* retmap: the model itself: the retino-tectal synapse matrix with polarity
markers, the tectal relaxation dynamics, Hebbian plasticity with weight
renormalization, receptive-field center-of-mass map quality metrics, and
the repeated-run driver.

* examples/retinotopy: compiles into a runnable headless program that
performs repeated developmental runs and logs map quality statistics.
*/
package retinotopy
