// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lateral provides the short-range excitatory, longer-range inhibitory
lateral interactions among neurons of a 2D sheet, expressed as a fixed
Manhattan-distance kernel applied over the thresholded activity grid with
zero-fill boundaries (no wraparound).

Neurons at Manhattan distance 1 excite each other with strength Beta,
distance 2 with strength Gamma, and distance 3 inhibit with strength Delta
(negative).  The kernel is therefore 7 x 7 with a zero center and zeros
beyond distance 3.
*/
package lateral

import (
	"github.com/emer/etable/etensor"
)

// KernelSize is the full width of the fixed interaction kernel: interactions
// extend to Manhattan distance KernelExt = 3 in each direction.
const (
	KernelSize = 7
	KernelExt  = KernelSize / 2
)

// Params are the lateral interaction strengths by Manhattan distance,
// with the expanded kernel weights precomputed by Update.
type Params struct {
	Beta  float32 `def:"0.05" desc:"excitatory interaction strength between neurons at Manhattan distance 1"`
	Gamma float32 `def:"0.025" desc:"excitatory interaction strength between neurons at Manhattan distance 2"`
	Delta float32 `def:"-0.06" desc:"inhibitory interaction strength between neurons at Manhattan distance 3 -- negative"`

	Wts [KernelSize][KernelSize]float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"interaction weights by kernel offset, precomputed from the distance strengths"`
}

func (lt *Params) Defaults() {
	lt.Beta = 0.05
	lt.Gamma = 0.025
	lt.Delta = -0.06
	lt.Update()
}

// Update precomputes the kernel weights from the per-distance strengths.
// Must be called after any change to Beta, Gamma, Delta.
func (lt *Params) Update() {
	for dy := -KernelExt; dy <= KernelExt; dy++ {
		ady := dy
		if ady < 0 {
			ady = -ady
		}
		for dx := -KernelExt; dx <= KernelExt; dx++ {
			adx := dx
			if adx < 0 {
				adx = -adx
			}
			var w float32
			switch ady + adx {
			case 1:
				w = lt.Beta
			case 2:
				w = lt.Gamma
			case 3:
				w = lt.Delta
			}
			lt.Wts[dy+KernelExt][dx+KernelExt] = w
		}
	}
}

// WtAt returns the kernel weight at offset (dy, dx) from center, 0 if the
// offset is beyond the kernel extent.
func (lt *Params) WtAt(dy, dx int) float32 {
	if dy < -KernelExt || dy > KernelExt || dx < -KernelExt || dx > KernelExt {
		return 0
	}
	return lt.Wts[dy+KernelExt][dx+KernelExt]
}

// Conv computes the lateral interaction contribution for every unit of src
// into dst: dst[y,x] = sum over kernel offsets of Wts * src at the offset
// position, with positions off the sheet contributing zero (zero-fill
// boundary).  src and dst must be distinct 2D tensors of the same shape.
// The kernel is symmetric under 180-degree rotation, so this correlation
// form equals true convolution.
func (lt *Params) Conv(dst, src *etensor.Float32) {
	yn := src.Dim(0)
	xn := src.Dim(1)
	for y := 0; y < yn; y++ {
		for x := 0; x < xn; x++ {
			sum := float32(0)
			for ky := -KernelExt; ky <= KernelExt; ky++ {
				sy := y + ky
				if sy < 0 || sy >= yn {
					continue
				}
				for kx := -KernelExt; kx <= KernelExt; kx++ {
					sx := x + kx
					if sx < 0 || sx >= xn {
						continue
					}
					w := lt.Wts[ky+KernelExt][kx+KernelExt]
					if w == 0 {
						continue
					}
					sum += w * src.Values[sy*xn+sx]
				}
			}
			dst.Values[y*xn+x] = sum
		}
	}
}
