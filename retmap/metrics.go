// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"fmt"
	"math"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/metric"
	"github.com/geobax/correlated-activity-76/sheet"
)

// COM computes, for every tectal unit, the center of mass of its receptive
// field: the row of the synapse matrix reshaped onto the retinal sheet and
// reduced to its intensity-weighted centroid, in retinal-sheet coordinates.
// A row summing to zero has no defined centroid and returns an explicit
// error naming the tectal unit -- it is never coerced to a default
// coordinate.  Usable on any synapse matrix independent of a run.
func COM(s *etensor.Float32, ret, tec sheet.Geom) (comX, comY []float64, err error) {
	nt := tec.N()
	nr := ret.N()
	comX = make([]float64, nt)
	comY = make([]float64, nt)
	for t := 0; t < nt; t++ {
		row := s.Values[t*nr : (t+1)*nr]
		var sum, sx, sy float64
		for r, w := range row {
			y, x := ret.Coord(r)
			wf := float64(w)
			sum += wf
			sx += wf * float64(x)
			sy += wf * float64(y)
		}
		if sum == 0 {
			return nil, nil, fmt.Errorf("retmap: tectal unit %d has a zero-sum receptive field -- center of mass undefined", t)
		}
		comX[t] = sx / sum
		comY[t] = sy / sum
	}
	return comX, comY, nil
}

// IdealCOM returns the receptive field centers of the ideal linear
// retinotopic map: the tectal unit at normalized sheet position p maps to
// retinal position p*(dimension-1).  A single-unit tectal dimension maps
// to retinal position 0.
func IdealCOM(ret, tec sheet.Geom) (px, py []float64) {
	nt := tec.N()
	px = make([]float64, nt)
	py = make([]float64, nt)
	xsc, ysc := 0.0, 0.0
	if tec.Size.X > 1 {
		xsc = float64(ret.Size.X-1) / float64(tec.Size.X-1)
	}
	if tec.Size.Y > 1 {
		ysc = float64(ret.Size.Y-1) / float64(tec.Size.Y-1)
	}
	for t := 0; t < nt; t++ {
		ty, tx := tec.Coord(t)
		px[t] = float64(tx) * xsc
		py[t] = float64(ty) * ysc
	}
	return px, py
}

// Quality scores the map given by the per-tectal-unit centroids against the
// ideal linear map: 1 minus the mean per-unit Euclidean displacement
// normalized by sqrt(retinal width + height).  An exact ideal map scores
// exactly 1; a sufficiently disordered map can score below 0.
func Quality(comX, comY []float64, ret, tec sheet.Geom) float64 {
	px, py := IdealCOM(ret, tec)
	maxDisp := math.Sqrt(float64(ret.Size.X + ret.Size.Y))
	nt := tec.N()
	q := 0.0
	for t := 0; t < nt; t++ {
		q += metric.Euclidean64([]float64{comX[t], comY[t]}, []float64{px[t], py[t]}) / maxDisp
	}
	q /= float64(nt)
	return 1 - q
}

// Quality computes the map quality of the current synapse matrix.
func (mp *Map) Quality() (float64, error) {
	comX, comY, err := COM(mp.S, mp.Ret, mp.Tec)
	if err != nil {
		return 0, err
	}
	return Quality(comX, comY, mp.Ret, mp.Tec), nil
}

// RFs returns a table of the per-tectal-unit receptive field centers of
// mass, the ideal centers, and the normalized displacement between them,
// for diagnostics and logging.
func (mp *Map) RFs() (*etable.Table, error) {
	comX, comY, err := COM(mp.S, mp.Ret, mp.Tec)
	if err != nil {
		return nil, err
	}
	px, py := IdealCOM(mp.Ret, mp.Tec)
	maxDisp := math.Sqrt(float64(mp.Ret.Size.X + mp.Ret.Size.Y))

	dt := &etable.Table{}
	dt.SetMetaData("name", "RFs")
	dt.SetMetaData("desc", "per tectal unit receptive field centers of mass vs. ideal linear map")
	dt.SetMetaData("read-only", "true")
	sch := etable.Schema{
		{Name: "TecY", Type: etensor.INT64},
		{Name: "TecX", Type: etensor.INT64},
		{Name: "ComX", Type: etensor.FLOAT64},
		{Name: "ComY", Type: etensor.FLOAT64},
		{Name: "IdealX", Type: etensor.FLOAT64},
		{Name: "IdealY", Type: etensor.FLOAT64},
		{Name: "Disp", Type: etensor.FLOAT64},
	}
	nt := mp.Tec.N()
	dt.SetFromSchema(sch, nt)
	for t := 0; t < nt; t++ {
		ty, tx := mp.Tec.Coord(t)
		dt.SetCellFloat("TecY", t, float64(ty))
		dt.SetCellFloat("TecX", t, float64(tx))
		dt.SetCellFloat("ComX", t, comX[t])
		dt.SetCellFloat("ComY", t, comY[t])
		dt.SetCellFloat("IdealX", t, px[t])
		dt.SetCellFloat("IdealY", t, py[t])
		disp := metric.Euclidean64([]float64{comX[t], comY[t]}, []float64{px[t], py[t]}) / maxDisp
		dt.SetCellFloat("Disp", t, disp)
	}
	return dt, nil
}
