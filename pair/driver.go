// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pair

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/shdem/quat"
	"github.com/cpmech/shdem/shape"
)

// Step is one pair configuration along a Driver path: positions and
// orientations of A and B plus the penalty parameters for that step.
type Step struct {
	XA, XB    [3]float64
	QA, QB    quat.Quat
	Kij       float64
	MExponent float64
}

// Driver runs a sequence of pair configurations through Overlap and
// records every result, the way msolid.Driver steps a constitutive
// model through a stress/strain path: here the "path" is a sequence
// of relative positions/orientations instead of stress increments.
type Driver struct {
	// input
	ShapeA, ShapeB *shape.Shape
	Cfg            Config

	// settings
	Silent bool // do not print error messages

	// results
	Res []Result
}

// Run evaluates Overlap at every step of pth, stopping at the first
// error (spec.md 7: only CenterInsideOther propagates as an error;
// "no contact" is a normal zero Result).
func (d *Driver) Run(pth []Step) (err error) {
	d.Res = make([]Result, len(pth))
	for i, st := range pth {
		d.Res[i], err = Overlap(d.ShapeA, d.ShapeB, st.XA, st.XB, st.QA, st.QB, st.Kij, st.MExponent, d.Cfg)
		if err != nil {
			if !d.Silent {
				io.Pfred(_driverErrOverlap, i, err)
			}
			return err
		}
	}
	return nil
}

var _driverErrOverlap = "pair: overlap failed at step %d\n%v\n"
