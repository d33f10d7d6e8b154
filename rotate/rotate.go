// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotate

import (
	"math"

	"github.com/cpmech/shdem/shape"
)

// Coefficients rotates an SH coefficient vector by Euler angles
// (alpha,beta,gamma) in ZYZ convention (spec.md 4.7):
//
//	a'_{n,m} = sum_{m'=-n..n} exp(i m' alpha) d^n_{m',m}(beta) exp(i m gamma) a_{n,m'}
//
// Only m>=0 results are stored, per the coefficient layout of spec.md 3.
func Coefficients(coeffsIn []float64, nMax int, alpha, beta, gamma float64) ([]float64, error) {
	table, err := NewWignerDTable(nMax, beta)
	if err != nil {
		return nil, err
	}
	out := make([]float64, shape.NumCoeffs(nMax))
	for n := 0; n <= nMax; n++ {
		for m := 0; m <= n; m++ {
			var reSum, imSum float64
			mg := float64(m) * gamma
			cosMG, sinMG := math.Cos(mg), math.Sin(mg)
			for mp := -n; mp <= n; mp++ {
				reA, imA := shape.Coeff(coeffsIn, n, mp)
				d := table.D(n, mp, m)
				mpAlpha := float64(mp) * alpha
				cosMA, sinMA := math.Cos(mpAlpha), math.Sin(mpAlpha)
				// exp(i*mp*alpha) * a_{n,mp}
				re1 := cosMA*reA - sinMA*imA
				im1 := cosMA*imA + sinMA*reA
				// * d^n_{mp,m}(beta)
				re2 := d * re1
				im2 := d * im1
				// * exp(i*m*gamma)
				re3 := cosMG*re2 - sinMG*im2
				im3 := cosMG*im2 + sinMG*re2
				reSum += re3
				imSum += im3
			}
			loc := shape.Loc(n, m)
			out[loc] = reSum
			out[loc+1] = imSum
		}
	}
	return out, nil
}
