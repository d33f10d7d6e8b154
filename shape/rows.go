// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/cpmech/shdem/legendre"
)

// rowStepper produces, degree by degree, the normalized associated
// Legendre row P_n^0..P_n^n at a fixed x=cos(theta), using only the
// two previous rows (spec.md 9: rolling buffers, 2*(nMax+1) doubles).
// Oracle, contact test and expansion-factor code all drive one of
// these instead of duplicating the recursion.
type rowStepper struct {
	x           float64
	n           int
	rowPrev     []float64 // P_{n-1}^m, m=0..n-1 (nil before n>=1)
	rowPrevPrev []float64 // P_{n-2}^m, m=0..n-2 (nil before n>=2)
}

func newRowStepper(x float64) *rowStepper {
	return &rowStepper{x: x}
}

// next returns the row for the current degree (starting at 0) and
// advances to the next degree.
func (s *rowStepper) next() ([]float64, error) {
	n := s.n
	row := make([]float64, n+1)
	switch {
	case n == 0:
		p00, err := legendre.Pmm(0, s.x)
		if err != nil {
			return nil, err
		}
		row[0] = p00
	case n == 1:
		diagPrev := s.rowPrev[0] // P_0^0
		row[0] = tipClosedForm(1, s.x, diagPrev)
		p11, err := legendre.PLegendreNN(1, s.x, diagPrev)
		if err != nil {
			return nil, err
		}
		row[1] = p11
	default:
		for m := 0; m <= n-2; m++ {
			v, err := legendre.PLegendreRecycle(n, m, s.x, s.rowPrev[m], s.rowPrevPrev[m])
			if err != nil {
				return nil, err
			}
			row[m] = v
		}
		diagPrev := s.rowPrev[len(s.rowPrev)-1] // P_{n-1}^{n-1}
		row[n-1] = tipClosedForm(n, s.x, diagPrev)
		pnn, err := legendre.PLegendreNN(n, s.x, diagPrev)
		if err != nil {
			return nil, err
		}
		row[n] = pnn
	}
	s.rowPrevPrev = s.rowPrev
	s.rowPrev = row
	s.n++
	return row, nil
}

// tipClosedForm returns the normalized P_n^{n-1}(x), given the
// diagonal value P_{n-1}^{n-1}(x), via
//
//	P_n^{n-1} = x * sqrt(2n+1) * P_{n-1}^{n-1}
//
// derived from the classical unnormalized identity
// P_{m+1}^m = x(2m+1)P_m^m together with the normalization ratio
// f(n,n-1)/f(n-1,n-1) = sqrt(2n+1)/(2n-1).
func tipClosedForm(n int, x, diagPrev float64) float64 {
	nf := float64(n)
	return x * math.Sqrt(2*nf+1) * diagPrev
}
