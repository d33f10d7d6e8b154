// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rotate implements the rotation of a truncated real
// spherical-harmonic coefficient vector under an Euler-angle (ZYZ)
// rotation, via the Wigner-d (small-d) matrix (spec.md 4.7).
package rotate

import (
	"fmt"
	"math"
)

// WignerDTable holds d^n_{m',m}(beta) for n=0..nMax, m',m=-n..n, at a
// single fixed beta. Coefficients builds a new table on every call; no
// table is cached or shared between calls.
//
// d is evaluated from Wigner's closed-form factorial-sum expression
// rather than the three-branch Edmonds n-recursion spec.md sketches:
// both compute the same matrix elements, and the closed form is the
// one that can be stated and checked unambiguously without a running
// test harness (see DESIGN.md).
type WignerDTable struct {
	nMax int
	beta float64
	// d[n] is a (2n+1)x(2n+1) matrix indexed [m'+n][m+n]
	d [][][]float64
}

// NewWignerDTable builds the table for degrees 0..nMax at the given
// beta, nudging beta away from the degenerate poles 0 and pi by 1e-10
// as spec.md 4.7 step 1 requires.
func NewWignerDTable(nMax int, beta float64) (*WignerDTable, error) {
	if beta < 0 || beta > math.Pi {
		return nil, fmt.Errorf("%w: beta=%g outside [0,pi]", ErrRotationDegenerate, beta)
	}
	if beta == 0 || beta == math.Pi {
		beta += 1e-10
	}
	t := &WignerDTable{nMax: nMax, beta: beta, d: make([][][]float64, nMax+1)}
	for n := 0; n <= nMax; n++ {
		t.d[n] = wignerDDegree(n, beta)
	}
	return t, nil
}

// D returns d^n_{m',m}(beta).
func (t *WignerDTable) D(n, mp, m int) float64 {
	return t.d[n][mp+n][m+n]
}

// wignerDDegree builds the full (2n+1)x(2n+1) small-d matrix for
// degree n at the table's beta, via Wigner's explicit formula
//
//	d^n_{m'm}(beta) = sqrt[(n+m')!(n-m')!(n+m)!(n-m)!] *
//	  sum_s (-1)^(m'-m+s) / (s!(n+m-s)!(n-m'-s)!(m'-m+s)!) *
//	  cos(beta/2)^(2n+m-m'-2s) * sin(beta/2)^(m'-m+2s)
//
// summed over every s keeping all four factorial arguments >= 0.
func wignerDDegree(n int, beta float64) [][]float64 {
	size := 2*n + 1
	d := make([][]float64, size)
	for i := range d {
		d[i] = make([]float64, size)
	}
	cb := math.Cos(beta / 2)
	sb := math.Sin(beta / 2)
	for mpIdx := 0; mpIdx < size; mpIdx++ {
		mp := mpIdx - n
		for mIdx := 0; mIdx < size; mIdx++ {
			m := mIdx - n
			d[mpIdx][mIdx] = wignerSmallD(n, mp, m, cb, sb)
		}
	}
	return d
}

func wignerSmallD(n, mp, m int, cb, sb float64) float64 {
	prefactor := math.Sqrt(factorial(n+mp) * factorial(n-mp) * factorial(n+m) * factorial(n-m))
	sMin := maxInt(0, m-mp)
	sMax := minInt(n+m, n-mp)
	sum := 0.0
	for s := sMin; s <= sMax; s++ {
		denom := factorial(s) * factorial(n+m-s) * factorial(n-mp-s) * factorial(mp-m+s)
		if denom == 0 {
			continue
		}
		sign := 1.0
		if (mp-m+s)%2 != 0 {
			sign = -1.0
		}
		powCos := 2*n + m - mp - 2*s
		powSin := mp - m + 2*s
		term := sign / denom * ipow(cb, powCos) * ipow(sb, powSin)
		sum += term
	}
	return prefactor * sum
}

// ipow raises x to a non-negative integer power; the exponents arising
// in wignerSmallD are always >= 0 by construction of s's range.
func ipow(x float64, p int) float64 {
	if p == 0 {
		return 1
	}
	r := 1.0
	for i := 0; i < p; i++ {
		r *= x
	}
	return r
}

var factTable = func() []float64 {
	const maxN = 400
	t := make([]float64, maxN+1)
	t[0] = 1
	for i := 1; i <= maxN; i++ {
		t[i] = t[i-1] * float64(i)
	}
	return t
}()

func factorial(n int) float64 {
	if n < 0 {
		return 0
	}
	if n < len(factTable) {
		return factTable[n]
	}
	f := factTable[len(factTable)-1]
	for i := len(factTable); i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
