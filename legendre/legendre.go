// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legendre implements the normalized associated Legendre
// functions used to build and evaluate truncated real spherical
// harmonic expansions. Evaluation is by stable forward recursion in n
// at fixed m; the full (n,m) triangle is never materialized.
package legendre

import (
	"fmt"
	"math"
)

// ErrDomain is returned when m, n or x fall outside the valid range of
// the associated Legendre functions.
var ErrDomain = fmt.Errorf("legendre: domain error")

// domainErr wraps ErrDomain with context about the offending call.
func domainErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrDomain}, a...)...)
}

// checkDomain validates 0<=m<=n and |x|<=1.
func checkDomain(n, m int, x float64) error {
	if m < 0 || m > n {
		return domainErr("m=%d out of range for n=%d", m, n)
	}
	if x < -1 || x > 1 {
		return domainErr("x=%g out of [-1,1]", x)
	}
	return nil
}

// doubleFactorial returns n!! (n<=0 gives 1).
func doubleFactorial(n int) float64 {
	res := 1.0
	for k := n; k > 1; k -= 2 {
		res *= float64(k)
	}
	return res
}

// NormFactor returns f_{n,m} = sqrt((2n+1)(n-m)!/(4*pi*(n+m)!)).
func NormFactor(n, m int) float64 {
	f := 1.0
	for k := n - m + 1; k <= n+m; k++ {
		f *= float64(k)
	}
	return math.Sqrt((2*float64(n) + 1) / (4 * math.Pi * f))
}

// Pmm returns the normalized seed P_m^m(x) = (-1)^m sqrt((2m+1)!!/(4*pi*(2m)!!)) (1-x^2)^(m/2).
func Pmm(m int, x float64) (float64, error) {
	if m < 0 {
		return 0, domainErr("m=%d must be >= 0", m)
	}
	if x < -1 || x > 1 {
		return 0, domainErr("x=%g out of [-1,1]", x)
	}
	sign := 1.0
	if m%2 == 1 {
		sign = -1.0
	}
	norm := math.Sqrt(doubleFactorial(2*m+1) / (4 * math.Pi * doubleFactorial(2*m)))
	som := math.Pow(1-x*x, float64(m)/2)
	return sign * norm * som, nil
}

// PLegendreNN returns P_n^n given P_{n-1}^{n-1} via
// P_n^n = -sqrt((2n+1)/(2n)) * sqrt(1-x^2) * P_{n-1,n-1}.
func PLegendreNN(n int, x, pnn1 float64) (float64, error) {
	if n < 1 {
		return 0, domainErr("n=%d must be >= 1", n)
	}
	if x < -1 || x > 1 {
		return 0, domainErr("x=%g out of [-1,1]", x)
	}
	return -math.Sqrt((2*float64(n)+1)/(2*float64(n))) * math.Sqrt(1-x*x) * pnn1, nil
}

// PLegendreRecycle returns the normalized P_n^m given the two previous
// degree values P_{n-1}^m and P_{n-2}^m at fixed m, via the stable
// three-term recurrence
//
//	a = sqrt((2n-1)(2n+1) / ((n-m)(n+m)))
//	b = sqrt((2n+1)(n-m-1)(n+m-1) / ((2n-3)(n-m)(n+m)))
//	P_n^m = a*x*P_{n-1}^m - b*P_{n-2}^m
func PLegendreRecycle(n, m int, x, pnm1, pnm2 float64) (float64, error) {
	if err := checkDomain(n, m, x); err != nil {
		return 0, err
	}
	if n < m+2 {
		return 0, domainErr("recycle requires n>=m+2, got n=%d m=%d", n, m)
	}
	fn := float64(n)
	fm := float64(m)
	a := math.Sqrt((2*fn - 1) * (2*fn + 1) / ((fn - fm) * (fn + fm)))
	b := math.Sqrt((2*fn + 1) * (fn - fm - 1) * (fn + fm - 1) / ((2*fn - 3) * (fn - fm) * (fn + fm)))
	return a*x*pnm1 - b*pnm2, nil
}

// PLegendre evaluates the normalized associated Legendre function
// P_n^m(x) from scratch using the stable forward recursion in n at
// fixed m. Intended for tests and one-off evaluations; hot paths
// (shape oracle, contact test) keep their own rolling buffers instead.
func PLegendre(n, m int, x float64) (float64, error) {
	if err := checkDomain(n, m, x); err != nil {
		return 0, err
	}
	pmm, err := Pmm(m, x)
	if err != nil {
		return 0, err
	}
	if n == m {
		return pmm, nil
	}
	// P_{m+1}^m = x * sqrt(2m+3) * P_m^m
	pm1m := x * math.Sqrt(2*float64(m)+3) * pmm
	if n == m+1 {
		return pm1m, nil
	}
	pPrev2, pPrev1 := pmm, pm1m
	var cur float64
	for k := m + 2; k <= n; k++ {
		cur, err = PLegendreRecycle(k, m, x, pPrev1, pPrev2)
		if err != nil {
			return 0, err
		}
		pPrev2, pPrev1 = pPrev1, cur
	}
	return cur, nil
}

// Unnormalized returns the plain (non-normalized) associated Legendre
// value corresponding to a normalized value, via division by
// NormFactor(n,m). Used by the shape oracle's theta-gradient identity,
// which is stated in terms of the unnormalized functions (spec.md
// 4.3).
func Unnormalized(n, m int, normalized float64) float64 {
	f := NormFactor(n, m)
	if f == 0 {
		return 0
	}
	return normalized / f
}
