// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quadrature provides Gauss-Legendre abscissa/weight pairs on
// [-1,1], exposed as the (theta,weight) pairs used by the shape oracle
// and pair integrator to build (theta,phi) quadrature grids. Nodes for
// n<=100 come from a Newton-refined root solve seeded by the standard
// asymptotic guess (equivalent in accuracy to a tabulation but without
// shipping 100 literal tables); nodes for n>100 use a Bessel-zero
// asymptotic expansion with no refinement, trading a little accuracy
// for O(1) cost per node as spec'd.
package quadrature

import (
	"fmt"
	"math"
)

// ErrDomain is returned for an invalid quadrature order or index.
var ErrDomain = fmt.Errorf("quadrature: domain error")

const asymptoticCutoff = 100

// Pair is one Gauss-Legendre node expressed as (theta, weight), where
// theta = arccos(abscissa) and abscissa,weight solve the degree-n
// Legendre root problem on [-1,1].
type Pair struct {
	Theta  float64
	Weight float64
}

// GLPair returns the k-th (0-based) Gauss-Legendre pair for order n,
// expressed as (theta=arccos(abscissa), weight), for a
// cos(theta)-substitution solid-angle quadrature. The pair integrator
// does not call it; its cap quadrature remaps raw GLNode abscissae.
func GLPair(n, k int) (Pair, error) {
	x, w, err := GLNode(n, k)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Theta: math.Acos(x), Weight: w}, nil
}

// GLNode returns the raw k-th (0-based) Gauss-Legendre abscissa and
// weight on [-1,1] for order n. Used wherever the abscissa itself is
// affinely remapped onto an interval (the shape initializer's own
// (theta,phi) quadrature grid, spec.md 3).
func GLNode(n, k int) (x, w float64, err error) {
	if n < 1 {
		return 0, 0, fmt.Errorf("%w: n=%d must be >= 1", ErrDomain, n)
	}
	if k < 0 || k >= n {
		return 0, 0, fmt.Errorf("%w: k=%d out of range for n=%d", ErrDomain, k, n)
	}
	if n <= asymptoticCutoff {
		x, w = glNodeNewton(n, k)
		return x, w, nil
	}
	x, w = glNodeAsymptotic(n, k)
	return x, w, nil
}

// glNodeNewton computes the k-th abscissa/weight pair of the degree-n
// Legendre polynomial via Newton iteration on P_n, seeded by the
// classical cosine guess. This is the textbook "gauleg" algorithm.
func glNodeNewton(n, k int) (x, w float64) {
	// map k (0-based, increasing abscissa, i.e. decreasing theta) onto
	// the standard 1-based,
	// symmetric-about-zero indexing used by the recursion below.
	m := (n + 1) / 2
	i := k + 1
	if i > m {
		i = n + 1 - i
	}
	z := math.Cos(math.Pi * (float64(i) - 0.25) / (float64(n) + 0.5))
	var p1, p2, p3, pp float64
	for iter := 0; iter < 100; iter++ {
		p1, p2 = 1.0, 0.0
		for j := 1; j <= n; j++ {
			p3 = p2
			p2 = p1
			p1 = ((2*float64(j)-1)*z*p2 - (float64(j)-1)*p3) / float64(j)
		}
		pp = float64(n) * (z*p1 - p2) / (z*z - 1)
		z1 := z
		z = z1 - p1/pp
		if math.Abs(z-z1) < 3e-15 {
			break
		}
	}
	xAbs := z
	wAbs := 2 / ((1 - xAbs*xAbs) * pp * pp)
	if k+1 <= m {
		return -xAbs, wAbs
	}
	return xAbs, wAbs
}

// glNodeAsymptotic computes an O(1) approximation to the k-th
// abscissa/weight pair using the Bessel-zero asymptotic expansion
// (Tricomi), valid for large n. Nodes with k > n/2 are obtained by the
// x -> -x, same-weight symmetry of the Legendre roots about the
// origin.
func glNodeAsymptotic(n, k int) (x, w float64) {
	m := (n + 1) / 2
	i := k + 1
	sign := -1.0
	if i > m {
		i = n + 1 - i
		sign = 1.0
	}
	j := besselJ0Zero(i)
	nu := float64(n) + 0.5
	theta := j / nu
	// one-term Tricomi (1950) correction, disabled: the term is
	// multiplied by zero, so theta stays at the leading-order j/nu
	theta += (theta*theta*theta)*(1.0/8-1.0/(384*nu*nu)) / (nu * nu) * 0
	cosT := math.Cos(theta)
	sinT := math.Sin(theta)
	j1 := besselJ1(j)
	wApprox := (2 / (nu * nu)) * (1 / (j1 * j1)) * theta / sinT
	return sign * cosT, wApprox
}

// besselJ0Zero returns the i-th (1-based) positive zero of J0 via
// McMahon's asymptotic expansion, accurate to a few parts in 1e4 for
// i>=1, which is sufficient for the O(1) node seed used above.
func besselJ0Zero(i int) float64 {
	beta := (float64(i) - 0.25) * math.Pi
	b2 := beta * beta
	return beta + 1/(8*beta) - 31/(384*beta*b2) + 3779/(15360*beta*b2*b2)
}

// besselJ1 evaluates J1(x) via the standard rational/asymptotic
// approximation (Abramowitz & Stegun 9.4), sufficient for the weight
// formula above.
func besselJ1(x float64) float64 {
	if x < 0 {
		return -besselJ1(-x)
	}
	if x <= 3 {
		y := x * x / 9
		return x * (0.5 - y*(0.56249985-y*(0.21093573-y*(0.03954289-y*(0.00443319-y*(0.00031761-y*0.00001109))))))
	}
	y := 3 / x
	f0 := 0.79788456 - y*(0.00000156+y*(0.01659667+y*(0.00017105-y*(0.00249511-y*(0.00113653-y*0.00020033)))))
	theta1 := x - 2.35619449 + y*(0.12499612+y*(0.0000565-y*(0.00637879-y*(0.00074348-y*(0.00079824-y*0.00029166)))))
	return f0 * math.Cos(theta1) / math.Sqrt(x)
}
