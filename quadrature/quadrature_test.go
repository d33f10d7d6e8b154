// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadrature

import (
	"errors"
	"math"
	"testing"
)

func TestDomainErrors(t *testing.T) {
	if _, err := GLPair(0, 0); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected ErrDomain for n=0, got %v", err)
	}
	if _, err := GLPair(5, 5); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected ErrDomain for k>=n, got %v", err)
	}
}

func TestWeightsSumToTwo(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 16, 32, 64} {
		sum := 0.0
		for k := 0; k < n; k++ {
			p, err := GLPair(n, k)
			if err != nil {
				t.Fatal(err)
			}
			sum += p.Weight
		}
		if math.Abs(sum-2.0) > 1e-8 {
			t.Errorf("n=%d: sum of weights = %v, want 2", n, sum)
		}
	}
}

// nodes are ordered by increasing abscissa, so theta=arccos(abscissa)
// decreases with k.
func TestNodesMonotoneInTheta(t *testing.T) {
	n := 12
	prev := math.Inf(1)
	for k := 0; k < n; k++ {
		p, err := GLPair(n, k)
		if err != nil {
			t.Fatal(err)
		}
		if p.Theta > prev {
			t.Errorf("theta not monotone at k=%d: %v > %v", k, p.Theta, prev)
		}
		prev = p.Theta
	}
}

func TestIntegratesPolynomialsExactly(t *testing.T) {
	// degree-n GL quadrature integrates polynomials up to degree 2n-1 exactly.
	n := 5
	sum := 0.0
	for k := 0; k < n; k++ {
		p, _ := GLPair(n, k)
		x := math.Cos(p.Theta)
		sum += p.Weight * (3*x*x*x*x*x*x*x*x - 2*x*x + 1) // degree 8 < 2*5-1=9
	}
	// integral of (3x^8 - 2x^2 + 1) over [-1,1] = 3*(2/9) - 2*(2/3) + 2 = 2/3 - 4/3 + 2 = 4/3
	want := 4.0 / 3.0
	if math.Abs(sum-want) > 1e-8 {
		t.Errorf("quadrature sum = %v, want %v", sum, want)
	}
}
