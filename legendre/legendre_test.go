// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legendre

import (
	"errors"
	"math"
	"testing"
)

func TestDomainErrors(t *testing.T) {
	if _, err := PLegendre(2, 3, 0.5); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected ErrDomain for m>n, got %v", err)
	}
	if _, err := PLegendre(2, 1, 1.5); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected ErrDomain for |x|>1, got %v", err)
	}
	if _, err := Pmm(-1, 0.2); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected ErrDomain for m<0, got %v", err)
	}
}

func TestRecycleMatchesFromScratch(t *testing.T) {
	x := 0.37
	for m := 0; m <= 5; m++ {
		pmm, _ := Pmm(m, x)
		pm1m := x * math.Sqrt(2*float64(m)+3) * pmm // P_{m+1}^m
		pPrev2, pPrev1 := pmm, pm1m
		for n := m + 2; n <= m+6; n++ {
			got, err := PLegendreRecycle(n, m, x, pPrev1, pPrev2)
			if err != nil {
				t.Fatalf("recycle failed n=%d m=%d: %v", n, m, err)
			}
			want, err := PLegendre(n, m, x)
			if err != nil {
				t.Fatalf("from-scratch failed n=%d m=%d: %v", n, m, err)
			}
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("n=%d m=%d: recycle=%v scratch=%v", n, m, got, want)
			}
			pPrev2, pPrev1 = pPrev1, got
		}
	}
}

// orthonormality: integral over x in [-1,1] of P_n^m P_{n'}^m dx = delta_{n,n'} / (2*pi)
// approximated here by a dense midpoint sum, sufficient for a coarse sanity check.
func TestOrthonormalityApprox(t *testing.T) {
	const N = 20001
	m := 2
	n1, n2 := 4, 4
	n3 := 6
	sum12 := 0.0
	sum13 := 0.0
	dx := 2.0 / float64(N)
	for i := 0; i < N; i++ {
		x := -1 + (float64(i)+0.5)*dx
		p1, _ := PLegendre(n1, m, x)
		p2, _ := PLegendre(n2, m, x)
		p3, _ := PLegendre(n3, m, x)
		sum12 += p1 * p2 * dx
		sum13 += p1 * p3 * dx
	}
	want := 1.0 / (2 * math.Pi)
	if math.Abs(sum12-want) > 1e-3 {
		t.Errorf("self overlap = %v, want ~%v", sum12, want)
	}
	if math.Abs(sum13) > 1e-3 {
		t.Errorf("cross overlap (n1=%d,n3=%d) = %v, want ~0", n1, n3, sum13)
	}
}

func TestPmmSeedsP00(t *testing.T) {
	p00, err := Pmm(0, 0.123)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(1 / (4 * math.Pi))
	if math.Abs(p00-want) > 1e-12 {
		t.Errorf("P_0^0 = %v, want %v", p00, want)
	}
}

func TestUnnormalizedRoundtrip(t *testing.T) {
	n, m, x := 5, 2, 0.4
	norm, _ := PLegendre(n, m, x)
	f := NormFactor(n, m)
	un := Unnormalized(n, m, norm)
	if math.Abs(un*f-norm) > 1e-12 {
		t.Errorf("unnormalized roundtrip mismatch: un=%v f=%v norm=%v", un, f, norm)
	}
}
