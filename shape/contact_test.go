// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "testing"

func TestCheckContactSphere(t *testing.T) {
	s := buildSphere(t, 1.0, 8, 16)
	ok, r := s.CheckContact(0.4, 1.2, 0.9)
	if !ok {
		t.Fatalf("expected contact at d=0.9 < r=1")
	}
	if r < 0.999 || r > 1.001 {
		t.Errorf("returned r=%v, want ~1", r)
	}
	ok, _ = s.CheckContact(0.4, 1.2, 1.1)
	if ok {
		t.Fatalf("expected no contact at d=1.1 > r=1")
	}
}

func TestCheckContactAgreesWithRadius(t *testing.T) {
	s := buildSphere(t, 1.0, 10, 20)
	for _, d := range []float64{0.2, 0.5, 0.95, 0.999, 1.001, 1.5} {
		phi, theta := 0.77, 1.9
		ok, _ := s.CheckContact(phi, theta, d)
		r, err := s.ShapeRadius(theta, phi)
		if err != nil {
			t.Fatal(err)
		}
		want := d <= r
		if ok != want {
			t.Errorf("d=%v: CheckContact=%v, want %v (r=%v)", d, ok, want, r)
		}
	}
}
