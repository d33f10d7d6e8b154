// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements the end-to-end scenarios of spec.md 8,
// exercising shape, pair, quat and ana together the way a host
// application would.
package tests

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cpmech/shdem/ana"
	"github.com/cpmech/shdem/pair"
	"github.com/cpmech/shdem/quat"
	"github.com/cpmech/shdem/shape"
)

func buildSphere(t *testing.T, rad float64, nMax, nQuad int) *shape.Shape {
	t.Helper()
	a00 := rad * math.Sqrt(4*math.Pi)
	cfg := shape.Config{NMax: nMax, NQuad: nQuad, Safety: 1.0}
	s, err := shape.Build(cfg, strings.NewReader(fmt.Sprintf("1\n0 0 %g 0\n", a00)))
	if err != nil {
		t.Fatalf("buildSphere: %v", err)
	}
	return s
}

// buildAxisymmetricEllipsoid returns a hand-tuned two-term SH shape
// (a_{0,0}, a_{2,0}) elongated along the body z-axis, approximating
// semi-axes (1,1,2) well enough for an end-to-end overlap test.
// This is not a least-squares fit to sampled ellipsoid points (spec.md
// 8 scenario S2 describes fitting one); the pair integrator only needs
// a smooth axisymmetric bump here, and the two coefficients above are
// chosen to put the polar radius near 2 and the equatorial radius near
// 1.
func buildAxisymmetricEllipsoid(t *testing.T, nMax, nQuad int) *shape.Shape {
	t.Helper()
	cfg := shape.Config{NMax: nMax, NQuad: nQuad, Safety: 1.0}
	s, err := shape.Build(cfg, strings.NewReader("0 0 4.727 0\n2 0 1.057 0\n"))
	if err != nil {
		t.Fatalf("buildAxisymmetricEllipsoid: %v", err)
	}
	return s
}

// TestS1SphereSphereOverlap: two unit spheres at (0,0,0) and
// (1.9,0,0), k=1, m=3/2; V and |F| both checked against the closed
// form (spec.md 8, property 1 and scenario S1).
func TestS1SphereSphereOverlap(t *testing.T) {
	r, d := 1.0, 1.9
	a := buildSphere(t, r, 10, 20)
	b := buildSphere(t, r, 10, 20)
	cfg := pair.DefaultConfig()
	cfg.NPoleQuad = 24
	res, err := pair.Overlap(a, b, [3]float64{0, 0, 0}, [3]float64{d, 0, 0}, quat.Identity(), quat.Identity(), 1.0, 1.5, cfg)
	if err != nil {
		t.Fatal(err)
	}
	wantV := ana.SphereOverlapVolume(r, d)
	if math.Abs(res.V-wantV) > 0.05*wantV {
		t.Errorf("V=%g, want approximately %g", res.V, wantV)
	}
	sx := ana.SphereOverlapSurfaceVectorX(r, d)
	wantF := 1.5 * math.Sqrt(wantV) * sx
	gotF := math.Sqrt(res.ForceA[0]*res.ForceA[0] + res.ForceA[1]*res.ForceA[1] + res.ForceA[2]*res.ForceA[2])
	if math.Abs(gotF-wantF) > 0.1*wantF {
		t.Errorf("|F|=%g, want approximately %g", gotF, wantF)
	}
}

// TestS2EllipsoidSphere: an axisymmetric SH "ellipsoid" against a unit
// sphere placed along its long (z) axis. V must be positive and the
// torque on the ellipsoid small, since the configuration is axially
// symmetric (spec.md 8, S2).
func TestS2EllipsoidSphere(t *testing.T) {
	ell := buildAxisymmetricEllipsoid(t, 10, 24)
	sph := buildSphere(t, 1.0, 10, 24)
	cfg := pair.DefaultConfig()
	cfg.NPoleQuad = 24
	res, err := pair.Overlap(ell, sph, [3]float64{0, 0, 0}, [3]float64{0, 0, 2.5}, quat.Identity(), quat.Identity(), 1.0, 1.5, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.V <= 0 {
		t.Fatalf("V=%g, want > 0", res.V)
	}
	torqueMag := math.Sqrt(res.TorqueA[0]*res.TorqueA[0] + res.TorqueA[1]*res.TorqueA[1] + res.TorqueA[2]*res.TorqueA[2])
	forceMag := math.Sqrt(res.ForceA[0]*res.ForceA[0] + res.ForceA[1]*res.ForceA[1] + res.ForceA[2]*res.ForceA[2])
	if torqueMag > 0.05*forceMag {
		t.Errorf("|tau|=%g too large relative to |F|=%g for an axisymmetric placement", torqueMag, forceMag)
	}
}

// TestS3NoContact: two ellipsoids three max-radii apart; pair_overlap
// returns exactly zero (spec.md 8, S3).
func TestS3NoContact(t *testing.T) {
	a := buildAxisymmetricEllipsoid(t, 8, 16)
	b := buildAxisymmetricEllipsoid(t, 8, 16)
	dist := 3 * (a.MaxRad + b.MaxRad)
	res, err := pair.Overlap(a, b, [3]float64{0, 0, 0}, [3]float64{dist, 0, 0}, quat.Identity(), quat.Identity(), 1.0, 1.5, pair.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if res.V != 0 {
		t.Errorf("V=%g, want exactly 0", res.V)
	}
}

// TestS4RotationEquivariance: overlap of (A,B) at (xA,xB,qA,qB) equals
// overlap at (R.xA, R.xB, R.qA, R.qB) for an arbitrary rotation R
// (spec.md 8, S4).
func TestS4RotationEquivariance(t *testing.T) {
	ell := buildAxisymmetricEllipsoid(t, 8, 16)
	sph := buildSphere(t, 1.0, 8, 16)
	xA := [3]float64{0, 0, 0}
	xB := [3]float64{0, 0, 2.5}
	cfg := pair.DefaultConfig()
	cfg.NPoleQuad = 20

	base, err := pair.Overlap(ell, sph, xA, xB, quat.Identity(), quat.Identity(), 1.0, 1.5, cfg)
	if err != nil {
		t.Fatal(err)
	}

	R := quat.FromAxisAngle([3]float64{0.2, -0.5, 0.843}, 0.9)
	rotated, err := pair.Overlap(ell, sph, R.RotateVec(xA), R.RotateVec(xB), R.Mul(quat.Identity()), R.Mul(quat.Identity()), 1.0, 1.5, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(base.V-rotated.V) > 1e-6*math.Max(base.V, 1e-12) {
		t.Errorf("V not rotation-invariant: base=%g rotated=%g", base.V, rotated.V)
	}
}
