// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/cpmech/shdem/legendre"
)

const poleNudge = 1e-5

// angularTerm returns the degree-n angular coefficient c_{n,m}(phi)
// and its phi-derivative for a single m (spec.md 4.3):
//
//	m=0: c = a_{n,0}
//	m>0: c = 2*(Re(a_nm)*cos(m*phi) - Im(a_nm)*sin(m*phi))
func angularTerm(coeffs []float64, n, m int, phi float64) (c, dcDphi float64) {
	re, im := Coeff(coeffs, n, m)
	if m == 0 {
		return re, 0
	}
	mf := float64(m)
	cosmp := math.Cos(mf * phi)
	sinmp := math.Sin(mf * phi)
	c = 2 * (re*cosmp - im*sinmp)
	dcDphi = -2 * mf * (re*sinmp + im*cosmp)
	return
}

// Radius evaluates r(theta,phi) for the given coefficients truncated
// at nMax (spec.md 4.3). A standalone coefficient-level entry point that
// evaluates without a full Shape.
func Radius(coeffs []float64, nMax int, theta, phi float64) (float64, error) {
	if len(coeffs) != NumCoeffs(nMax) {
		return 0, domainErr("coeffs has length %d, want %d for nMax=%d", len(coeffs), NumCoeffs(nMax), nMax)
	}
	x := math.Cos(theta)
	st := newRowStepper(x)
	r := 0.0
	for n := 0; n <= nMax; n++ {
		row, err := st.next()
		if err != nil {
			return 0, err
		}
		for m := 0; m <= n; m++ {
			c, _ := angularTerm(coeffs, n, m, phi)
			r += c * row[m]
		}
	}
	return r, nil
}

// RadiusAndGradients evaluates r, dr/dphi and dr/dtheta (spec.md 4.3).
// The theta derivative uses the identity
//
//	sin(theta) dP_n^m/dtheta = (n-m+1)P_{n+1,m} - (n+1)cos(theta)P_n^m
//
// on the *unnormalized* Legendre values, scaled back up by the
// explicit normalization factor f_{n,m}; this requires evaluating one
// degree beyond nMax.
func RadiusAndGradients(coeffs []float64, nMax int, theta, phi float64) (r, drDphi, drDtheta float64, err error) {
	if len(coeffs) != NumCoeffs(nMax) {
		return 0, 0, 0, domainErr("coeffs has length %d, want %d for nMax=%d", len(coeffs), NumCoeffs(nMax), nMax)
	}
	if math.Sin(theta) == 0 {
		theta += poleNudge
	}
	if math.Sin(phi) == 0 {
		phi += poleNudge
	}
	x := math.Cos(theta)
	ct := x
	st := math.Sin(theta)
	stepper := newRowStepper(x)

	var rowPrev []float64
	for n := 0; n <= nMax+1; n++ {
		row, e := stepper.next()
		if e != nil {
			return 0, 0, 0, e
		}
		if n <= nMax {
			for m := 0; m <= n; m++ {
				c, dc := angularTerm(coeffs, n, m, phi)
				r += c * row[m]
				drDphi += dc * row[m]
			}
		}
		if n >= 1 {
			deg := n - 1
			if deg <= nMax {
				for m := 0; m <= deg; m++ {
					c, _ := angularTerm(coeffs, deg, m, phi)
					pDeg := legendre.Unnormalized(deg, m, rowPrev[m])
					pNext := legendre.Unnormalized(n, m, row[m])
					dPdTheta := legendre.NormFactor(deg, m) / st * (float64(deg-m+1)*pNext - float64(deg+1)*ct*pDeg)
					drDtheta += c * dPdTheta
				}
			}
		}
		rowPrev = row
	}
	return r, drDphi, drDtheta, nil
}

// RadiusAndNormal evaluates r and the outward non-unit surface normal
// (spec.md 4.3).
func RadiusAndNormal(coeffs []float64, nMax int, theta, phi float64) (r float64, normal [3]float64, err error) {
	r, drDphi, drDtheta, err := RadiusAndGradients(coeffs, nMax, theta, phi)
	if err != nil {
		return 0, normal, err
	}
	ct, st := math.Cos(theta), math.Sin(theta)
	cp, sp := math.Cos(phi), math.Sin(phi)
	nx := r * (cp*r*st*st + sp*drDphi - cp*ct*st*drDtheta)
	ny := r * (r*sp*st*st - cp*drDphi - ct*sp*st*drDtheta)
	nz := r * st * (ct*r + st*drDtheta)
	return r, [3]float64{nx, ny, nz}, nil
}

// ShapeRadius is the Shape-bound convenience wrapper around Radius.
func (s *Shape) ShapeRadius(theta, phi float64) (float64, error) {
	return Radius(s.Coeffs, s.NMax, theta, phi)
}

// ShapeRadiusAndGradients is the Shape-bound wrapper around RadiusAndGradients.
func (s *Shape) ShapeRadiusAndGradients(theta, phi float64) (r, drDphi, drDtheta float64, err error) {
	return RadiusAndGradients(s.Coeffs, s.NMax, theta, phi)
}

// ShapeRadiusAndNormal is the Shape-bound wrapper around RadiusAndNormal.
func (s *Shape) ShapeRadiusAndNormal(theta, phi float64) (r float64, normal [3]float64, err error) {
	return RadiusAndNormal(s.Coeffs, s.NMax, theta, phi)
}
