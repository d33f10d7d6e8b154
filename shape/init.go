// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/shdem/quadrature"
	"github.com/cpmech/shdem/quat"
)

// buildQuadratureGrid builds the Q x Q (theta,phi) grid of spec.md 3:
// theta_i = (pi/2)(x_i+1), phi_j = pi(x_j+1), x the GL abscissae on
// [-1,1] of order Q. The azimuth range is the single 2*pi wrap that
// spec.md 9's open question recommends (not the double-wrap the
// source used), validated by the sphere closed-form test.
func (s *Shape) buildQuadratureGrid() error {
	Q := s.NQuad
	s.GridTheta = make([]float64, Q)
	s.GridPhi = make([]float64, Q)
	s.Weights = make([]float64, Q)
	for i := 0; i < Q; i++ {
		x, w, err := quadrature.GLNode(Q, i)
		if err != nil {
			return err
		}
		s.GridTheta[i] = (math.Pi / 2) * (x + 1)
		s.GridPhi[i] = math.Pi * (x + 1)
		s.Weights[i] = w
	}
	return nil
}

// tabulateRadii fills QuadRads[i*Q+j] = r(theta_i,phi_j).
func (s *Shape) tabulateRadii() error {
	Q := s.NQuad
	s.QuadRads = make([]float64, Q*Q)
	for i, theta := range s.GridTheta {
		for j, phi := range s.GridPhi {
			r, err := Radius(s.Coeffs, s.NMax, theta, phi)
			if err != nil {
				return err
			}
			s.QuadRads[i*Q+j] = r
		}
	}
	return nil
}

// computeVolumeAndInertia implements spec.md 4.4 step 4: the particle
// volume and the six independent (volume-normalized) inertia tensor
// components via GL x GL quadrature on the shape's own grid.
func (s *Shape) computeVolumeAndInertia() error {
	Q := s.NQuad
	var V float64
	var ixx, iyy, izz, ixy, ixz, iyz float64
	for i, theta := range s.GridTheta {
		st := math.Sin(theta)
		ct := math.Cos(theta)
		wi := s.Weights[i]
		for j, phi := range s.GridPhi {
			wj := s.Weights[j]
			r := s.QuadRads[i*Q+j]
			cp, sp := math.Cos(phi), math.Sin(phi)
			w := wi * wj
			V += w * r * r * r * st / 3
			r5 := r * r * r * r * r
			ixx += 0.2 * w * r5 * st * (1 - (cp*st)*(cp*st))
			iyy += 0.2 * w * r5 * st * (1 - (sp*st)*(sp*st))
			izz += 0.2 * w * r5 * st * (1 - ct*ct)
			ixy += 0.2 * w * r5 * st * (-cp * sp * st * st)
			ixz += 0.2 * w * r5 * st * (-cp * ct * st)
			iyz += 0.2 * w * r5 * st * (-sp * ct * st)
		}
	}
	V *= math.Pi * math.Pi / 2
	if V <= 0 {
		return volumeErr("computed volume %g <= 0", V)
	}
	s.Volume = V
	scale := math.Pi * math.Pi / 2 / V

	// assemble the symmetric tensor in a gosl/la matrix, the same
	// allocate-then-fill pattern msolid/driver.go uses for its
	// consistent-matrix buffer, before copying into the fixed-size
	// array jacobiEigen3 operates on.
	m := la.MatAlloc(3, 3)
	m[0][0], m[0][1], m[0][2] = ixx*scale, ixy*scale, ixz*scale
	m[1][0], m[1][1], m[1][2] = ixy*scale, iyy*scale, iyz*scale
	m[2][0], m[2][1], m[2][2] = ixz*scale, iyz*scale, izz*scale
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			s.inertia[r][c] = m[r][c]
		}
	}
	return nil
}

// diagonalizeInertia implements spec.md 4.4 step 5: cyclic Jacobi
// diagonalization of the symmetric 3x3 inertia tensor, right-handedness
// enforcement, small-eigenvalue clamping and the quat_init conversion.
func (s *Shape) diagonalizeInertia() error {
	evals, evecs, err := jacobiEigen3(s.inertia, 50)
	if err != nil {
		return err
	}
	// right-handedness: flip e_z if (e_x x e_y).e_z < 0
	ex := [3]float64{evecs[0][0], evecs[1][0], evecs[2][0]}
	ey := [3]float64{evecs[0][1], evecs[1][1], evecs[2][1]}
	ez := [3]float64{evecs[0][2], evecs[1][2], evecs[2][2]}
	cx := ex[1]*ey[2] - ex[2]*ey[1]
	cy := ex[2]*ey[0] - ex[0]*ey[2]
	cz := ex[0]*ey[1] - ex[1]*ey[0]
	if cx*ez[0]+cy*ez[1]+cz*ez[2] < 0 {
		ez = [3]float64{-ez[0], -ez[1], -ez[2]}
	}
	// clamp tiny eigenvalues to 0
	maxEval := math.Max(evals[0], math.Max(evals[1], evals[2]))
	for k := range evals {
		if evals[k] < 1e-7*maxEval {
			evals[k] = 0
		}
		if evals[k] < 0 {
			evals[k] = 0
		}
	}
	s.PrincipalInertia = evals
	s.QuatInit = quat.FromFrame(ex, ey, ez).Normalize()
	return nil
}

// computeExpansionFactorsAndMaxRad implements spec.md 4.4 steps 6-7:
// per-degree expansion factors alpha_n and the safety-scaled maximum
// surface radius.
func (s *Shape) computeExpansionFactorsAndMaxRad() error {
	nMax := s.NMax
	alpha := make([]float64, nMax+1)
	alpha[nMax] = 1
	maxFull := 0.0
	maxRatio := make([]float64, nMax) // maxRatio[n] = max_k r_{n+1}/r_n
	for n := range maxRatio {
		maxRatio[n] = 1
	}
	for _, theta := range s.GridTheta {
		for _, phi := range s.GridPhi {
			partials, err := partialRadii(s.Coeffs, nMax, theta, phi)
			if err != nil {
				return err
			}
			if r := partials[nMax]; r > maxFull {
				maxFull = r
			}
			for n := 0; n < nMax; n++ {
				rn, rn1 := partials[n], partials[n+1]
				if rn == 0 {
					continue
				}
				if ratio := rn1 / rn; ratio > maxRatio[n] {
					maxRatio[n] = ratio
				}
			}
		}
	}
	for n := 0; n < nMax; n++ {
		alpha[n] = math.Max(1, maxRatio[n])
	}
	// accumulate f = alpha_{nMax}; for n from nMax-1 down to 0: f *= alpha_n*safety
	f := alpha[nMax]
	expfacts := make([]float64, nMax+1)
	expfacts[nMax] = f
	for n := nMax - 1; n >= 0; n-- {
		f *= alpha[n] * s.safety
		expfacts[n] = f
	}
	s.ExpFacts = expfacts
	s.MaxRad = s.safety * maxFull
	return nil
}

// partialRadii returns r_n, the partial sum through degree n, for
// n=0..nMax, at a single (theta,phi) point.
func partialRadii(coeffs []float64, nMax int, theta, phi float64) ([]float64, error) {
	x := math.Cos(theta)
	st := newRowStepper(x)
	out := make([]float64, nMax+1)
	r := 0.0
	for n := 0; n <= nMax; n++ {
		row, err := st.next()
		if err != nil {
			return nil, err
		}
		for m := 0; m <= n; m++ {
			c, _ := angularTerm(coeffs, n, m, phi)
			r += c * row[m]
		}
		out[n] = r
	}
	return out, nil
}
