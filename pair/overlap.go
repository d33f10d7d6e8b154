// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pair implements the pairwise volumetric overlap integrator
// of spec.md 4.6: given two shapes from the catalog, their positions
// and orientations, it locates the spherical cap of one particle's
// quadrature directions that overlaps the other, refines the cap,
// integrates overlap volume/surface/torque vectors over it, and turns
// those into a penalty force and torque pair.
package pair

import (
	"math"

	"github.com/cpmech/shdem/quadrature"
	"github.com/cpmech/shdem/quat"
	"github.com/cpmech/shdem/shape"
)

// Config holds the integrator's tunables (spec.md 9 flags passing
// these explicitly rather than via package globals).
type Config struct {
	NPoleQuad  int     // Q_p, pole/cap quadrature order, e.g. 30
	RadiusTol  float64 // bisection tolerance as a fraction of r_max(A)
	EnforceN3L bool    // apply Newton's third law to get force/torque on B
}

// DefaultConfig returns Q_p=30, RadiusTol=1e-3, EnforceN3L=true.
func DefaultConfig() Config {
	return Config{NPoleQuad: 30, RadiusTol: 1e-3, EnforceN3L: true}
}

// Result is the pair evaluation outcome of spec.md 3 ("pair result").
type Result struct {
	V            float64    // overlap volume
	ForceA       [3]float64 // force on particle A
	TorqueA      [3]float64 // torque on particle A
	ForceB       [3]float64 // force on particle B (N3L), zero if EnforceN3L is false
	TorqueB      [3]float64 // torque on particle B (N3L)
	ContactPoint [3]float64 // x_c used for the N3L torque transfer
}

// Overlap runs all six stages of the pairwise overlap integrator
// (spec.md 4.6) for particle A (shapeA, xA, qA) against particle B
// (shapeB, xB, qB), with pair stiffness kij and penalty exponent
// mExp. A zero Result with a nil error means "no contact": the
// bounding-sphere reject, the cap-refinement sweep finding no
// contact, and the post-integration V<=0 case are all normal zero
// outcomes, not errors (spec.md 7).
func Overlap(shapeA, shapeB *shape.Shape, xA, xB [3]float64, qA, qB quat.Quat, kij, mExp float64, cfg Config) (Result, error) {
	// Stage 1: bounding-sphere reject.
	diff := vecSub(xB, xA)
	dist := vecNorm(diff)
	if dist >= shapeA.MaxRad+shapeB.MaxRad {
		return Result{}, nil
	}

	// Stage 2: cap direction.
	dirAB := vecScale(diff, 1/dist)
	qc := quat.FromTwoVectors([3]float64{0, 0, 1}, dirAB)
	qbf := qA.Conj().Mul(qc)

	// Stage 3: cap half-angle.
	if dist <= shapeB.MaxRad {
		return Result{}, centerInsideErr(dist, shapeB.MaxRad)
	}
	alpha := math.Asin(shapeB.MaxRad / dist)

	qp := cfg.NPoleQuad
	if qp < 1 {
		qp = 1
	}
	nAz := 2*qp - 1

	// Stage 4: refine the cap half-angle by sweeping from the pole
	// (largest abscissa, theta_pole~0, guaranteed contact whenever any
	// overlap exists) outward toward the loose stage-3 edge
	// (theta_pole~alpha), keeping every node that still shows azimuthal
	// contact and stopping at the first node that doesn't. kk_count is
	// the number of consecutive successes from the pole; the refined
	// alpha is the last (largest theta_pole, smallest abscissa) node
	// that still made contact, not the first one tested.
	refined := false
	alphaLoose := alpha
	for k := qp - 1; k >= 0; k-- {
		xk, _, err := quadrature.GLNode(qp, k)
		if err != nil {
			return Result{}, err
		}
		thetaPole := poleTheta(xk, alphaLoose)
		found := false
		for l := 0; l < nAz; l++ {
			phiPole := 2 * math.Pi * float64(l) / float64(nAz)
			g := dirFromSpherical(thetaPole, phiPole)
			if contactAtPole(shapeA, shapeB, xA, xB, qc, qbf, qB, g) {
				found = true
				break
			}
		}
		if !found {
			break
		}
		alpha = thetaPole
		refined = true
	}
	if !refined {
		return Result{}, nil
	}

	// Stage 5: integrate over the refined cap.
	cosAlpha := math.Cos(alpha)
	fac := (1 - cosAlpha) / 2 * (2 * math.Pi / float64(nAz))
	tol := cfg.RadiusTol * shapeA.MaxRad
	if tol <= 0 {
		tol = 1e-3 * shapeA.MaxRad
	}

	var sumDV float64
	var sumS, sumT [3]float64
	for k := 0; k < qp; k++ {
		xk, wk, err := quadrature.GLNode(qp, k)
		if err != nil {
			return Result{}, err
		}
		thetaPole := poleTheta(xk, alpha)
		for l := 0; l < nAz; l++ {
			phiPole := 2 * math.Pi * float64(l) / float64(nAz)
			g := dirFromSpherical(thetaPole, phiPole)
			spaceDir := qc.RotateVec(g)
			bodyADir := qbf.RotateVec(g)
			thetaA, phiA, _ := sphericalAngles(bodyADir)
			rA, nA, err := shapeA.ShapeRadiusAndNormal(thetaA, phiA)
			if err != nil {
				return Result{}, err
			}
			u := vecScale(spaceDir, rA)
			p := vecAdd(xA, u)
			vecToP := vecSub(p, xB)
			if vecNorm(vecToP) > shapeB.MaxRad {
				continue
			}
			thetaB, phiB, dPB := sphericalAngles(qB.Conj().RotateVec(vecToP))
			contact, _ := shapeB.CheckContact(phiB, thetaB, dPB)
			if !contact {
				continue
			}

			rs := bisectRadial(shapeB, xA, xB, qB, spaceDir, rA, tol)
			dV := wk * (rA*rA*rA - rs*rs*rs)
			sumDV += dV

			st := math.Sin(thetaA)
			if math.Abs(st) < 1e-9 {
				if st >= 0 {
					st = 1e-9
				} else {
					st = -1e-9
				}
			}
			scaledNormal := vecScale(nA, 1/st)
			spaceNormal := qA.RotateVec(scaledNormal)
			contribS := vecScale(spaceNormal, wk)
			sumS = vecAdd(sumS, contribS)
			sumT = vecAdd(sumT, vecCross(u, contribS))
		}
	}

	V := fac * sumDV / 3
	if V <= 0 {
		return Result{}, nil
	}
	S := vecScale(sumS, fac)
	T := vecScale(sumT, fac)

	// Stage 6: force/torque.
	pn := mExp * kij * math.Pow(V, mExp-1)
	res := Result{
		V:       V,
		ForceA:  vecScale(S, -pn),
		TorqueA: vecScale(T, -pn),
	}
	if cfg.EnforceN3L {
		fNorm2 := vecDot(res.ForceA, res.ForceA)
		if fNorm2 > 0 {
			xc := vecAdd(xA, vecScale(vecCross(res.TorqueA, res.ForceA), 1/fNorm2))
			res.ContactPoint = xc
			res.ForceB = vecScale(res.ForceA, -1)
			res.TorqueB = vecCross(res.ForceA, vecSub(xc, xB))
		}
	}
	return res, nil
}

// poleTheta maps a Gauss-Legendre abscissa xk on [-1,1] onto the
// polar angle in [0,alpha] via the cosine substitution of spec.md 4.6
// stage 4.
func poleTheta(xk, alpha float64) float64 {
	cosAlpha := math.Cos(alpha)
	u := xk*(1-cosAlpha)/2 + (1+cosAlpha)/2
	return math.Acos(clamp(u, -1, 1))
}

// contactAtPole tests whether the cap direction g (pole frame) lands
// inside shapeB, used only by the cap-refinement sweep of stage 4.
func contactAtPole(shapeA, shapeB *shape.Shape, xA, xB [3]float64, qc, qbf, qB quat.Quat, g [3]float64) bool {
	spaceDir := qc.RotateVec(g)
	bodyADir := qbf.RotateVec(g)
	thetaA, phiA, _ := sphericalAngles(bodyADir)
	rA, err := shapeA.ShapeRadius(thetaA, phiA)
	if err != nil {
		return false
	}
	p := vecAdd(xA, vecScale(spaceDir, rA))
	vecToP := vecSub(p, xB)
	if vecNorm(vecToP) > shapeB.MaxRad {
		return false
	}
	thetaB, phiB, dPB := sphericalAngles(qB.Conj().RotateVec(vecToP))
	contact, _ := shapeB.CheckContact(phiB, thetaB, dPB)
	return contact
}

// bisectRadial finds r_s in [0,rHigh] such that xA+r_s*dir lies on
// shapeB's surface, to within tol (spec.md 4.6 stage 5.4). hi-lo
// halves every iteration regardless of how the contact test answers,
// so this always terminates; a noisy flip near the boundary is
// resolved by simply accepting whichever bound the loop lands on.
func bisectRadial(shapeB *shape.Shape, xA, xB [3]float64, qB quat.Quat, dir [3]float64, rHigh, tol float64) float64 {
	lo, hi := 0.0, rHigh
	for iter := 0; iter < 64 && hi-lo > tol; iter++ {
		mid := (lo + hi) / 2
		p := vecAdd(xA, vecScale(dir, mid))
		vec := vecSub(p, xB)
		theta, phi, d := sphericalAngles(qB.Conj().RotateVec(vec))
		contact, _ := shapeB.CheckContact(phi, theta, d)
		if contact {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}
