// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions used to validate the
// pair integrator's numerical quadrature (spec.md 8, property 1).
package ana

import "math"

// SphereOverlapVolume returns the volume of the lens-shaped overlap
// of two spheres of equal radius r with centers a distance d apart,
// for 0 <= d < 2r. Returns 0 for d >= 2r.
func SphereOverlapVolume(r, d float64) float64 {
	if d >= 2*r {
		return 0
	}
	if d < 0 {
		d = -d
	}
	return math.Pi * (4*r + d) * (2*r - d) * (2*r - d) / 12
}

// SphereOverlapSurfaceVectorX returns S_x, the x-component of the
// overlap-volume surface integral vector for two equal spheres whose
// centers lie on the x-axis a distance d apart (the configuration of
// spec.md 8 scenario S1), obtained from dV/dx_A = -dV/dd on the closed
// form above:
//
//	dV/dd = -(pi/4)(4r^2 - d^2)  =>  S_x = dV/dx_A = (pi/4)(4r^2 - d^2)
func SphereOverlapSurfaceVectorX(r, d float64) float64 {
	return math.Pi / 4 * (4*r*r - d*d)
}
