// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "math"

// CheckContact decides whether a target point at distance d along
// direction (theta,phi) in the shape's body frame lies inside the
// particle, using progressive-degree evaluation with the expansion
// factors for early exit (spec.md 4.5). Returns (contact, r) where r
// is the full-degree radius once contact is confirmed.
func (s *Shape) CheckContact(phi, theta, d float64) (bool, float64) {
	x := math.Cos(theta)
	st := newRowStepper(x)
	row0, err := st.next()
	if err != nil {
		return false, 0
	}
	r0, _ := angularTerm(s.Coeffs, 0, 0, phi)
	r := r0 * row0[0]
	if d > s.ExpFacts[0]*r {
		return false, 0
	}
	for n := 1; n <= s.NMax; n++ {
		row, err := st.next()
		if err != nil {
			return false, 0
		}
		for m := 0; m <= n; m++ {
			c, _ := angularTerm(s.Coeffs, n, m, phi)
			r += c * row[m]
		}
		if d > s.ExpFacts[n]*r {
			return false, 0
		}
	}
	if d <= r {
		return true, r
	}
	return false, 0
}
