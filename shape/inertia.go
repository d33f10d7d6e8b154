// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "math"

// jacobiEigen3 diagonalizes a real symmetric 3x3 matrix a by cyclic
// Jacobi rotation (spec.md 4.4 step 5): each sweep zeroes every
// off-diagonal pair once, in fixed order; converged when the
// off-diagonal norm falls below tol. Returns eigenvalues and the
// matching eigenvectors as columns of v. No external numerical
// library in the retrieved pack exercises a Jacobi eigensolver with a
// verifiable signature, so this is implemented directly from spec.md's
// own description rather than guessed at through gosl/num.
func jacobiEigen3(a [3][3]float64, maxSweeps int) (evals [3]float64, v [3][3]float64, err error) {
	const tol = 1e-13
	v = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	pairs := [3][2]int{{0, 1}, {0, 2}, {1, 2}}
	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := math.Abs(a[0][1]) + math.Abs(a[0][2]) + math.Abs(a[1][2])
		if off < tol {
			evals = [3]float64{a[0][0], a[1][1], a[2][2]}
			return evals, v, nil
		}
		for _, pq := range pairs {
			p, q := pq[0], pq[1]
			if math.Abs(a[p][q]) < 1e-300 {
				continue
			}
			theta := (a[q][q] - a[p][p]) / (2 * a[p][q])
			t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
			c := 1 / math.Sqrt(t*t+1)
			sn := t * c
			app := a[p][p]
			aqq := a[q][q]
			apq := a[p][q]
			a[p][p] = app - t*apq
			a[q][q] = aqq + t*apq
			a[p][q] = 0
			a[q][p] = 0
			for r := 0; r < 3; r++ {
				if r != p && r != q {
					arp := a[r][p]
					arq := a[r][q]
					a[r][p] = c*arp - sn*arq
					a[p][r] = a[r][p]
					a[r][q] = sn*arp + c*arq
					a[q][r] = a[r][q]
				}
			}
			for r := 0; r < 3; r++ {
				vrp := v[r][p]
				vrq := v[r][q]
				v[r][p] = c*vrp - sn*vrq
				v[r][q] = sn*vrp + c*vrq
			}
		}
	}
	off := math.Abs(a[0][1]) + math.Abs(a[0][2]) + math.Abs(a[1][2])
	if off < 1e-6 {
		evals = [3]float64{a[0][0], a[1][1], a[2][2]}
		return evals, v, nil
	}
	return evals, v, jacobiErr("did not converge within %d sweeps (off-diag=%g)", maxSweeps, off)
}
