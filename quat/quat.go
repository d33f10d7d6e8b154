// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quat implements the small unit-quaternion algebra the shape
// initializer and pair integrator need: body<->space rotations of
// particles and of the cap-direction vector. No particle state lives
// here; every function is a pure value transform.
package quat

import "math"

// Quat is a unit quaternion (w,x,y,z) representing a rotation, w the
// scalar part.
type Quat struct {
	W, X, Y, Z float64
}

// Identity returns the identity rotation.
func Identity() Quat { return Quat{W: 1} }

// Norm returns the Euclidean norm of q.
func (q Quat) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns q scaled to unit norm. Returns the identity if q
// is (numerically) the zero quaternion.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n < 1e-300 {
		return Identity()
	}
	return Quat{q.W / n, q.X / n, q.Y / n, q.Z / n}
}

// Conj returns the conjugate (inverse, for a unit quaternion) of q.
func (q Quat) Conj() Quat {
	return Quat{q.W, -q.X, -q.Y, -q.Z}
}

// Mul returns the Hamilton product q*p.
func (q Quat) Mul(p Quat) Quat {
	return Quat{
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
	}
}

// RotateVec rotates the 3-vector v by q (v' = q*v*q^-1), assuming q is
// unit-norm.
func (q Quat) RotateVec(v [3]float64) [3]float64 {
	p := Quat{0, v[0], v[1], v[2]}
	r := q.Mul(p).Mul(q.Conj())
	return [3]float64{r.X, r.Y, r.Z}
}

// FromAxisAngle builds a unit quaternion for a rotation of angle
// radians about axis; the axis is normalized first.
func FromAxisAngle(axis [3]float64, angle float64) Quat {
	axis = normalizeVec(axis)
	h := angle / 2
	s := math.Sin(h)
	return Quat{math.Cos(h), axis[0] * s, axis[1] * s, axis[2] * s}
}

// FromTwoVectors returns the unit quaternion rotating the unit vector
// from onto the unit vector to. Used to build the pair integrator's
// cap-direction quaternion q_c (spec.md 4.6 stage 2).
func FromTwoVectors(from, to [3]float64) Quat {
	from = normalizeVec(from)
	to = normalizeVec(to)
	d := dot(from, to)
	if d > 1-1e-12 {
		return Identity()
	}
	if d < -1+1e-12 {
		// 180 degrees: pick any axis perpendicular to "from".
		axis := perpendicular(from)
		return FromAxisAngle(axis, math.Pi)
	}
	axis := cross(from, to)
	w := 1 + d
	q := Quat{w, axis[0], axis[1], axis[2]}
	return q.Normalize()
}

// FromFrame builds the unit quaternion that rotates the standard basis
// (ex,ey,ez) onto the right-handed orthonormal frame (ex,ey,ez), i.e.
// the orientation quaternion of a body whose axes are given in space
// coordinates. Used by the shape initializer to turn the inertia
// eigenbasis into quat_init.
func FromFrame(ex, ey, ez [3]float64) Quat {
	m := [3][3]float64{
		{ex[0], ey[0], ez[0]},
		{ex[1], ey[1], ez[1]},
		{ex[2], ey[2], ez[2]},
	}
	tr := m[0][0] + m[1][1] + m[2][2]
	var q Quat
	switch {
	case tr > 0:
		s := 0.5 / math.Sqrt(tr+1)
		q = Quat{0.25 / s, (m[2][1] - m[1][2]) * s, (m[0][2] - m[2][0]) * s, (m[1][0] - m[0][1]) * s}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := 2 * math.Sqrt(1+m[0][0]-m[1][1]-m[2][2])
		q = Quat{(m[2][1] - m[1][2]) / s, 0.25 * s, (m[0][1] + m[1][0]) / s, (m[0][2] + m[2][0]) / s}
	case m[1][1] > m[2][2]:
		s := 2 * math.Sqrt(1+m[1][1]-m[0][0]-m[2][2])
		q = Quat{(m[0][2] - m[2][0]) / s, (m[0][1] + m[1][0]) / s, 0.25 * s, (m[1][2] + m[2][1]) / s}
	default:
		s := 2 * math.Sqrt(1+m[2][2]-m[0][0]-m[1][1])
		q = Quat{(m[1][0] - m[0][1]) / s, (m[0][2] + m[2][0]) / s, (m[1][2] + m[2][1]) / s, 0.25 * s}
	}
	return q.Normalize()
}

func normalizeVec(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n < 1e-300 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func perpendicular(v [3]float64) [3]float64 {
	if math.Abs(v[0]) < 0.9 {
		return normalizeVec(cross(v, [3]float64{1, 0, 0}))
	}
	return normalizeVec(cross(v, [3]float64{0, 1, 0}))
}
