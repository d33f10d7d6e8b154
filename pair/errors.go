// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pair

import "fmt"

// ErrCenterInsideOther is returned when the two particle centers are
// closer than the other particle's max radius, making the cap
// half-angle undefined (spec.md 4.6 stage 3, 7).
var ErrCenterInsideOther = fmt.Errorf("pair: center inside other particle's max radius")

func centerInsideErr(dist, rMaxOther float64) error {
	return fmt.Errorf("%w: dist=%g, rMaxOther=%g", ErrCenterInsideOther, dist, rMaxOther)
}
