// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "fmt"

// Sentinel error kinds, wrapped with context via fmt.Errorf("%w: ...")
// so callers can distinguish kinds with errors.Is while still getting
// a descriptive message (spec.md 7).
var (
	ErrDomain             = fmt.Errorf("shape: domain error")
	ErrCoefficientParse   = fmt.Errorf("shape: coefficient parse error")
	ErrShapeFileOverflow  = fmt.Errorf("shape: coefficient file overflow")
	ErrVolumeZero         = fmt.Errorf("shape: zero or negative volume")
	ErrJacobiNonConverged = fmt.Errorf("shape: jacobi eigendecomposition did not converge")
)

func domainErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrDomain}, a...)...)
}

func parseErr(line int, format string, a ...interface{}) error {
	args := append([]interface{}{ErrCoefficientParse, line}, a...)
	return fmt.Errorf("%w: line %d: "+format, args...)
}

func overflowErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrShapeFileOverflow}, a...)...)
}

func volumeErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrVolumeZero}, a...)...)
}

func jacobiErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrJacobiNonConverged}, a...)...)
}
