// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotate

import "fmt"

// ErrRotationDegenerate is returned when beta falls outside [0,pi]
// after normalization (spec.md 4.7, 7).
var ErrRotationDegenerate = fmt.Errorf("rotate: degenerate Euler beta")
