// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

// Loc returns the interleaved (Re,Im) storage offset for a_{n,m},
// m>=0: coeffs[Loc(n,m)]=Re, coeffs[Loc(n,m)+1]=Im (spec.md 3).
func Loc(n, m int) int {
	return n*(n+1) + 2*(n-m)
}

// NumCoeffs returns the coeffs array length required for a given nMax.
func NumCoeffs(nMax int) int {
	return (nMax + 1) * (nMax + 2)
}

// Coeff returns the complex a_{n,m} coefficient for any m (positive or
// negative), reconstructing m<0 entries from storage via
// a_{n,-m} = (-1)^m * conj(a_{n,m}) (spec.md 3).
func Coeff(coeffs []float64, n, m int) (re, im float64) {
	if m >= 0 {
		loc := Loc(n, m)
		return coeffs[loc], coeffs[loc+1]
	}
	loc := Loc(n, -m)
	sign := 1.0
	if (-m)%2 != 0 {
		sign = -1.0
	}
	return sign * coeffs[loc], -sign * coeffs[loc+1]
}

// ingestCoeffs reads whitespace-separated "n m Re Im" records from r,
// per the coefficient file format of spec.md 6: an optional leading
// header line holding a single integer (coefficient count, informational
// only), '#'-prefixed comment lines, m<0 lines ignored, reading stops
// once n exceeds nMax.
func ingestCoeffs(r io.Reader, nMax int) ([]float64, error) {
	coeffs := make([]float64, NumCoeffs(nMax))
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	sawFirstDataLine := false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if !sawFirstDataLine && len(fields) == 1 {
			// optional header: single integer coefficient count, informational.
			if _, err := strconv.Atoi(fields[0]); err == nil {
				continue
			}
		}
		sawFirstDataLine = true
		if len(fields) != 4 {
			return nil, parseErr(lineNo, "expected 4 fields (n m Re Im), got %d: %q", len(fields), line)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, parseErr(lineNo, "invalid n %q: %v", fields[0], err)
		}
		m, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, parseErr(lineNo, "invalid m %q: %v", fields[1], err)
		}
		re, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, parseErr(lineNo, "invalid Re(a_n_m) %q: %v", fields[2], err)
		}
		im, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, parseErr(lineNo, "invalid Im(a_n_m) %q: %v", fields[3], err)
		}
		if math.IsNaN(re) || math.IsNaN(im) {
			return nil, parseErr(lineNo, "non-finite coefficient")
		}
		if n > nMax {
			break
		}
		if m < 0 {
			continue
		}
		if m > n {
			return nil, parseErr(lineNo, "m=%d > n=%d", m, n)
		}
		loc := Loc(n, m)
		if loc+1 >= len(coeffs) {
			return nil, overflowErr("coefficient (n=%d,m=%d) exceeds capacity for nMax=%d", n, m, nMax)
		}
		coeffs[loc] = re
		coeffs[loc+1] = im
	}
	if err := sc.Err(); err != nil {
		return nil, parseErr(lineNo+1, "scan failure: %v", err)
	}
	return coeffs, nil
}
