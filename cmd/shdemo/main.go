// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// shdemo builds a small shape catalog from coefficient files and
// reports the pairwise overlap between two of its entries, adapted
// from gofem's own main.go skeleton (flag parsing, panic recovery,
// mpi.Start/Stop) but driving the shape/pair engine instead of a FE
// simulation.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/shdem/catalog"
	"github.com/cpmech/shdem/pair"
	"github.com/cpmech/shdem/quat"
	"github.com/cpmech/shdem/shape"
)

func main() {

	// flags
	var nMax, nQuad, nPoleQuad int
	var k, m, dist float64
	var verbose bool
	flag.IntVar(&nMax, "nmax", 20, "maximum SH degree")
	flag.IntVar(&nQuad, "nquad", 40, "shape quadrature order")
	flag.IntVar(&nPoleQuad, "npolequad", 30, "pair cap quadrature order")
	flag.Float64Var(&k, "k", 1.0, "pair stiffness")
	flag.Float64Var(&m, "m", 1.5, "penalty exponent")
	flag.Float64Var(&dist, "dist", 1.9, "distance along x between the two shapes' centers")
	flag.BoolVar(&verbose, "v", false, "verbose catalog build")

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nshdemo -- spherical-harmonic particle overlap demo\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
	}

	flag.Parse()
	if len(flag.Args()) < 2 {
		chk.Panic("Please, provide two coefficient file paths. Ex.: shdemo shapeA.txt shapeB.txt\n")
	}

	defer utl.DoProf(false)()

	cfg := shape.Config{NMax: nMax, NQuad: nQuad, Safety: 1.0, Verbose: verbose}
	cat, err := catalog.Build(cfg, flag.Args()[:2])
	if err != nil {
		chk.Panic("catalog build failed:\n%v\n", err)
	}
	shapeA, err := cat.Get(0)
	if err != nil {
		chk.Panic("%v\n", err)
	}
	shapeB, err := cat.Get(1)
	if err != nil {
		chk.Panic("%v\n", err)
	}

	pcfg := pair.DefaultConfig()
	pcfg.NPoleQuad = nPoleQuad
	res, err := pair.Overlap(shapeA, shapeB,
		[3]float64{0, 0, 0}, [3]float64{dist, 0, 0},
		quat.Identity(), quat.Identity(), k, m, pcfg)
	if err != nil {
		chk.Panic("overlap failed:\n%v\n", err)
	}

	if mpi.Rank() == 0 {
		io.Pf("V       = %v\n", res.V)
		io.Pf("F_A     = %v\n", res.ForceA)
		io.Pf("tau_A   = %v\n", res.TorqueA)
		io.Pf("F_B     = %v\n", res.ForceB)
		io.Pf("tau_B   = %v\n", res.TorqueB)
		io.Pf("contact = %v\n", res.ContactPoint)
	}
}
