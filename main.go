// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/canunlusoy/gotherm/inp"
	"github.com/canunlusoy/gotherm/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".cyc", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)
	dirout := io.ArgToString(3, "/tmp/gotherm")

	// message
	if verbose {
		io.PfWhite("\nGotherm -- thermodynamic cycle solver\n")
		io.Pf("Copyright 2021 The Gotherm Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot T-s and P-v diagrams", "doplot", doplot,
			"output directory for plots", "dirout", dirout,
		))
	}

	// read cycle definition
	cycle, err := inp.ReadCyc(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("cannot read cycle definition:\n%v", err)
	}

	// solve
	err = cycle.Solve()
	if err != nil {
		chk.Panic("solve failed:\n%v", err)
	}

	// results
	if verbose {
		out.Report(cycle)
	}
	if doplot {
		out.PlotTs(cycle, dirout, fnkey+"-Ts")
		out.PlotPv(cycle, dirout, fnkey+"-Pv")
	}
}
