// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of solved cycles: text reports and
// property diagrams
package out

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/canunlusoy/gotherm/cyc"
)

// Report prints the solved cycle: each flow's states in sequence order
// with its mass flow, then the cycle aggregates. Unresolved values print
// as NaN, showing where the problem was under-specified.
func Report(cy *cyc.Cycle) {
	for _, fl := range cy.Flows {
		io.Pf("\nflow %q: massFF = %g, massFR = %g kg/s\n", fl.Name, fl.MassFF, fl.MassFR)
		for _, s := range fl.States() {
			io.Pf("  %v\n", s)
		}
	}
	io.Pf("\n")
	agg := func(name string, val float64, unit string) {
		if !math.IsNaN(val) {
			io.Pf("%-22s = %10.3f %s\n", name, val, unit)
		}
	}
	agg("net specific power", cy.SPower, "kJ/kg")
	agg("specific heat input", cy.SQIn, "kJ/kg")
	agg("specific heat out", cy.SQOut, "kJ/kg")
	agg("net power", cy.NetPower, "kW")
	agg("heat input rate", cy.QIn, "kW")
	agg("heat rejection rate", cy.QOut, "kW")
	agg("thermal efficiency", cy.Eta, "")
	agg("COP", cy.COP, "")
}
