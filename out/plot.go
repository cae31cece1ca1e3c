// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sort"

	"github.com/cpmech/gosl/plt"

	"github.com/canunlusoy/gotherm/cyc"
	"github.com/canunlusoy/gotherm/prop"
)

// flow marker colours
var colors = []string{"b", "r", "g", "m", "c", "orange"}

// PlotTs draws the temperature-entropy diagram of the cycle: the
// saturation dome of the working fluid (pure substances only) and each
// flow's resolved states, and saves it to dirout/fnkey.eps
func PlotTs(cy *cyc.Cycle, dirout, fnkey string) {
	plt.Reset(false, nil)
	fluid := cy.Flows[0].Fluid
	if !fluid.Gas {
		sdome, tdome := dome(fluid.Tab, "s")
		plt.Plot(sdome, tdome, &plt.A{C: "k", Ls: "--", L: "saturation"})
	}
	for i, fl := range cy.Flows {
		var ss, ts []float64
		for _, s := range fl.States() {
			if s.Defined("s") && s.Defined("T") {
				ss = append(ss, s.S)
				ts = append(ts, s.T)
			}
		}
		plt.Plot(ss, ts, &plt.A{C: colors[i%len(colors)], M: "o", L: fl.Name})
	}
	plt.Gll("$s$ [kJ/(kg·K)]", "$T$ [°C]", nil)
	plt.SaveD(dirout, fnkey+".eps")
}

// PlotPv draws the pressure-volume diagram of the cycle and saves it to
// dirout/fnkey.eps
func PlotPv(cy *cyc.Cycle, dirout, fnkey string) {
	plt.Reset(false, nil)
	fluid := cy.Flows[0].Fluid
	if !fluid.Gas {
		vdome, pdome := domeP(fluid.Tab)
		plt.Plot(vdome, pdome, &plt.A{C: "k", Ls: "--", L: "saturation"})
	}
	for i, fl := range cy.Flows {
		var vs, ps []float64
		for _, s := range fl.States() {
			if s.Defined("v") && s.Defined("P") {
				vs = append(vs, s.V)
				ps = append(ps, s.P)
			}
		}
		plt.Plot(vs, ps, &plt.A{C: colors[i%len(colors)], M: "o", L: fl.Name})
	}
	plt.Gll("$v$ [m³/kg]", "$P$ [kPa]", nil)
	plt.SaveD(dirout, fnkey+".eps")
}

// dome returns the saturation dome as (key, T) polylines: the liquid
// branch by rising temperature, then the vapour branch back down
func dome(tab *prop.Table, key string) (xs, ts []float64) {
	liq := byT(tab.Equal("x", 0))
	vap := byT(tab.Equal("x", 1))
	for _, s := range liq {
		xs = append(xs, s.Get(key))
		ts = append(ts, s.T)
	}
	for i := len(vap) - 1; i >= 0; i-- {
		xs = append(xs, vap[i].Get(key))
		ts = append(ts, vap[i].T)
	}
	return
}

// domeP returns the saturation dome as (v, P) polylines
func domeP(tab *prop.Table) (vs, ps []float64) {
	liq := byT(tab.Equal("x", 0))
	vap := byT(tab.Equal("x", 1))
	for _, s := range liq {
		vs = append(vs, s.V)
		ps = append(ps, s.P)
	}
	for i := len(vap) - 1; i >= 0; i-- {
		vs = append(vs, vap[i].V)
		ps = append(ps, vap[i].P)
	}
	return
}

// byT sorts states by rising temperature
func byT(ss []*prop.State) []*prop.State {
	sorted := make([]*prop.State, len(ss))
	copy(sorted, ss)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	return sorted
}
