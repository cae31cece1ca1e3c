// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyc

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/canunlusoy/gotherm/prop"
	"github.com/canunlusoy/gotherm/sym"
)

// Cycle composes flows into one thermodynamic cycle: it ties their mass
// fractions together at the junction states, accumulates power and heat
// over all devices and drives the whole network to a fixed point.
type Cycle struct {

	// definition
	Flows []*Flow  // member flows; exactly one has MassFF == 1 (the main flow)
	Pool  sym.Pool // shared equation pool

	// aggregates, specific to one unit mass of the main flow [kJ/kg]
	SPower float64 // net specific work output (negative when consumed)
	SQIn   float64 // specific heat input
	SQOut  float64 // specific heat rejection

	// aggregates, absolute [kW]
	NetPower float64 // net power output
	QIn      float64 // heat input rate
	QOut     float64 // heat rejection rate

	// figures of merit
	Eta float64 // thermal efficiency (power cycles)
	COP float64 // coefficient of performance (refrigeration cycles)

	// derived
	eqsDone bool // cycle-level equations already registered
}

// NewCycle returns a cycle over the given flows. A single flow with
// unknown mass fraction is taken as the main flow.
func NewCycle(flows ...*Flow) (o *Cycle) {
	o = &Cycle{Flows: flows}
	o.SPower, o.SQIn, o.SQOut = math.NaN(), math.NaN(), math.NaN()
	o.NetPower, o.QIn, o.QOut = math.NaN(), math.NaN(), math.NaN()
	o.Eta, o.COP = math.NaN(), math.NaN()
	if len(flows) == 1 && math.IsNaN(flows[0].MassFF) {
		flows[0].MassFF = 1
	}
	return
}

// Main returns the designated main flow: the one with mass fraction 1
func (o *Cycle) Main() (*Flow, error) {
	for _, fl := range o.Flows {
		if fl.MassFF == 1 {
			return fl, nil
		}
	}
	return nil, chk.Err("cycle: no main flow (one flow must have mass fraction 1)")
}

// Devices returns the distinct devices over all flows, in order
func (o *Cycle) Devices() (ds []Device) {
	seen := make(map[Device]bool)
	for _, fl := range o.Flows {
		for _, d := range fl.Devices() {
			if !seen[d] {
				seen[d] = true
				ds = append(ds, d)
			}
		}
	}
	return
}

// massBalances registers one mass balance per junction state: the mass
// fractions of flows ending at the state must sum to those of flows
// starting there. A closed single flow begins and ends at the same state
// and contributes nothing.
func (o *Cycle) massBalances() {
	type junction struct {
		enders, starters []*Flow
	}
	junctions := make(map[*prop.State]*junction)
	var order []*prop.State
	jat := func(s *prop.State) *junction {
		if junctions[s] == nil {
			junctions[s] = new(junction)
			order = append(order, s)
		}
		return junctions[s]
	}
	for _, fl := range o.Flows {
		if fl.First() == fl.Last() {
			continue
		}
		jat(fl.Last()).enders = append(jat(fl.Last()).enders, fl)
		jat(fl.First()).starters = append(jat(fl.First()).starters, fl)
	}
	for _, s := range order {
		j := junctions[s]
		if len(j.enders) == 0 || len(j.starters) == 0 {
			continue
		}
		var terms []sym.Term
		for _, fl := range j.enders {
			terms = append(terms, sym.NewTerm(1, FlowRef{fl, "massFF"}))
		}
		for _, fl := range j.starters {
			terms = append(terms, sym.NewTerm(-1, FlowRef{fl, "massFF"}))
		}
		o.Pool.Add(sym.NewEquation("junction mass balance", terms, 0))
	}
}

// aggregates registers the cycle-level relations: specific power and heat
// sums over all device passes, their absolute counterparts through the
// main flow's mass rate, the per-flow mass rate ties and, when the
// efficiency is given, the power-to-heat relation.
func (o *Cycle) aggregates() error {
	main, err := o.Main()
	if err != nil {
		return err
	}

	// net specific power over all work device passes
	terms := []sym.Term{sym.NewTerm(1, CycleRef{o, "sPower"})}
	for _, d := range o.Devices() {
		if _, ok := d.(*WorkDevice); !ok {
			continue
		}
		for _, p := range d.GetPasses() {
			terms = append(terms,
				sym.NewTerm(-1, FlowRef{p.Fl, "massFF"}, StateRef{p.In, "h"}),
				sym.NewTerm(1, FlowRef{p.Fl, "massFF"}, StateRef{p.Out, "h"}))
		}
	}
	o.Pool.Add(sym.NewEquation("net specific power", terms, 0))

	// specific heat input and rejection over all heat device passes
	qin := []sym.Term{sym.NewTerm(1, CycleRef{o, "sQIn"})}
	qout := []sym.Term{sym.NewTerm(1, CycleRef{o, "sQOut"})}
	for _, d := range o.Devices() {
		hd, ok := d.(*HeatDevice)
		if !ok {
			continue
		}
		for _, p := range hd.GetPasses() {
			if hd.Rejects {
				qout = append(qout,
					sym.NewTerm(-1, FlowRef{p.Fl, "massFF"}, StateRef{p.In, "h"}),
					sym.NewTerm(1, FlowRef{p.Fl, "massFF"}, StateRef{p.Out, "h"}))
			} else {
				qin = append(qin,
					sym.NewTerm(1, FlowRef{p.Fl, "massFF"}, StateRef{p.In, "h"}),
					sym.NewTerm(-1, FlowRef{p.Fl, "massFF"}, StateRef{p.Out, "h"}))
			}
		}
	}
	o.Pool.Add(sym.NewEquation("specific heat input", qin, 0))
	o.Pool.Add(sym.NewEquation("specific heat rejection", qout, 0))

	// absolute aggregates through the main flow's mass rate
	o.Pool.Add(sym.NewEquation("power balance", []sym.Term{
		sym.NewTerm(1, CycleRef{o, "netPower"}),
		sym.NewTerm(-1, FlowRef{main, "massFR"}, CycleRef{o, "sPower"}),
	}, 0))
	o.Pool.Add(sym.NewEquation("heat input balance", []sym.Term{
		sym.NewTerm(1, CycleRef{o, "qIn"}),
		sym.NewTerm(-1, FlowRef{main, "massFR"}, CycleRef{o, "sQIn"}),
	}, 0))
	o.Pool.Add(sym.NewEquation("heat rejection balance", []sym.Term{
		sym.NewTerm(1, CycleRef{o, "qOut"}),
		sym.NewTerm(-1, FlowRef{main, "massFR"}, CycleRef{o, "sQOut"}),
	}, 0))

	// each flow's absolute rate follows the main flow's
	for _, fl := range o.Flows {
		if fl == main {
			continue
		}
		o.Pool.Add(sym.NewEquation("mass rate of "+fl.Name, []sym.Term{
			sym.NewTerm(1, FlowRef{fl, "massFR"}),
			sym.NewTerm(-1, FlowRef{fl, "massFF"}, FlowRef{main, "massFR"}),
		}, 0))
	}

	// a given figure of merit ties power to heat
	if !math.IsNaN(o.Eta) {
		o.Pool.Add(sym.NewEquation("thermal efficiency", []sym.Term{
			sym.NewTerm(1, CycleRef{o, "sPower"}),
			sym.NewTerm(-o.Eta, CycleRef{o, "sQIn"}),
		}, 0))
	}
	if !math.IsNaN(o.COP) {
		o.Pool.Add(sym.NewEquation("coefficient of performance", []sym.Term{
			sym.NewTerm(1, CycleRef{o, "sQIn"}),
			sym.NewTerm(o.COP, CycleRef{o, "sPower"}),
		}, 0))
	}
	return nil
}

// score measures how much is known about the whole cycle
func (o *Cycle) score() (n int) {
	for _, fl := range o.Flows {
		n += fl.score()
		if !math.IsNaN(fl.MassFF) {
			n++
		}
		if !math.IsNaN(fl.MassFR) {
			n++
		}
	}
	for _, v := range []float64{o.SPower, o.SQIn, o.SQOut, o.NetPower, o.QIn, o.QOut} {
		if !math.IsNaN(v) {
			n++
		}
	}
	return
}

// Solve drives the cycle to its fixed point: each flow to its local fixed
// point, the cross-flow and aggregate relations into the pool, then drain
// until a full sweep adds nothing. Residual undefined states mean an
// under-specified problem, not an error.
func (o *Cycle) Solve() error {
	for {
		before := o.score()
		for _, fl := range o.Flows {
			if _, err := fl.Solve(&o.Pool); err != nil {
				return err
			}
		}
		if !o.eqsDone {
			o.massBalances()
			if err := o.aggregates(); err != nil {
				return err
			}
			o.eqsDone = true
		}
		nsolved, err := o.Pool.Drain()
		if err != nil {
			return err
		}
		if o.score() == before && nsolved == 0 {
			break
		}
	}
	o.finalize()
	return nil
}

// finalize derives the figures of merit from the aggregates: thermal
// efficiency when the cycle produces power, coefficient of performance
// when it consumes power to move heat
func (o *Cycle) finalize() {
	if math.IsNaN(o.SPower) || math.IsNaN(o.SQIn) {
		return
	}
	if o.SPower >= 0 {
		if math.IsNaN(o.Eta) && o.SQIn != 0 {
			o.Eta = o.SPower / o.SQIn
		}
		return
	}
	if math.IsNaN(o.COP) && o.SPower != 0 {
		o.COP = o.SQIn / -o.SPower
	}
}
