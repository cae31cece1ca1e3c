// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyc

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/canunlusoy/gotherm/sym"
)

// MixingChamber mixes several incoming flows into one stream at a common
// pressure. Each incoming flow carries a pass from its own last state to
// the shared outlet state. An open feedwater heater is a mixing chamber.
type MixingChamber struct {
	devbase
}

// NewMixingChamber returns a mixing chamber
func NewMixingChamber(label string) *MixingChamber {
	return &MixingChamber{devbase: devbase{Label: label}}
}

// NewOpenFWHeater returns an open feedwater heater
func NewOpenFWHeater(label string) *MixingChamber {
	return &MixingChamber{devbase: devbase{Label: label}}
}

// Setup enforces the common mixing pressure and registers the energy
// balance over the chamber
func (o *MixingChamber) Setup(pool *sym.Pool) error {
	if o.once() {
		o.energyBalance(pool)
	}
	pmix := math.NaN()
	ends := o.endStates()
	for _, s := range ends {
		if s.Defined("P") {
			pmix = s.P
			break
		}
	}
	if !math.IsNaN(pmix) {
		for _, s := range ends {
			if err := s.SetOrVerify("P", pmix, devtol); err != nil {
				return chk.Err("%s: %v", o.Label, err)
			}
		}
	}
	return nil
}

// HeatExchanger transfers heat between the flows passing through it
// without mixing them. A closed feedwater heater is a heat exchanger.
type HeatExchanger struct {
	devbase
}

// NewHeatExchanger returns a heat exchanger
func NewHeatExchanger(label string) *HeatExchanger {
	return &HeatExchanger{devbase: devbase{Label: label}}
}

// NewClosedFWHeater returns a closed feedwater heater
func NewClosedFWHeater(label string) *HeatExchanger {
	return &HeatExchanger{devbase: devbase{Label: label}}
}

// Setup carries pressure through each line and registers the energy
// balance: the heat given up by the cooling lines equals the heat taken
// by the heated ones
func (o *HeatExchanger) Setup(pool *sym.Pool) error {
	if o.once() {
		o.energyBalance(pool)
	}
	return o.constantPressure()
}

// Regenerator preheats the cold line of a flow with its own hot line. The
// first registered pass is the heated (cold) line, the second the cooled
// (hot) one; both carry the same mass so the effectiveness relation and
// the energy balance are linear in the four enthalpies.
type Regenerator struct {
	devbase
	Effectiveness float64 // actual over maximum heat transfer
}

// NewRegenerator returns a regenerator with the given effectiveness
func NewRegenerator(label string, effectiveness float64) *Regenerator {
	return &Regenerator{devbase: devbase{Label: label}, Effectiveness: effectiveness}
}

// Setup registers the effectiveness relation and the energy balance
// between the two lines
func (o *Regenerator) Setup(pool *sym.Pool) error {
	if o.once() {
		if len(o.Passes) != 2 {
			return chk.Err("%s: needs exactly two passes (cold line then hot line)", o.Label)
		}
		cold, hot := o.Passes[0], o.Passes[1]

		// h_coldOut - h_coldIn = eff (h_hotIn - h_coldIn)
		pool.Add(sym.NewEquation(o.Label+": effectiveness", []sym.Term{
			sym.NewTerm(1, StateRef{cold.Out, "h"}),
			sym.NewTerm(o.Effectiveness-1, StateRef{cold.In, "h"}),
			sym.NewTerm(-o.Effectiveness, StateRef{hot.In, "h"}),
		}, 0))

		// h_coldOut - h_coldIn = h_hotIn - h_hotOut
		pool.Add(sym.NewEquation(o.Label+": energy balance", []sym.Term{
			sym.NewTerm(1, StateRef{cold.Out, "h"}),
			sym.NewTerm(-1, StateRef{cold.In, "h"}),
			sym.NewTerm(1, StateRef{hot.Out, "h"}),
			sym.NewTerm(-1, StateRef{hot.In, "h"}),
		}, 0))
	}
	return o.constantPressure()
}

// Trap throttles condensate to a lower pressure at constant enthalpy
type Trap struct {
	devbase
}

// NewTrap returns a trap
func NewTrap(label string) *Trap { return &Trap{devbase: devbase{Label: label}} }

// Setup carries enthalpy through the throttling
func (o *Trap) Setup(pool *sym.Pool) error {
	for _, p := range o.Passes {
		if err := copyOrVerify(p.In, p.Out, "h"); err != nil {
			return chk.Err("%s: %v", o.Label, err)
		}
	}
	return nil
}
