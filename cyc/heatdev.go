// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyc

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/canunlusoy/gotherm/sym"
)

// HeatDevice is a constant-pressure heat addition or rejection device:
// boiler, reheat boiler, condenser, combustor, intercooler, gas reheater
// or exhaust. Pressure is carried through each pass unchanged.
type HeatDevice struct {
	devbase
	Rejects    bool    // rejects heat from the flow (condenser, intercooler, exhaust)
	InferExitT bool    // all exit temperatures equal (reheat boiler, gas reheater)
	SHeat      float64 // specific heat supplied per pass [kJ/kg] (NaN when not set)
}

// NewBoiler returns a boiler
func NewBoiler(label string) *HeatDevice {
	return &HeatDevice{devbase: devbase{Label: label}, SHeat: math.NaN()}
}

// NewReheatBoiler returns a boiler whose reheat passes exit at the same
// temperature as the main pass
func NewReheatBoiler(label string) *HeatDevice {
	return &HeatDevice{devbase: devbase{Label: label}, InferExitT: true, SHeat: math.NaN()}
}

// NewCondenser returns a condenser
func NewCondenser(label string) *HeatDevice {
	return &HeatDevice{devbase: devbase{Label: label}, Rejects: true, SHeat: math.NaN()}
}

// NewCombustor returns a gas-cycle combustion chamber. sHeat is the
// specific heat input per unit mass (NaN when unknown).
func NewCombustor(label string, sHeat float64) *HeatDevice {
	return &HeatDevice{devbase: devbase{Label: label}, SHeat: sHeat}
}

// NewIntercooler returns an intercooler between compression stages
func NewIntercooler(label string) *HeatDevice {
	return &HeatDevice{devbase: devbase{Label: label}, Rejects: true, SHeat: math.NaN()}
}

// NewGasReheater returns a reheat combustor between expansion stages
func NewGasReheater(label string) *HeatDevice {
	return &HeatDevice{devbase: devbase{Label: label}, InferExitT: true, SHeat: math.NaN()}
}

// NewExhaust returns the heat-rejecting exhaust closing an open gas cycle
func NewExhaust(label string) *HeatDevice {
	return &HeatDevice{devbase: devbase{Label: label}, Rejects: true, SHeat: math.NaN()}
}

// Setup carries pressure through each pass, ties exit temperatures when
// requested and registers the specific heat relation when one is given
func (o *HeatDevice) Setup(pool *sym.Pool) error {
	if o.once() && !math.IsNaN(o.SHeat) {
		for _, p := range o.Passes {
			pool.Add(sym.NewEquation(o.Label+": specific heat", []sym.Term{
				sym.NewTerm(1, StateRef{p.Out, "h"}),
				sym.NewTerm(-1, StateRef{p.In, "h"}),
			}, o.SHeat))
		}
	}
	if err := o.constantPressure(); err != nil {
		return err
	}
	if o.InferExitT {
		texit := math.NaN()
		for _, p := range o.Passes {
			if p.Out.Defined("T") {
				texit = p.Out.T
				break
			}
		}
		if !math.IsNaN(texit) {
			for _, p := range o.Passes {
				if err := p.Out.SetOrVerify("T", texit, devtol); err != nil {
					return chk.Err("%s: %v", o.Label, err)
				}
			}
		}
	}
	return nil
}
