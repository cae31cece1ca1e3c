// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyc

import (
	"github.com/cpmech/gosl/chk"

	"github.com/canunlusoy/gotherm/prop"
	"github.com/canunlusoy/gotherm/sym"
)

// tolerance for cross-checking values set by more than one relation [%]
const devtol = 3.0

// Pass records one traversal of a device by a flow: the state entering
// through this flow and the state leaving through it. A device shared by
// several flows (an extracting turbine, a mixing chamber) carries one
// pass per flow, possibly sharing end states between passes.
type Pass struct {
	Fl  *Flow       // traversing flow
	In  *prop.State // state immediately before the device
	Out *prop.State // state immediately after the device
}

// Device is one component of a flow: it links its neighbouring states by
// physical relations. Setup applies those relations; it must be idempotent
// because the orchestrator calls it on every sweep.
type Device interface {

	// Name returns the device label
	Name() string

	// AddPass registers one traversal by a flow
	AddPass(fl *Flow, in, out *prop.State)

	// GetPasses returns all registered traversals
	GetPasses() []Pass

	// Setup applies the device's direct relations to its neighbouring
	// states and registers its symbolic relations with the pool. It is
	// called on every sweep: direct relations are re-applied (they are
	// idempotent), symbolic ones registered only on the first call.
	Setup(pool *sym.Pool) error
}

// devbase holds what all devices share
type devbase struct {
	Label   string // device label
	Passes  []Pass // traversals, in registration order
	eqsDone bool   // symbolic relations already registered
}

// once reports whether symbolic relations still need registering; it
// flips to false after the first call so shared devices register their
// equations exactly once even when several flows set them up
func (o *devbase) once() bool {
	if o.eqsDone {
		return false
	}
	o.eqsDone = true
	return true
}

// Name returns the device label
func (o *devbase) Name() string { return o.Label }

// AddPass registers one traversal by a flow
func (o *devbase) AddPass(fl *Flow, in, out *prop.State) {
	if in == nil || out == nil {
		chk.Panic("device %q: pass needs a state on either side", o.Label)
	}
	o.Passes = append(o.Passes, Pass{Fl: fl, In: in, Out: out})
}

// GetPasses returns all registered traversals
func (o *devbase) GetPasses() []Pass { return o.Passes }

// endStates returns the states at the device boundary, without repeats
func (o *devbase) endStates() (ss []*prop.State) {
	seen := make(map[*prop.State]bool)
	for _, p := range o.Passes {
		for _, s := range []*prop.State{p.In, p.Out} {
			if !seen[s] {
				seen[s] = true
				ss = append(ss, s)
			}
		}
	}
	return
}

// energyBalance registers the steady-state energy balance over the
// device: the enthalpy carried in by all passes equals the enthalpy
// carried out, each pass weighted by its flow's mass fraction
func (o *devbase) energyBalance(pool *sym.Pool) {
	var terms []sym.Term
	for _, p := range o.Passes {
		terms = append(terms,
			sym.NewTerm(1, FlowRef{p.Fl, "massFF"}, StateRef{p.In, "h"}),
			sym.NewTerm(-1, FlowRef{p.Fl, "massFF"}, StateRef{p.Out, "h"}))
	}
	pool.Add(sym.NewEquation(o.Label+": energy balance", terms, 0))
}

// constantPressure propagates pressure along each pass, verifying when
// both ends already carry one
func (o *devbase) constantPressure() error {
	for _, p := range o.Passes {
		if err := copyOrVerify(p.In, p.Out, "P"); err != nil {
			return chk.Err("%s: %v", o.Label, err)
		}
	}
	return nil
}

// copyOrVerify makes key agree between the two states, copying it to
// whichever side lacks it
func copyOrVerify(a, b *prop.State, key string) error {
	switch {
	case a.Defined(key) && !b.Defined(key):
		return b.SetOrVerify(key, a.Get(key), devtol)
	case a.Defined(key):
		return a.SetOrVerify(key, b.Get(key), devtol)
	case b.Defined(key):
		return a.SetOrVerify(key, b.Get(key), devtol)
	}
	return nil
}
