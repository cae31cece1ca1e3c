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

// Flow is an ordered sequence of states and devices carrying one stream of
// working fluid at a constant mass flow. The sequence alternates states and
// devices and starts and ends with a state; a closed loop repeats its first
// state object at the end. Streams that split or merge are modelled as
// separate flows sharing the junction state and, when the junction is a
// device, the device object itself.
type Flow struct {

	// definition
	Name  string        // flow label
	Fluid *prop.Fluid   // working fluid
	Items []interface{} // alternating *prop.State and Device

	// mass flow
	MassFF float64 // mass flow fraction relative to the main flow (NaN when unknown)
	MassFR float64 // absolute mass flow rate [kg/s] (NaN when unknown)

	// derived
	registered bool // device passes already registered
}

// NewFlow returns a flow with unknown mass flow
func NewFlow(name string, fluid *prop.Fluid) *Flow {
	return &Flow{Name: name, Fluid: fluid, MassFF: math.NaN(), MassFR: math.NaN()}
}

// Push appends items to the flow sequence. Items must be *prop.State or
// Device values; anything else panics.
func (o *Flow) Push(items ...interface{}) *Flow {
	for _, it := range items {
		switch it.(type) {
		case *prop.State, Device:
		default:
			chk.Panic("flow %q: item of type %T is neither a state nor a device", o.Name, it)
		}
		o.Items = append(o.Items, it)
	}
	return o
}

// Check verifies the item sequence: non-empty, alternating states and
// devices, a state at either end
func (o *Flow) Check() error {
	if len(o.Items) == 0 {
		return chk.Err("flow %q: empty item sequence", o.Name)
	}
	for i, it := range o.Items {
		_, isState := it.(*prop.State)
		if isState != (i%2 == 0) {
			return chk.Err("flow %q: items must alternate states and devices (item %d)", o.Name, i)
		}
	}
	if len(o.Items)%2 == 0 {
		return chk.Err("flow %q: sequence must end with a state", o.Name)
	}
	return nil
}

// First returns the first state of the sequence
func (o *Flow) First() *prop.State { return o.Items[0].(*prop.State) }

// Last returns the last state of the sequence
func (o *Flow) Last() *prop.State { return o.Items[len(o.Items)-1].(*prop.State) }

// States returns the distinct states of the sequence, in order
func (o *Flow) States() (ss []*prop.State) {
	seen := make(map[*prop.State]bool)
	for _, it := range o.Items {
		if s, ok := it.(*prop.State); ok && !seen[s] {
			seen[s] = true
			ss = append(ss, s)
		}
	}
	return
}

// Devices returns the distinct devices of the sequence, in order
func (o *Flow) Devices() (ds []Device) {
	seen := make(map[Device]bool)
	for _, it := range o.Items {
		if d, ok := it.(Device); ok && !seen[d] {
			seen[d] = true
			ds = append(ds, d)
		}
	}
	return
}

// register checks the sequence and hands every device its pass through
// this flow. Safe to call repeatedly; passes are registered once.
func (o *Flow) register() error {
	if o.registered {
		return nil
	}
	if err := o.Check(); err != nil {
		return err
	}
	for i, it := range o.Items {
		if d, ok := it.(Device); ok {
			d.AddPass(o, o.Items[i-1].(*prop.State), o.Items[i+1].(*prop.State))
		}
	}
	o.registered = true
	return nil
}

// score measures how much is known about the flow's states; it can only
// grow during solving, which makes it a safe fixed-point criterion
func (o *Flow) score() (n int) {
	for _, s := range o.States() {
		n += s.NumDefined()
		if s.Defined("x") {
			n++
		}
	}
	return
}

// resolve attempts to define every definable, not yet fully defined state.
// States whose properties fall outside the table stay undefined for now;
// any other resolution failure is returned.
func (o *Flow) resolve() (ndef int, err error) {
	for _, s := range o.States() {
		if s.FullyDefined() || !s.Definable() {
			continue
		}
		if _, err = o.Fluid.Define(s); err != nil {
			if prop.KindOf(err) == prop.ErrNeedsExtrapolation {
				err = nil
				continue
			}
			return 0, chk.Err("flow %q: %v", o.Name, err)
		}
		if s.FullyDefined() {
			ndef++
		}
	}
	return
}

// Solve drives the flow to its local fixed point: resolve definable
// states and apply device relations until one full pass adds nothing,
// then drain the equation pool. It returns the number of states defined
// during the call.
func (o *Flow) Solve(pool *sym.Pool) (ndef int, err error) {
	if err = o.register(); err != nil {
		return
	}
	for {
		before := o.score()
		n, err := o.resolve()
		if err != nil {
			return ndef, err
		}
		ndef += n
		for _, d := range o.Devices() {
			if err := d.Setup(pool); err != nil {
				return ndef, err
			}
		}
		n, err = o.resolve()
		if err != nil {
			return ndef, err
		}
		ndef += n
		if o.score() == before {
			break
		}
	}
	if _, err = pool.Drain(); err != nil {
		return
	}
	return
}
