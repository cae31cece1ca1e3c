// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cyc models flows of a working fluid through devices and drives
// networks of them (cycles) to a numeric fixed point by alternating property
// resolution with linear-relation solving
package cyc

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/canunlusoy/gotherm/prop"
)

// StateRef addresses one property of a state as a sym.Ref. It is a
// comparable value (pointer + key) so reference identity is ==.
type StateRef struct {
	St  *prop.State // owning state
	Key string      // property key
}

// Value returns the property value and whether it is numeric
func (o StateRef) Value() (float64, bool) {
	v := o.St.Get(o.Key)
	return v, !math.IsNaN(v)
}

// Set writes the solved value to the property
func (o StateRef) Set(val float64) { o.St.Set(o.Key, val) }

// String returns a printable form
func (o StateRef) String() string { return io.Sf("state(%p).%s", o.St, o.Key) }

// FlowRef addresses one scalar field of a flow as a sym.Ref
type FlowRef struct {
	Fl  *Flow  // owning flow
	Key string // "massFF" or "massFR"
}

// Value returns the field value and whether it is numeric
func (o FlowRef) Value() (float64, bool) {
	var v float64
	switch o.Key {
	case "massFF":
		v = o.Fl.MassFF
	case "massFR":
		v = o.Fl.MassFR
	}
	return v, !math.IsNaN(v)
}

// Set writes the solved value to the field
func (o FlowRef) Set(val float64) {
	switch o.Key {
	case "massFF":
		o.Fl.MassFF = val
	case "massFR":
		o.Fl.MassFR = val
	}
}

// String returns a printable form
func (o FlowRef) String() string { return io.Sf("flow(%s).%s", o.Fl.Name, o.Key) }

// CycleRef addresses one aggregate scalar of a cycle as a sym.Ref.
// Keys: "netPower", "qIn", "qOut" (absolute, [kW]) and "sPower", "sQIn",
// "sQOut" (specific, per unit mass of the main flow, [kJ/kg]).
type CycleRef struct {
	Cy  *Cycle // owning cycle
	Key string // aggregate key
}

// Value returns the aggregate value and whether it is numeric
func (o CycleRef) Value() (float64, bool) {
	var v float64
	switch o.Key {
	case "netPower":
		v = o.Cy.NetPower
	case "qIn":
		v = o.Cy.QIn
	case "qOut":
		v = o.Cy.QOut
	case "sPower":
		v = o.Cy.SPower
	case "sQIn":
		v = o.Cy.SQIn
	case "sQOut":
		v = o.Cy.SQOut
	}
	return v, !math.IsNaN(v)
}

// Set writes the solved value to the aggregate
func (o CycleRef) Set(val float64) {
	switch o.Key {
	case "netPower":
		o.Cy.NetPower = val
	case "qIn":
		o.Cy.QIn = val
	case "qOut":
		o.Cy.QOut = val
	case "sPower":
		o.Cy.SPower = val
	case "sQIn":
		o.Cy.SQIn = val
	case "sQOut":
		o.Cy.SQOut = val
	}
}

// String returns a printable form
func (o CycleRef) String() string { return io.Sf("cycle.%s", o.Key) }
