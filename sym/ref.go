// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements linear relations over unknown references: mutable
// scalar fields addressed by location rather than by value. Equations fold
// references into constants as values become known, solve themselves when a
// single unknown remains and combine into small dense systems otherwise.
package sym

// Ref identifies one mutable scalar field on some object: a location, not a
// value. Implementations MUST be comparable values (e.g. a small struct of
// owner pointer and field key) because equations compare unknowns with ==;
// two refs addressing the same field must compare equal.
type Ref interface {
	Value() (float64, bool) // current value and whether it is numeric
	Set(val float64)        // writes a solved value to the field
}

// Var is a standalone unknown backed by its own storage; handy where no
// domain object owns the value (and in tests)
type Var struct {
	Name string // label
	val  float64
	ok   bool
}

// NewVar returns a new undefined variable
func NewVar(name string) *Var {
	return &Var{Name: name}
}

// NewVarVal returns a new variable holding the given value
func NewVarVal(name string, val float64) *Var {
	return &Var{Name: name, val: val, ok: true}
}

// Value returns the current value and whether it is set
func (o *Var) Value() (float64, bool) { return o.val, o.ok }

// Set sets the value
func (o *Var) Set(val float64) { o.val, o.ok = val, true }
