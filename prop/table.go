// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"sort"
)

// Table is an ordered collection of fully-specified reference states for one
// substance. Resolution appends newly interpolated states so repeated queries
// at the same conditions are not recomputed; the table is therefore an
// append-only cache and is not safe for concurrent use.
type Table struct {

	// input
	Name string   // substance name
	Rows []*State // reference states

	// derived (lazy)
	sorted map[string][]float64 // distinct sorted values per key
	crit   *State               // critical point
}

// NewTable returns a new table holding the given rows
func NewTable(name string, rows ...*State) *Table {
	return &Table{Name: name, Rows: rows}
}

// Append adds a row and invalidates derived data
func (o *Table) Append(s *State) {
	o.Rows = append(o.Rows, s)
	o.sorted = nil
}

// Equal returns all rows whose property given by key equals val exactly
func (o *Table) Equal(key string, val float64) (res []*State) {
	for _, row := range o.Rows {
		if row.Defined(key) && row.Get(key) == val {
			res = append(res, row)
		}
	}
	return
}

// Match returns all rows satisfying every equality condition in conds
func (o *Table) Match(conds map[string]float64) (res []*State) {
	for _, row := range o.Rows {
		ok := true
		for key, val := range conds {
			if !row.Defined(key) || row.Get(key) != val {
				ok = false
				break
			}
		}
		if ok {
			res = append(res, row)
		}
	}
	return
}

// Subset returns a derived view holding only the rows of the given phase.
// The view shares row pointers with the parent; appends to the view do not
// propagate back.
func (o *Table) Subset(phase Phase) *Table {
	sub := NewTable(o.Name)
	for _, row := range o.Rows {
		if PhaseFromX(row.X) == phase {
			sub.Rows = append(sub.Rows, row)
		}
	}
	return sub
}

// Saturated returns the derived view with all saturated rows (0 ≤ x ≤ 1)
func (o *Table) Saturated() *Table {
	return o.Subset(PhaseMixture)
}

// DistinctSorted returns the distinct values of the property given by key
// over all rows where it is defined, in increasing order
func (o *Table) DistinctSorted(key string) []float64 {
	if o.sorted == nil {
		o.sorted = make(map[string][]float64)
	}
	if vals, ok := o.sorted[key]; ok {
		return vals
	}
	seen := make(map[float64]bool)
	var vals []float64
	for _, row := range o.Rows {
		if row.Defined(key) {
			if v := row.Get(key); !seen[v] {
				seen[v] = true
				vals = append(vals, v)
			}
		}
	}
	sort.Float64s(vals)
	o.sorted[key] = vals
	return vals
}

// Critical returns the critical point: the saturated row with the maximum
// temperature. Fails if the table has no saturated rows.
func (o *Table) Critical() (*State, error) {
	if o.crit != nil {
		return o.crit, nil
	}
	for _, row := range o.Saturated().Rows {
		if o.crit == nil || row.T > o.crit.T {
			o.crit = row
		}
	}
	if o.crit == nil {
		return nil, newErr(ErrDataConsistency, "table %q has no saturated rows to derive the critical point from", o.Name)
	}
	return o.crit, nil
}

// Fluid pairs a property table with the data needed to resolve states of
// one working fluid
type Fluid struct {
	Tab *Table  // property table
	R   float64 // gas constant [kJ/(kg·K)] (ideal gas only)
	Gas bool    // resolve with the ideal-gas path
}

// Define fully defines the given state in place, dispatching on the fluid
// kind, and returns it
func (o *Fluid) Define(s *State) (*State, error) {
	if o.Gas {
		return ResolveIGas(s, o)
	}
	return Resolve(s, o.Tab)
}
