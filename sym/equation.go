// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Term is a product of a numeric coefficient and zero or more unknown
// references. A term whose references have all resolved is a constant and is
// folded into the equation's right-hand side, never retained.
type Term struct {
	Coef float64 // product of all numeric factors
	Refs []Ref   // remaining unknown references
}

// NewTerm builds a term from a coefficient and references, folding any
// reference whose value is already numeric into the coefficient. A reference
// appearing twice in one term makes the term quadratic; that is a usage
// error and panics.
func NewTerm(coef float64, refs ...Ref) (t Term) {
	t.Coef = coef
	for _, ref := range refs {
		for _, prev := range t.Refs {
			if prev == ref {
				chk.Panic("sym: unknown reference %v appears twice in one term; not a linear relation", ref)
			}
		}
		if val, ok := ref.Value(); ok {
			t.Coef *= val
			continue
		}
		t.Refs = append(t.Refs, ref)
	}
	return
}

// sameRefs tells whether two terms reduce to the identical set of unknown
// references
func sameRefs(a, b Term) bool {
	if len(a.Refs) != len(b.Refs) {
		return false
	}
	for _, ra := range a.Refs {
		found := false
		for _, rb := range b.Refs {
			if ra == rb {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Equation is one linear relation: a sum of terms on the left equal to a
// scalar on the right. Simplification is incremental: Update folds newly
// resolved references and keeps the terms merged.
type Equation struct {
	Label string  // identifies the relation in diagnostics
	Terms []Term  // left-hand side
	RHS   float64 // right-hand side
}

// NewEquation builds an equation from terms and a right-hand-side scalar and
// simplifies it
func NewEquation(label string, terms []Term, rhs float64) (o *Equation) {
	o = &Equation{Label: label, RHS: rhs}
	o.Terms = append(o.Terms, terms...)
	o.Update()
	return
}

// Update re-scans all terms: references that have since become numeric are
// folded into their term's coefficient, constant terms are folded into the
// right-hand side, and terms over the identical reference set are merged.
// Idempotent once no more references resolve.
func (o *Equation) Update() {

	// fold resolved references and constant terms
	kept := o.Terms[:0]
	for _, t := range o.Terms {
		refs := t.Refs[:0]
		for _, ref := range t.Refs {
			if val, ok := ref.Value(); ok {
				t.Coef *= val
				continue
			}
			refs = append(refs, ref)
		}
		t.Refs = refs
		if len(t.Refs) == 0 {
			o.RHS -= t.Coef
			continue
		}
		if t.Coef == 0 {
			continue
		}
		kept = append(kept, t)
	}
	o.Terms = kept

	// merge terms with identical reference sets
	var merged []Term
	for _, t := range o.Terms {
		found := false
		for i := range merged {
			if sameRefs(merged[i], t) {
				merged[i].Coef += t.Coef
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, t)
		}
	}
	o.Terms = merged[:0]
	for _, t := range merged {
		if t.Coef != 0 {
			o.Terms = append(o.Terms, t)
		}
	}
}

// Unknowns returns the distinct unknown references across all terms
func (o *Equation) Unknowns() (refs []Ref) {
	for _, t := range o.Terms {
		for _, ref := range t.Refs {
			found := false
			for _, prev := range refs {
				if prev == ref {
					found = true
					break
				}
			}
			if !found {
				refs = append(refs, ref)
			}
		}
	}
	return
}

// Linear tells whether every term carries at most one unknown reference
// (no bilinear products remain)
func (o *Equation) Linear() bool {
	for _, t := range o.Terms {
		if len(t.Refs) > 1 {
			return false
		}
	}
	return true
}

// Solvable tells whether the equation has exactly one distinct unknown term
// with a single reference, i.e. can be solved on its own
func (o *Equation) Solvable() bool {
	return len(o.Terms) == 1 && len(o.Terms[0].Refs) == 1 && o.Terms[0].Coef != 0
}

// Solve returns the single remaining unknown and its value. Calling Solve on
// a non-solvable equation is a usage error and panics.
func (o *Equation) Solve() (Ref, float64) {
	if !o.Solvable() {
		chk.Panic("sym: equation %q with %d terms is not solvable", o.Label, len(o.Terms))
	}
	return o.Terms[0].Refs[0], o.RHS / o.Terms[0].Coef
}

// Expr is a linear expression: a sum of terms plus a constant. It is the
// result of isolating one unknown of an equation.
type Expr struct {
	Terms []Term  // scaled terms
	Const float64 // scalar part
}

// Isolate returns the expression equal to the target unknown: all other
// terms negated and the right-hand side retained, everything divided by the
// target's coefficient. The target must appear alone in one of the terms.
func (o *Equation) Isolate(target Ref) *Expr {
	coef := 0.0
	for _, t := range o.Terms {
		if len(t.Refs) == 1 && t.Refs[0] == target {
			coef = t.Coef
			break
		}
	}
	if coef == 0 {
		chk.Panic("sym: unknown %v is not a single-reference term of equation %q", target, o.Label)
	}
	res := &Expr{Const: o.RHS / coef}
	for _, t := range o.Terms {
		if len(t.Refs) == 1 && t.Refs[0] == target {
			continue
		}
		res.Terms = append(res.Terms, Term{Coef: -t.Coef / coef, Refs: append([]Ref{}, t.Refs...)})
	}
	return res
}

// String returns a printable form of the equation
func (o *Equation) String() (l string) {
	for i, t := range o.Terms {
		if i > 0 {
			l += " + "
		}
		l += io.Sf("%g", t.Coef)
		for _, ref := range t.Refs {
			l += io.Sf("*%v", ref)
		}
	}
	return io.Sf("%s: %s = %g", o.Label, l, o.RHS)
}
