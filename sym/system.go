// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// SolveSystem attempts to solve a set of equations as one dense linear
// system and, on success, writes every resulting value back to its unknown
// reference. The set is solvable iff the number of equations equals the
// number of distinct unknowns, every equation covers exactly the same
// unknown set, and the coefficient matrix has full rank; otherwise ok is
// false and nothing is written. A term carrying a product of two unknowns
// makes the candidate system nonlinear: that is an error, not a skip.
func SolveSystem(eqs []*Equation) (ok bool, err error) {
	for _, eq := range eqs {
		eq.Update()
	}

	// all equations must share the same unknown set, as large as the set
	unknowns := eqs[0].Unknowns()
	n := len(unknowns)
	if n != len(eqs) {
		return false, nil
	}
	index := make(map[Ref]int, n)
	for i, ref := range unknowns {
		index[ref] = i
	}
	for _, eq := range eqs {
		refs := eq.Unknowns()
		if len(refs) != n {
			return false, nil
		}
		for _, ref := range refs {
			if _, found := index[ref]; !found {
				return false, nil
			}
		}
	}
	for _, eq := range eqs {
		if !eq.Linear() {
			return false, chk.Err("sym: equation %q has a product of two unknowns; cannot solve as a linear system", eq.Label)
		}
	}

	// assemble and invert the coefficient matrix
	A := la.MatAlloc(n, n)
	b := make([]float64, n)
	for i, eq := range eqs {
		for _, t := range eq.Terms {
			A[i][index[t.Refs[0]]] += t.Coef
		}
		b[i] = eq.RHS
	}
	Ai := la.MatAlloc(n, n)
	_, err = la.MatInv(Ai, A, 1e-12)
	if err != nil {
		// rank-deficient: unsolvable, not an error of the pool
		return false, nil
	}

	// write results back
	x := make([]float64, n)
	la.MatVecMul(x, 1, Ai, b)
	for i, ref := range unknowns {
		ref.Set(x[i])
	}
	return true, nil
}
