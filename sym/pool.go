// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

// Pool is the registry of pending relations owned by an orchestrator.
// Relation-construction code adds equations; drain phases solve whatever has
// become determined and remove it. Pools stay small (tens of equations), so
// the combination search may try every subset.
type Pool struct {
	Eqs []*Equation // pending equations
}

// Add registers equations with the pool
func (o *Pool) Add(eqs ...*Equation) {
	o.Eqs = append(o.Eqs, eqs...)
}

// UpdateAll re-simplifies every pending equation
func (o *Pool) UpdateAll() {
	for _, eq := range o.Eqs {
		eq.Update()
	}
}

// SolveSingles repeatedly solves equations that are down to one unknown,
// writing values back, until no further equation is solvable on its own.
// Returns the number of equations solved.
func (o *Pool) SolveSingles() (nsolved int) {
	for {
		o.UpdateAll()
		progress := false
		kept := o.Eqs[:0]
		for _, eq := range o.Eqs {
			if eq.Solvable() {
				ref, val := eq.Solve()
				ref.Set(val)
				nsolved++
				progress = true
				continue
			}
			if len(eq.Terms) == 0 {
				// fully folded away; nothing left to solve
				continue
			}
			kept = append(kept, eq)
		}
		o.Eqs = kept
		if !progress {
			return
		}
	}
}

// SolveCombinations tries every subset of the given size for joint
// solvability as a linear system; solved subsets are removed. Returns the
// number of equations consumed.
func (o *Pool) SolveCombinations(size int) (nsolved int, err error) {
	for {
		hit := false
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		for len(o.Eqs) >= size {
			subset := make([]*Equation, size)
			for i, j := range idx {
				subset[i] = o.Eqs[j]
			}
			ok, e := SolveSystem(subset)
			if e != nil {
				return nsolved, e
			}
			if ok {
				o.remove(idx)
				nsolved += size
				hit = true
				break
			}
			if !nextCombination(idx, len(o.Eqs)) {
				break
			}
		}
		if !hit {
			return
		}
	}
}

// Drain alternates the solve phases (singles, then pairs, then triples)
// until a full round makes no progress. Returns the total number of
// equations solved.
func (o *Pool) Drain() (nsolved int, err error) {
	for {
		n := o.SolveSingles()
		for _, size := range []int{2, 3} {
			nc, e := o.SolveCombinations(size)
			if e != nil {
				return nsolved, e
			}
			n += nc
			n += o.SolveSingles()
		}
		nsolved += n
		if n == 0 {
			return
		}
	}
}

// remove deletes the equations at the given (ascending) indices
func (o *Pool) remove(idx []int) {
	drop := make(map[int]bool, len(idx))
	for _, i := range idx {
		drop[i] = true
	}
	kept := o.Eqs[:0]
	for i, eq := range o.Eqs {
		if !drop[i] {
			kept = append(kept, eq)
		}
	}
	o.Eqs = kept
}

// nextCombination advances idx to the next combination of len(idx) indices
// out of n, returning false when exhausted
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	for i := k - 1; i >= 0; i-- {
		if idx[i] < n-k+i {
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
			return true
		}
	}
	return false
}
