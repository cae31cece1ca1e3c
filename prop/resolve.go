// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"
)

// Resolve fully defines a partially specified pure-substance state in place
// by classifying its phase and looking it up on / interpolating over the
// reference table. Newly interpolated saturation rows are appended to the
// table. Fails with NotDefinable if too few properties are known.
func Resolve(s *State, tab *Table) (*State, error) {
	if !s.Definable() {
		return nil, newErr(ErrNotDefinable, "state %v needs at least 2 independent intensive properties (or quality plus 1)", s)
	}
	if s.FullyDefined() {
		return s, nil
	}
	err := classify(s, tab)
	if err != nil {
		return nil, err
	}
	switch s.Phase {
	case PhaseMixture:
		err = resolveMixture(s, tab)
	default:
		err = resolveSinglePhase(s, tab)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// classify determines the phase of the state, setting s.Phase (and the
// quality sentinel for single-phase states). Decision order follows the
// availability of quality, then P and T, then one of P/T plus another
// property.
func classify(s *State, tab *Table) error {

	// quality already known: phase is immediate
	if s.Defined("x") {
		if s.Phase == PhaseUnknown {
			return newErr(ErrDataConsistency, "state %v carries quality %g which is neither in [0,1] nor a phase tag", s, s.X)
		}
		return nil
	}

	pKnown, tKnown := s.Defined("P"), s.Defined("T")

	// both P and T known: compare T against the saturation temperature
	if pKnown && tKnown {
		Tsat, err := SatTatP(tab, s.P)
		if err != nil {
			return err
		}
		switch {
		case s.T == Tsat:
			s.Phase = PhaseMixture // quality to be computed
		case s.T > Tsat:
			s.SetPhase(PhaseSuperheated)
		default:
			s.SetPhase(PhaseSubcooled)
		}
		return nil
	}

	// one of P/T known: bracket with the saturation endpoints and test the
	// other known properties against them
	if pKnown || tKnown {
		crit, err := tab.Critical()
		if err != nil {
			return err
		}
		if (pKnown && s.P > crit.P) || (tKnown && s.T > crit.T) {
			// no saturation curve beyond the critical point
			s.SetPhase(PhaseSuperheated)
			return nil
		}
		liq, vap, err := SatPair(tab, s.P, s.T)
		if err != nil {
			return err
		}
		return classifyAgainstDome(s, liq, vap)
	}

	return newErr(ErrFeatureNotAvail, "state definition without either P or T")
}

// classifyAgainstDome classifies the state by testing every known
// non-reference property against the saturation bracket [liquid, vapour].
// All properties must agree on the classification.
func classifyAgainstDome(s *State, liq, vap *State) error {
	var keys []string
	for _, key := range s.DefinedKeys() {
		if key != "P" && key != "T" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return newErr(ErrNotDefinable, "state %v has only P or T known; cannot locate it relative to the saturation dome", s)
	}
	phaseOf := func(key string) Phase {
		val := s.Get(key)
		switch {
		case val < liq.Get(key):
			return PhaseSubcooled
		case val > vap.Get(key):
			return PhaseSuperheated
		}
		return PhaseMixture
	}
	phase := phaseOf(keys[0])
	for _, key := range keys[1:] {
		if phaseOf(key) != phase {
			return newErr(ErrDataConsistency, "state %v: property %q suggests %v but %q suggests %v", s, keys[0], phase, key, phaseOf(key))
		}
	}
	if phase == PhaseMixture {
		key := keys[0]
		s.Set("x", (s.Get(key)-liq.Get(key))/(vap.Get(key)-liq.Get(key)))
	} else {
		s.SetPhase(phase)
	}
	return nil
}

// resolveMixture fills in a saturated-mixture state from the saturation
// endpoints at its pressure or temperature
func resolveMixture(s *State, tab *Table) error {
	if !s.Defined("P") && !s.Defined("T") {
		return newErr(ErrFeatureNotAvail, "saturated state definition with properties other than P / T")
	}
	liq, vap, err := SatPair(tab, s.P, s.T)
	if err != nil {
		return err
	}
	if !s.Defined("x") {
		return classifyAgainstDome(s, liq, vap) // computes the quality
	}
	switch s.X {
	case 0:
		s.CopyFrom(liq)
	case 1:
		s.CopyFrom(vap)
	default:
		s.CopyFrom(InterpTwo(liq, vap, "x", s.X))
	}
	return nil
}

// resolveSinglePhase fills in a superheated or subcooled state from the
// matching phase subset of the table: exact match first, then 1-D
// interpolation along the reference property with the smallest bracketing
// gap, then bilinear (double) interpolation, then the incompressible-liquid
// fallback for subcooled states
func resolveSinglePhase(s *State, tab *Table) error {
	sub := tab.Subset(s.Phase)
	keys := s.DefinedKeys()
	k1, k2 := keys[0], keys[1] // two most-preferred known properties
	v1, v2 := s.Get(k1), s.Get(k2)

	// exact match
	rows := sub.Match(map[string]float64{k1: v1, k2: v2})
	switch {
	case len(rows) == 1:
		s.CopyFrom(rows[0])
		return nil
	case len(rows) > 1:
		return newErr(ErrDataConsistency, "table %q has %d rows matching %s=%g and %s=%g exactly", tab.Name, len(rows), k1, v1, k2, v2)
	}

	// 1-D interpolation check: hold one reference property constant and
	// bracket the other; pick the constant property giving the smallest gap
	type cand1d struct {
		fixKey, runKey string
		below, above   float64
	}
	var best *cand1d
	bestGap := math.Inf(1)
	refs := [2][2]string{{k1, k2}, {k2, k1}}
	for _, pair := range refs {
		fixKey, runKey := pair[0], pair[1]
		at := NewTable(sub.Name, sub.Equal(fixKey, s.Get(fixKey))...)
		if len(at.Rows) < 2 {
			continue
		}
		below, above, err := Surrounding(at.DistinctSorted(runKey), s.Get(runKey))
		if err != nil {
			continue // not bracketable along this axis
		}
		if gap := above - below; gap < bestGap {
			bestGap = gap
			best = &cand1d{fixKey, runKey, below, above}
		}
	}
	if best != nil {
		get := func(runVal float64) ([]*State, error) {
			r := sub.Match(map[string]float64{best.fixKey: s.Get(best.fixKey), best.runKey: runVal})
			if len(r) != 1 {
				return nil, newErr(ErrDataConsistency, "table %q has %d rows at %s=%g, %s=%g; expected one", tab.Name, len(r), best.fixKey, s.Get(best.fixKey), best.runKey, runVal)
			}
			return r, nil
		}
		rBelow, err := get(best.below)
		if err != nil {
			return err
		}
		rAbove, err := get(best.above)
		if err != nil {
			return err
		}
		s.CopyFrom(InterpTwo(rBelow[0], rAbove[0], best.runKey, s.Get(best.runKey)))
		return nil
	}

	// double interpolation over the (k1, k2) plane
	done, err := resolveBilinear(s, sub, k1, k2)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	// sanctioned fallback: incompressible-liquid approximation
	if s.Phase == PhaseSubcooled && s.Defined("P") && s.Defined("T") {
		return subcooledApprox(s, tab)
	}
	return newErr(ErrNeedsExtrapolation, "no %v rows bracketing %s=%g and %s=%g in table %q", s.Phase, k1, v1, k2, v2, tab.Name)
}

// resolveBilinear performs the 2-D interpolation: treat (kx, ky) as a plane,
// find on each side of the query x a value of x whose available y-values
// bracket the query y, choose the pair minimising the normalised diagonal of
// the bounding rectangle, and interpolate along y at both x-values, then
// along x. Returns done=false when no bracketing rectangle exists.
func resolveBilinear(s *State, sub *Table, kx, ky string) (done bool, err error) {
	xq, yq := s.Get(kx), s.Get(ky)
	xs := sub.DistinctSorted(kx)
	ys := sub.DistinctSorted(ky)
	if len(xs) < 2 || len(ys) < 2 {
		return false, nil
	}
	xspan, yspan := xs[len(xs)-1]-xs[0], ys[len(ys)-1]-ys[0]

	// candidate = an x-value whose available y-values bracket yq
	type cand struct {
		x, ylo, yhi float64
	}
	collect := func(side []float64) (cs []cand) {
		for _, x := range side {
			at := NewTable(sub.Name, sub.Equal(kx, x)...)
			ylo, yhi, e := Surrounding(at.DistinctSorted(ky), yq)
			if e != nil {
				continue
			}
			cs = append(cs, cand{x, ylo, yhi})
		}
		return
	}
	var lower, upper []float64
	for _, x := range xs {
		if x < xq {
			lower = append(lower, x)
		} else if x > xq {
			upper = append(upper, x)
		}
	}
	below, above := collect(lower), collect(upper)
	if len(below) == 0 || len(above) == 0 {
		return false, nil
	}

	// choose the pair with the minimal bounding-rectangle diagonal,
	// normalised per axis by the table span; first found wins ties
	var pick [2]cand
	bestDiag := math.Inf(1)
	for _, cb := range below {
		for _, ca := range above {
			dx := (ca.x - cb.x) / xspan
			dy := (math.Max(cb.yhi, ca.yhi) - math.Min(cb.ylo, ca.ylo)) / yspan
			if diag := dx*dx + dy*dy; diag < bestDiag {
				bestDiag = diag
				pick = [2]cand{cb, ca}
			}
		}
	}

	interpAtX := func(c cand) (*State, error) {
		get := func(y float64) (*State, error) {
			r := sub.Match(map[string]float64{kx: c.x, ky: y})
			if len(r) != 1 {
				return nil, newErr(ErrDataConsistency, "table %q has %d rows at %s=%g, %s=%g; expected one", sub.Name, len(r), kx, c.x, ky, y)
			}
			return r[0], nil
		}
		lo, err := get(c.ylo)
		if err != nil {
			return nil, err
		}
		hi, err := get(c.yhi)
		if err != nil {
			return nil, err
		}
		return InterpTwo(lo, hi, ky, yq), nil
	}
	sb, err := interpAtX(pick[0])
	if err != nil {
		return false, err
	}
	sa, err := interpAtX(pick[1])
	if err != nil {
		return false, err
	}
	s.CopyFrom(InterpTwo(sb, sa, kx, xq))
	return true, nil
}

// subcooledApprox applies the incompressible-liquid approximation: saturated
// liquid properties at the known temperature, with the query pressure and
// the enthalpy corrected by dh = v*(P - Psat)
func subcooledApprox(s *State, tab *Table) error {
	liq, _, err := SatPair(tab, math.NaN(), s.T)
	if err != nil {
		return err
	}
	P, T := s.P, s.T
	s.CopyFrom(liq)
	s.P = P
	s.T = T
	s.H = liq.H + liq.V*(P-liq.P)
	s.SetPhase(PhaseSubcooled)
	return nil
}
