// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_resolve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resolve01. saturated mixture from P and s")

	tab := waterTable()
	s := NewState(Pure, map[string]float64{"P": 6, "s": 6.4855})
	if _, err := Resolve(s, tab); err != nil {
		tst.Errorf("Resolve failed: %v", err)
		return
	}
	chk.Scalar(tst, "x", 1e-3, s.X, 0.7638)
	chk.Scalar(tst, "h", 0.03*1996.7, s.H, 1996.7)
	chk.Scalar(tst, "T", 1e-17, s.T, 36.16)
	if s.Phase != PhaseMixture {
		tst.Errorf("state must classify as mixture, got %v", s.Phase)
		return
	}
	if !s.FullyDefined() {
		tst.Errorf("state must be fully defined: %v", s)
	}
}

func Test_resolve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resolve02. saturated mixture from P and x")

	tab := waterTable()

	// endpoints copy the saturation rows
	liq := NewState(Pure, map[string]float64{"P": 1000, "x": 0})
	if _, err := Resolve(liq, tab); err != nil {
		tst.Errorf("Resolve failed: %v", err)
		return
	}
	chk.Scalar(tst, "hf", 1e-17, liq.H, 762.81)

	vap := NewState(Pure, map[string]float64{"P": 1000, "x": 1})
	if _, err := Resolve(vap, tab); err != nil {
		tst.Errorf("Resolve failed: %v", err)
		return
	}
	chk.Scalar(tst, "hg", 1e-17, vap.H, 2778.1)

	// interior qualities interpolate between them
	mix := NewState(Pure, map[string]float64{"P": 1000, "x": 0.5})
	if _, err := Resolve(mix, tab); err != nil {
		tst.Errorf("Resolve failed: %v", err)
		return
	}
	chk.Scalar(tst, "h mid", 1e-9, mix.H, 0.5*(762.81+2778.1))
	chk.Scalar(tst, "s mid", 1e-9, mix.S, 0.5*(2.1387+6.5865))
}

func Test_resolve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resolve03. superheated: exact row and 1-D interpolation")

	tab := waterTable()

	// exact table row
	s := NewState(Pure, map[string]float64{"P": 10000, "T": 500})
	if _, err := Resolve(s, tab); err != nil {
		tst.Errorf("Resolve failed: %v", err)
		return
	}
	chk.Scalar(tst, "h", 1e-17, s.H, 3373.7)
	chk.Scalar(tst, "s", 1e-17, s.S, 6.5966)
	if s.Phase != PhaseSuperheated {
		tst.Errorf("state must classify as superheated, got %v", s.Phase)
		return
	}

	// idempotence: resolving again changes nothing
	h, sv := s.H, s.S
	if _, err := Resolve(s, tab); err != nil {
		tst.Errorf("second Resolve failed: %v", err)
		return
	}
	chk.Scalar(tst, "h unchanged", 1e-17, s.H, h)
	chk.Scalar(tst, "s unchanged", 1e-17, s.S, sv)

	// 1-D interpolation along T at fixed P
	q := NewState(Pure, map[string]float64{"P": 1000, "T": 225})
	if _, err := Resolve(q, tab); err != nil {
		tst.Errorf("Resolve failed: %v", err)
		return
	}
	chk.Scalar(tst, "h interp", 1e-9, q.H, 0.5*(2827.9+2942.6))

	// 1-D interpolation along s at fixed P, crossing the saturated-vapour
	// row repeated in the superheated region
	r := NewState(Pure, map[string]float64{"P": 1000, "s": 6.5966})
	if _, err := Resolve(r, tab); err != nil {
		tst.Errorf("Resolve failed: %v", err)
		return
	}
	chk.Scalar(tst, "h from s", 0.1, r.H, 2782.8)
}

func Test_resolve04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resolve04. bilinear interpolation and bracket invariant")

	tab := waterTable()
	s := NewState(Pure, map[string]float64{"P": 2000, "T": 320})
	if _, err := Resolve(s, tab); err != nil {
		tst.Errorf("Resolve failed: %v", err)
		return
	}

	// at P=1000: T bracket (300, 500); at P=3000: T bracket (300, 350)
	h1000 := 3051.2 + (320.0-300.0)/(500.0-300.0)*(3478.5-3051.2)
	h3000 := 2993.5 + (320.0-300.0)/(350.0-300.0)*(3115.3-2993.5)
	want := h1000 + (2000.0-1000.0)/(3000.0-1000.0)*(h3000-h1000)
	chk.Scalar(tst, "h bilinear", 1e-10, s.H, want)
	if s.Phase != PhaseSuperheated {
		tst.Errorf("state must classify as superheated, got %v", s.Phase)
	}
}

func Test_resolve05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resolve05. subcooled liquid approximation")

	tab := waterTable()
	s := NewState(Pure, map[string]float64{"P": 1000, "T": 36.16})
	if _, err := Resolve(s, tab); err != nil {
		tst.Errorf("Resolve failed: %v", err)
		return
	}
	if s.Phase != PhaseSubcooled {
		tst.Errorf("state must classify as subcooled, got %v", s.Phase)
		return
	}

	// saturated liquid at T plus the incompressible correction v (P - Psat)
	chk.Scalar(tst, "h approx", 1e-10, s.H, 151.53+0.001006*(1000-6))
	chk.Scalar(tst, "P kept", 1e-17, s.P, 1000)
	chk.Scalar(tst, "T kept", 1e-17, s.T, 36.16)
}

func Test_resolve06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resolve06. failure modes")

	tab := waterTable()

	// too few properties
	s := NewState(Pure, map[string]float64{"P": 1000})
	if _, err := Resolve(s, tab); KindOf(err) != ErrNotDefinable {
		tst.Errorf("expected a not-definable error, got %v", err)
		return
	}

	// no pressure or temperature at all
	s = NewState(Pure, map[string]float64{"h": 2800, "s": 6.7})
	if _, err := Resolve(s, tab); KindOf(err) != ErrFeatureNotAvail {
		tst.Errorf("expected a feature-not-available error, got %v", err)
		return
	}

	// outside the table with no sanctioned fallback
	s = NewState(Pure, map[string]float64{"P": 1000, "T": 700})
	if _, err := Resolve(s, tab); KindOf(err) != ErrNeedsExtrapolation {
		tst.Errorf("expected a needs-extrapolation error, got %v", err)
		return
	}

	// disagreeing phase signals: h says mixture, s says superheated
	s = NewState(Pure, map[string]float64{"P": 1000, "h": 2000, "s": 7.0})
	if _, err := Resolve(s, tab); KindOf(err) != ErrDataConsistency {
		tst.Errorf("expected a data consistency error, got %v", err)
	}
}

func Test_interp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp01. round trip and brackets")

	tab := waterTable()
	rows := tab.Match(map[string]float64{"P": 1000, "x": 2})

	// interpolating to a bracket state's own value returns that state
	a, b := rows[1], rows[2] // T=200 and T=250
	back := InterpTwo(a, b, "T", a.T)
	chk.Scalar(tst, "h roundtrip", 1e-17, back.H, a.H)
	chk.Scalar(tst, "s roundtrip", 1e-17, back.S, a.S)

	// strict bracketing fails at the edges
	vals := []float64{1, 2, 3}
	if _, _, err := Surrounding(vals, 3.5); KindOf(err) != ErrNeedsExtrapolation {
		tst.Errorf("expected a needs-extrapolation error, got %v", err)
		return
	}
	lo, hi, err := Surrounding(vals, 2)
	if err != nil {
		tst.Errorf("Surrounding failed: %v", err)
		return
	}
	chk.Scalar(tst, "lo skips equal", 1e-17, lo, 1)
	chk.Scalar(tst, "hi skips equal", 1e-17, hi, 3)
}
