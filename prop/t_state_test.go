// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. get/set, quality and phase")

	s := NewState(Pure, map[string]float64{"P": 1000, "T": 250})
	chk.Scalar(tst, "P", 1e-17, s.Get("P"), 1000)
	chk.Scalar(tst, "T", 1e-17, s.Get("T"), 250)
	if s.Defined("h") {
		tst.Errorf("h must start undefined")
		return
	}
	chk.IntAssert(s.NumDefined(), 2)
	if !s.Definable() || s.FullyDefined() {
		tst.Errorf("state with 2 properties must be definable but not fully defined")
		return
	}

	// setting the quality keeps the phase tag in sync
	s.Set("x", 0.5)
	if s.Phase != PhaseMixture {
		tst.Errorf("x=0.5 must classify as mixture, got %v", s.Phase)
		return
	}
	s.Set("x", Xsuperheated)
	if s.Phase != PhaseSuperheated {
		tst.Errorf("x=2 must classify as superheated, got %v", s.Phase)
		return
	}
	s.Set("x", Xsubcooled)
	if s.Phase != PhaseSubcooled {
		tst.Errorf("x=-1 must classify as subcooled, got %v", s.Phase)
		return
	}

	// and the other way around
	s.SetPhase(PhaseSuperheated)
	chk.Scalar(tst, "x after SetPhase", 1e-17, s.X, Xsuperheated)

	// a mixture is definable with the quality plus one property
	m := NewState(Pure, map[string]float64{"x": 0.3})
	if m.Definable() {
		tst.Errorf("quality alone must not be definable")
		return
	}
	m.Set("P", 6)
	if !m.Definable() {
		tst.Errorf("quality plus one property must be definable")
		return
	}
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02. copy, verify, clear")

	src := NewState(Pure, map[string]float64{"P": 1000, "T": 200, "h": 2827.9})
	dst := NewState(Pure, map[string]float64{"s": 6.6940})
	dst.CopyFrom(src)
	chk.Scalar(tst, "P", 1e-17, dst.P, 1000)
	chk.Scalar(tst, "h", 1e-17, dst.H, 2827.9)
	chk.Scalar(tst, "s kept", 1e-17, dst.S, 6.6940) // src does not define s

	// verification within tolerance passes, beyond it fails
	if err := dst.SetOrVerify("h", 2830, 3); err != nil {
		tst.Errorf("SetOrVerify within 3%% must pass: %v", err)
		return
	}
	if err := dst.SetOrVerify("h", 3500, 3); KindOf(err) != ErrDataConsistency {
		tst.Errorf("expected a data consistency error, got %v", err)
		return
	}
	if err := dst.SetOrVerify("u", 2621.9, 3); err != nil {
		tst.Errorf("SetOrVerify on an undefined property must set it: %v", err)
		return
	}
	chk.Scalar(tst, "u set", 1e-17, dst.U, 2621.9)

	// clear all but a keep-set
	dst.ClearExcept("P", "T")
	chk.Scalar(tst, "P kept", 1e-17, dst.P, 1000)
	if dst.Defined("h") || dst.Defined("u") || dst.Defined("s") {
		tst.Errorf("cleared properties must be undefined: %v", dst)
	}
}

func Test_state03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state03. ideal gas states")

	g := NewState(IGas, nil)
	if g.Phase != PhaseSuperheated {
		tst.Errorf("gas states are single-phase, got %v", g.Phase)
		return
	}
	g.Set("pr", 1.386)
	g.Set("vr", 621.2)
	chk.Scalar(tst, "pr", 1e-17, g.Pr, 1.386)
	chk.Scalar(tst, "vr", 1e-17, g.Vr, 621.2)

	// the regular property set of a gas uses s0 instead of s
	chk.Strings(tst, "gas keys", g.Keys(), []string{"P", "T", "v", "h", "u", "s0"})
}
