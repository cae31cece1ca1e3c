// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

// IdealOutlet fully defines the isentropic (ideal) outlet state of a work
// process from the inlet state and the outlet pressure already set on out.
// For pure substances the outlet entropy equals the inlet entropy; for ideal
// gases the relative pressure scales with the pressure ratio.
func IdealOutlet(in, out *State, fl *Fluid) (*State, error) {
	if !out.Defined("P") {
		return nil, newErr(ErrNotDefinable, "ideal outlet state needs its pressure: %v", out)
	}
	if fl.Gas {
		if !in.Defined("pr") {
			if _, err := fl.Define(in); err != nil {
				return nil, err
			}
		}
		out.Set("pr", in.Pr*out.P/in.P)
	} else {
		if err := out.SetOrVerify("s", in.S, 3); err != nil {
			return nil, err
		}
	}
	return fl.Define(out)
}

// ActualOutlet returns the actual outlet state of an irreversible work
// process with the given isentropic efficiency. The inlet must be fully
// defined and the outlet pressure known; the ideal outlet is computed first
// and the enthalpy difference scaled by the efficiency.
func ActualOutlet(in, out *State, eta float64, fl *Fluid) (*State, error) {
	ideal := NewState(in.Kind, nil)
	ideal.Set("P", out.P)
	if _, err := IdealOutlet(in, ideal, fl); err != nil {
		return nil, err
	}
	actual := NewState(in.Kind, nil)
	actual.Set("P", out.P)
	wIdeal := ideal.H - in.H
	if wIdeal >= 0 {
		// work consumed by the flow: η = w_ideal / w_actual
		actual.Set("h", in.H+wIdeal/eta)
	} else {
		// work extracted from the flow: η = w_actual / w_ideal
		actual.Set("h", in.H+wIdeal*eta)
	}
	return fl.Define(actual)
}
