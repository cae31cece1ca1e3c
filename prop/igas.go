// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

// kelvin converts a temperature from °C to K
func kelvin(T float64) float64 { return T + 273.15 }

// celsius converts a temperature from K to °C
func celsius(T float64) float64 { return T - 273.15 }

// ApplyIGasLaw fills in whichever of {P, v, T} is the single missing term of
// P*v = R*T. With all three defined it verifies consistency instead.
func ApplyIGasLaw(s *State, R float64) error {
	var missing []string
	for _, key := range []string{"P", "v", "T"} {
		if !s.Defined(key) {
			missing = append(missing, key)
		}
	}
	switch len(missing) {
	case 1:
		switch missing[0] {
		case "P":
			s.P = R * kelvin(s.T) / s.V
		case "v":
			s.V = R * kelvin(s.T) / s.P
		case "T":
			s.T = celsius(s.P * s.V / R)
		}
	case 0:
		if !WithinPct(kelvin(s.T), s.P*s.V/R, 1) {
			return newErr(ErrDataConsistency, "state %v does not comply with the ideal gas law (Pv=%g, RT=%g)", s, s.P*s.V, R*kelvin(s.T))
		}
	}
	return nil
}

// ResolveIGas fully defines an ideal-gas state in place: the gas law fills
// in P/v/T where possible, then the temperature-indexed table supplies the
// companion properties (h, u, s°, relative pressure/volume), then the gas
// law runs once more since the lookup may have discovered the temperature.
func ResolveIGas(s *State, fl *Fluid) (*State, error) {
	if err := ApplyIGasLaw(s, fl.R); err != nil {
		return nil, err
	}
	if err := igasLookup(s, fl.Tab); err != nil {
		return nil, err
	}
	if err := ApplyIGasLaw(s, fl.R); err != nil {
		return nil, err
	}
	return s, nil
}

// igasKeys are the temperature-dependent columns of ideal-gas tables, in
// lookup preference order
var igasKeys = []string{"T", "h", "u", "s0", "pr", "vr"}

// igasLookup copies the temperature-dependent companion properties from the
// table row at (or interpolated to) the first defined table-indexed
// property. A value outside the table range leaves the state untouched.
func igasLookup(s *State, tab *Table) error {
	if len(tab.Rows) == 0 {
		return nil
	}
	ref := ""
	for _, key := range igasKeys {
		if tab.Rows[0].Defined(key) && s.Defined(key) {
			ref = key
			break
		}
	}
	if ref == "" {
		return nil
	}
	val := s.Get(ref)
	rows := tab.Equal(ref, val)
	if len(rows) > 1 {
		return newErr(ErrDataConsistency, "table %q has %d rows at %s=%g; expected one", tab.Name, len(rows), ref, val)
	}
	if len(rows) == 1 {
		s.CopyFrom(rows[0])
		return nil
	}
	below, above, err := Surrounding(tab.DistinctSorted(ref), val)
	if err != nil {
		if KindOf(err) == ErrNeedsExtrapolation {
			return nil // leave state as is; the gas law may still complete it
		}
		return err
	}
	rBelow, rAbove := tab.Equal(ref, below), tab.Equal(ref, above)
	if len(rBelow) != 1 || len(rAbove) != 1 {
		return newErr(ErrDataConsistency, "table %q has duplicate rows around %s=%g", tab.Name, ref, val)
	}
	s.CopyFrom(InterpTwo(rBelow[0], rAbove[0], ref, val))
	return nil
}
