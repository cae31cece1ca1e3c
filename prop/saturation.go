// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

// satRow returns the single saturation-endpoint row (x = 0 or 1) at the
// given value of key ("P" or "T"), interpolating along the saturation curve
// and appending the interpolated row to the table if no exact row exists
func satRow(tab *Table, key string, val, x float64) (*State, error) {
	rows := tab.Match(map[string]float64{key: val, "x": x})
	switch len(rows) {
	case 1:
		return rows[0], nil
	case 0:
		return interpSatCurve(tab, key, val, x)
	}
	return nil, newErr(ErrDataConsistency, "table %q has %d saturation rows with x=%g at %s=%g; expected at most one", tab.Name, len(rows), x, key, val)
}

// interpSatCurve interpolates along one side of the saturation curve
// (x = 0 for liquid, 1 for vapour) to the given value of key, and appends
// the new row to the table so the interpolation is not redone
func interpSatCurve(tab *Table, key string, val, x float64) (*State, error) {
	side := tab.Equal("x", x)
	sub := NewTable(tab.Name, side...)
	below, above, err := Surrounding(sub.DistinctSorted(key), val)
	if err != nil {
		return nil, err
	}
	rowsBelow := sub.Equal(key, below)
	rowsAbove := sub.Equal(key, above)
	if len(rowsBelow) != 1 || len(rowsAbove) != 1 {
		return nil, newErr(ErrDataConsistency, "table %q has more than one saturation row with x=%g at the same value of %q", tab.Name, x, key)
	}
	res := InterpTwo(rowsBelow[0], rowsAbove[0], key, val)
	if !res.FullyDefined() {
		return nil, newErr(ErrDataConsistency, "interpolated saturation row at %s=%g is not fully defined: %v", key, val, res)
	}
	tab.Append(res)
	return res, nil
}

// SatTatP returns the saturation temperature at the given pressure,
// interpolating along the saturation curve if needed. Above the critical
// pressure the critical temperature is returned.
func SatTatP(tab *Table, P float64) (float64, error) {
	crit, err := tab.Critical()
	if err != nil {
		return 0, err
	}
	if P > crit.P {
		// no distinct saturation process above the critical pressure; by
		// convention the critical temperature separates the regions
		return crit.T, nil
	}
	sat := tab.Saturated().Equal("P", P)
	if len(sat) > 0 {
		T := sat[0].T
		for _, row := range sat {
			if row.T != T {
				return 0, newErr(ErrDataConsistency, "table %q: saturated rows at P=%g have differing temperatures", tab.Name, P)
			}
		}
		return T, nil
	}
	liq, err := interpSatCurve(tab, "P", P, 0)
	if err != nil {
		return 0, err
	}
	return liq.T, nil
}

// SatPatT returns the saturation pressure at the given temperature,
// interpolating along the saturation curve if needed. Above the critical
// temperature the critical pressure is returned.
func SatPatT(tab *Table, T float64) (float64, error) {
	crit, err := tab.Critical()
	if err != nil {
		return 0, err
	}
	if T > crit.T {
		return crit.P, nil
	}
	sat := tab.Saturated().Equal("T", T)
	if len(sat) > 0 {
		P := sat[0].P
		for _, row := range sat {
			if row.P != P {
				return 0, newErr(ErrDataConsistency, "table %q: saturated rows at T=%g have differing pressures", tab.Name, T)
			}
		}
		return P, nil
	}
	liq, err := interpSatCurve(tab, "T", T, 0)
	if err != nil {
		return 0, err
	}
	return liq.P, nil
}

// SatPair returns the saturated liquid and vapour states at the given
// pressure (preferred) or temperature; the other argument may be NaN. When
// both are given, they are cross-checked.
func SatPair(tab *Table, P, T float64) (liq, vap *State, err error) {
	switch {
	case isNum(P):
		liq, err = satRow(tab, "P", P, 0)
		if err != nil {
			return
		}
		vap, err = satRow(tab, "P", P, 1)
		if err != nil {
			return
		}
		if !WithinPct(liq.T, vap.T, 0.1) {
			return nil, nil, newErr(ErrDataConsistency, "table %q: saturated liquid and vapour at P=%g are at different temperatures (%g vs %g)", tab.Name, P, liq.T, vap.T)
		}
		if isNum(T) && !WithinPct(liq.T, T, 3) {
			return nil, nil, newErr(ErrDataConsistency, "given saturation temperature T=%g and pressure P=%g do not match (Tsat=%g)", T, P, liq.T)
		}
	case isNum(T):
		liq, err = satRow(tab, "T", T, 0)
		if err != nil {
			return
		}
		vap, err = satRow(tab, "T", T, 1)
		if err != nil {
			return
		}
	default:
		err = newErr(ErrFeatureNotAvail, "saturation properties need either P or T")
	}
	return
}
