// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"sort"
)

// Interp1D computes the two-point linear interpolation
//   y = y0 + (y1-y0)/(x1-x0)*(at-x0)
func Interp1D(x0, x1, y0, y1, at float64) float64 {
	return y0 + (y1-y0)/(x1-x0)*(at-x0)
}

// Surrounding returns the values bracketing val in the sorted slice vals:
// the largest value strictly below and the smallest strictly above. Fails
// with NeedsExtrapolation if val is not strictly inside the range.
func Surrounding(vals []float64, val float64) (below, above float64, err error) {
	i := sort.SearchFloat64s(vals, val)
	// skip equal values; exact matches are handled before bracketing
	j := i
	for j < len(vals) && vals[j] == val {
		j++
	}
	if i == 0 || j == len(vals) {
		return 0, 0, newErr(ErrNeedsExtrapolation, "value %g is outside the bracketable range [%g, %g]", val, vals[0], vals[len(vals)-1])
	}
	return vals[i-1], vals[j], nil
}

// InterpTwo linearly interpolates all properties between two states, using
// the property given by key as the interpolation parameter. Properties
// undefined in either endpoint come out undefined.
func InterpTwo(s1, s2 *State, key string, at float64) *State {
	res := NewState(s1.Kind, nil)
	x0, x1 := s1.Get(key), s2.Get(key)
	for _, k := range s1.AllKeys() {
		res.Set(k, Interp1D(x0, x1, s1.Get(k), s2.Get(k), at))
	}
	return res
}
