// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// waterTable returns a small water table: the saturation dome at three
// pressures plus superheated rows, with the saturated vapour at 1 MPa
// repeated as the first superheated row (textbook convention)
func waterTable() *Table {
	rows := [][]float64{
		// P, T, v, h, u, s, x
		{6, 36.16, 0.001006, 151.53, 151.52, 0.5210, 0},
		{6, 36.16, 23.739, 2567.4, 2425.0, 8.3291, 1},
		{1000, 179.88, 0.001127, 762.81, 761.68, 2.1387, 0},
		{1000, 179.88, 0.19444, 2778.1, 2583.6, 6.5865, 1},
		{10000, 311.06, 0.001452, 1407.56, 1393.0, 3.3596, 0},
		{10000, 311.06, 0.018026, 2724.7, 2544.4, 5.6141, 1},
		{1000, 179.88, 0.19444, 2778.1, 2583.6, 6.5865, 2},
		{1000, 200, 0.20596, 2827.9, 2621.9, 6.6940, 2},
		{1000, 250, 0.23268, 2942.6, 2709.9, 6.9247, 2},
		{1000, 300, 0.25794, 3051.2, 2793.2, 7.1229, 2},
		{1000, 500, 0.35411, 3478.5, 3124.4, 7.7622, 2},
		{3000, 300, 0.08114, 2993.5, 2750.1, 6.5390, 2},
		{3000, 350, 0.09053, 3115.3, 2843.7, 6.7428, 2},
		{3000, 400, 0.09936, 3230.9, 2932.8, 6.9212, 2},
		{10000, 350, 0.022442, 2923.4, 2699.2, 6.0940, 2},
		{10000, 450, 0.029782, 3240.9, 2943.1, 6.4190, 2},
		{10000, 500, 0.032811, 3373.7, 3045.8, 6.5966, 2},
		{10000, 550, 0.035655, 3500.9, 3144.5, 6.7561, 2},
	}
	tab := NewTable("water")
	for _, r := range rows {
		tab.Append(NewState(Pure, map[string]float64{
			"P": r[0], "T": r[1], "v": r[2], "h": r[3], "u": r[4], "s": r[5], "x": r[6],
		}))
	}
	return tab
}

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. queries and subsets")

	tab := waterTable()

	// equality and conjunction queries
	chk.IntAssert(len(tab.Equal("P", 1000)), 7)
	chk.IntAssert(len(tab.Match(map[string]float64{"P": 1000, "x": 1})), 1)
	chk.IntAssert(len(tab.Match(map[string]float64{"P": 1000, "T": 250})), 1)
	chk.IntAssert(len(tab.Match(map[string]float64{"P": 1000, "T": 777})), 0)

	// phase subsets share row pointers with the parent table
	sup := tab.Subset(PhaseSuperheated)
	chk.IntAssert(len(sup.Rows), 12)
	sat := tab.Saturated()
	chk.IntAssert(len(sat.Rows), 6)
	for _, row := range sup.Rows {
		if row.Phase != PhaseSuperheated {
			tst.Errorf("superheated subset contains a %v row", row.Phase)
			return
		}
	}

	// distinct sorted column values
	ps := tab.DistinctSorted("P")
	chk.Vector(tst, "distinct P", 1e-17, ps, []float64{6, 1000, 3000, 10000})

	// appending invalidates the sorted cache
	tab.Append(NewState(Pure, map[string]float64{
		"P": 500, "T": 151.86, "v": 0.3749, "h": 2748.7, "u": 2561.2, "s": 6.8213, "x": 1,
	}))
	ps = tab.DistinctSorted("P")
	chk.Vector(tst, "distinct P after append", 1e-17, ps, []float64{6, 500, 1000, 3000, 10000})
}

func Test_table02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table02. critical point")

	tab := waterTable()
	crit, err := tab.Critical()
	if err != nil {
		tst.Errorf("Critical failed: %v", err)
		return
	}
	chk.Scalar(tst, "crit T", 1e-17, crit.T, 311.06)
	chk.Scalar(tst, "crit P", 1e-17, crit.P, 10000)

	// no saturated rows at all
	empty := NewTable("empty")
	if _, err := empty.Critical(); KindOf(err) != ErrDataConsistency {
		tst.Errorf("expected a data consistency error, got %v", err)
	}
}

func Test_table03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table03. saturation curve interpolation")

	tab := waterTable()

	// exact hit
	Tsat, err := SatTatP(tab, 1000)
	if err != nil {
		tst.Errorf("SatTatP failed: %v", err)
		return
	}
	chk.Scalar(tst, "Tsat(1000)", 1e-17, Tsat, 179.88)

	// interpolated between 1000 and 10000 kPa; the interpolated saturation
	// rows are appended to the table
	nrows := len(tab.Rows)
	Tsat, err = SatTatP(tab, 5500)
	if err != nil {
		tst.Errorf("SatTatP failed: %v", err)
		return
	}
	chk.Scalar(tst, "Tsat(5500)", 1e-9, Tsat, 179.88+0.5*(311.06-179.88))
	chk.IntAssert(len(tab.Rows), nrows+1)

	// above the critical pressure the critical temperature is returned
	Tsat, err = SatTatP(tab, 30000)
	if err != nil {
		tst.Errorf("SatTatP failed: %v", err)
		return
	}
	chk.Scalar(tst, "Tsat above crit", 1e-17, Tsat, 311.06)

	// and the inverse
	Psat, err := SatPatT(tab, 179.88)
	if err != nil {
		tst.Errorf("SatPatT failed: %v", err)
		return
	}
	chk.Scalar(tst, "Psat(179.88)", 1e-17, Psat, 1000)

	// saturated pair with disagreeing given temperature
	if _, _, err := SatPair(tab, 1000, 250); KindOf(err) != ErrDataConsistency {
		tst.Errorf("expected a data consistency error, got %v", err)
	}
}
