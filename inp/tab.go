// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of property tables and cycle
// definitions from JSON files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/canunlusoy/gotherm/prop"
)

// TabData holds serialized property table data
type TabData struct {
	Name string      `json:"name"` // substance name
	Kind string      `json:"kind"` // "pure" or "igas"
	Rgas float64     `json:"rgas"` // gas constant [kJ/(kg·K)] (ideal gas only)
	Cols []string    `json:"cols"` // column keys; e.g. "P", "T", "h", "x"
	Rows [][]float64 `json:"rows"` // one reference state per row
}

// ReadTab reads a property table from a .tab JSON file and returns the
// fluid it describes
func ReadTab(dir, fn string) (*prop.Fluid, error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	var d TabData
	if err = json.Unmarshal(b, &d); err != nil {
		return nil, chk.Err("cannot unmarshal table file %q: %v", fn, err)
	}
	return d.Fluid()
}

// Fluid builds the fluid from decoded table data
func (o *TabData) Fluid() (*prop.Fluid, error) {
	var kind prop.Kind
	var gas bool
	switch o.Kind {
	case "pure":
		kind = prop.Pure
	case "igas":
		kind, gas = prop.IGas, true
	default:
		return nil, chk.Err("table %q: unknown fluid kind %q", o.Name, o.Kind)
	}
	tab := prop.NewTable(o.Name)
	for i, row := range o.Rows {
		if len(row) != len(o.Cols) {
			return nil, chk.Err("table %q: row %d has %d values but %d columns are declared", o.Name, i, len(row), len(o.Cols))
		}
		props := make(map[string]float64)
		for j, key := range o.Cols {
			props[key] = row[j]
		}
		tab.Append(prop.NewState(kind, props))
	}
	return &prop.Fluid{Tab: tab, R: o.Rgas, Gas: gas}, nil
}
