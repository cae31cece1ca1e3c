// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/canunlusoy/gotherm/cyc"
	"github.com/canunlusoy/gotherm/prop"
)

// StateData holds the known properties of one named state
type StateData struct {
	Name  string             `json:"name"`  // state label; unique within the cycle
	Props map[string]float64 `json:"props"` // given properties; e.g. {"P": 8000, "T": 500}
}

// DevData holds one device definition
type DevData struct {
	Name string   `json:"name"` // device label; unique within the cycle
	Type string   `json:"type"` // device type; e.g. "turbine", "boiler", "mixingchamber"
	Prms fun.Prms `json:"prms"` // device parameters; e.g. "eta", "pratio", "eff", "sheat"
}

// FlowData holds one flow definition: an alternating sequence of state
// and device names
type FlowData struct {
	Name   string   `json:"name"`   // flow label
	MassFF *float64 `json:"massff"` // mass flow fraction (nil when unknown; the main flow has 1)
	MassFR *float64 `json:"massfr"` // absolute mass flow rate [kg/s] (nil when unknown)
	Items  []string `json:"items"`  // state and device names, alternating, states at both ends
}

// CycData holds one cycle definition
type CycData struct {
	Name     string       `json:"name"`     // cycle label
	Tab      string       `json:"tab"`      // property table filename, relative to the cycle file
	States   []*StateData `json:"states"`   // all states
	Devices  []*DevData   `json:"devices"`  // all devices
	Flows    []*FlowData  `json:"flows"`    // all flows
	Eta      *float64     `json:"eta"`      // given thermal efficiency (nil when unknown)
	COP      *float64     `json:"cop"`      // given coefficient of performance (nil when unknown)
	NetPower *float64     `json:"netpower"` // given net power [kW] (nil when unknown)
	QIn      *float64     `json:"qin"`      // given heat input rate [kW] (nil when unknown)
}

// ReadCyc reads a cycle definition from a .cyc JSON file and assembles
// the cycle, its flows, states and devices, ready to solve
func ReadCyc(dir, fn string) (*cyc.Cycle, error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	var d CycData
	if err = json.Unmarshal(b, &d); err != nil {
		return nil, chk.Err("cannot unmarshal cycle file %q: %v", fn, err)
	}

	// working fluid
	fluid, err := ReadTab(dir, d.Tab)
	if err != nil {
		return nil, err
	}
	kind := prop.Pure
	if fluid.Gas {
		kind = prop.IGas
	}

	// states
	states := make(map[string]*prop.State)
	for _, sd := range d.States {
		if states[sd.Name] != nil {
			return nil, chk.Err("cycle %q: state %q defined twice", d.Name, sd.Name)
		}
		states[sd.Name] = prop.NewState(kind, sd.Props)
	}

	// devices
	devices := make(map[string]cyc.Device)
	for _, dd := range d.Devices {
		if devices[dd.Name] != nil {
			return nil, chk.Err("cycle %q: device %q defined twice", d.Name, dd.Name)
		}
		dev, err := cyc.New(dd.Type, dd.Name, dd.Prms)
		if err != nil {
			return nil, err
		}
		devices[dd.Name] = dev
	}

	// flows
	var flows []*cyc.Flow
	for _, fd := range d.Flows {
		fl := cyc.NewFlow(fd.Name, fluid)
		if fd.MassFF != nil {
			fl.MassFF = *fd.MassFF
		}
		if fd.MassFR != nil {
			fl.MassFR = *fd.MassFR
		}
		for _, name := range fd.Items {
			if s := states[name]; s != nil {
				fl.Push(s)
				continue
			}
			if dev := devices[name]; dev != nil {
				fl.Push(dev)
				continue
			}
			return nil, chk.Err("flow %q: item %q is neither a state nor a device", fd.Name, name)
		}
		if err := fl.Check(); err != nil {
			return nil, err
		}
		flows = append(flows, fl)
	}

	// cycle
	cy := cyc.NewCycle(flows...)
	if d.Eta != nil {
		cy.Eta = *d.Eta
	}
	if d.COP != nil {
		cy.COP = *d.COP
	}
	if d.NetPower != nil {
		cy.NetPower = *d.NetPower
	}
	if d.QIn != nil {
		cy.QIn = *d.QIn
	}
	return cy, nil
}
