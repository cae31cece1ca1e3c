// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// New returns a new device of the given type, configured from the given
// parameters. Available types and their parameters:
//  "turbine", "pump"          -- "eta" isentropic efficiency (default 1)
//  "compressor", "gasturbine" -- "eta" and "pratio" pressure ratio
//  "boiler", "rhboiler", "condenser", "intercooler", "gasreheater",
//  "exhaust"                  -- no parameters
//  "combustor"                -- "sheat" specific heat input [kJ/kg]
//  "mixingchamber", "openfwheater", "heatexchanger", "closedfwheater",
//  "trap"                     -- no parameters
//  "regenerator"              -- "eff" effectiveness
func New(dtype, label string, prms fun.Prms) (Device, error) {
	allocator, ok := allocators[dtype]
	if !ok {
		return nil, chk.Err("device type %q is not available in database", dtype)
	}
	return allocator(label, prms), nil
}

// allocators holds all available devices; devicetype => allocator
var allocators = map[string]func(label string, prms fun.Prms) Device{}

// prmOr returns the value of the named parameter, or a fallback when the
// parameter is absent
func prmOr(prms fun.Prms, name string, fallback float64) float64 {
	if p := prms.Find(name); p != nil {
		return p.V
	}
	return fallback
}

func init() {
	allocators["turbine"] = func(label string, prms fun.Prms) Device {
		return NewTurbine(label, prmOr(prms, "eta", 1))
	}
	allocators["pump"] = func(label string, prms fun.Prms) Device {
		return NewPump(label, prmOr(prms, "eta", 1))
	}
	allocators["compressor"] = func(label string, prms fun.Prms) Device {
		return NewCompressor(label, prmOr(prms, "eta", 1), prmOr(prms, "pratio", math.NaN()))
	}
	allocators["gasturbine"] = func(label string, prms fun.Prms) Device {
		return NewGasTurbine(label, prmOr(prms, "eta", 1), prmOr(prms, "pratio", math.NaN()))
	}
	allocators["boiler"] = func(label string, prms fun.Prms) Device {
		return NewBoiler(label)
	}
	allocators["rhboiler"] = func(label string, prms fun.Prms) Device {
		return NewReheatBoiler(label)
	}
	allocators["condenser"] = func(label string, prms fun.Prms) Device {
		return NewCondenser(label)
	}
	allocators["combustor"] = func(label string, prms fun.Prms) Device {
		return NewCombustor(label, prmOr(prms, "sheat", math.NaN()))
	}
	allocators["intercooler"] = func(label string, prms fun.Prms) Device {
		return NewIntercooler(label)
	}
	allocators["gasreheater"] = func(label string, prms fun.Prms) Device {
		return NewGasReheater(label)
	}
	allocators["exhaust"] = func(label string, prms fun.Prms) Device {
		return NewExhaust(label)
	}
	allocators["mixingchamber"] = func(label string, prms fun.Prms) Device {
		return NewMixingChamber(label)
	}
	allocators["openfwheater"] = func(label string, prms fun.Prms) Device {
		return NewOpenFWHeater(label)
	}
	allocators["heatexchanger"] = func(label string, prms fun.Prms) Device {
		return NewHeatExchanger(label)
	}
	allocators["closedfwheater"] = func(label string, prms fun.Prms) Device {
		return NewClosedFWHeater(label)
	}
	allocators["regenerator"] = func(label string, prms fun.Prms) Device {
		return NewRegenerator(label, prmOr(prms, "eff", 1))
	}
	allocators["trap"] = func(label string, prms fun.Prms) Device {
		return NewTrap(label)
	}
}
