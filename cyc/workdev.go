// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyc

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/canunlusoy/gotherm/prop"
	"github.com/canunlusoy/gotherm/sym"
)

// WorkDevice is a turbine, pump or compressor: a device exchanging shaft
// work with the flow. A turbine bleeding extractions to several flows is
// shared between them and carries one pass per flow, all from the same
// inlet state.
type WorkDevice struct {
	devbase
	EtaIsen     float64 // isentropic efficiency (1 when ideal)
	PressRatio  float64 // high-side over low-side pressure ratio (NaN when not set)
	Compression bool    // raises pressure (pump, compressor) instead of expanding
}

// NewTurbine returns a turbine with the given isentropic efficiency
func NewTurbine(label string, etaIsen float64) *WorkDevice {
	return &WorkDevice{devbase: devbase{Label: label}, EtaIsen: etaIsen, PressRatio: math.NaN()}
}

// NewPump returns a pump with the given isentropic efficiency
func NewPump(label string, etaIsen float64) *WorkDevice {
	return &WorkDevice{devbase: devbase{Label: label}, EtaIsen: etaIsen, PressRatio: math.NaN(), Compression: true}
}

// NewCompressor returns a gas compressor with the given isentropic
// efficiency and high-over-low pressure ratio (NaN when the outlet
// pressure is given directly on the state)
func NewCompressor(label string, etaIsen, pressRatio float64) *WorkDevice {
	return &WorkDevice{devbase: devbase{Label: label}, EtaIsen: etaIsen, PressRatio: pressRatio, Compression: true}
}

// NewGasTurbine returns a gas turbine with the given isentropic
// efficiency and high-over-low pressure ratio (NaN when the outlet
// pressure is given directly on the state)
func NewGasTurbine(label string, etaIsen, pressRatio float64) *WorkDevice {
	return &WorkDevice{devbase: devbase{Label: label}, EtaIsen: etaIsen, PressRatio: pressRatio}
}

// Setup applies the work relations per pass: outlet pressure from the
// pressure ratio when one is set, then the actual outlet state from the
// inlet and the isentropic efficiency
func (o *WorkDevice) Setup(pool *sym.Pool) error {
	for _, p := range o.Passes {
		if !math.IsNaN(o.PressRatio) && p.In.Defined("P") {
			pout := p.In.P / o.PressRatio
			if o.Compression {
				pout = p.In.P * o.PressRatio
			}
			if err := p.Out.SetOrVerify("P", pout, devtol); err != nil {
				return chk.Err("%s: %v", o.Label, err)
			}
		}
		if !p.In.FullyDefined() || p.Out.FullyDefined() || !p.Out.Defined("P") {
			continue
		}
		actual, err := prop.ActualOutlet(p.In, p.Out, o.EtaIsen, p.Fl.Fluid)
		if err != nil {
			if prop.KindOf(err) == prop.ErrNeedsExtrapolation {
				continue
			}
			return chk.Err("%s: %v", o.Label, err)
		}
		if err := mergeVerify(p.Out, actual); err != nil {
			return chk.Err("%s: %v", o.Label, err)
		}
	}
	return nil
}

// mergeVerify copies all defined properties of src into dst, verifying
// the ones dst already carries
func mergeVerify(dst, src *prop.State) error {
	for _, key := range src.AllKeys() {
		if !src.Defined(key) {
			continue
		}
		if err := dst.SetOrVerify(key, src.Get(key), devtol); err != nil {
			return err
		}
	}
	if src.Phase != prop.PhaseUnknown {
		dst.SetPhase(src.Phase)
	}
	return nil
}
