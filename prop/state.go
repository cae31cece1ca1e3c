// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop implements thermodynamic states, property tables and the
// resolution of partially specified states by table lookup and interpolation
package prop

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Phase distinguishes the region of the phase diagram a state belongs to
type Phase int

const (
	PhaseUnknown     Phase = iota // phase not determined yet
	PhaseMixture                  // saturated liquid-vapour mixture, 0 ≤ x ≤ 1
	PhaseSuperheated              // superheated vapour / gas
	PhaseSubcooled                // subcooled (compressed) liquid
)

// quality sentinels used by property tables to encode single-phase rows
const (
	Xsuperheated = 2.0  // quality value tagging superheated rows
	Xsubcooled   = -1.0 // quality value tagging subcooled rows
)

// String returns the phase name
func (o Phase) String() string {
	switch o {
	case PhaseMixture:
		return "saturated"
	case PhaseSuperheated:
		return "superheated"
	case PhaseSubcooled:
		return "subcooled"
	}
	return "unknown"
}

// PhaseFromX converts a table quality value to a Phase tag
func PhaseFromX(x float64) Phase {
	switch {
	case !isNum(x):
		return PhaseUnknown
	case 0 <= x && x <= 1:
		return PhaseMixture
	case x == Xsuperheated:
		return PhaseSuperheated
	case x == Xsubcooled:
		return PhaseSubcooled
	}
	return PhaseUnknown
}

// Kind selects the applicable property set of a State
type Kind int

const (
	Pure Kind = iota // pure substance: P, T, v, h, u, s (+x)
	IGas             // ideal gas: P, T, v, h, u, s0 (+x, pr, vr)
)

// property keys, ordered by preference for use as interpolation references
var (
	KeysPure = []string{"P", "T", "v", "h", "u", "s"}
	KeysIGas = []string{"P", "T", "v", "h", "u", "s0"}
)

// State holds the scalar properties of one thermodynamic state. Undefined
// properties carry NaN. A State is fully defined when every property in its
// applicable set (given by Kind) plus the quality is numeric.
type State struct {

	// properties
	P  float64 // pressure [kPa]
	T  float64 // temperature [°C]
	V  float64 // specific volume [m³/kg]
	H  float64 // specific enthalpy [kJ/kg]
	U  float64 // specific internal energy [kJ/kg]
	S  float64 // specific entropy [kJ/(kg·K)]
	X  float64 // quality (vapour mass fraction); -1 and 2 tag single-phase rows
	S0 float64 // reference entropy s° [kJ/(kg·K)] (ideal gas)
	Pr float64 // relative pressure [-] (ideal gas)
	Vr float64 // relative volume [-] (ideal gas)

	// classification
	Kind  Kind  // applicable property set
	Phase Phase // phase tag; kept in sync with X
}

// NewState returns a new state of given kind with all properties undefined,
// optionally pre-set from the given key/value map
func NewState(kind Kind, props map[string]float64) (o *State) {
	o = &State{Kind: kind}
	nan := math.NaN()
	o.P, o.T, o.V, o.H, o.U, o.S, o.X, o.S0, o.Pr, o.Vr = nan, nan, nan, nan, nan, nan, nan, nan, nan, nan
	if kind == IGas {
		o.SetPhase(PhaseSuperheated) // gases are single-phase by definition
	}
	for key, val := range props {
		o.Set(key, val)
	}
	return
}

// AllKeys returns every storable property key of this state kind, including
// the quality and, for ideal gases, the relative pressure and volume
func (o *State) AllKeys() []string {
	if o.Kind == IGas {
		return []string{"P", "T", "v", "h", "u", "s0", "pr", "vr", "x"}
	}
	return []string{"P", "T", "v", "h", "u", "s", "x"}
}

// Keys returns the regular (non-quality) property keys applicable to this
// state, in interpolation preference order
func (o *State) Keys() []string {
	if o.Kind == IGas {
		return KeysIGas
	}
	return KeysPure
}

// Get returns the value of a property by key. NaN means undefined.
func (o *State) Get(key string) float64 {
	switch key {
	case "P":
		return o.P
	case "T":
		return o.T
	case "v":
		return o.V
	case "h":
		return o.H
	case "u":
		return o.U
	case "s":
		return o.S
	case "x":
		return o.X
	case "s0":
		return o.S0
	case "pr":
		return o.Pr
	case "vr":
		return o.Vr
	}
	chk.Panic("state: property key %q is unknown", key)
	return 0
}

// Set sets the value of a property by key. Setting the quality also updates
// the phase tag.
func (o *State) Set(key string, val float64) {
	switch key {
	case "P":
		o.P = val
	case "T":
		o.T = val
	case "v":
		o.V = val
	case "h":
		o.H = val
	case "u":
		o.U = val
	case "s":
		o.S = val
	case "x":
		o.X = val
		o.Phase = PhaseFromX(val)
	case "s0":
		o.S0 = val
	case "pr":
		o.Pr = val
	case "vr":
		o.Vr = val
	default:
		chk.Panic("state: property key %q is unknown", key)
	}
}

// SetPhase sets the phase tag, writing the matching quality sentinel for
// single-phase states
func (o *State) SetPhase(phase Phase) {
	o.Phase = phase
	switch phase {
	case PhaseSuperheated:
		o.X = Xsuperheated
	case PhaseSubcooled:
		o.X = Xsubcooled
	}
}

// Defined tells whether the property given by key has a numeric value
func (o *State) Defined(key string) bool {
	return isNum(o.Get(key))
}

// NumDefined returns the number of regular (non-quality) properties defined
func (o *State) NumDefined() (n int) {
	for _, key := range o.Keys() {
		if o.Defined(key) {
			n++
		}
	}
	return
}

// DefinedKeys returns the keys of defined regular properties, in
// interpolation preference order
func (o *State) DefinedKeys() (keys []string) {
	for _, key := range o.Keys() {
		if o.Defined(key) {
			keys = append(keys, key)
		}
	}
	return
}

// FullyDefined tells whether every applicable property, including the
// quality, is defined
func (o *State) FullyDefined() bool {
	return o.NumDefined() == len(o.Keys()) && o.Defined("x")
}

// Definable tells whether enough properties are known to attempt resolution:
// a saturated mixture needs the quality plus one more property; any other
// state needs two properties
func (o *State) Definable() bool {
	if o.Phase == PhaseMixture {
		return o.NumDefined() >= 1
	}
	return o.NumDefined() >= 2
}

// CopyFrom copies all defined properties of src into this state,
// overwriting existing values
func (o *State) CopyFrom(src *State) {
	for _, key := range o.AllKeys() {
		if src.Defined(key) {
			o.Set(key, src.Get(key))
		}
	}
	if src.Phase != PhaseUnknown {
		o.Phase = src.Phase
	}
}

// SetOrVerify sets the property if undefined; otherwise verifies that the
// existing value agrees with val within tol percent
func (o *State) SetOrVerify(key string, val, tol float64) (err error) {
	if !o.Defined(key) {
		o.Set(key, val)
		return
	}
	if !WithinPct(o.Get(key), val, tol) {
		return newErr(ErrDataConsistency, "state: property %q = %g does not match value %g to be set (tolerance = %g%%)", key, o.Get(key), val, tol)
	}
	return
}

// ClearExcept resets all properties to undefined except the ones named in
// keep. The phase tag is reset unless "x" is kept.
func (o *State) ClearExcept(keep ...string) {
	kept := make(map[string]bool)
	for _, key := range keep {
		kept[key] = true
	}
	for _, key := range o.AllKeys() {
		if !kept[key] {
			o.Set(key, math.NaN())
		}
	}
	if !kept["x"] {
		o.Phase = PhaseUnknown
	}
}

// String returns a one-line representation listing defined properties
func (o *State) String() string {
	l := "{"
	for _, key := range o.AllKeys() {
		if o.Defined(key) {
			if len(l) > 1 {
				l += ", "
			}
			l += io.Sf("%s=%g", key, o.Get(key))
		}
	}
	return l + io.Sf("} (%s)", o.Phase)
}

// isNum tells whether a value is numeric (not NaN)
func isNum(val float64) bool {
	return !math.IsNaN(val)
}

// WithinPct tells whether a and b agree within tol percent of their average
func WithinPct(a, b, tol float64) bool {
	if a == b {
		return true
	}
	den := math.Abs(a+b) / 2.0
	if den == 0 {
		return math.Abs(a-b) <= tol*1e-2
	}
	return 100.0*math.Abs(a-b)/den <= tol
}
