// Copyright 2021 The Gotherm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import "github.com/cpmech/gosl/io"

// ErrKind classifies resolution failures. The orchestrator branches on
// NeedsExtrapolation only; all other kinds propagate uncaught.
type ErrKind int

const (
	ErrNotDefinable       ErrKind = iota + 1 // not enough properties to attempt resolution
	ErrNeedsExtrapolation                    // query value outside the bracketable range
	ErrFeatureNotAvail                       // unsupported definition/interpolation path
	ErrDataConsistency                       // reference table is self-contradictory
)

// String returns the kind name
func (o ErrKind) String() string {
	switch o {
	case ErrNotDefinable:
		return "NotDefinable"
	case ErrNeedsExtrapolation:
		return "NeedsExtrapolation"
	case ErrFeatureNotAvail:
		return "FeatureNotAvailable"
	case ErrDataConsistency:
		return "DataConsistency"
	}
	return "Unknown"
}

// Error is an error with a resolution failure kind attached
type Error struct {
	Kind ErrKind // failure class
	Msg  string  // description
}

// Error returns the message
func (o *Error) Error() string {
	return io.Sf("%s: %s", o.Kind, o.Msg)
}

// newErr returns a new classified error with formatted message
func newErr(kind ErrKind, msg string, prm ...interface{}) *Error {
	return &Error{Kind: kind, Msg: io.Sf(msg, prm...)}
}

// KindOf returns the failure kind of err, or 0 if err is not a prop.Error
func KindOf(err error) ErrKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return 0
}
