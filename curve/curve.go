// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package curve

import (
	"github.com/periph-community/pointeraccel/fixedpt"
)

// Kind selects which sensitivity function Sens evaluates.
type Kind uint8

const (
	NoAccel Kind = iota
	Linear
	Natural
	Synchronous
)

func (k Kind) String() string {
	switch k {
	case NoAccel:
		return "no_accel"
	case Linear:
		return "linear"
	case Natural:
		return "natural"
	case Synchronous:
		return "synchronous"
	default:
		return "unknown"
	}
}

// ParseKind maps a MODE parameter string to a Kind. An unrecognized string
// falls back to Linear, matching the default MODE setting.
func ParseKind(s string) Kind {
	switch s {
	case "no_accel":
		return NoAccel
	case "natural":
		return Natural
	case "synchronous":
		return Synchronous
	default:
		return Linear
	}
}

// Args bundles every curve's parameters; only the fields relevant to the
// active Kind are read. A flat struct keeps Sens allocation-free instead
// of reaching for an interface or tagged union per call.
type Args struct {
	Kind Kind

	// Linear
	Accel     fixedpt.T
	Offset    fixedpt.T
	OutputCap fixedpt.T

	// Natural (reuses Offset above)
	DecayRate fixedpt.T
	Limit     fixedpt.T

	// Synchronous
	Gamma     fixedpt.T
	Smooth    fixedpt.T
	Motivity  fixedpt.T
	SyncSpeed fixedpt.T
}

// Sens evaluates the active curve at the given input speed, returning a
// sensitivity multiplier. Every curve returns fixedpt.One at its identity
// input and is monotonic non-decreasing for speeds above it.
func Sens(speed fixedpt.T, a Args) fixedpt.T {
	switch a.Kind {
	case NoAccel:
		return noAccel(speed)
	case Natural:
		return natural(speed, a.Offset, a.DecayRate, a.Limit)
	case Synchronous:
		return synchronous(speed, a.Gamma, a.Smooth, a.Motivity, a.SyncSpeed)
	default:
		return linear(speed, a.Accel, a.Offset, a.OutputCap)
	}
}

// noAccel is the identity curve: acceleration disabled, but events still
// route through the core so rotation and DPI normalization still apply.
func noAccel(fixedpt.T) fixedpt.T { return fixedpt.One }
