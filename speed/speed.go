// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package speed

import (
	"github.com/periph-community/pointeraccel/fixedpt"
	"github.com/periph-community/pointeraccel/speedecho"
)

// nsPerMs converts nanoseconds to fixed-point milliseconds.
var nsPerMs = fixedpt.FromInt(1_000_000)

// MaxFrametimeMs is the clamp ceiling: bursty URB delivery produces zero
// and near-zero intervals that would otherwise inflate speed without
// bound, and long pauses must not synthesize huge accelerations when the
// user starts moving again.
var MaxFrametimeMs = fixedpt.FromInt(100)

// Clock derives a clamped frametime, in fixed-point milliseconds, from a
// sequence of monotonic-nanosecond timestamps. It is owned alongside a
// stream's residue state, one Clock per input stream.
type Clock struct {
	lastNs   int64
	lastDtMs fixedpt.T
	started  bool
}

// NewClock returns a Clock with an initial lastDtMs of one millisecond,
// used as the frametime for the very first event (before any interval
// has actually been observed).
func NewClock() *Clock {
	return &Clock{lastDtMs: fixedpt.One}
}

// Tick advances the clock to nowNs and returns the frametime to use for
// this event. A raw interval of zero or negative nanoseconds (two events
// with the same or an out-of-order timestamp) falls back to the last
// valid interval; an interval over 100ms is clamped to 100ms.
func (c *Clock) Tick(nowNs int64) fixedpt.T {
	if !c.started {
		c.started = true
		c.lastNs = nowNs
		return c.lastDtMs
	}

	rawNs := nowNs - c.lastNs
	c.lastNs = nowNs

	var dtMs fixedpt.T
	if rawNs < 1 {
		dtMs = c.lastDtMs
	} else {
		dtMs = fixedpt.Div(fixedpt.FromInt(int(rawNs)), nsPerMs)
		if dtMs > MaxFrametimeMs {
			dtMs = MaxFrametimeMs
		}
	}
	c.lastDtMs = dtMs
	return dtMs
}

// Estimator computes instantaneous speed and publishes it to an echo
// Value for external readers.
type Estimator struct {
	Echo *speedecho.Value
}

// NewEstimator returns an Estimator publishing to echo. echo may be nil,
// in which case the speed is simply not echoed anywhere.
func NewEstimator(echo *speedecho.Value) *Estimator {
	return &Estimator{Echo: echo}
}

// InputSpeed returns the magnitude of (dx, dy) divided by dtMs. If the
// magnitude cannot be computed (fixedpt.Sqrt's sentinel, which cannot
// actually occur for a sum of two squares but is checked regardless
// since Sqrt's contract allows it), it returns zero.
func (e *Estimator) InputSpeed(dx, dy, dtMs fixedpt.T) fixedpt.T {
	distSq := fixedpt.Add(fixedpt.Mul(dx, dx), fixedpt.Mul(dy, dy))
	distance := fixedpt.Sqrt(distSq)
	if distance == fixedpt.Sentinel {
		if e.Echo != nil {
			e.Echo.Publish(0)
		}
		return 0
	}

	speed := fixedpt.Div(distance, dtMs)
	if e.Echo != nil {
		e.Echo.Publish(speed)
	}
	return speed
}
