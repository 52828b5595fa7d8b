// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package accel

import (
	"github.com/periph-community/pointeraccel/curve"
	"github.com/periph-community/pointeraccel/fixedpt"
	"github.com/periph-community/pointeraccel/speed"
	"github.com/periph-community/pointeraccel/speedecho"
)

// Args bundles one event's worth of resolved parameters: everything the
// core needs to accelerate a single (dx, dy) pair. Callers re-resolve
// this from an accelparams.Store on every event, since the user can
// change any parameter at any time and the next event should pick it up
// immediately.
type Args struct {
	SensMult        fixedpt.T
	YXRatio         fixedpt.T
	InputDPI        fixedpt.T
	AngleRotationDeg fixedpt.T
	Curve           curve.Args

	// PreScaleX, PreScaleY, PostScaleX, PostScaleY, SpeedCap are the
	// supplemental leetmouse-derived knobs; their identity values are
	// 1, 1, 1, 1, and 0 (disabled) respectively.
	PreScaleX  fixedpt.T
	PreScaleY  fixedpt.T
	PostScaleX fixedpt.T
	PostScaleY fixedpt.T
	SpeedCap   fixedpt.T
}

// Core holds one input stream's carried-forward fractional residue and
// frametime state. A Core is not safe for concurrent use by multiple
// goroutines on the same stream; one input stream is always driven by
// a single caller.
type Core struct {
	clock *speed.Clock
	est   *speed.Estimator

	carryX, carryY fixedpt.T

	// bufX, bufY accumulate raw device-unit deltas from a call that
	// failed (BusyError or SentinelError) so they fold into the next
	// successful call instead of being lost.
	bufX, bufY int64

	// FPUGuard, if set, is consulted at the start of every Accelerate
	// call; a false result produces a BusyError without touching the
	// residue or speed state. This models a kernel context where the
	// FPU register file is unavailable (e.g. inside an interrupt
	// handler). Nil means always available.
	FPUGuard func() bool
}

// NewCore returns a Core that publishes its speed estimate to echo (which
// may be nil).
func NewCore(echo *speedecho.Value) *Core {
	return &Core{clock: speed.NewClock(), est: speed.NewEstimator(echo)}
}

// Accelerate rewrites *x and *y in place from raw device-unit deltas to
// accelerated device-unit deltas: load residue, derive frametime, lift
// to fixed point, rotate, DPI-normalize, estimate speed, evaluate the
// curve, apply sensitivity, quantize, and carry the new residue
// forward.
//
// On a non-nil error, *x and *y are left exactly as passed in (an
// unmodified event, for SentinelError) or zeroed (a dropped event, for
// BusyError); in both cases the raw delta is buffered into the next call.
func (c *Core) Accelerate(x, y *int, args Args, nowNs int64) error {
	if c.FPUGuard != nil && !c.FPUGuard() {
		c.bufX += int64(*x)
		c.bufY += int64(*y)
		*x, *y = 0, 0
		return &BusyError{}
	}

	rawX := int64(*x) + c.bufX
	rawY := int64(*y) + c.bufY

	dtMs := c.clock.Tick(nowNs)

	dx := fixedpt.Mul(fixedpt.FromInt(int(rawX)), args.PreScaleX)
	dy := fixedpt.Mul(fixedpt.FromInt(int(rawY)), args.PreScaleY)

	if args.AngleRotationDeg != 0 {
		rad := fixedpt.DegToRad(args.AngleRotationDeg)
		cosT := fixedpt.Cos(rad)
		sinT := fixedpt.Sin(rad)
		dx, dy = fixedpt.Mul(dx, cosT)-fixedpt.Mul(dy, sinT), fixedpt.Mul(dx, sinT)+fixedpt.Mul(dy, cosT)
	}

	norm := fixedpt.Div(fixedpt.FromInt(1000), args.InputDPI)
	if norm == fixedpt.Sentinel {
		return c.sentinel(rawX, rawY, args.Curve.Kind)
	}
	dx = fixedpt.Mul(dx, norm)
	dy = fixedpt.Mul(dy, norm)

	if args.SpeedCap > 0 {
		distSq := fixedpt.Add(fixedpt.Mul(dx, dx), fixedpt.Mul(dy, dy))
		dist := fixedpt.Sqrt(distSq)
		if dist == fixedpt.Sentinel {
			return c.sentinel(rawX, rawY, args.Curve.Kind)
		}
		if dist > args.SpeedCap {
			scale := fixedpt.Div(args.SpeedCap, dist)
			dx = fixedpt.Mul(dx, scale)
			dy = fixedpt.Mul(dy, scale)
		}
	}

	speedVal := c.est.InputSpeed(dx, dy, dtMs)

	sensX := curve.Sens(speedVal, args.Curve)
	if sensX == fixedpt.Sentinel {
		return c.sentinel(rawX, rawY, args.Curve.Kind)
	}
	sensX = fixedpt.Mul(sensX, args.SensMult)
	sensY := fixedpt.Mul(sensX, args.YXRatio)

	outX := fixedpt.Mul(fixedpt.Mul(dx, sensX), args.PostScaleX) + c.carryX
	outY := fixedpt.Mul(fixedpt.Mul(dy, sensY), args.PostScaleY) + c.carryY

	qx := fixedpt.ToInt(outX)
	qy := fixedpt.ToInt(outY)

	c.carryX = outX - fixedpt.FromInt(qx)
	c.carryY = outY - fixedpt.FromInt(qy)
	c.bufX, c.bufY = 0, 0

	*x, *y = qx, qy
	return nil
}

// sentinel records a failed call's raw delta for the next call and
// reports which curve produced the non-finite value. *x and *y are
// deliberately left untouched by the caller of sentinel.
func (c *Core) sentinel(rawX, rawY int64, kind curve.Kind) error {
	c.bufX = rawX
	c.bufY = rawY
	return &SentinelError{Curve: kind.String()}
}

// Residue returns the currently carried fractional residue, for tests
// and diagnostics.
func (c *Core) Residue() (x, y fixedpt.T) {
	return c.carryX, c.carryY
}
