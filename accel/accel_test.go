// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package accel

import (
	"testing"

	"github.com/periph-community/pointeraccel/curve"
	"github.com/periph-community/pointeraccel/fixedpt"
)

func identityArgs() Args {
	return Args{
		SensMult:   fixedpt.One,
		YXRatio:    fixedpt.One,
		InputDPI:   fixedpt.FromInt(1000),
		Curve:      curve.Args{Kind: curve.NoAccel},
		PreScaleX:  fixedpt.One,
		PreScaleY:  fixedpt.One,
		PostScaleX: fixedpt.One,
		PostScaleY: fixedpt.One,
	}
}

func TestAccelerateNoAccelIsPassthrough(t *testing.T) {
	c := NewCore(nil)
	args := identityArgs()
	x, y := 10, -5
	if err := c.Accelerate(&x, &y, args, 1_000_000); err != nil {
		t.Fatalf("Accelerate: %v", err)
	}
	// First event seeds the clock with a 1ms frametime, matching the
	// identity no_accel sensitivity: output equals input exactly.
	if x != 10 || y != -5 {
		t.Errorf("Accelerate identity pass: got (%d, %d), want (10, -5)", x, y)
	}
}

func TestAccelerateConservesFractionalMotion(t *testing.T) {
	c := NewCore(nil)
	args := identityArgs()
	args.PostScaleX = fixedpt.ParseString("0.5")

	total := 0
	now := int64(0)
	for i := 0; i < 10; i++ {
		now += 1_000_000
		x, y := 1, 0
		if err := c.Accelerate(&x, &y, args, now); err != nil {
			t.Fatalf("Accelerate: %v", err)
		}
		total += x
	}
	// 10 events of dx=1 scaled by 0.5 sum to 5 device units overall, even
	// though every individual quantized step is 0 or 1.
	if total != 5 {
		t.Errorf("total accelerated motion = %d, want 5", total)
	}
}

func TestAccelerateZeroDPISentinel(t *testing.T) {
	c := NewCore(nil)
	args := identityArgs()
	args.InputDPI = 0

	x, y := 10, 0
	err := c.Accelerate(&x, &y, args, 1_000_000)
	if err == nil {
		t.Fatal("expected a SentinelError for zero InputDPI")
	}
	if _, ok := err.(*SentinelError); !ok {
		t.Errorf("got error %v (%T), want *SentinelError", err, err)
	}
	if x != 10 || y != 0 {
		t.Errorf("event was modified on SentinelError: got (%d, %d), want unmodified (10, 0)", x, y)
	}
}

func TestAccelerateBusyBuffersAndZeroes(t *testing.T) {
	c := NewCore(nil)
	c.FPUGuard = func() bool { return false }
	args := identityArgs()

	x, y := 7, 3
	err := c.Accelerate(&x, &y, args, 1_000_000)
	if _, ok := err.(*BusyError); !ok {
		t.Fatalf("got error %v (%T), want *BusyError", err, err)
	}
	if x != 0 || y != 0 {
		t.Errorf("BusyError did not zero the event: got (%d, %d)", x, y)
	}

	c.FPUGuard = nil
	x, y = 0, 0
	if err := c.Accelerate(&x, &y, args, 2_000_000); err != nil {
		t.Fatalf("Accelerate after recovery: %v", err)
	}
	if x != 7 || y != 3 {
		t.Errorf("buffered delta not folded into next call: got (%d, %d), want (7, 3)", x, y)
	}
}

func TestAccelerateYXRatioScalesYIndependently(t *testing.T) {
	c := NewCore(nil)
	args := identityArgs()
	args.YXRatio = fixedpt.FromInt(2)

	x, y := 4, 3
	if err := c.Accelerate(&x, &y, args, 1_000_000); err != nil {
		t.Fatalf("Accelerate: %v", err)
	}
	// no_accel leaves X alone; Y is independently doubled by YXRatio=2.
	if x != 4 || y != 6 {
		t.Errorf("Accelerate with YXRatio=2: got (%d, %d), want (4, 6)", x, y)
	}
}

func TestAccelerateRotation(t *testing.T) {
	c := NewCore(nil)
	args := identityArgs()
	args.AngleRotationDeg = fixedpt.FromInt(90)

	x, y := 10, 0
	if err := c.Accelerate(&x, &y, args, 1_000_000); err != nil {
		t.Fatalf("Accelerate: %v", err)
	}
	// A +90 degree rotation turns a pure-X motion into (approximately)
	// pure-Y motion of the same magnitude.
	if x > 1 || x < -1 {
		t.Errorf("rotated x = %d, want near 0", x)
	}
	if y < 9 || y > 10 {
		t.Errorf("rotated y = %d, want near 10", y)
	}
}
