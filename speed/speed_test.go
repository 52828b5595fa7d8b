// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package speed

import (
	"testing"

	"github.com/periph-community/pointeraccel/fixedpt"
	"github.com/periph-community/pointeraccel/speedecho"
)

func TestClockFirstTickReturnsOneMillisecond(t *testing.T) {
	c := NewClock()
	if got := c.Tick(123); got != fixedpt.One {
		t.Errorf("first Tick = %v, want One", got)
	}
}

func TestClockClampsLongFrametime(t *testing.T) {
	c := NewClock()
	c.Tick(0)
	got := c.Tick(1_000_000_000) // one full second
	if got != MaxFrametimeMs {
		t.Errorf("Tick after a 1s gap = %v, want MaxFrametimeMs", got)
	}
}

func TestClockFallsBackOnZeroInterval(t *testing.T) {
	c := NewClock()
	c.Tick(0)
	first := c.Tick(5_000_000)
	second := c.Tick(5_000_000) // zero-length interval
	if second != first {
		t.Errorf("zero-interval Tick = %v, want the previous frametime %v", second, first)
	}
}

func TestInputSpeedPythagorean(t *testing.T) {
	e := NewEstimator(nil)
	// (3, 4) over 1ms has a magnitude of 5.
	got := e.InputSpeed(fixedpt.FromInt(3), fixedpt.FromInt(4), fixedpt.One)
	want := fixedpt.FromInt(5)
	if diff := fixedpt.Abs(got - want); diff > fixedpt.OneHalf/1000 {
		t.Errorf("InputSpeed(3,4,1ms) = %v, want ~5", got)
	}
}

func TestInputSpeedPublishesToEcho(t *testing.T) {
	echo := &speedecho.Value{}
	e := NewEstimator(echo)
	e.InputSpeed(fixedpt.FromInt(3), fixedpt.FromInt(4), fixedpt.One)
	if got := echo.Load(); got == 0 {
		t.Error("InputSpeed did not publish a nonzero value to the echo")
	}
}
