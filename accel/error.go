// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package accel

import "fmt"

// SentinelError is returned when a step of the acceleration pipeline
// produced fixedpt.Sentinel instead of a real value: the DPI-normalization
// divide (an InputDPI of zero), the speed-cap square root, or the curve's
// sensitivity. The event is passed through unmodified rather than
// accelerated; the caller should still forward the original deltas.
type SentinelError struct {
	// Curve names the active curve kind at the time of the failure.
	Curve string
}

func (e *SentinelError) Error() string {
	return fmt.Sprintf("accel: non-finite intermediate value (curve %q)", e.Curve)
}

// BusyError is returned when the core's FPU guard hook reports the
// floating/fixed-point unit unavailable for this call (the Go analogue of
// driver/accel.c's irq_fpu_usable() check). The caller should drop the
// event's axes to zero rather than forward an unaccelerated delta.
type BusyError struct{}

func (e *BusyError) Error() string {
	return "accel: arithmetic unit unavailable, event buffered for next frame"
}
