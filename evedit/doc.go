// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package evedit rewrites a frame of Linux evdev-style relative-motion
// events: it collects REL_X/REL_Y values up to a SYN_REPORT, runs them
// through an acceleration core, and returns a new frame with the
// accelerated values substituted back in and REL_WHEEL rescaled. Event type,
// code, and value constants match linux/input-event-codes.h exactly so
// a captured USB HID/evdev trace can be replayed without translation.
//
// The collect-then-flush-on-SYN_REPORT shape mirrors how a kernel input
// handler batches relative motion before handing a frame to userspace.
package evedit
