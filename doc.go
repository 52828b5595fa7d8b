// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pointeraccel is a container package for the pointer
// acceleration engine's subpackages: fixedpt (the Q32.32 numeric
// substrate), accelparams (live configuration), curve (the sensitivity
// functions), speed and speedecho (the speed estimator and its echo),
// accel (the acceleration core), evedit (the event-stream editor),
// hidreport (HID report descriptor parsing), and speedgauge/curveplot
// (terminal and PNG visualization).
package pointeraccel
