// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accelparams is a read-mostly, live-reloadable store of the text
// parameters that configure the acceleration core and curve library.
//
// A writer stores a decimal string with no locking, and every reader
// parses that string back to fixed point on its own, so a torn read
// costs at most one slightly-wrong event rather than a crash — the
// same tradeoff a sysfs module parameter makes.
package accelparams
