// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accel implements the acceleration core: per event, it rotates,
// DPI-normalizes, estimates speed, queries a sensitivity curve, and
// quantizes the result back to integer device units while carrying the
// fractional residue forward to the next event.
//
// Rotation and DPI normalization run before speed estimation so the
// curve always sees speed in a DPI-independent unit regardless of how
// the pointing device is configured.
package accel
