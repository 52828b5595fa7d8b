// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package fixedpt implements a Q32.32 fixed-point numeric type that stands
// in for hardware floating point on the acceleration hot path.
//
// A T is a signed 64-bit integer interpreted as raw*2^-32. Addition and
// subtraction are plain integer operations; multiplication and division
// widen through a 128-bit intermediate (via math/bits) so that neither
// operation silently loses precision before narrowing back to 64 bits.
package fixedpt
