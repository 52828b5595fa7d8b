// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package curve implements the four sensitivity-curve variants selected by
// the MODE parameter: no_accel, linear, natural, and synchronous. Each is a
// pure function from input speed to a dimensionless sensitivity multiplier,
// grounded on driver/accel/{no_accel,linear,natural,synchronous}.h.
package curve
