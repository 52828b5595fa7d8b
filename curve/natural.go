// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package curve

import "github.com/periph-community/pointeraccel/fixedpt"

// natural implements driver/accel/natural.h's __natural_sens_fun: a smooth
// saturating ramp from one at speed==offset toward limit as speed grows
// without bound.
func natural(speed, offset, decayRate, limit fixedpt.T) fixedpt.T {
	if speed <= offset {
		return fixedpt.One
	}
	if limit <= fixedpt.One {
		return fixedpt.One
	}
	if decayRate <= 0 {
		return fixedpt.One
	}

	l := limit - fixedpt.One
	accel := fixedpt.Div(decayRate, fixedpt.Abs(l))
	constant := fixedpt.Div(-l, accel)

	offsetX := offset - speed
	decay := fixedpt.Exp(fixedpt.Mul(accel, offsetX))

	outputDenom := fixedpt.Div(decay, accel) - offsetX
	output := fixedpt.Mul(l, outputDenom) + constant

	return fixedpt.Div(output, speed) + fixedpt.One
}
