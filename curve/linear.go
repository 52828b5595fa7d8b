// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package curve

import "github.com/periph-community/pointeraccel/fixedpt"

// linear implements driver/accel/linear.h's __linear_sens_fun: the
// "classic" RawAccel form with an implicit exponent of two.
func linear(speed, accel, offset, outputCap fixedpt.T) fixedpt.T {
	if speed <= offset {
		return fixedpt.One
	}

	x := speed - offset
	xSquare := fixedpt.Mul(x, x)
	sens := fixedpt.Mul(accel, fixedpt.Div(xSquare, speed))

	sign := fixedpt.One
	if outputCap > 0 {
		cap := outputCap - fixedpt.One
		if cap < 0 {
			cap = -cap
			sign = -fixedpt.One
		}
		if sens > cap {
			sens = cap
		}
	}

	return fixedpt.One + fixedpt.Mul(sign, sens)
}
