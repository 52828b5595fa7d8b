// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package curve

import "github.com/periph-community/pointeraccel/fixedpt"

// sigmaLinearThreshold is the point past which the activation degenerates
// to a hard clamp instead of the smooth tanh ramp.
var sigmaLinearThreshold = fixedpt.FromInt(16)

// synchronous is a gamma/sync-speed/motivity tanh ramp: a smooth rise
// through (syncSpeed, 1) that saturates toward motivity (or its
// reciprocal, below syncSpeed) as sigma widens the ramp. The original
// source (driver/accel/synchronous.h) ships only a `return FIXEDPT_ONE`
// stub; the full formula below is reconstructed from the curve's
// documented parameters rather than ported line-by-line.
func synchronous(speed, gamma, smooth, motivity, syncSpeed fixedpt.T) fixedpt.T {
	lm := fixedpt.Ln(motivity)
	g := fixedpt.Div(gamma, lm)
	ls := fixedpt.Ln(syncSpeed)
	m := fixedpt.Div(fixedpt.One, motivity)

	sigma := sigmaLinearThreshold
	if smooth != 0 {
		sigma = fixedpt.Div(fixedpt.OneHalf, smooth)
	}

	if sigma >= sigmaLinearThreshold {
		v := fixedpt.Mul(g, fixedpt.Ln(speed)-ls)
		negOne := -fixedpt.One
		switch {
		case v < negOne:
			return m
		case v > fixedpt.One:
			return motivity
		default:
			return fixedpt.Exp(fixedpt.Mul(v, lm))
		}
	}

	if speed == syncSpeed {
		return fixedpt.One
	}

	d := fixedpt.Ln(speed) - ls
	invSigma := fixedpt.Div(fixedpt.One, sigma)
	if d > 0 {
		v := fixedpt.Mul(g, d)
		ramp := fixedpt.Pow(fixedpt.Tanh(fixedpt.Mul(v, sigma)), invSigma)
		return fixedpt.Exp(fixedpt.Mul(lm, ramp))
	}
	v := fixedpt.Mul(-g, d)
	ramp := fixedpt.Pow(fixedpt.Tanh(fixedpt.Mul(v, sigma)), invSigma)
	return fixedpt.Exp(-fixedpt.Mul(lm, ramp))
}
