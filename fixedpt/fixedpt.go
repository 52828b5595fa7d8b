// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fixedpt

import (
	"math/bits"
)

// T is a Q32.32 fixed-point number: a signed 64-bit integer holding
// raw*2^-FBits. Fixed point avoids the rounding drift float64 would
// introduce across millions of per-frame accumulations.
type T int64

const (
	// FBits is the number of fraction bits.
	FBits = 32
	// WBits is the number of whole-part bits (including sign).
	WBits = 64 - FBits
)

// One is the fixed-point representation of 1.0.
const One T = 1 << FBits

// OneHalf is the fixed-point representation of 0.5.
const OneHalf T = One >> 1

// Two is the fixed-point representation of 2.0.
const Two T = One + One

// Sentinel is returned by operations (Sqrt of a negative argument, Div by
// zero, Ln of zero) that have no real result: the all-ones bit pattern,
// i.e. -1 as a signed integer.
const Sentinel T = -1

const (
	ln2    T = 2977044472 // fpt_rconst(0.69314718055994530942)
	ln2Inv T = 6196328019 // fpt_rconst(1.4426950408889634074)
	piFP   T = 13493037705
	halfPi T = piFP / 2
	twoPi  T = piFP * 2
)

// FromInt lifts a machine integer into fixed point.
func FromInt(i int) T { return T(int64(i) << FBits) }

// ToInt truncates toward zero, dropping the fractional part. Callers that
// need to carry the dropped fraction into the next frame should keep the
// remainder (a - FromInt(ToInt(a))) as residue rather than discarding it.
func ToInt(a T) int {
	if a < 0 {
		return -int((-a) >> FBits)
	}
	return int(a >> FBits)
}

// Abs returns the absolute value.
func Abs(a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// Add and Sub are plain integer operations; they wrap on overflow like any
// other int64 arithmetic.
func Add(a, b T) T { return a + b }
func Sub(a, b T) T { return a - b }

// Mul multiplies two fixed-point numbers, widening through a 128-bit
// intermediate (math/bits.Mul64) so the product is exact before the
// right-shift-and-truncate narrows it back to 64 bits.
func Mul(a, b T) T {
	neg := (a < 0) != (b < 0)
	ua, ub := uint64(Abs(a)), uint64(Abs(b))
	hi, lo := bits.Mul64(ua, ub)
	res := T((hi << (64 - FBits)) | (lo >> FBits))
	if neg {
		return -res
	}
	return res
}

// Div divides two fixed-point numbers, shifting the numerator left FBits
// bits in a 128-bit intermediate before the integer divide. Div by zero
// returns Sentinel; callers must check for it.
func Div(a, b T) (result T) {
	if b == 0 {
		return Sentinel
	}
	neg := (a < 0) != (b < 0)
	ua, ub := uint64(Abs(a)), uint64(Abs(b))
	hi := ua >> (64 - FBits)
	lo := ua << FBits
	defer func() {
		if recover() != nil {
			result = Sentinel
		}
	}()
	q, _ := bits.Div64(hi, lo, ub)
	result = T(q)
	if neg {
		result = -result
	}
	return result
}

// Sqrt returns the square root, or Sentinel for a negative argument.
// Monotonic non-decreasing on non-negative inputs.
func Sqrt(a T) T {
	if a < 0 {
		return Sentinel
	}
	if a == 0 || a == One {
		return a
	}

	invert := false
	x := a
	if x < One && x > 6 {
		invert = true
		x = Div(One, x)
	}

	iter := FBits
	if x > One {
		iter = 0
		for s := x; s > 0; s >>= 2 {
			iter++
		}
	}

	l := (x >> 1) + 1
	for i := 0; i < iter; i++ {
		l = (l + Div(x, l)) >> 1
	}
	if invert {
		return Div(One, l)
	}
	return l
}

func rconst(f float64) T {
	if f >= 0 {
		return T(f*float64(One) + 0.5)
	}
	return T(f*float64(One) - 0.5)
}

var (
	expP0 = rconst(1.66666666666666019037e-01)
	expP1 = rconst(-2.77777777770155933842e-03)
	expP2 = rconst(6.61375632143793436117e-05)
	expP3 = rconst(-1.65339022054652515390e-06)
	expP4 = rconst(4.13813679705723846039e-08)
)

// Exp returns e^x, range-reducing x = k*ln2 + r and evaluating a Padé-style
// rational approximant on r^2, then rescaling by 2^k (fixedptc.h fpt_exp).
func Exp(fp T) T {
	if fp == 0 {
		return One
	}
	xabs := Abs(fp)
	k := Mul(xabs, ln2Inv)
	k += OneHalf
	k &^= T((1 << FBits) - 1)
	if fp < 0 {
		k = -k
	}
	fp -= Mul(k, ln2)
	z := Mul(fp, fp)
	r := Two + Mul(z, expP0+Mul(z, expP1+Mul(z, expP2+Mul(z, expP3+Mul(z, expP4)))))
	xp := One + Div(Mul(fp, Two), r-fp)

	if k < 0 {
		return Mul(One>>uint((-k)>>FBits), xp)
	}
	return Mul(One<<uint(k>>FBits), xp)
}

// Tanh returns the hyperbolic tangent of x, built from Exp per
// fixedptc.h's fpt_tanh.
func Tanh(x T) T {
	e2x := Exp(Mul(Two, x))
	sinh := e2x - One
	cosh := e2x + One
	return Div(sinh, cosh)
}

var (
	lg0 = rconst(6.666666666666735130e-01)
	lg1 = rconst(3.999999999940941908e-01)
	lg2 = rconst(2.857142874366239149e-01)
	lg3 = rconst(2.222219843214978396e-01)
	lg4 = rconst(1.818357216161805012e-01)
	lg5 = rconst(1.531383769920937332e-01)
	lg6 = rconst(1.479819860511658591e-01)
)

// Ln returns the natural logarithm. x<=0 returns 0 for x<0 and Sentinel for
// x==0, matching the div-by-zero-adjacent sentinel convention used
// elsewhere in this package.
func Ln(x T) T {
	if x < 0 {
		return 0
	}
	if x == 0 {
		return Sentinel
	}

	log2 := T(0)
	xi := x
	for xi > Two {
		xi >>= 1
		log2++
	}
	f := xi - One
	s := Div(f, Two+f)
	z := Mul(s, s)
	w := Mul(z, z)
	r := Mul(w, lg1+Mul(w, lg3+Mul(w, lg5))) + Mul(z, lg0+Mul(w, lg2+Mul(w, lg4+Mul(w, lg6))))
	return Mul(ln2, log2<<FBits) + f - Mul(s, f-r)
}

// Log returns the logarithm of x in the given base.
func Log(x, base T) T {
	return Div(Ln(x), Ln(base))
}

// Pow returns n^exp. pow(x, 0) == One; pow(negative, *) == 0.
func Pow(n, exp T) T {
	if exp == 0 {
		return One
	}
	if n < 0 {
		return 0
	}
	return Exp(Mul(Ln(n), exp))
}

var sinK = [2]T{rconst(7.61e-03), rconst(1.6605e-01)}

// Sin returns the sine of a fixed-point radian value, range-reduced into
// [0, pi/2] and evaluated with a 2-term minimax polynomial (fixedptc.h
// fpt_sin). Precision is modest by construction of the source algorithm.
func Sin(fp T) T {
	sign := T(1)
	fp %= twoPi
	if fp < 0 {
		fp = twoPi + fp
	}
	if fp > halfPi && fp <= piFP {
		fp = piFP - fp
	} else if fp > piFP && fp <= piFP+halfPi {
		fp = fp - piFP
		sign = -1
	} else if fp > piFP+halfPi {
		fp = (piFP << 1) - fp
		sign = -1
	}
	sqr := Mul(fp, fp)
	result := sinK[0]
	result = Mul(result, sqr)
	result -= sinK[1]
	result = Mul(result, sqr)
	result += One
	result = Mul(result, fp)
	return sign * result
}

// Cos returns the cosine of a fixed-point radian value.
func Cos(a T) T { return Sin(halfPi - a) }

// Tan returns the tangent of a fixed-point radian value. At odd multiples
// of pi/2, Cos returns zero and Div returns Sentinel.
func Tan(a T) T { return Div(Sin(a), Cos(a)) }

// DegToRad converts a fixed-point degree value to radians.
func DegToRad(deg T) T { return Div(Mul(deg, piFP), FromInt(180)) }
