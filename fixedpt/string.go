// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fixedpt

import (
	"log"
	"math/bits"
	"strings"
)

// DefaultDecimals is the number of fraction digits ToString emits unless
// told otherwise, matching fixedptc.h's default of 10 for a 64-bit width.
const DefaultDecimals = 10

// ToString renders a into a decimal string with at most maxDec fraction
// digits (always at least one, even for maxDec == 0), trimming a single
// trailing zero (fixedptc.h's fpt_str). Passing maxDec < 0 selects
// DefaultDecimals.
func ToString(a T, maxDec int) string {
	if maxDec < 0 {
		maxDec = DefaultDecimals
	}

	var sb strings.Builder
	if a < 0 {
		sb.WriteByte('-')
		a = -a
	}

	ip := uint64(ToInt(a))
	var digits [20]byte
	n := 0
	if ip == 0 {
		digits[n] = '0'
		n++
	}
	for ip != 0 {
		digits[n] = '0' + byte(ip%10)
		ip /= 10
		n++
	}
	for i := n - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	sb.WriteByte('.')

	frac := make([]byte, 0, maxDec)
	fr := uint64(a) & ((1 << FBits) - 1)
	ndec := 0
	for {
		fr *= 10
		frac = append(frac, '0'+byte((fr>>FBits)%10))
		fr &= (1 << FBits) - 1
		ndec++
		if fr == 0 || ndec >= maxDec {
			break
		}
	}
	if ndec > 1 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	sb.Write(frac)
	return sb.String()
}

// String implements fmt.Stringer with the default precision.
func (t T) String() string { return ToString(t, -1) }

// ParseString parses a decimal string into fixed point: an optional sign,
// an optional integer part, an optional '.', and an optional fraction
// part. Any other character is skipped with a single debug log line rather
// than failing the parse, since parameter writes come from sysfs and
// userspace typos shouldn't wedge the device.
func ParseString(s string) T {
	neg := false
	var whole, fracDigits int64
	fracLen := 0
	inFrac := false
	started := false
	warned := false

	for _, c := range s {
		switch {
		case c == '-' && !started:
			neg = true
			started = true
		case c == '.' && !inFrac:
			inFrac = true
			started = true
		case c >= '0' && c <= '9':
			started = true
			d := int64(c - '0')
			if !inFrac {
				whole = whole*10 + d
			} else if fracLen < DefaultDecimals {
				fracDigits = fracDigits*10 + d
				fracLen++
			}
		default:
			if !warned {
				log.Printf("fixedpt: skipping unsupported character %q while parsing %q", c, s)
				warned = true
			}
		}
	}

	result := FromInt(int(whole))
	if fracLen > 0 {
		scale := uint64(1)
		for i := 0; i < fracLen; i++ {
			scale *= 10
		}
		hi, lo := bits.Mul64(uint64(fracDigits), uint64(One))
		q, _ := bits.Div64(hi, lo, scale)
		result += T(q)
	}
	if neg {
		result = -result
	}
	return result
}
