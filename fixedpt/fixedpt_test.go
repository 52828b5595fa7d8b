// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package fixedpt

import "testing"

func TestFromIntToInt(t *testing.T) {
	for _, n := range []int{0, 1, -1, 1000, -1000} {
		if got := ToInt(FromInt(n)); got != n {
			t.Errorf("ToInt(FromInt(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestToIntTruncatesTowardZero(t *testing.T) {
	cases := []struct {
		name string
		in   T
		want int
	}{
		{"positive fraction", One + One/2, 1},
		{"negative fraction", -(One + One/2), -1},
		{"small positive", One/2 - 1, 0},
		{"small negative", -(One/2 - 1), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ToInt(c.in); got != c.want {
				t.Errorf("ToInt(%v) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}

func TestMul(t *testing.T) {
	cases := []struct {
		a, b, want T
	}{
		{FromInt(2), FromInt(3), FromInt(6)},
		{FromInt(-2), FromInt(3), FromInt(-6)},
		{FromInt(-2), FromInt(-3), FromInt(6)},
		{One, One, One},
	}
	for _, c := range cases {
		if got := Mul(c.a, c.b); got != c.want {
			t.Errorf("Mul(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestDiv(t *testing.T) {
	if got := Div(FromInt(6), FromInt(3)); got != FromInt(2) {
		t.Errorf("Div(6,3) = %v, want %v", got, FromInt(2))
	}
	if got := Div(FromInt(1), 0); got != Sentinel {
		t.Errorf("Div(1,0) = %v, want Sentinel", got)
	}
}

func TestSqrt(t *testing.T) {
	if got := Sqrt(-One); got != Sentinel {
		t.Errorf("Sqrt(-1) = %v, want Sentinel", got)
	}
	if got := Sqrt(FromInt(4)); got != FromInt(2) {
		t.Errorf("Sqrt(4) = %v, want 2", got)
	}
	if got := Sqrt(0); got != 0 {
		t.Errorf("Sqrt(0) = %v, want 0", got)
	}
}

func TestExpZero(t *testing.T) {
	if got := Exp(0); got != One {
		t.Errorf("Exp(0) = %v, want One", got)
	}
}

func TestLnOfOneIsZero(t *testing.T) {
	if got := Ln(One); got != 0 {
		t.Errorf("Ln(1) = %v, want 0", got)
	}
}

func TestLnOfZeroIsSentinel(t *testing.T) {
	if got := Ln(0); got != Sentinel {
		t.Errorf("Ln(0) = %v, want Sentinel", got)
	}
}

func TestPowZeroExponentIsOne(t *testing.T) {
	if got := Pow(FromInt(5), 0); got != One {
		t.Errorf("Pow(5,0) = %v, want One", got)
	}
}

func TestPowNegativeBaseIsZero(t *testing.T) {
	if got := Pow(-One, One); got != 0 {
		t.Errorf("Pow(-1,1) = %v, want 0", got)
	}
}

func TestSinCosIdentityAtZero(t *testing.T) {
	if got := Sin(0); got != 0 {
		t.Errorf("Sin(0) = %v, want 0", got)
	}
	if got := Cos(0); Abs(got-One) > 1000 {
		t.Errorf("Cos(0) = %v, want ~One", got)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		in   T
		want string
	}{
		{One, "1.0"},
		{FromInt(-2), "-2.0"},
		{0, "0.0"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("%v.String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseString(t *testing.T) {
	cases := []struct {
		in   string
		want T
	}{
		{"1", One},
		{"-1", -One},
		{"0.5", OneHalf},
		{"-0.5", -OneHalf},
		{"2", FromInt(2)},
	}
	for _, c := range cases {
		if got := ParseString(c.in); got != c.want {
			t.Errorf("ParseString(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
