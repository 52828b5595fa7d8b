// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package accelparams

import (
	"sync/atomic"

	"github.com/periph-community/pointeraccel/fixedpt"
)

// Name identifies one parameter in a Store.
type Name string

// Recognized parameter names. Values are decimal strings parsed to
// fixedpt.T on every read (see the package doc comment).
const (
	SensMult      Name = "SENS_MULT"
	YXRatio       Name = "YX_RATIO"
	InputDPI      Name = "INPUT_DPI"
	Mode          Name = "MODE"
	AngleRotation Name = "ANGLE_ROTATION"

	Accel     Name = "ACCEL"
	Offset    Name = "OFFSET"
	OutputCap Name = "OUTPUT_CAP"

	DecayRate Name = "DECAY_RATE"
	Limit     Name = "LIMIT"

	Gamma      Name = "GAMMA"
	Smooth     Name = "SMOOTH"
	Motivity   Name = "MOTIVITY"
	SyncSpeed  Name = "SYNC_SPEED"

	// PreScaleX, PreScaleY, PostScaleX, PostScaleY, SpeedCap, ScrollsPerTick
	// are supplemental knobs layered on top of the core parameter set;
	// their defaults are the identity (no-op) values.
	PreScaleX      Name = "PRE_SCALE_X"
	PreScaleY      Name = "PRE_SCALE_Y"
	PostScaleX     Name = "POST_SCALE_X"
	PostScaleY     Name = "POST_SCALE_Y"
	SpeedCap       Name = "SPEED_CAP"
	ScrollsPerTick Name = "SCROLLS_PER_TICK"
)

// Defaults holds the string form of every parameter's default value.
var Defaults = map[Name]string{
	SensMult:      "1",
	YXRatio:       "1",
	InputDPI:      "1000",
	Mode:          "linear",
	AngleRotation: "0",

	Accel:     "0",
	Offset:    "0",
	OutputCap: "0",

	DecayRate: "0.1",
	Limit:     "1.5",

	Gamma:     "1",
	Smooth:    "0.5",
	Motivity:  "1.5",
	SyncSpeed: "5",

	PreScaleX:      "1",
	PreScaleY:      "1",
	PostScaleX:     "1",
	PostScaleY:     "1",
	SpeedCap:       "0",
	ScrollsPerTick: "3",
}

// slot is one atomically-swappable string-valued parameter.
type slot struct {
	v atomic.Pointer[string]
}

func newSlot(def string) *slot {
	s := &slot{}
	s.v.Store(&def)
	return s
}

func (s *slot) set(v string) { s.v.Store(&v) }

func (s *slot) get() string {
	p := s.v.Load()
	if p == nil {
		return ""
	}
	return *p
}

// Store is a flat name->string parameter map, single-writer/many-reader by
// contract: Set never blocks a concurrent Float/Get, and a torn read
// produces at worst one mis-parsed value for one event.
type Store struct {
	slots map[Name]*slot
}

// NewStore returns a Store initialized to the defaults in Defaults.
func NewStore() *Store {
	st := &Store{slots: make(map[Name]*slot, len(Defaults))}
	for name, def := range Defaults {
		st.slots[name] = newSlot(def)
	}
	return st
}

// Set stores the decimal-string value for name. Unknown names are
// ignored; the configuration surface is a fixed set.
func (s *Store) Set(name Name, value string) {
	if sl, ok := s.slots[name]; ok {
		sl.set(value)
	}
}

// Get returns the current raw string value of name.
func (s *Store) Get(name Name) string {
	if sl, ok := s.slots[name]; ok {
		return sl.get()
	}
	return ""
}

// Float parses name's current string value to fixed point. Called once per
// event per parameter on the hot path; the parser itself never allocates
// on the heap for conforming input (fixedpt.ParseString operates on the
// string's backing array only).
func (s *Store) Float(name Name) fixedpt.T {
	return fixedpt.ParseString(s.Get(name))
}
