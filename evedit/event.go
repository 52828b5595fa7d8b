// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package evedit

// Event mirrors the Linux kernel's struct input_event, minus its
// timestamp; ProcessFrame takes the current time as a separate nowNs
// argument instead, so callers (and tests) can drive frames without
// fabricating a struct timeval.
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Event type and code constants, taken verbatim from
// linux/input-event-codes.h so that captured device traffic needs no
// translation.
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
	EvRel uint16 = 0x02
)

const (
	RelX     uint16 = 0x00
	RelY     uint16 = 0x01
	RelWheel uint16 = 0x08
)

// SynReport is the code carried by an EvSyn event that flushes an
// accumulated frame.
const SynReport uint16 = 0
