// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package speedecho

import (
	"encoding/binary"
	"io"
	"sync/atomic"

	"github.com/periph-community/pointeraccel/fixedpt"
)

// Width is the byte width of the echoed value: 8 bytes for the Q32.32
// fixedpt.T this module uses throughout.
const Width = 8

// Value holds the last-published input speed behind a single atomic
// 64-bit word, so a reader never observes a torn value even while the
// estimator is publishing concurrently from the input event path.
type Value struct {
	raw atomic.Int64
}

// Publish stores speed as the new echoed value. Called once per event by
// the speed estimator; never blocks.
func (v *Value) Publish(speed fixedpt.T) {
	v.raw.Store(int64(speed))
}

// Load returns the most recently published speed.
func (v *Value) Load() fixedpt.T {
	return fixedpt.T(v.raw.Load())
}

// Bytes serializes the current value to a big-endian byte sequence of
// exactly Width bytes. Each call is a self-consistent snapshot of one
// atomic load.
func (v *Value) Bytes() [Width]byte {
	var out [Width]byte
	binary.BigEndian.PutUint64(out[:], uint64(v.raw.Load()))
	return out
}

// Read implements io.Reader: a full read always returns exactly Width
// bytes and never a partial read, so callers never need to loop to
// assemble a complete value. A p shorter than Width gets
// io.ErrShortBuffer and no bytes.
func (v *Value) Read(p []byte) (int, error) {
	if len(p) < Width {
		return 0, io.ErrShortBuffer
	}
	b := v.Bytes()
	return copy(p, b[:]), nil
}
