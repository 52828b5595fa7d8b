// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hidreport walks a USB HID report descriptor well enough to
// locate a relative mouse's button, X, Y, and wheel fields, and extracts
// their values from an input report given those field locations. It
// tracks Report ID context switches (a descriptor may multiplex several
// report layouts behind one Report ID byte) and signed little-endian
// bit-packed fields that need not be byte-aligned.
//
// Parsing follows the HID 1.11 item grammar directly: a one-byte
// control prefix (tag/type/size) followed by 0, 1, 2, or 4 bytes of
// item data, with global items persisting across the whole descriptor
// and local items (Usage) resetting at each Main item.
package hidreport
