// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package speed converts a (dx, dy, dt) triple into an instantaneous
// pointer speed in device-units per millisecond, and derives a clamped
// frametime from monotonic timestamps.
package speed
