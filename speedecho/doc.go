// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package speedecho exposes the most recently measured input speed (§4.3,
// §4.7, §6) to readers outside the acceleration hot path: a UI refresh
// loop, a diagnostic gauge (see the sibling speedgauge package), or a
// test. A single writer (the speed estimator) publishes; any number of
// readers observe either the old or the new value, never a torn mixture,
// because the value is stored behind a single atomic word.
package speedecho
