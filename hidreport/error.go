// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hidreport

import "fmt"

// MalformedError is returned when a descriptor or report is too short or
// otherwise inconsistent with the layout it claims to describe.
type MalformedError struct {
	// Reason is a short, human-readable description of what failed.
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("hidreport: malformed input: %s", e.Reason)
}
