// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hidreport

// Generic Desktop (0x01) and Button (0x09) usage pages and usages, as
// assigned by the HID Usage Tables specification.
const (
	UsagePageGenericDesktop uint16 = 0x01
	UsagePageButton         uint16 = 0x09

	UsageX     uint16 = 0x30
	UsageY     uint16 = 0x31
	UsageWheel uint16 = 0x38
)

// Report bundles one Report ID's decoded relative-mouse fields.
type Report struct {
	Button int64
	X      int64
	Y      int64
	Wheel  int64
}

// Layout is the set of fields a relative mouse's input report carries.
// Button is whatever width the descriptor declares (commonly a button
// bitmap); a caller interested in individual buttons tests bits of
// Report.Button itself.
type Layout struct {
	Button Field
	X      Field
	Y      Field
	Wheel  Field
}

// FindLayout scans fields (as returned by ParseDescriptor) for the
// Generic Desktop X/Y/Wheel usages and the first Button-page field, and
// returns the Layout built from them. It returns a MalformedError if X
// or Y is missing; a relative mouse is meaningless without them.
func FindLayout(fields []Field) (*Layout, error) {
	var l Layout
	var haveX, haveY bool
	for _, f := range fields {
		switch {
		case f.UsagePage == UsagePageButton && l.Button.BitSize == 0:
			l.Button = f
		case f.UsagePage == UsagePageGenericDesktop && f.Usage == UsageX:
			l.X = f
			haveX = true
		case f.UsagePage == UsagePageGenericDesktop && f.Usage == UsageY:
			l.Y = f
			haveY = true
		case f.UsagePage == UsagePageGenericDesktop && f.Usage == UsageWheel:
			l.Wheel = f
		}
	}
	if !haveX || !haveY {
		return nil, &MalformedError{Reason: "descriptor has no X/Y usage pair"}
	}
	return &l, nil
}

// Decode extracts every field in l from report. A field with BitSize
// zero (Wheel, on a descriptor that doesn't report one) decodes to zero
// without touching report.
func (l *Layout) Decode(report []byte) (Report, error) {
	var out Report
	var err error
	if l.Button.BitSize > 0 {
		if out.Button, err = l.Button.Value(report); err != nil {
			return Report{}, err
		}
	}
	if out.X, err = l.X.Value(report); err != nil {
		return Report{}, err
	}
	if out.Y, err = l.Y.Value(report); err != nil {
		return Report{}, err
	}
	if l.Wheel.BitSize > 0 {
		if out.Wheel, err = l.Wheel.Value(report); err != nil {
			return Report{}, err
		}
	}
	return out, nil
}
