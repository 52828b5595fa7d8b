// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hidreport

// Field locates one value within an input report: a bit range, not
// necessarily byte-aligned, that is interpreted as signed or unsigned
// little-endian.
type Field struct {
	// ReportID is the report this field belongs to; zero when the
	// descriptor declares no Report ID items at all.
	ReportID byte
	// BitOffset is the field's first bit, counted from bit zero of the
	// report (the Report ID byte itself, when present, occupies bits
	// 0-7 and is not part of any field's BitOffset).
	BitOffset int
	// BitSize is the field's width in bits.
	BitSize int
	// Signed marks a field whose Logical Minimum was negative.
	Signed bool
	// UsagePage and Usage identify what the field means (e.g. Generic
	// Desktop page / X usage), for descriptor-driven lookup.
	UsagePage uint16
	Usage     uint16
}

// maxFieldBits is the widest field this package supports; wider fields
// would overflow the uint64 accumulator ExtractBits builds into.
const maxFieldBits = 64

// ExtractBits reads bitSize bits starting at bitOffset from report
// (which must include its leading Report ID byte, if any, at offset
// zero as HID transmits it) and returns them as an unsigned
// little-endian integer; Field.Value applies sign extension.
func ExtractBits(report []byte, bitOffset, bitSize int) (uint64, error) {
	if bitSize <= 0 || bitSize > maxFieldBits {
		return 0, &MalformedError{Reason: "field bit size out of range"}
	}
	needed := (bitOffset + bitSize + 7) / 8
	if len(report) < needed {
		return 0, &MalformedError{Reason: "report shorter than field requires"}
	}

	var val uint64
	for i := 0; i < bitSize; i++ {
		bitIndex := bitOffset + i
		b := report[bitIndex/8]
		bit := (b >> uint(bitIndex%8)) & 1
		val |= uint64(bit) << uint(i)
	}
	return val, nil
}

// Value extracts and, if f.Signed, sign-extends f's field from report.
func (f Field) Value(report []byte) (int64, error) {
	raw, err := ExtractBits(report, f.BitOffset, f.BitSize)
	if err != nil {
		return 0, err
	}
	if !f.Signed || f.BitSize == maxFieldBits {
		return int64(raw), nil
	}
	signBit := uint64(1) << uint(f.BitSize-1)
	if raw&signBit != 0 {
		raw |= ^uint64(0) << uint(f.BitSize)
	}
	return int64(raw), nil
}
