// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hidreport

// maxReportContexts bounds how many distinct Report ID values one
// descriptor may multiplex; 32 comfortably covers every composite HID
// mouse/keyboard descriptor seen in practice.
const maxReportContexts = 32

// Item type codes (bits 3:2 of the control byte).
const (
	itemMain = iota
	itemGlobal
	itemLocal
)

// Global item tags (bits 7:4 when itemType == itemGlobal).
const (
	tagUsagePage = iota
	tagLogicalMinimum
	tagLogicalMaximum
	tagPhysicalMinimum
	tagPhysicalMaximum
	tagUnitExponent
	tagUnit
	tagReportSize
	tagReportID
	tagReportCount
)

// Main item tags (bits 7:4 when itemType == itemMain).
const (
	tagInput = iota + 8
	tagOutput
	tagCollection
	tagFeature
	tagEndCollection
)

// Local item tags (bits 7:4 when itemType == itemLocal).
const tagUsage = 0

// globalState is the subset of HID global items a field's geometry
// depends on; it resets to zero only at the start of descriptor
// parsing, never per-item (per the HID 1.11 spec's global item scoping).
type globalState struct {
	usagePage      uint16
	logicalMinimum int32
	reportSize     int
	reportCount    int
	reportID       byte
}

// context tracks the running bit offset for one Report ID's worth of
// input fields. Context zero is used when the descriptor declares no
// Report ID items at all.
type context struct {
	bitOffset int
}

// ParseDescriptor walks a raw HID report descriptor and returns every
// Input field it declares, in declaration order. Output, Feature, and
// Collection items are tracked only insofar as they affect parsing
// state; their contents are not reported.
func ParseDescriptor(desc []byte) ([]Field, error) {
	var (
		g        globalState
		usages   []uint16
		ctxs     [maxReportContexts]context
		fields   []Field
	)

	i := 0
	for i < len(desc) {
		b := desc[i]
		if b == 0xFE { // long item, not used by any mouse descriptor in practice
			if i+1 >= len(desc) {
				return nil, &MalformedError{Reason: "truncated long item"}
			}
			dataLen := int(desc[i+1])
			i += 2 + dataLen + 1
			continue
		}

		tag := b >> 4
		typ := (b >> 2) & 0x3
		sizeCode := b & 0x3
		size := [4]int{0, 1, 2, 4}[sizeCode]
		i++
		if i+size > len(desc) {
			return nil, &MalformedError{Reason: "truncated item"}
		}
		data := desc[i : i+size]
		i += size

		switch typ {
		case itemGlobal:
			switch int(tag) {
			case tagUsagePage:
				g.usagePage = uint16(unsignedValue(data))
			case tagLogicalMinimum:
				g.logicalMinimum = signedValue(data)
			case tagReportSize:
				g.reportSize = int(unsignedValue(data))
			case tagReportCount:
				g.reportCount = int(unsignedValue(data))
			case tagReportID:
				g.reportID = byte(unsignedValue(data))
			}

		case itemLocal:
			if int(tag) == tagUsage {
				usages = append(usages, uint16(unsignedValue(data)))
			}

		case itemMain:
			if int(tag) == tagInput {
				ctx := &ctxs[g.reportID%maxReportContexts]
				if ctx.bitOffset == 0 && g.reportID != 0 {
					// the Report ID byte itself precedes every field.
					ctx.bitOffset = 8
				}
				for n := 0; n < g.reportCount; n++ {
					var fieldUsage uint16
					switch {
					case n < len(usages):
						fieldUsage = usages[n]
					case len(usages) > 0:
						// fewer Usage items than fields (e.g. a usage
						// range): the last usage covers the remainder.
						fieldUsage = usages[len(usages)-1]
					}
					fields = append(fields, Field{
						ReportID:  g.reportID,
						BitOffset: ctx.bitOffset,
						BitSize:   g.reportSize,
						Signed:    g.logicalMinimum < 0,
						UsagePage: g.usagePage,
						Usage:     fieldUsage,
					})
					ctx.bitOffset += g.reportSize
				}
			}
			// local state does not persist across a Main item.
			usages = usages[:0]
		}
	}

	return fields, nil
}

func unsignedValue(data []byte) uint32 {
	var v uint32
	for i, b := range data {
		v |= uint32(b) << uint(8*i)
	}
	return v
}

func signedValue(data []byte) int32 {
	v := unsignedValue(data)
	if len(data) == 0 {
		return 0
	}
	bits := uint(8 * len(data))
	signBit := uint32(1) << (bits - 1)
	if v&signBit != 0 {
		v |= ^uint32(0) << bits
	}
	return int32(v)
}
