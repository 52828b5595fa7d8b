// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package evedit

import (
	"testing"

	"github.com/periph-community/pointeraccel/accel"
	"github.com/periph-community/pointeraccel/accelparams"
)

func newNoAccelStore() *accelparams.Store {
	st := accelparams.NewStore()
	st.Set(accelparams.Mode, "no_accel")
	return st
}

func TestProcessFrameIdentityPassthrough(t *testing.T) {
	ed := NewEditor(accel.NewCore(nil))
	store := newNoAccelStore()

	frame := []Event{
		{Type: EvRel, Code: RelX, Value: 5},
		{Type: EvRel, Code: RelY, Value: -3},
		{Type: EvSyn, Code: SynReport},
	}
	out := ed.ProcessFrame(frame, 1_000_000, store)

	var gotX, gotY int32
	sawSyn := false
	for _, ev := range out {
		switch {
		case ev.Type == EvRel && ev.Code == RelX:
			gotX = ev.Value
		case ev.Type == EvRel && ev.Code == RelY:
			gotY = ev.Value
		case ev.Type == EvSyn && ev.Code == SynReport:
			sawSyn = true
		}
	}
	if gotX != 5 || gotY != -3 {
		t.Errorf("ProcessFrame identity = (%d, %d), want (5, -3)", gotX, gotY)
	}
	if !sawSyn {
		t.Error("SYN_REPORT missing from the rewritten frame")
	}
	if out[len(out)-1].Type != EvSyn {
		t.Error("SYN_REPORT is not the last event in the rewritten frame")
	}
}

func TestProcessFrameElidesZeroedAxis(t *testing.T) {
	ed := NewEditor(accel.NewCore(nil))
	store := newNoAccelStore()

	frame := []Event{
		{Type: EvRel, Code: RelX, Value: 0},
		{Type: EvRel, Code: RelY, Value: 4},
		{Type: EvSyn, Code: SynReport},
	}
	out := ed.ProcessFrame(frame, 1_000_000, store)

	for _, ev := range out {
		if ev.Type == EvRel && ev.Code == RelX {
			t.Errorf("expected the zeroed X axis to be elided, found %+v", ev)
		}
	}
}

func TestProcessFrameGrowsAxisOnRotation(t *testing.T) {
	ed := NewEditor(accel.NewCore(nil))
	store := newNoAccelStore()
	store.Set(accelparams.AngleRotation, "90")

	frame := []Event{
		{Type: EvRel, Code: RelX, Value: 10},
		{Type: EvSyn, Code: SynReport},
	}
	out := ed.ProcessFrame(frame, 1_000_000, store)

	foundY := false
	for _, ev := range out {
		if ev.Type == EvRel && ev.Code == RelY {
			foundY = true
		}
	}
	if !foundY {
		t.Error("a 90 degree rotation of a pure-X event should synthesize a REL_Y event in grow mode")
	}
}

func TestProcessFrameDropsAxisWhenGrowthDisabled(t *testing.T) {
	ed := NewEditor(accel.NewCore(nil))
	ed.Opts.Growth = false
	store := newNoAccelStore()
	store.Set(accelparams.AngleRotation, "90")

	frame := []Event{
		{Type: EvRel, Code: RelX, Value: 10},
		{Type: EvSyn, Code: SynReport},
	}
	out := ed.ProcessFrame(frame, 1_000_000, store)

	for _, ev := range out {
		if ev.Type == EvRel && ev.Code == RelY {
			t.Error("drop mode should not synthesize a REL_Y event the original frame lacked")
		}
	}
}

func TestProcessFramePreservesOrderAroundWheel(t *testing.T) {
	ed := NewEditor(accel.NewCore(nil))
	store := newNoAccelStore()
	store.Set(accelparams.ScrollsPerTick, "3")

	frame := []Event{
		{Type: EvRel, Code: RelX, Value: 3},
		{Type: EvRel, Code: RelY, Value: 0},
		{Type: EvRel, Code: RelWheel, Value: 1},
		{Type: EvSyn, Code: SynReport},
	}
	out := ed.ProcessFrame(frame, 1_000_000, store)

	want := []Event{
		{Type: EvRel, Code: RelX, Value: 3},
		{Type: EvRel, Code: RelWheel, Value: 1},
		{Type: EvSyn, Code: SynReport},
	}
	if len(out) != len(want) {
		t.Fatalf("ProcessFrame = %+v, want %+v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("ProcessFrame()[%d] = %+v, want %+v (full output %+v)", i, out[i], want[i], out)
		}
	}
}

func TestProcessFrameYXRatioEndToEnd(t *testing.T) {
	ed := NewEditor(accel.NewCore(nil))
	store := newNoAccelStore()
	store.Set(accelparams.YXRatio, "2")

	frame := []Event{
		{Type: EvRel, Code: RelX, Value: 4},
		{Type: EvRel, Code: RelY, Value: 3},
		{Type: EvSyn, Code: SynReport},
	}
	out := ed.ProcessFrame(frame, 1_000_000, store)

	want := []Event{
		{Type: EvRel, Code: RelX, Value: 4},
		{Type: EvRel, Code: RelY, Value: 6},
		{Type: EvSyn, Code: SynReport},
	}
	if len(out) != len(want) {
		t.Fatalf("ProcessFrame = %+v, want %+v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("ProcessFrame()[%d] = %+v, want %+v (full output %+v)", i, out[i], want[i], out)
		}
	}
}

func TestProcessFrameRescalesWheel(t *testing.T) {
	ed := NewEditor(accel.NewCore(nil))
	store := newNoAccelStore()
	store.Set(accelparams.ScrollsPerTick, "3")

	frame := []Event{
		{Type: EvRel, Code: RelWheel, Value: 3},
		{Type: EvSyn, Code: SynReport},
	}
	out := ed.ProcessFrame(frame, 1_000_000, store)

	for _, ev := range out {
		if ev.Type == EvRel && ev.Code == RelWheel && ev.Value != 3 {
			t.Errorf("wheel at the default ScrollsPerTick = %d, want unchanged 3", ev.Value)
		}
	}
}
