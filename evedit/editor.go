// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package evedit

import (
	"log"

	"github.com/periph-community/pointeraccel/accel"
	"github.com/periph-community/pointeraccel/accelparams"
	"github.com/periph-community/pointeraccel/curve"
	"github.com/periph-community/pointeraccel/fixedpt"
)

// nativeScrollTicks is the wheel resolution ScrollsPerTick is expressed
// relative to (three detents per native tick is the common USB HID mouse
// default).
const nativeScrollTicks = 3

// Options configures how Editor resolves an event-buffer-growth conflict:
// a rotated frame can need to report motion on an axis the device never
// sent this cycle.
type Options struct {
	// Growth appends a synthetic event for an axis the accelerated frame
	// needs but the original frame lacked. When false, that motion is
	// silently dropped instead (the "drop mode" fallback).
	Growth bool
}

// DefaultOptions returns the grow-mode default: Go slices can always be
// appended to, so there is no buffer-size reason to prefer dropping.
func DefaultOptions() Options {
	return Options{Growth: true}
}

// Editor owns one input stream's acceleration core and rewrites frames
// read from that stream.
type Editor struct {
	Core *accel.Core
	Opts Options
}

// NewEditor returns an Editor backed by core, using DefaultOptions.
func NewEditor(core *accel.Core) *Editor {
	return &Editor{Core: core, Opts: DefaultOptions()}
}

// ResolveArgs reads every parameter the core needs from store. It is
// called once per frame, immediately before Accelerate, so a
// configuration change takes effect on the very next event; no value
// is cached across calls.
func ResolveArgs(store *accelparams.Store) accel.Args {
	return accel.Args{
		SensMult:         store.Float(accelparams.SensMult),
		YXRatio:          store.Float(accelparams.YXRatio),
		InputDPI:         store.Float(accelparams.InputDPI),
		AngleRotationDeg: store.Float(accelparams.AngleRotation),
		Curve: curve.Args{
			Kind:      curve.ParseKind(store.Get(accelparams.Mode)),
			Accel:     store.Float(accelparams.Accel),
			Offset:    store.Float(accelparams.Offset),
			OutputCap: store.Float(accelparams.OutputCap),
			DecayRate: store.Float(accelparams.DecayRate),
			Limit:     store.Float(accelparams.Limit),
			Gamma:     store.Float(accelparams.Gamma),
			Smooth:    store.Float(accelparams.Smooth),
			Motivity:  store.Float(accelparams.Motivity),
			SyncSpeed: store.Float(accelparams.SyncSpeed),
		},
		PreScaleX:  store.Float(accelparams.PreScaleX),
		PreScaleY:  store.Float(accelparams.PreScaleY),
		PostScaleX: store.Float(accelparams.PostScaleX),
		PostScaleY: store.Float(accelparams.PostScaleY),
		SpeedCap:   store.Float(accelparams.SpeedCap),
	}
}

// ProcessFrame rewrites one complete frame: every event up to and
// including a trailing SYN_REPORT. nowNs is the frame's monotonic
// timestamp, used to derive the frametime for this event. The returned
// slice is a new frame; the input is never mutated.
//
// REL_X/REL_Y are summed into a single delta and replaced by the
// accelerated result; zeroed axes are elided rather than emitted as a
// zero-value event. The accelerated axis events are emitted at the
// position of the first REL_X/REL_Y event in the original frame (or,
// if the frame carried no axis event at all, just before the first
// SYN_REPORT), so any event that originally arrived between the axis
// events and SYN_REPORT — a wheel tick, say — keeps its place relative
// to them instead of being pushed ahead of the axis events. REL_WHEEL
// is rescaled by ScrollsPerTick and passed through unaccelerated.
// Every other event is copied through unchanged, in its original
// relative order.
func (ed *Editor) ProcessFrame(frame []Event, nowNs int64, store *accelparams.Store) []Event {
	var dx, dy int
	hasX, hasY := false, false

	scrollsPerTick := fixedpt.ToInt(store.Float(accelparams.ScrollsPerTick))
	if scrollsPerTick <= 0 {
		scrollsPerTick = nativeScrollTicks
	}

	sawAxis := false
	insertBefore := len(frame)
	for i, ev := range frame {
		switch {
		case ev.Type == EvRel && ev.Code == RelX:
			dx += int(ev.Value)
			hasX = true
			if !sawAxis {
				insertBefore = i
				sawAxis = true
			}
		case ev.Type == EvRel && ev.Code == RelY:
			dy += int(ev.Value)
			hasY = true
			if !sawAxis {
				insertBefore = i
				sawAxis = true
			}
		case !sawAxis && insertBefore == len(frame) && ev.Type == EvSyn && ev.Code == SynReport:
			insertBefore = i
		}
	}

	args := ResolveArgs(store)
	x, y := dx, dy
	if err := ed.Core.Accelerate(&x, &y, args, nowNs); err != nil {
		log.Printf("evedit: acceleration step failed, delta buffered for the next frame: %v", err)
	}

	out := make([]Event, 0, len(frame)+2)
	for i, ev := range frame {
		if i == insertBefore {
			out = ed.appendAxis(out, RelX, x, hasX)
			out = ed.appendAxis(out, RelY, y, hasY)
		}
		switch {
		case ev.Type == EvRel && ev.Code == RelX, ev.Type == EvRel && ev.Code == RelY:
			// folded into the accelerated axis events emitted above
		case ev.Type == EvRel && ev.Code == RelWheel:
			scaled := int(ev.Value) * scrollsPerTick / nativeScrollTicks
			out = append(out, Event{Type: EvRel, Code: RelWheel, Value: int32(scaled)})
		default:
			out = append(out, ev)
		}
	}
	if insertBefore == len(frame) {
		out = ed.appendAxis(out, RelX, x, hasX)
		out = ed.appendAxis(out, RelY, y, hasY)
	}
	return out
}

// appendAxis folds an axis's accelerated value into out: a nonzero value
// is always emitted (growing the frame if the axis was not present
// before, unless growth is disabled), and a zero value is simply
// omitted rather than emitted as a no-op event.
func (ed *Editor) appendAxis(out []Event, code uint16, value int, hadAxis bool) []Event {
	if value == 0 {
		return out
	}
	if !hadAxis && !ed.Opts.Growth {
		return out
	}
	return append(out, Event{Type: EvRel, Code: code, Value: int32(value)})
}

