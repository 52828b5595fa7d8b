// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package speedgauge

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/maruel/ansi256"

	"periph.io/x/conn/v3"

	"github.com/periph-community/pointeraccel/fixedpt"
	"github.com/periph-community/pointeraccel/speedecho"
)

// Width is the number of cells the bar is drawn across.
const Width = 40

// Opts represents the options available for this gauge.
type Opts struct {
	// Width is the number of cells the bar is drawn across. Zero means
	// the package default.
	Width int
	// MaxSpeed is the input speed (device-units/ms, fixed point) that
	// fills the bar completely. Zero means the package default.
	MaxSpeed fixedpt.T
	Palette  *ansi256.Palette

	_ struct{}
}

// defaultMaxSpeed is a brisk but unremarkable flick speed; it just needs
// to give the bar a sensible full-scale reference.
var defaultMaxSpeed = fixedpt.FromInt(20)

// Dev renders an echoed speed value as a single-row bar at the console.
type Dev struct {
	echo     *speedecho.Value
	w        io.Writer
	width    int
	maxSpeed fixedpt.T
	palette  ansi256.Palette
	colored  bool

	buf bytes.Buffer
}

// New returns a Dev reading from echo.
func New(echo *speedecho.Value, opts *Opts) *Dev {
	width := Width
	maxSpeed := defaultMaxSpeed
	var p *ansi256.Palette
	if opts != nil {
		if opts.Width > 0 {
			width = opts.Width
		}
		if opts.MaxSpeed > 0 {
			maxSpeed = opts.MaxSpeed
		}
		p = opts.Palette
	}
	if p == nil {
		p = ansi256.Default
	}

	out := colorable.NewColorableStdout()
	return &Dev{
		echo:     echo,
		w:        out,
		width:    width,
		maxSpeed: maxSpeed,
		palette:  *p,
		colored:  isatty.IsTerminal(os.Stdout.Fd()),
	}
}

func (d *Dev) String() string {
	return "SpeedGauge"
}

// Halt implements conn.Resource. It clears the current line so the last
// gauge frame does not linger in the scrollback.
func (d *Dev) Halt() error {
	if !d.colored {
		return nil
	}
	_, err := d.w.Write([]byte("\r\033[K"))
	return err
}

// Refresh draws the current speed as a bar of filled cells, colored from
// green (slow) to red (at or above MaxSpeed). Called on a timer or after
// every processed frame; it never blocks on the caller.
func (d *Dev) Refresh() (int, error) {
	speed := d.echo.Load()
	filled := fixedpt.ToInt(fixedpt.Div(fixedpt.Mul(speed, fixedpt.FromInt(d.width)), d.maxSpeed))
	if filled < 0 {
		filled = 0
	}
	if filled > d.width {
		filled = d.width
	}

	d.buf.Reset()
	if d.colored {
		d.buf.WriteString("\r\033[0m")
		for i := 0; i < d.width; i++ {
			c := cellColor(i, d.width)
			if i < filled {
				d.buf.WriteString(d.palette.Block(c))
			} else {
				d.buf.WriteByte(' ')
			}
		}
		d.buf.WriteString("\033[0m ")
	} else {
		d.buf.WriteByte('\r')
		for i := 0; i < d.width; i++ {
			if i < filled {
				d.buf.WriteByte('#')
			} else {
				d.buf.WriteByte(' ')
			}
		}
	}
	fmt.Fprintf(&d.buf, " %s/ms", speed.String())
	n, err := d.buf.WriteTo(d.w)
	return int(n), err
}

// cellColor ramps from green at the bar's start to red at its end,
// giving a fast flick a visibly different color than a slow drag.
func cellColor(i, width int) color.NRGBA {
	if width <= 1 {
		return color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	}
	frac := i * 255 / (width - 1)
	return color.NRGBA{R: uint8(frac), G: uint8(255 - frac), B: 0, A: 255}
}

var _ conn.Resource = &Dev{}
