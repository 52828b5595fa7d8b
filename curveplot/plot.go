// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package curveplot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/periph-community/pointeraccel/curve"
	"github.com/periph-community/pointeraccel/fixedpt"
)

// Options configures one render.
type Options struct {
	// Width, Height are the output image's dimensions in pixels. Zero
	// means the package default.
	Width, Height int
	// MaxSpeed bounds the horizontal axis; zero means the package
	// default of 20 device-units/ms.
	MaxSpeed fixedpt.T
	// Samples is how many points are evaluated across [0, MaxSpeed].
	// Zero means the package default.
	Samples int
}

const (
	defaultWidth   = 640
	defaultHeight  = 400
	defaultSamples = 256
	margin         = 32
)

var defaultMaxSpeed = fixedpt.FromInt(20)

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = defaultWidth
	}
	if o.Height == 0 {
		o.Height = defaultHeight
	}
	if o.MaxSpeed == 0 {
		o.MaxSpeed = defaultMaxSpeed
	}
	if o.Samples == 0 {
		o.Samples = defaultSamples
	}
	return o
}

// Render samples curve.Sens(speed, a) across [0, opts.MaxSpeed] and draws the result as
// a line plot, writing a PNG to w.
func Render(w io.Writer, a curve.Args, opts Options) error {
	opts = opts.withDefaults()

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(opts.Width - 2*margin)
	plotH := float64(opts.Height - 2*margin)

	maxSens := fixedpt.One
	sens := make([]fixedpt.T, opts.Samples)
	step := fixedpt.Div(opts.MaxSpeed, fixedpt.FromInt(opts.Samples-1))
	for i := 0; i < opts.Samples; i++ {
		speed := fixedpt.Mul(fixedpt.FromInt(i), step)
		sens[i] = curve.Sens(speed, a)
		if sens[i] == fixedpt.Sentinel {
			sens[i] = maxSens
		}
		if sens[i] > maxSens {
			maxSens = sens[i]
		}
	}

	dc.SetRGB(0.15, 0.15, 0.15)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, margin, margin, margin+plotH)
	dc.DrawLine(margin, margin+plotH, margin+plotW, margin+plotH)
	dc.Stroke()

	dc.SetRGB(0.1, 0.45, 0.85)
	dc.SetLineWidth(2)
	for i, s := range sens {
		x := margin + plotW*float64(i)/float64(opts.Samples-1)
		y := margin + plotH - plotH*float64(s)/float64(maxSens)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	img := dc.Image().(draw.Image)
	drawLabel(img, fmt.Sprintf("%s curve", a.Kind), margin, margin/2)
	drawLabel(img, fmt.Sprintf("sens max %s", maxSens.String()), margin, opts.Height-margin/4)

	return dc.EncodePNG(w)
}

// drawLabel writes s onto img at (x, y) using the same
// golang.org/x/image/font/basicfont.Face7x13 font the teacher draws its
// own on-device text with.
func drawLabel(img draw.Image, s string, x, y int) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(s)
}
