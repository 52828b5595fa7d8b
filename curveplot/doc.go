// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package curveplot renders a curve's sensitivity-versus-speed response
// to a PNG image, for visually comparing two configurations instead of
// reading numbers out of a table.
//
// Axis labels are drawn with golang.org/x/image/font/basicfont onto a
// github.com/fogleman/gg canvas, the same bitmap-font-on-raster-canvas
// approach used for labeling small e-paper and OLED displays.
package curveplot
