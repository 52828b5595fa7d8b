// Copyright 2026 The Pointeraccel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package speedgauge renders the live value of a speedecho.Value as an
// ANSI-256 colored bar on a terminal, for watching the estimator react
// to real input without instrumenting anything else.
//
// It pairs github.com/maruel/ansi256 with github.com/mattn/go-colorable
// for Windows-safe ANSI output, and uses github.com/mattn/go-isatty to
// skip coloring a non-terminal writer (a log file, a piped capture).
package speedgauge
