// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ensure implements the project-wide precondition-failure
// primitive described by the descriptor's error taxonomy: a violated
// precondition is not a recoverable error, it is a programming bug, and
// is reported by panicking with a descriptive message instead of
// returning an error a caller might plausibly ignore.
package ensure

import "fmt"

// That panics with a formatted message if cond is false. Callers prefix
// format with their own package tag ("desc: ", "tval: ", ...) to match
// the per-package panic-message convention the rest of the module uses.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
