// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diffdump renders a unified diff between an expected and actual
// table dump, used by desc's test failure paths to show exactly which rows
// of H, a lTable, or a monomial listing diverged instead of dumping both
// tables in full.
package diffdump

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff of want vs. got, each pre-rendered as a
// line-per-record dump (e.g. one line per H row, one line per monomial).
// name labels the two sides in the diff header.
func Unified(name string, want, got []string) string {
	diff := difflib.UnifiedDiff{
		A:        want,
		B:        got,
		FromFile: name + " (want)",
		ToFile:   name + " (got)",
		Context:  2,
	}
	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("diffdump: failed to render diff for %s: %v", name, err)
	}
	if out == "" {
		return fmt.Sprintf("diffdump: %s: no differences found (mismatch must be elsewhere)", name)
	}
	return out
}

// Lines splits s on newlines without keeping the trailing empty element a
// naive strings.Split would leave after a final newline.
func Lines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
