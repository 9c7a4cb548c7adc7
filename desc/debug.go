// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"fmt"
	"io"
)

// DumpTo writes To, Tv and H as human-readable tables to w, the Go
// equivalent of the original's tbl_print/tbl_print_H debug dumps, gated
// behind an explicit call in place of a compile-time #ifdef DEBUG toggle.
func (d *Desc) DumpTo(w io.Writer) {
	fmt.Fprintf(w, "To (nc=%d, nv=%d):\n", d.nc, d.nv)
	for i := 0; i < d.nc; i++ {
		fmt.Fprintf(w, "(%2d) %s o=%d\n", i, d.toMono(i), d.ords[i])
	}
	fmt.Fprintf(w, "Tv:\n")
	for i := 0; i < d.nc; i++ {
		fmt.Fprintf(w, "(%2d) %s\n", i, d.tvMono(i))
	}
	fmt.Fprintf(w, "H (%d x %d), sort=%v:\n", d.nv, d.hcol, d.sortVar)
	for r := 0; r < d.nv; r++ {
		fmt.Fprintf(w, "%2d | ", d.sortVar[r])
		for c := 0; c < d.hcol; c++ {
			fmt.Fprintf(w, "%3d ", d.h[r*d.hcol+c])
		}
		fmt.Fprintln(w)
	}
}

// DumpLines renders the To rows of DumpTo (one line per monomial, without
// the header line) as a slice of lines, convenient for diffdump.Unified
// comparisons in tests. The Tv and H sections are not included.
func (d *Desc) DumpLines() []string {
	var lines []string
	for i := 0; i < d.nc; i++ {
		lines = append(lines, fmt.Sprintf("(%2d) %s o=%d", i, d.toMono(i), d.ords[i]))
	}
	return lines
}
