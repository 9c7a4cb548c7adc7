// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"testing"

	"github.com/accelgo/tpsadesc/mono"
)

// naiveEnumerate walks every monomial component-wise within varOrds and
// keeps the ones a built *Desc considers valid. It is quadratic-ish and
// only meant for small shapes in tests, as an independent check on
// makeHigherOrdMonos's pruning, which that function's doc comment flags as
// unverified for heterogeneous shapes.
func naiveEnumerate(d *Desc, varOrds []uint8) map[string]bool {
	nv := len(varOrds)
	out := map[string]bool{}
	m := make(mono.Mono, nv)
	var rec func(i int)
	rec = func(i int) {
		if i == nv {
			if d.isValidMono(m) {
				cp := make(mono.Mono, nv)
				mono.Copy(cp, m)
				out[cp.String()] = true
			}
			return
		}
		for v := uint8(0); v <= varOrds[i]; v++ {
			m[i] = v
			rec(i + 1)
		}
		m[i] = 0
	}
	rec(0)
	return out
}

// TestEnumCrossShape checks makeHigherOrdMonos's pruning against a naive
// brute-force enumerator for a handful of heterogeneous shapes, including
// the [5,1,5] shape the governing specification names as the case to watch
// for the open question around varAtIdx pruning under non-uniform caps.
func TestEnumCrossShape(t *testing.T) {
	shapes := [][]uint8{
		{5, 1, 5},
		{1, 5, 1},
		{4, 2, 1},
		{3, 3, 3},
		{1, 1, 1, 1},
	}
	for _, varOrds := range shapes {
		d := New(len(varOrds), varOrds)

		want := naiveEnumerate(d, varOrds)
		got := map[string]bool{}
		for i := 0; i < d.nc; i++ {
			m, _ := d.Mono(d.nv, i)
			if got[m.String()] {
				t.Errorf("var_ords=%v: duplicate monomial %s at rank %d", varOrds, m, i)
			}
			got[m.String()] = true
		}

		if len(want) != len(got) {
			t.Errorf("var_ords=%v: naive count=%d, built nc=%d", varOrds, len(want), len(got))
		}
		for k := range got {
			if !want[k] {
				t.Errorf("var_ords=%v: built table contains %s, which the naive enumerator rejects", varOrds, k)
			}
		}
		for k := range want {
			if !got[k] {
				t.Errorf("var_ords=%v: naive enumerator expects %s, built table is missing it", varOrds, k)
			}
		}

		d.Close()
	}
}
