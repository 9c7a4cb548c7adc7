// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"math"

	"github.com/accelgo/tpsadesc/mono"
)

// initialEnumCap is the initial monomial-buffer capacity, sized to fit the
// common (6,12) shape without reallocating; the original's comment reads
// "to fit (6,12)".
const initialEnumCap = 20000

// maxNC returns the unconstrained monomial count C(nv+mo, mo), the count
// enumerateMonos would produce if no per-variable or knob cap pruned
// anything. It overflows (returns a negative int) for large (nv, mo); the
// caller falls back to growable allocation in that case, mirroring the
// original's "nc < 0 when overflow in max_nc".
func maxNC(nv, mo int) int {
	max := nv
	if mo > max {
		max = mo
	}
	var v uint64 = 1
	for i := max + 1; i <= nv+mo; i++ {
		if v > math.MaxUint64/uint64(i) {
			return -1
		}
		v = v * uint64(i) / uint64(i-max)
	}
	if v > uint64(^uint(0)>>1) {
		return -1
	}
	return int(v)
}

// enumerateMonos builds d.monos (flat nc*nv), d.ords and d.ord2idx: the
// complete set of monomials satisfying the validity predicate, grouped
// into contiguous order blocks and ordered within a block the way this
// construction happens to produce them (never by closed form downstream).
func enumerateMonos(d *Desc) {
	nv := d.nv
	capN := maxNC(nv, int(d.mo))
	needRealloc := false
	if capN > initialEnumCap || capN < 0 {
		needRealloc = true
		capN = initialEnumCap
	}

	d.monos = make([]uint8, capN*nv)
	d.ords = make([]uint8, capN)
	d.ord2idx = make([]int, int(d.mo)+2)

	// order 0: the zero monomial, already zero-valued by make.
	d.ord2idx[0] = 0
	d.ords[0] = 0
	d.ord2idx[1] = 1
	curr := 1

	// order 1: one unit vector per variable with a non-zero cap, in
	// variable-index order.
	varAtIdx := make([]int, nv+1)
	if d.mo >= 1 {
		for i := 0; i < nv; i++ {
			if d.varOrds[i] == 0 {
				continue
			}
			if needRealloc && curr >= len(d.ords) {
				growMonoCapacity(d, len(d.ords)*2)
			}
			d.monos[curr*nv+i] = 1
			d.ords[curr] = 1
			varAtIdx[curr] = i
			curr++
		}
		d.ord2idx[2] = curr
	}

	realNC := curr
	if d.mo >= 2 {
		realNC = makeHigherOrdMonos(d, curr, &needRealloc, varAtIdx)
	}

	// trim to exact size.
	trimmed := make([]uint8, realNC*nv)
	copy(trimmed, d.monos[:realNC*nv])
	d.monos = trimmed
	trimmedOrds := make([]uint8, realNC)
	copy(trimmedOrds, d.ords[:realNC])
	d.ords = trimmedOrds
	d.nc = realNC

	if d.logger != nil {
		d.logger.Printf("desc: enumerated %d monomials (nv=%d, mo=%d)", d.nc, nv, d.mo)
	}
}

// growMonoCapacity doubles (or sets exactly to newCap) d.monos/d.ords.
func growMonoCapacity(d *Desc, newCap int) {
	nv := d.nv
	monos := make([]uint8, newCap*nv)
	copy(monos, d.monos)
	d.monos = monos
	ords := make([]uint8, newCap)
	copy(ords, d.ords)
	d.ords = ords
}

// makeHigherOrdMonos builds orders 2..mo: every sum of an order-1 seed and
// an order-(o-1) monomial that is valid is appended.
//
// The inner-loop pruning check below uses varAtIdx[i], the variable
// responsible for the order-1 seed at position i — not the variable of the
// running partial sum m. This is reproduced verbatim from the original's
// make_higher_ord_monos; whether it correctly terminates every branch when
// var_ords are heterogeneous is an open question the governing
// specification explicitly preserves rather than "fixes". See
// enum_crossshape_test.go.
func makeHigherOrdMonos(d *Desc, currMonoIdx int, needRealloc *bool, varAtIdx []int) int {
	nv := d.nv
	m := make(mono.Mono, nv)
	pi := d.ord2idx

	for o := 2; o <= int(d.mo); o++ {
		for i := pi[1]; i < pi[2]; i++ {
			for j := pi[o-1]; j < pi[o]; j++ {
				mono.Add(m, d.toMono(i), d.toMono(j))
				if d.isValidMono(m) {
					if *needRealloc && currMonoIdx >= len(d.ords) {
						growMonoCapacity(d, len(d.ords)*2)
					}
					copy(d.monos[currMonoIdx*nv:(currMonoIdx+1)*nv], m)
					d.ords[currMonoIdx] = uint8(o)
					currMonoIdx++
				}
				v := varAtIdx[i]
				if m[v] > d.varOrds[v] || int(m[v]) >= o {
					break
				}
			}
			pi[o+1] = currMonoIdx
		}
	}
	return currMonoIdx
}
