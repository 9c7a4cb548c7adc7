// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import "github.com/accelgo/tpsadesc/mono"

// buildByVar populates d.tv2to and d.to2tv: the bijection between the
// by-order rank (To) and the by-variable rank (Tv) of every monomial.
//
// Tv depends on To since every visited monomial's rank is located there by
// binary search. But the H matrix wants Tv built according to sortVar, so
// the walk below increments components in sortVar order (lowest var_ords
// fastest) rather than plain variable-index order.
func buildByVar(d *Desc) {
	nv := d.nv
	m := make(mono.Mono, nv)

	mi := 0
	for {
		o := mono.Order(m)
		idx := searchByOrd(d, m, d.ord2idx[o], d.ord2idx[o+1])
		d.tv2to[mi] = idx
		d.to2tv[idx] = mi
		mi++
		if !nxtMonoByVar(d, m) {
			break
		}
	}
	if mi != d.nc {
		panic("desc: by-variable walk visited a different count than nc")
	}
}

// nxtMonoByVar advances m in place to the next valid monomial in
// by-variable order: try incrementing the component chosen by sortVar[0]
// first (the smallest-var_ords variable varies fastest); on overflow past
// validity, reset that component to zero and carry into the next.
func nxtMonoByVar(d *Desc, m mono.Mono) bool {
	for _, v := range d.sortVar {
		m[v]++
		if d.isValidMono(m) {
			return true
		}
		m[v] = 0
	}
	return false
}

// searchByOrd finds m's index within To[from:to) (an order-contiguous
// slice) via binary search using mono.RCmp as the comparator.
func searchByOrd(d *Desc, m mono.Mono, from, to int) int {
	lo, hi := from, to
	for lo < hi {
		mid := lo + (hi-lo)/2
		if mono.RCmp(d.toMono(mid), m) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < to && mono.Equal(d.toMono(lo), m) {
		return lo
	}
	panic("desc: monomial not found in by-order table: " + m.String())
}

// searchByVar finds m's index within Tv[from:to) via binary search (Tv is
// not grouped into contiguous order blocks, unlike To, so there is no order
// pre-check to narrow the range). The comparator is the reversed
// lexicographic compare taken in sortVar order — sortVar[nv-1] most
// significant — which is the order nxtMonoByVar walks Tv in; it coincides
// with mono.RCmp only when sortVar is the identity.
func searchByVar(d *Desc, m mono.Mono, from, to int) int {
	cmp := func(a, b mono.Mono) int {
		for k := len(d.sortVar) - 1; k >= 0; k-- {
			v := d.sortVar[k]
			switch {
			case a[v] < b[v]:
				return -1
			case a[v] > b[v]:
				return 1
			}
		}
		return 0
	}
	lo, hi := from, to
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(d.tvMono(mid), m) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < to && mono.Equal(d.tvMono(lo), m) {
		return lo
	}
	panic("desc: monomial not found in by-variable table: " + m.String())
}
