// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import "github.com/accelgo/tpsadesc/mono"

// lTable is one (oa, ob) product table: a flat rows x cols matrix of
// ranks-in-To, row-major over (ib, ia), with -1 marking an invalid
// product.
type lTable struct {
	rows, cols int
	cells      []int32
}

func (t *lTable) at(ib, ia int) int32 { return t.cells[ib*t.cols+ia] }

// lIdx holds the per-row valid-column range and split point for one
// (oa, ob) table. start, split and end share one backing array so a single
// slice release frees all three, mirroring the original's single-block
// allocation without needing an explicit deallocator.
type lIdx struct {
	start, split, end []int32
}

// buildL allocates and fills every L[oa,ob] product table and its L_idx
// row metadata, for all 1 <= ob <= oa with oa+ob <= mo.
func buildL(d *Desc) {
	d.ho = int(d.mo) / 2
	n := int(d.mo)*d.ho + 1
	d.l = make([]*lTable, n)
	d.li = make([]*lIdx, n)

	pairs := 0
	for oc := 2; oc <= int(d.mo); oc++ {
		for j := 1; j <= oc/2; j++ {
			oa, ob := oc-j, j
			key := oa*d.ho + ob
			d.l[key] = buildLTable(d, oa, ob)
			d.li[key] = buildLIdx(d, oa, ob, d.l[key])
			pairs++
		}
	}

	if d.logger != nil {
		d.logger.Printf("desc: L built for %d order pairs", pairs)
	}
}

// buildLTable computes L[oa,ob]: for every (ib, ia) pair, the rank in To
// of To[ia]+To[ib], or -1 if that sum is not a valid monomial.
func buildLTable(d *Desc, oa, ob int) *lTable {
	pi := d.ord2idx
	iao, ibo := pi[oa], pi[ob]
	cols, rows := pi[oa+1]-pi[oa], pi[ob+1]-pi[ob]

	cells := make([]int32, rows*cols)
	for i := range cells {
		cells[i] = -1
	}

	m := make(mono.Mono, d.nv)
	for ib := pi[ob]; ib < pi[ob+1]; ib++ {
		limA := pi[oa+1]
		if oa == ob {
			limA = ib + 1
		}
		for ia := pi[oa]; ia < limA; ia++ {
			mono.Add(m, d.toMono(ia), d.toMono(ib))
			if d.isValidMono(m) {
				ic := d.tv2to[d.indexH(m)]
				cells[(ib-ibo)*cols+(ia-iao)] = int32(ic)
			}
		}
	}
	return &lTable{rows: rows, cols: cols, cells: cells}
}

// buildLIdx computes, for every row of an already-built lTable, the first
// valid column, one-past-the-last valid column, and the split column at
// which cell values reach the median rank of the output order oc = oa+ob.
func buildLIdx(d *Desc, oa, ob int, t *lTable) *lIdx {
	pi := d.ord2idx
	oc := oa + ob
	threshold := int32((pi[oc+1] + pi[oc] - 1) / 2)

	rows := t.rows
	block := make([]int32, 3*rows)
	start, split, end := block[:rows], block[rows:2*rows], block[2*rows:3*rows]

	for ib := 0; ib < rows; ib++ {
		lim := t.cols - 1
		if oa == ob {
			lim = ib
		}

		// a row with no valid product gets start == split == end == lim+1.
		ia := 0
		for ia <= lim && t.at(ib, ia) == -1 {
			ia++
		}
		start[ib] = int32(ia)

		for ia = lim; ia >= int(start[ib]) && t.at(ib, ia) == -1; ia-- {
		}
		end[ib] = int32(ia + 1)

		def := t.cols
		if oa == ob {
			def = ib + 1
		}
		split[ib] = int32(def)
		for ia := int(start[ib]); ia < int(end[ib]); ia++ {
			if t.at(ib, ia) >= threshold {
				split[ib] = int32(ia)
				break
			}
		}
	}

	return &lIdx{start: start, split: split, end: end}
}

// LTable looks up the (oa, ob) product table. It returns nil if oa, ob are
// out of the valid range (1 <= ob <= oa, oa+ob <= mo).
func (d *Desc) LTable(oa, ob int) (cells []int32, rows, cols int, ok bool) {
	if ob < 1 || oa < ob || oa+ob > int(d.mo) {
		return nil, 0, 0, false
	}
	t := d.l[oa*d.ho+ob]
	if t == nil {
		return nil, 0, 0, false
	}
	return t.cells, t.rows, t.cols, true
}

// LRowRange returns the [start, end) valid-column range and split column
// for row ib of L[oa,ob].
func (d *Desc) LRowRange(oa, ob, ib int) (start, split, end int, ok bool) {
	if ob < 1 || oa < ob || oa+ob > int(d.mo) {
		return 0, 0, 0, false
	}
	idx := d.li[oa*d.ho+ob]
	if idx == nil || ib < 0 || ib >= len(idx.start) {
		return 0, 0, 0, false
	}
	return int(idx.start[ib]), int(idx.split[ib]), int(idx.end[ib]), true
}
