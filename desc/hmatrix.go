// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import "github.com/accelgo/tpsadesc/mono"

// buildH allocates and fills d.h: the compact nv x (mo+2) accumulator
// matrix that makes a monomial-to-Tv-index lookup an O(nv) operation. It
// runs build-from-congruence, solve, then clear, in that order — solve
// depends on the congruence skeleton, clear depends on the solved values.
func buildH(d *Desc) {
	d.hcol = int(d.mo) + 2
	d.h = make([]int32, d.nv*d.hcol)

	buildHCongruence(d)
	solveH(d)
	clearH(d)

	if d.logger != nil {
		d.logger.Printf("desc: H built (%d rows x %d cols)", d.nv, d.hcol)
	}
}

// buildHCongruence fills row 0 trivially and every other row from the
// congruence structure of Tv: column c of row r records the first Tv index
// where the sortVar[r]-th component changes value, stopping once that
// component returns to zero (congruence class boundaries).
func buildHCongruence(d *Desc) {
	cols := d.hcol
	for c := 0; c < cols; c++ {
		d.h[c] = int32(c)
	}

	for r := 1; r < d.nv; r++ {
		d.h[r*cols+0] = 0
		currCol := 1
		varIdx := d.sortVar[r]

		for m := 1; m < d.nc; m++ {
			if d.tvMono(m)[varIdx] != d.tvMono(m-1)[varIdx] {
				d.h[r*cols+currCol] = int32(m)
				currCol++
				if d.tvMono(m)[varIdx] == 0 {
					break
				}
			}
		}
		for ; currCol < cols; currCol++ {
			d.h[r*cols+currCol] = 0
		}
	}

	lastVar := d.sortVar[d.nv-1]
	d.h[(d.nv-1)*cols+int(d.varOrds[lastVar])+1] = int32(d.nc)
}

// solveH fills in the cells buildHCongruence left at zero but that in fact
// require searching Tv directly, because the
// congruence shortcut only captures the first boundary crossing per order
// budget, not every reachable combination across multiple higher rows.
func solveH(d *Desc) {
	cols := d.hcol
	vo := d.varOrds
	sort := d.sortVar
	accum := int(vo[sort[d.nv-1]])
	m := make(mono.Mono, d.nv)

	for r := d.nv - 2; r >= 1; r-- {
		v := sort[r]
		accum += int(vo[v])
		top := int(d.mo)
		if accum < top {
			top = accum
		}
		for o := int(vo[v]) + 2; o <= top; o++ {
			nxtMonoByUnk(d, r, o, m)
			if d.isValidMono(m) {
				idx0 := d.indexH(m)
				idx1 := searchByVar(d, m, idx0, d.nc)
				d.h[r*cols+o] = int32(idx1 - idx0)
			} else {
				d.h[r*cols+o] = 0
			}
		}
	}
}

// clearH marks unreachable cells (those beyond the cumulative per-variable
// cap of rows >= r) with the -1 sentinel.
func clearH(d *Desc) {
	cols := d.hcol
	accum := 0
	for r := d.nv - 1; r >= 0; r-- {
		si := d.sortVar[r]
		accum += int(d.varOrds[si])
		top := accum
		if int(d.mo) < top {
			top = int(d.mo)
		}
		for o := 1 + top; o < cols; o++ {
			d.h[r*cols+o] = -1
		}
	}
}

// nxtMonoByUnk writes into m a candidate monomial that places order o
// across the variables at rows >= r (in sortVar order, starting at row r),
// filling each to its own cap until the order budget is exhausted.
func nxtMonoByUnk(d *Desc, r, o int, m mono.Mono) {
	mono.Fill(m, 0)
	vo := d.varOrds
	for k := r; k < d.nv; k++ {
		v := d.sortVar[k]
		m[v] = vo[v]
		o -= int(vo[v])
		if o <= 0 {
			if o < 0 {
				m[v] += uint8(o)
			}
			break
		}
	}
}

// indexH computes the naive O(nv) H-based Tv index of a full-length
// monomial m, using the current (possibly partially solved) contents of
// d.h. Rows below the row currently being solved contribute zero since the
// candidate monomials passed in during solveH are zero there.
func (d *Desc) indexH(m mono.Mono) int {
	cols := d.hcol
	s, idx := 0, 0
	for r := len(m) - 1; r >= 0; r-- {
		v := d.sortVar[r]
		idx += int(d.h[r*cols+s+int(m[v])]) - int(d.h[r*cols+s])
		s += int(m[v])
	}
	return idx
}

// indexHSparse is the sparse-pair analogue of indexH. Pairs are processed
// in descending H-row order regardless of input order, since the
// mixed-radix accumulation indexH performs requires that order — unlike
// the original's tbl_index_H_sp, which trusted the caller to pass pairs
// pre-sorted to match row order.
func (d *Desc) indexHSparse(pairs []VarExp) int {
	type rowExp struct {
		row int
		exp int
	}
	tmp := make([]rowExp, len(pairs))
	for i, p := range pairs {
		tmp[i] = rowExp{row: d.rowOfVar[p.Var], exp: int(p.Exp)}
	}
	for i := 1; i < len(tmp); i++ {
		v := tmp[i]
		j := i - 1
		for j >= 0 && tmp[j].row < v.row {
			tmp[j+1] = tmp[j]
			j--
		}
		tmp[j+1] = v
	}

	cols := d.hcol
	s, idx := 0, 0
	for _, re := range tmp {
		idx += int(d.h[re.row*cols+s+re.exp]) - int(d.h[re.row*cols+s])
		s += re.exp
	}
	return idx
}
