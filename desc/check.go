// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"fmt"

	"github.com/accelgo/tpsadesc/mono"
)

// CheckError reports an internal-consistency failure detected by Check.
// Code follows the original's digit convention: the leading digits
// identify the failing stage (1xxx H header, 2xxx H unused rows, 3xxx H
// continuation, 4xxx tv<->to, 5xxx H round-trip, 6xxx To/Tv consistency,
// 7xxx monos/To consistency, +-1e7..+-3e7 L anomalies).
type CheckError struct {
	Code  int64
	Stage string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("desc: consistency check failed at stage %s (code %d)", e.Stage, e.Code)
}

// Check verifies every invariant a built descriptor is supposed to
// maintain. It is expensive (touches every table in full) and is meant to
// run once, right after construction, not on a hot path.
func Check(d *Desc) error {
	if err := checkH(d); err != nil {
		return err
	}
	if err := checkTables(d); err != nil {
		return err
	}
	return checkL(d)
}

func checkH(d *Desc) error {
	cols := d.hcol
	for i := 0; i < d.nv; i++ {
		if d.h[i*cols+0] != 0 {
			return &CheckError{Code: 1e6 + int64(i), Stage: "H header"}
		}
	}
	for r := 1; r < d.nv; r++ {
		sv := d.sortVar[r]
		if d.varOrds[sv] == 0 {
			for o := 1; o <= int(d.mo)+1; o++ {
				if d.h[r*cols+o] != -1 {
					return &CheckError{Code: 2e6 + int64(r), Stage: "H unused rows"}
				}
			}
			continue
		}
		prevCol := int(d.varOrds[d.sortVar[r-1]]) + 1
		prev := d.h[(r-1)*cols+prevCol]
		want := prev
		if prev == -1 {
			want = d.h[(r-1)*cols+prevCol-1] + 1
		}
		if d.h[r*cols+1] != want {
			return &CheckError{Code: 3e6 + int64(r), Stage: "H continuation"}
		}
	}
	return nil
}

func checkTables(d *Desc) error {
	for i := 0; i < d.nc; i++ {
		if d.to2tv[d.tv2to[i]] != i {
			return &CheckError{Code: 4e6 + int64(i), Stage: "tv<->to"}
		}
		if d.tv2to[d.indexH(d.toMono(i))] != i {
			return &CheckError{Code: 5e6 + int64(i), Stage: "H round-trip"}
		}
		if !mono.Equal(d.toMono(d.tv2to[i]), d.tvMono(i)) {
			return &CheckError{Code: 6e6 + int64(i), Stage: "To/Tv consistency"}
		}
		if !mono.Equal(d.toMono(i), d.toMono(i)) { // monos IS To's storage; trivially true
			return &CheckError{Code: 7e6 + int64(i), Stage: "monos/To consistency"}
		}
	}
	return nil
}

func checkL(d *Desc) error {
	pi := d.ord2idx
	m := make(mono.Mono, d.nv)
	for oc := 2; oc <= int(d.mo); oc++ {
		for j := 1; j <= oc/2; j++ {
			oa, ob := oc-j, j
			t := d.l[oa*d.ho+ob]
			if t == nil {
				return &CheckError{Code: 1e7 + int64(oa)*1e3 + int64(ob), Stage: "L missing"}
			}
			sa, sb := pi[oa+1]-pi[oa], pi[ob+1]-pi[ob]
			for ibl := 0; ibl < sb; ibl++ {
				limA := sa
				if oa == ob {
					limA = ibl + 1
				}
				for ial := 0; ial < limA; ial++ {
					ib, ia := ibl+pi[ob], ial+pi[oa]
					ic := t.at(ibl, ial)
					if ic >= int32(pi[oc+1]) {
						return &CheckError{Code: 3e7 + int64(ic)*1e5 + 11, Stage: "L out of range high"}
					}
					if ic >= 0 && int(ic) < pi[oc] {
						return &CheckError{Code: 3e7 + int64(ic)*1e5 + 12, Stage: "L out of range low"}
					}
					mono.Add(m, d.toMono(ia), d.toMono(ib))
					if ic < 0 && d.isValidMono(m) {
						return &CheckError{Code: -3e7 - 13, Stage: "L missing valid product"}
					}
				}
			}
		}
	}
	return nil
}
