// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"unsafe"

	"github.com/accelgo/tpsadesc/internal/ensure"
	"github.com/accelgo/tpsadesc/mono"
)

// intSize is the byte width of an int, used to account d.size in bytes.
const intSize = uint64(unsafe.Sizeof(int(0)))

// buildDesc runs the full construction pipeline described by the data flow
// in the governing specification: enumeration -> by-order table ->
// by-variable table + permutations -> H matrix -> L tables -> dispatch
// plan -> consistency check. Each stage reads only artifacts of earlier
// stages.
func buildDesc(nmv int, mapOrds []uint8, varNames []string, nv int, varOrds []uint8, ko uint8, logger Logger) *Desc {
	d := &Desc{
		nmv:      nmv,
		nv:       nv,
		ko:       ko,
		mapOrds:  append([]uint8(nil), mapOrds...),
		varOrds:  append([]uint8(nil), varOrds...),
		varNames: varNames,
		logger:   logger,
	}
	d.mo = mono.Mono(mapOrds).OrderMax()
	d.trunc.Store(uint32(d.mo))
	d.size = uint64(len(d.varOrds)) + uint64(len(d.mapOrds))

	d.sortVar = mono.Sort(d.varOrds)
	d.rowOfVar = make([]int, nv)
	for r, v := range d.sortVar {
		d.rowOfVar[v] = r
	}
	d.size += uint64(2*nv) * intSize

	enumerateMonos(d)
	d.size += uint64(d.nc*d.nv) + uint64(d.nc) + uint64(len(d.ord2idx))*intSize

	d.tv2to = make([]int, d.nc)
	d.to2tv = make([]int, d.nc)
	buildByVar(d)
	d.size += uint64(2*d.nc) * intSize

	buildH(d)
	d.size += uint64(d.nv*d.hcol) * 4

	buildL(d)
	for _, t := range d.l {
		if t != nil {
			d.size += uint64(len(t.cells)+3*t.rows) * 4
		}
	}
	d.plan = buildDispatch(d, 0)

	if err := Check(d); err != nil {
		ensure.That(false, "%v", err)
	}

	return d
}
