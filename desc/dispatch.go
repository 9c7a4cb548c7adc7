// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import "runtime"

// Plan is a thread-dispatch plan: an assignment of output orders to worker
// lanes, cost-balanced per the formula in ops. Plan does not run any
// threads itself — it only describes how an external multiplier should
// split its work.
type Plan struct {
	lanes [][]int
	ops   map[uint8]int64
}

// Lanes returns, for each worker lane, the list of output orders assigned
// to it (descending within a lane). The phantom order mo+1 (present when
// mo >= 12) is included like any other order.
func (p *Plan) Lanes() [][]int {
	out := make([][]int, len(p.lanes))
	for i, l := range p.lanes {
		cp := make([]int, len(l))
		copy(cp, l)
		out[i] = cp
	}
	return out
}

// Cost returns the estimated multiply cost of output order o, as computed
// by the load-balancing heuristic in buildDispatch.
func (p *Plan) Cost(o uint8) int64 { return p.ops[o] }

// computeOps fills ops[2..mo] (and, when mo >= 12, the phantom ops[mo+1])
// with the estimated convolution cost of producing output order o from all
// valid (oa, ob) factor pairs.
func computeOps(d *Desc) map[uint8]int64 {
	pi := d.ord2idx
	ops := make(map[uint8]int64, int(d.mo)+1)
	for o := 2; o <= int(d.mo); o++ {
		var cost int64
		for j := 1; j <= (o-1)/2; j++ {
			oa, ob := o-j, j
			na := int64(pi[oa+1] - pi[oa])
			nb := int64(pi[ob+1] - pi[ob])
			cost += 2 * na * nb
		}
		if o%2 == 0 {
			ho := o / 2
			n := int64(pi[ho+1] - pi[ho])
			cost += n * n
		}
		ops[uint8(o)] = cost
	}
	if d.mo >= 12 {
		ops[d.mo] /= 2
		ops[d.mo+1] = ops[d.mo]
	}
	return ops
}

// buildDispatch assigns every output order in [2, mo] (plus the phantom
// mo+1 when mo >= 12) to one of numLanes worker lanes, greedily minimizing
// the maximum cumulative cost. numLanes <= 0 defaults to runtime.NumCPU().
func buildDispatch(d *Desc, numLanes int) *Plan {
	if numLanes <= 0 {
		numLanes = runtime.NumCPU()
	}
	ops := computeOps(d)
	lanes := make([][]int, numLanes)
	dops := make([]int64, numLanes)

	if numLanes == 1 || d.mo < 12 {
		top := int(d.mo)
		if d.mo >= 12 {
			top++
		}
		for o := top; o >= 2; o-- {
			lanes[0] = append(lanes[0], o)
			dops[0] += ops[uint8(o)]
		}
	} else {
		for o := int(d.mo) + 1; o >= 2; o-- {
			idx := minDispatchedLane(dops)
			lanes[idx] = append(lanes[idx], o)
			dops[idx] += ops[uint8(o)]
		}
	}

	if d.logger != nil {
		d.logger.Printf("desc: dispatch plan built for %d lanes", numLanes)
	}
	return &Plan{lanes: lanes, ops: ops}
}

// minDispatchedLane returns the index of the lane with the smallest
// cumulative cost so far, breaking ties toward the highest-indexed lane: it
// scans from the last lane backward and only moves to a lane with a
// strictly smaller cost.
func minDispatchedLane(dops []int64) int {
	minIdx := len(dops) - 1
	minVal := dops[minIdx]
	for t := len(dops) - 1; t >= 0; t-- {
		if dops[t] < minVal {
			minVal = dops[t]
			minIdx = t
		}
	}
	return minIdx
}
