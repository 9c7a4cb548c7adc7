// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"context"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestS5 reproduces the governing specification's scenario S5: a 6-variable
// descriptor with mo=12 dispatched across 4 lanes must produce 4 non-empty
// lane lists whose estimated costs differ by less than 20%, and must
// include the phantom order mo+1=13.
func TestS5(t *testing.T) {
	varOrds := make([]uint8, 6)
	for i := range varOrds {
		varOrds[i] = 12
	}
	d := New(6, varOrds, WithMapOrds(varOrds))
	defer d.Close()

	if d.MaxOrder() != 12 {
		t.Fatalf("MaxOrder() = %d, want 12", d.MaxOrder())
	}

	plan := buildDispatch(d, 4)
	lanes := plan.Lanes()
	if len(lanes) != 4 {
		t.Fatalf("got %d lanes, want 4", len(lanes))
	}

	foundPhantom := false
	var costs []int64
	for i, lane := range lanes {
		if len(lane) == 0 {
			t.Errorf("lane %d is empty", i)
		}
		var cost int64
		for _, o := range lane {
			cost += plan.Cost(uint8(o))
			if o == int(d.mo)+1 {
				foundPhantom = true
			}
		}
		costs = append(costs, cost)
	}
	if !foundPhantom {
		t.Errorf("phantom order %d not assigned to any lane", int(d.mo)+1)
	}

	var minC, maxC int64 = costs[0], costs[0]
	for _, c := range costs[1:] {
		if c < minC {
			minC = c
		}
		if c > maxC {
			maxC = c
		}
	}
	if minC == 0 {
		t.Fatalf("a lane has zero cost: %v", costs)
	}
	if spread := float64(maxC-minC) / float64(minC); spread >= 0.20 {
		t.Errorf("lane cost spread = %.1f%%, want < 20%% (costs=%v)", spread*100, costs)
	}
}

// TestDispatchConcurrentLanes is P6: an external multiplier driving each
// lane's assigned orders concurrently must touch every order exactly once,
// under real goroutine scheduling rather than a sequential simulation.
func TestDispatchConcurrentLanes(t *testing.T) {
	varOrds := make([]uint8, 6)
	for i := range varOrds {
		varOrds[i] = 12
	}
	d := New(6, varOrds, WithMapOrds(varOrds))
	defer d.Close()

	plan := buildDispatch(d, 4)
	lanes := plan.Lanes()

	touched := make(map[int]*atomic.Int32)
	for _, lane := range lanes {
		for _, o := range lane {
			touched[o] = &atomic.Int32{}
		}
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, lane := range lanes {
		lane := lane
		g.Go(func() error {
			for _, o := range lane {
				touched[o].Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("errgroup.Wait() = %v", err)
	}

	for o, count := range touched {
		if got := count.Load(); got != 1 {
			t.Errorf("order %d touched %d times, want exactly 1", o, got)
		}
	}
}

func TestSingleLaneBelowPhantomThreshold(t *testing.T) {
	d := New(2, []uint8{2, 2})
	defer d.Close()

	plan := buildDispatch(d, 4)
	lanes := plan.Lanes()
	nonEmpty := 0
	for _, l := range lanes {
		if len(l) > 0 {
			nonEmpty++
		}
	}
	if nonEmpty != 1 {
		t.Errorf("mo=%d < 12: got %d non-empty lanes, want 1 (single-lane path)", d.MaxOrder(), nonEmpty)
	}
}
