// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/accelgo/tpsadesc/desc/internal/diffdump"
	"github.com/accelgo/tpsadesc/mono"
)

func mustRecover(t *testing.T, label string) {
	t.Helper()
	if r := recover(); r == nil {
		t.Fatalf("%s: expected panic, got none", label)
	}
}

// TestS1 reproduces the governing specification's scenario S1.
func TestS1(t *testing.T) {
	d := New(2, []uint8{2, 2})
	defer d.Close()

	if d.MaxOrder() != 2 {
		t.Errorf("MaxOrder() = %d, want 2", d.MaxOrder())
	}
	if d.MaxSize() != 6 {
		t.Errorf("MaxSize() = %d, want 6", d.MaxSize())
	}
	want := [][]uint8{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}}
	for i, w := range want {
		m, _ := d.Mono(2, i)
		if diff := cmp.Diff(mono.Mono(w), m); diff != "" {
			t.Errorf("To[%d] mismatch (-want +got):\n%s", i, diff)
		}
	}
	wantOrd2idx := []int{0, 1, 3, 6}
	if diff := cmp.Diff(wantOrd2idx, d.ord2idx); diff != "" {
		t.Errorf("ord2idx mismatch (-want +got):\n%s", diff)
	}
	if got := d.Index(mono.Mono{1, 1}); got != 4 {
		t.Errorf("Index((1,1)) = %d, want 4", got)
	}
}

// TestS1TableDump checks S1's full To table against a hand-written dump,
// reporting a mismatch as a unified diff via diffdump.Unified rather than
// one t.Errorf per divergent row — useful here because a single shifted
// row in the enumeration order otherwise produces a wall of per-cell
// failures that all point at the same underlying cause.
func TestS1TableDump(t *testing.T) {
	d := New(2, []uint8{2, 2})
	defer d.Close()

	want := []string{
		"( 0) [0 0] o=0",
		"( 1) [1 0] o=1",
		"( 2) [0 1] o=1",
		"( 3) [2 0] o=2",
		"( 4) [1 1] o=2",
		"( 5) [0 2] o=2",
	}
	got := d.DumpLines()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("To table dump mismatch:\n%s", diffdump.Unified("S1 To table", want, got))
	}
}

// TestS2 reproduces S2: a monomial respecting var_ords component-wise but
// violating the overall order cap must panic.
func TestS2(t *testing.T) {
	d := New(2, []uint8{1, 1})
	defer d.Close()

	if d.MaxOrder() != 1 || d.MaxSize() != 3 {
		t.Fatalf("got mo=%d nc=%d, want mo=1 nc=3", d.MaxOrder(), d.MaxSize())
	}
	defer mustRecover(t, "Index((1,1)) on mo=1 descriptor")
	d.Index(mono.Mono{1, 1})
}

// TestS4 reproduces S4: a knob variable's combined order is capped at dk
// even if its own var_ords/knb_ords allow more.
func TestS4(t *testing.T) {
	d := NewK(1, []uint8{3}, 1, []uint8{2}, 1)
	defer d.Close()

	defer mustRecover(t, "Index((0,2)) exceeding knob cap dk=1")
	d.Index(mono.Mono{0, 2})
}

// TestNewKDefaults exercises the dk=0 default path (dk := max(knb_ords)).
func TestNewKDefaults(t *testing.T) {
	d := NewK(1, []uint8{3}, 1, []uint8{2}, 0)
	defer d.Close()
	// (0,1) must be reachable: dk defaults to max(knb_ords)=2, well above 1.
	if got := d.Index(mono.Mono{0, 1}); got < 0 {
		t.Errorf("Index((0,1)) = %d, want >= 0", got)
	}
}

// TestP2ValidityPredicate is P2: every enumerated monomial satisfies the
// validity predicate it was enumerated under.
func TestP2ValidityPredicate(t *testing.T) {
	d := New(3, []uint8{2, 1, 1})
	defer d.Close()
	for i := 0; i < d.MaxSize(); i++ {
		m, _ := d.Mono(3, i)
		if !d.isValidMono(m) {
			t.Errorf("To[%d]=%v fails its own validity predicate", i, m)
		}
	}
}

// TestP3IndexRoundTrip is P3: To[Index(m)] == m for every valid monomial.
func TestP3IndexRoundTrip(t *testing.T) {
	d := New(3, []uint8{2, 1, 1})
	defer d.Close()
	for i := 0; i < d.MaxSize(); i++ {
		m, _ := d.Mono(3, i)
		idx := d.Index(m)
		got, _ := d.Mono(3, idx)
		if !mono.Equal(got, m) {
			t.Errorf("To[Index(%v)]=%v, want %v", m, got, m)
		}
	}
}

// TestP4BijectionInverses is P4: tv2to and to2tv are mutual inverses.
func TestP4BijectionInverses(t *testing.T) {
	d := New(3, []uint8{2, 1, 1})
	defer d.Close()
	for i := 0; i < d.nc; i++ {
		if d.to2tv[d.tv2to[i]] != i {
			t.Errorf("to2tv[tv2to[%d]] != %d", i, i)
		}
		if d.tv2to[d.to2tv[i]] != i {
			t.Errorf("tv2to[to2tv[%d]] != %d", i, i)
		}
	}
}

// TestP1UnconstrainedCount is P1: with uniform caps large enough that
// var_ords/ko never prune anything, nc equals the unconstrained count.
func TestP1UnconstrainedCount(t *testing.T) {
	d := New(2, []uint8{2, 2})
	defer d.Close()
	want := maxNC(2, 2)
	if d.MaxSize() != want {
		t.Errorf("MaxSize() = %d, want unconstrained count %d", d.MaxSize(), want)
	}
}

func TestGTrunc(t *testing.T) {
	d := New(2, []uint8{2, 2})
	defer d.Close()

	if got := d.GTrunc(TruncSame); got != 2 {
		t.Fatalf("initial trunc = %d, want 2 (== mo)", got)
	}
	if got := d.GTrunc(1); got != 2 {
		t.Fatalf("GTrunc(1) returned %d, want previous value 2", got)
	}
	if got := d.GTrunc(TruncSame); got != 1 {
		t.Fatalf("trunc after GTrunc(1) = %d, want 1", got)
	}
	if got := d.GTrunc(TruncDefault); got != 1 {
		t.Fatalf("GTrunc(TruncDefault) returned %d, want previous value 1", got)
	}
	if got := d.GTrunc(TruncSame); got != 2 {
		t.Fatalf("trunc after TruncDefault = %d, want mo=2", got)
	}
}

func TestGTruncRejectsAboveMaxOrder(t *testing.T) {
	d := New(2, []uint8{2, 2})
	defer d.Close()
	defer mustRecover(t, "GTrunc(3) above mo=2")
	d.GTrunc(3)
}

func TestInternReusesEquivalentDescriptor(t *testing.T) {
	a := New(2, []uint8{2, 2})
	defer a.Close()
	b := New(2, []uint8{2, 2})
	if a != b {
		t.Errorf("New called twice with identical params returned distinct descriptors")
	}
}

func TestWithVarNamesDistinguishesDescriptors(t *testing.T) {
	a := New(2, []uint8{2, 2}, WithVarNames([]string{"x", "px"}))
	defer a.Close()
	b := New(2, []uint8{2, 2}, WithVarNames([]string{"y", "py"}))
	defer b.Close()
	if a == b {
		t.Errorf("descriptors with different var names were interned as the same slot")
	}
}

func TestCheckPasses(t *testing.T) {
	for _, varOrds := range [][]uint8{
		{2, 2}, {1, 1}, {2, 1, 1}, {5, 1, 5}, {3, 3, 3},
	} {
		d := New(len(varOrds), varOrds)
		if err := Check(d); err != nil {
			t.Errorf("Check(var_ords=%v) = %v, want nil", varOrds, err)
		}
		d.Close()
	}
}
