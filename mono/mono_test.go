// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mono

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFillCopyEqual(t *testing.T) {
	m := make(Mono, 4)
	Fill(m, 3)
	want := Mono{3, 3, 3, 3}
	if !Equal(m, want) {
		t.Fatalf("Fill: got %v, want %v", m, want)
	}

	dst := make(Mono, 4)
	Copy(dst, m)
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Fatalf("Copy mismatch (-want +got):\n%s", diff)
	}
}

func TestLessEq(t *testing.T) {
	cases := []struct {
		a, b Mono
		want bool
	}{
		{Mono{1, 2}, Mono{1, 2}, true},
		{Mono{1, 2}, Mono{2, 2}, true},
		{Mono{2, 2}, Mono{1, 2}, false},
		{Mono{0, 0}, Mono{0, 0}, true},
	}
	for _, c := range cases {
		if got := LessEq(c.a, c.b); got != c.want {
			t.Errorf("LessEq(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestOrder(t *testing.T) {
	if got := Order(Mono{1, 2, 0, 3}); got != 6 {
		t.Errorf("Order = %d, want 6", got)
	}
	if got := Order(Mono{}); got != 0 {
		t.Errorf("Order(empty) = %d, want 0", got)
	}
}

func TestAdd(t *testing.T) {
	a := Mono{1, 0, 2}
	b := Mono{0, 1, 1}
	dst := make(Mono, 3)
	Add(dst, a, b)
	want := Mono{1, 1, 3}
	if !Equal(dst, want) {
		t.Fatalf("Add: got %v, want %v", dst, want)
	}

	// aliasing dst with a must also work.
	Add(a, a, b)
	if !Equal(a, want) {
		t.Fatalf("Add (aliased): got %v, want %v", a, want)
	}
}

func TestRCmp(t *testing.T) {
	cases := []struct {
		a, b Mono
		want int
	}{
		{Mono{0, 0}, Mono{0, 0}, 0},
		{Mono{2, 0}, Mono{0, 1}, -1}, // last component decides first: 0 < 1
		{Mono{0, 1}, Mono{2, 0}, 1},
		{Mono{1, 1}, Mono{2, 1}, -1}, // tie on last component, then compare first
	}
	for _, c := range cases {
		if got := RCmp(c.a, c.b); got != c.want {
			t.Errorf("RCmp(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSortStable(t *testing.T) {
	varOrds := []uint8{2, 0, 2, 1}
	got := Sort(varOrds)
	// ascending by var_ords, ties broken by original index: var1(0) < var3(1) < var0(2) < var2(2)
	want := []int{1, 3, 0, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Sort mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderMaxSum(t *testing.T) {
	m := Mono{3, 1, 4, 1, 5}
	if got := m.OrderMax(); got != 5 {
		t.Errorf("OrderMax = %d, want 5", got)
	}
	if got := m.OrderSum(); got != 14 {
		t.Errorf("OrderSum = %d, want 14", got)
	}
	if got := (Mono{}).OrderMax(); got != 0 {
		t.Errorf("OrderMax(empty) = %d, want 0", got)
	}
}

func TestString(t *testing.T) {
	m := Mono{1, 0, 2}
	if got, want := m.String(), "[1 0 2]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
