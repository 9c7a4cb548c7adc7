// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mono implements the monomial primitives shared by the TPSA
// descriptor: fixed-length exponent vectors with ordering, comparison,
// and the arithmetic the descriptor's enumeration and table-building
// stages need. Operations write into caller-supplied destination slices
// rather than allocating, mirroring how gonum's floats package avoids
// hidden allocation in tight loops.
package mono

import "fmt"

// Mono is a monomial: nv non-negative exponents, one per variable. The
// order of a monomial is the sum of its components. Orders are small
// enough to fit in a byte (desc bounds the overall maximum order to 64).
type Mono []uint8

// Fill sets every component of m to c.
func Fill(m Mono, c uint8) {
	for i := range m {
		m[i] = c
	}
}

// Copy copies src into dst. dst and src must have equal length.
func Copy(dst, src Mono) {
	if len(dst) != len(src) {
		panic("mono: length mismatch")
	}
	copy(dst, src)
}

// Equal reports whether a and b have identical components.
func Equal(a, b Mono) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// LessEq reports whether a[i] <= b[i] for every component i (component-wise
// ≤, used by the validity predicate against var_ords).
func LessEq(a, b Mono) bool {
	if len(a) != len(b) {
		panic("mono: length mismatch")
	}
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// Order returns the sum of m's components.
func Order(m Mono) int {
	o := 0
	for _, v := range m {
		o += int(v)
	}
	return o
}

// OrderMax returns the largest component of m, or 0 for an empty m. This is
// mad_mono_max in the original: the overall maximum order mo is derived by
// taking the max, not the sum, of per-variable/map-order caps.
func (m Mono) OrderMax() uint8 {
	var max uint8
	for _, v := range m {
		if v > max {
			max = v
		}
	}
	return max
}

// OrderSum returns the sum of m's components as a uint8. Overflow is not
// checked: a sum above 255 wraps modulo 256.
func (m Mono) OrderSum() uint8 {
	return uint8(Order(m))
}

// Add computes dst = a + b component-wise. dst may alias a or b.
func Add(dst, a, b Mono) {
	if len(a) != len(b) || len(a) != len(dst) {
		panic("mono: length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// RCmp compares a and b starting from the last component and working
// downward ("reversed lexicographic"), returning -1, 0 or 1. This is the
// comparator used to locate a monomial's rank inside an order-contiguous
// slice of the by-order or by-variable table via binary search.
func RCmp(a, b Mono) int {
	if len(a) != len(b) {
		panic("mono: length mismatch")
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Sort returns a stable permutation of [0, len(varOrds)) that places
// variable indices in ascending var_ords order: sort[0] is the index of
// the variable with the smallest maximum order. Ties keep original
// relative order.
func Sort(varOrds []uint8) []int {
	idx := make([]int, len(varOrds))
	for i := range idx {
		idx[i] = i
	}
	// insertion sort: len(varOrds) is nv, always small (<64) in practice,
	// and stability matters more here than asymptotic complexity.
	for i := 1; i < len(idx); i++ {
		v := idx[i]
		j := i - 1
		for j >= 0 && varOrds[idx[j]] > varOrds[v] {
			idx[j+1] = idx[j]
			j--
		}
		idx[j+1] = v
	}
	return idx
}

// String renders m the way the original mad_mono_print does: space
// separated exponents in brackets.
func (m Mono) String() string {
	s := "["
	for i, v := range m {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", v)
	}
	return s + "]"
}
