// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tval

// Kind identifies which of the tagged-value alternatives a Value holds.
//
//go:generate stringer -type=Kind
type Kind uint8

const (
	// KindNum is a genuine IEEE-754 double: any bit pattern whose
	// exponent is not the reserved all-ones window, plus ±Inf and every
	// NaN payload that is not one of the specific type tags below.
	KindNum Kind = iota
	// KindNul is a pseudo-null, distinct from KindNil.
	KindNul
	// KindNil is the nil/absent value.
	KindNil
	// KindLog is a boolean.
	KindLog
	// KindInt is a signed integer that fits in 48 bits.
	KindInt
	// KindFun is a function pointer.
	KindFun
	// KindPtr is an untyped raw pointer.
	KindPtr
	// KindStr is a string pointer.
	KindStr
	// KindArr is an array pointer.
	KindArr
	// KindObj is an object pointer.
	KindObj
	// KindRef is a reference to another Value, chased by Deref.
	KindRef
)

// tagNibble is the 4-bit (sign + top-3-mantissa-bit) selector baked into
// the NaN payload for every non-KindNum kind. KindNum has no tag nibble:
// it is detected by the absence of the mark bit, not by a reserved code.
var tagNibble = [...]uint8{
	KindNul: 0x0,
	KindNil: 0x1,
	KindLog: 0x2,
	KindInt: 0x3,
	KindFun: 0x4,
	KindPtr: 0x5,
	KindStr: 0x6,
	KindArr: 0x7,
	KindObj: 0x8,
	KindRef: 0x9,
}

// kindForNibble inverts tagNibble; index by the 4-bit code, 0 (KindNum's
// zero value) marks "no such tag" since KindNum is never tag-coded.
var kindForNibble = func() [16]Kind {
	var t [16]Kind
	for k, n := range tagNibble {
		if k == int(KindNum) {
			continue
		}
		t[n] = Kind(k)
	}
	return t
}()
