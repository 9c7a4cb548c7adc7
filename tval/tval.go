// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tval implements the NaN-tagged 64-bit value used as a uniform
// cell throughout the runtime surrounding the TPSA descriptor. A Value is
// an opaque 64-bit word: every non-double kind is smuggled into the
// payload bits of an IEEE-754 NaN (exponent all ones, mark bit set; bit 51,
// the quiet bit, belongs to the tag nibble), following the encoding this
// package's doc comments describe bit by bit. Per the re-architecture
// guidance this is grounded on, a Value is treated as an opaque word with
// explicit, audited transmutation primitives rather than an overlapping
// record — callers never read the same cell as two kinds without going
// through a predicate first.
//
// Bit layout (MSB to LSB):
//
//	63       sign
//	62..52   exponent (11 bits); 0x7FF marks the NaN/Inf window
//	51..49   3-bit tag nibble (combined with sign -> 4-bit kind code)
//	48       mark bit; 1 iff this NaN encodes a tagged kind rather than
//	         a double-precision NaN/Inf produced by ordinary arithmetic
//	47..0    48-bit payload: pointer, signed integer, or boolean
//
// Pointer kinds store the pointer bit pattern directly in the low 48
// bits, unchanged — on x86_64/aarch64 user space, the top 16 bits of a
// real pointer are always zero, so nothing is lost. This hides the
// pointer from the garbage collector's root scan for as long as it lives
// only inside a Value; callers that build Ptr/Str/Arr/Obj/Ref/Fun values
// must keep an ordinary, GC-visible reference to the pointee alive for
// as long as the Value is in use. This is the same trade the original C
// implementation makes deliberately, not an oversight this package works
// around.
package tval

import (
	"math"
	"unsafe"

	"github.com/accelgo/tpsadesc/internal/ensure"
)

// Value is the tagged 64-bit cell.
type Value struct {
	bits uint64
}

const (
	expMask    = uint64(0x7FF) << 52
	markBit    = uint64(1) << 48
	tagShift   = 49
	tagMask3   = uint64(0x7) << tagShift
	payloadMsk = uint64(1)<<48 - 1
	signBit    = uint64(1) << 63

	// posInfBits and negInfBits are the mandated exact bit patterns of
	// §6 of the governing specification.
	posInfBits = uint64(0x7FF0000000000000)
	negInfBits = uint64(0xFFF0000000000000)
)

// Bits returns the raw 64-bit word backing v, for introspection.
func (v Value) Bits() uint64 { return v.bits }

// FromBits wraps a raw 64-bit word as a Value without validation. It
// exists for introspection and for round-tripping bit patterns produced
// outside this package (e.g. by a platform's 0.0/0.0).
func FromBits(bits uint64) Value { return Value{bits: bits} }

// isTagged reports whether bits encode one of the non-double kinds
// rather than a genuine double (including Inf and an ordinary NaN).
func isTagged(bits uint64) bool {
	return bits&expMask == expMask && bits&markBit != 0
}

func tagOf(bits uint64) uint8 {
	nibble := uint8((bits & tagMask3) >> tagShift)
	if bits&signBit != 0 {
		nibble |= 0x8
	}
	return nibble
}

func withTag(kind Kind, payload uint64) uint64 {
	nibble := tagNibble[kind]
	bits := expMask | markBit | (uint64(nibble&0x7) << tagShift) | (payload & payloadMsk)
	if nibble&0x8 != 0 {
		bits |= signBit
	}
	return bits
}

// Type returns the kind of v.
func Type(v Value) Kind {
	if !isTagged(v.bits) {
		return KindNum
	}
	return kindForNibble[tagOf(v.bits)]
}

// Name returns the human-readable name of v's kind.
func Name(v Value) string { return Type(v).String() }

// --- constructors ------------------------------------------------------

// OfNum wraps an arbitrary double, including ±Inf and NaN, as a Value.
func OfNum(x float64) Value { return Value{bits: math.Float64bits(x)} }

// OfNul returns the pseudo-null value.
func OfNul() Value { return Value{bits: withTag(KindNul, 0)} }

// OfNil returns the nil value.
func OfNil() Value { return Value{bits: withTag(KindNil, 0)} }

// OfLog returns a boolean value.
func OfLog(b bool) Value {
	var p uint64
	if b {
		p = 1
	}
	return Value{bits: withTag(KindLog, p)}
}

// maxInt48 / minInt48 are the representable range of a 48-bit signed
// integer.
const (
	maxInt48 = int64(1)<<47 - 1
	minInt48 = -(int64(1) << 47)
)

// OfInt returns an integer value. x must fit in 48 bits signed.
func OfInt(x int64) Value {
	ensure.That(x >= minInt48 && x <= maxInt48, "tval: int out of 48-bit range: %d", x)
	return Value{bits: withTag(KindInt, uint64(x)&payloadMsk)}
}

// OfFun returns a function-pointer value.
func OfFun(p unsafe.Pointer) Value { return Value{bits: withTag(KindFun, uint64(uintptr(p)))} }

// OfPtr returns a raw-pointer value.
func OfPtr(p unsafe.Pointer) Value { return Value{bits: withTag(KindPtr, uint64(uintptr(p)))} }

// OfStr returns a string-pointer value.
func OfStr(p *string) Value { return Value{bits: withTag(KindStr, uint64(uintptr(unsafe.Pointer(p))))} }

// OfArr returns an array-pointer value.
func OfArr(p unsafe.Pointer) Value { return Value{bits: withTag(KindArr, uint64(uintptr(p)))} }

// OfObj returns an object-pointer value.
func OfObj(p unsafe.Pointer) Value { return Value{bits: withTag(KindObj, uint64(uintptr(p)))} }

// OfRef returns a reference to another Value.
func OfRef(p *Value) Value { return Value{bits: withTag(KindRef, uint64(uintptr(unsafe.Pointer(p))))} }

// --- predicates ----------------------------------------------------------

func IsNum(v Value) bool { return Type(v) == KindNum }
func IsNul(v Value) bool { return Type(v) == KindNul }
func IsNil(v Value) bool { return Type(v) == KindNil }
func IsLog(v Value) bool { return Type(v) == KindLog }
func IsInt(v Value) bool { return Type(v) == KindInt }
func IsFun(v Value) bool { return Type(v) == KindFun }
func IsPtr(v Value) bool { return Type(v) == KindPtr }
func IsStr(v Value) bool { return Type(v) == KindStr }
func IsArr(v Value) bool { return Type(v) == KindArr }
func IsObj(v Value) bool { return Type(v) == KindObj }
func IsRef(v Value) bool { return Type(v) == KindRef }

// IsNan reports whether v is a double and that double is a NaN (either a
// tag-less NaN produced by ordinary arithmetic, or +Inf/-Inf never is).
func IsNan(v Value) bool { return IsNum(v) && math.IsNaN(math.Float64frombits(v.bits)) }

func payload(v Value, want Kind) uint64 {
	ensure.That(Type(v) == want, "tval: value is not %s", want)
	return v.bits & payloadMsk
}

// --- extractors ------------------------------------------------------

// AsNum extracts v's double value. Precondition: IsNum(v).
func AsNum(v Value) float64 {
	ensure.That(IsNum(v), "tval: value is not Num")
	return math.Float64frombits(v.bits)
}

// AsLog extracts v's boolean value. Precondition: IsLog(v).
func AsLog(v Value) bool { return payload(v, KindLog) != 0 }

// AsInt extracts v's sign-extended 48-bit integer. Precondition: IsInt(v).
func AsInt(v Value) int64 {
	p := int64(payload(v, KindInt))
	if p&(1<<47) != 0 {
		p |= ^int64(0) << 48 // sign extend
	}
	return p
}

// AsFun extracts v's function pointer. Precondition: IsFun(v).
func AsFun(v Value) unsafe.Pointer { return unsafe.Pointer(uintptr(payload(v, KindFun))) }

// AsPtr extracts v's raw pointer. Precondition: IsPtr(v).
func AsPtr(v Value) unsafe.Pointer { return unsafe.Pointer(uintptr(payload(v, KindPtr))) }

// AsStr extracts v's string pointer. Precondition: IsStr(v).
func AsStr(v Value) *string { return (*string)(unsafe.Pointer(uintptr(payload(v, KindStr)))) }

// AsArr extracts v's array pointer. Precondition: IsArr(v).
func AsArr(v Value) unsafe.Pointer { return unsafe.Pointer(uintptr(payload(v, KindArr))) }

// AsObj extracts v's object pointer. Precondition: IsObj(v).
func AsObj(v Value) unsafe.Pointer { return unsafe.Pointer(uintptr(payload(v, KindObj))) }

// AsRef extracts v's reference pointer. Precondition: IsRef(v).
func AsRef(v Value) *Value { return (*Value)(unsafe.Pointer(uintptr(payload(v, KindRef)))) }

// maxDerefDepth bounds Deref's reference chase so a cycle terminates
// instead of looping forever; spec only requires "must not crash", a
// finite result on a cycle satisfies that without an unbounded scan.
const maxDerefDepth = 1000

// Deref chases v through any depth of references until a non-reference
// value is reached. Non-reference inputs are returned unchanged. A cycle
// of references yields the value reached after maxDerefDepth hops rather
// than looping forever.
func Deref(v Value) Value {
	for i := 0; i < maxDerefDepth && IsRef(v); i++ {
		v = *AsRef(v)
	}
	return v
}
