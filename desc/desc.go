// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"sync/atomic"
	"unsafe"

	"github.com/accelgo/tpsadesc/internal/ensure"
	"github.com/accelgo/tpsadesc/mono"
)

// maxOrderBound is the bit-width bound on the overall maximum order,
// carried over from the original's desc_max_order = CHAR_BIT*sizeof(bit_t).
// bit_t there is the accumulator word backing the descriptor's truncation
// bitmask; this module has no such bitmask type, so the bound is pinned to
// the width of a uint64, the widest integer this package ever accumulates
// an order into.
const maxOrderBound = 8 * unsafe.Sizeof(uint64(0))

// Truncation sentinels for GTrunc.
const (
	TruncSame    uint8 = 0xFF // "return current trunc without changing it"
	TruncDefault uint8 = 0xFE // "reset trunc to mo"
)

// VarExp is one (variable, exponent) pair of the sparse monomial
// representation accepted by IndexSparse. Var is a 0-based variable index,
// unlike the original's 1-based packed idx_t encoding — there is no reason
// to carry that off-by-one into a typed Go API.
type VarExp struct {
	Var int
	Exp uint8
}

// Logger receives construction-time diagnostics. A nil Logger is silent.
// *log.Logger satisfies this interface.
type Logger interface {
	Printf(format string, args ...any)
}

// Desc is a built TPSA descriptor: the enumerated monomial set for a given
// shape, its two canonical orderings, and the lookup tables derived from
// them. A Desc is safe for concurrent read access once New/NewK returns;
// the only field that may still change afterwards is trunc, updated only
// through GTrunc.
type Desc struct {
	id int

	nmv int
	nv  int
	ko  uint8
	mo  uint8

	trunc atomic.Uint32

	varOrds  []uint8
	mapOrds  []uint8
	varNames []string

	sortVar  []int // permutation of [0,nv) ascending by varOrds, stable
	rowOfVar []int // inverse of sortVar

	nc      int
	monos   []uint8 // flat nc*nv, To in row-major order
	ords    []uint8 // length nc
	ord2idx []int   // length mo+2

	tv2to []int // length nc
	to2tv []int // length nc

	h    []int32 // flat nv*(mo+2)
	hcol int     // mo+2

	ho int       // mo/2
	l  []*lTable // length mo*ho+1, indexed by oa*ho+ob
	li []*lIdx   // length mo*ho+1, indexed by oa*ho+ob

	plan *Plan

	size   uint64
	logger Logger
}

// Option configures New/NewK.
type Option func(*options)

type options struct {
	mapOrds  []uint8
	varNames []string
	logger   Logger
}

// WithMapOrds overrides the per-variable combination cap used to derive mo.
// Each entry must be >= the corresponding varOrds entry.
func WithMapOrds(mapOrds []uint8) Option {
	return func(o *options) { o.mapOrds = mapOrds }
}

// WithVarNames attaches names to the leading nmv (map) variables. Names
// participate in registry equivalence: two otherwise-identical parameter
// sets with different names intern to different descriptors.
func WithVarNames(names []string) Option {
	return func(o *options) { o.varNames = names }
}

// WithLogger enables construction-time diagnostics on l.
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l }
}

func resolveOptions(nv int, varOrds []uint8, opts []Option) options {
	var o options
	for _, apply := range opts {
		apply(&o)
	}
	if o.varNames != nil {
		ensure.That(len(o.varNames) == nv, "desc: var_names length %d != nv %d", len(o.varNames), nv)
	}
	if o.mapOrds == nil {
		mo := mono.Mono(varOrds).OrderMax()
		o.mapOrds = make([]uint8, nv)
		mono.Fill(o.mapOrds, mo)
	} else {
		ensure.That(len(o.mapOrds) == nv, "desc: map_ords length %d != nv %d", len(o.mapOrds), nv)
		for i := range varOrds {
			ensure.That(varOrds[i] <= o.mapOrds[i], "desc: var_ords[%d]=%d exceeds map_ords[%d]=%d", i, varOrds[i], i, o.mapOrds[i])
		}
	}
	return o
}

// New builds (or returns an interned equivalent of) a descriptor over nv
// plain variables with no knobs.
func New(nv int, varOrds []uint8, opts ...Option) *Desc {
	ensure.That(nv > 0, "desc: nv must be positive, got %d", nv)
	ensure.That(len(varOrds) == nv, "desc: var_ords length %d != nv %d", len(varOrds), nv)
	o := resolveOptions(nv, varOrds, opts)
	mo := mono.Mono(o.mapOrds).OrderMax()
	ensure.That(uint64(mo) < uint64(maxOrderBound), "desc: mo=%d exceeds bound %d", mo, maxOrderBound)
	return internDesc(nv, o.mapOrds, o.varNames, nv, varOrds, 0, o.logger)
}

// NewK builds (or returns an interned equivalent of) a descriptor over nv
// map variables plus nk trailing knob variables whose combined order is
// capped at dk (which defaults to max(knbOrds) when 0).
func NewK(nv int, varOrds []uint8, nk int, knbOrds []uint8, dk uint8, opts ...Option) *Desc {
	ensure.That(nv > 0, "desc: nv must be positive, got %d", nv)
	ensure.That(len(varOrds) == nv, "desc: var_ords length %d != nv %d", len(varOrds), nv)
	ensure.That(len(knbOrds) == nk, "desc: knb_ords length %d != nk %d", len(knbOrds), nk)
	knbOrd := mono.Mono(knbOrds).OrderSum()
	ensure.That(dk <= knbOrd, "desc: dk=%d exceeds sum(knb_ords)=%d", dk, knbOrd)

	o := resolveOptions(nv, varOrds, opts)
	total := mono.Mono(varOrds).OrderSum() + knbOrd
	ensure.That(uint64(total) < uint64(maxOrderBound), "desc: nv+nk total order %d exceeds bound %d", total, maxOrderBound)

	if dk == 0 {
		dk = mono.Mono(knbOrds).OrderMax()
	}
	mapMax := mono.Mono(o.mapOrds).OrderMax()
	ensure.That(dk <= mapMax, "desc: dk=%d exceeds max(map_ords)=%d", dk, mapMax)

	ords := make([]uint8, 0, nv+nk)
	ords = append(ords, varOrds...)
	for _, k := range knbOrds {
		ensure.That(k != 0, "desc: knob order must be non-zero")
		// a single knob can never exceed the combined knob cap dk, so its
		// own cap is clamped to dk; the set of valid monomials is unchanged.
		if k > dk {
			k = dk
		}
		ords = append(ords, k)
	}
	return internDesc(nv, o.mapOrds, o.varNames, nv+nk, ords, dk, o.logger)
}

// isValidMono reports whether m (length <= nv) satisfies the descriptor's
// validity predicate: total order within trunc-independent mo, combined
// knob order within ko, and component-wise within varOrds.
func (d *Desc) isValidMono(m mono.Mono) bool {
	n := len(m)
	if n > d.nv {
		return false
	}
	if mono.Order(m) > int(d.mo) {
		return false
	}
	if n > d.nmv && mono.Order(m[d.nmv:]) > int(d.ko) {
		return false
	}
	return mono.LessEq(m, d.varOrds[:n])
}

// isValidSparse mirrors isValidMono for the sparse pair form.
func (d *Desc) isValidSparse(pairs []VarExp) bool {
	var mo, ko int
	for _, p := range pairs {
		if p.Var < 0 || p.Var >= d.nv {
			return false
		}
		if p.Exp > d.varOrds[p.Var] {
			return false
		}
		mo += int(p.Exp)
		if p.Var >= d.nmv {
			ko += int(p.Exp)
		}
	}
	return mo <= int(d.mo) && ko <= int(d.ko)
}

// toMono returns a read-only view of To[i], the i-th monomial in by-order
// rank. The returned slice aliases internal storage and must not be
// mutated by callers outside this package.
func (d *Desc) toMono(i int) mono.Mono {
	return mono.Mono(d.monos[i*d.nv : (i+1)*d.nv])
}

// tvMono returns a read-only view of Tv[i], the i-th monomial in
// by-variable rank.
func (d *Desc) tvMono(i int) mono.Mono {
	return d.toMono(d.tv2to[i])
}

// Mono copies To[i][0:n] into a freshly allocated slice and returns it
// together with the monomial's order.
func (d *Desc) Mono(n, i int) (mono.Mono, uint8) {
	ensure.That(n >= 0 && n <= d.nv, "desc: invalid length %d", n)
	ensure.That(i >= 0 && i < d.nc, "desc: invalid rank %d", i)
	out := make(mono.Mono, n)
	mono.Copy(out, d.toMono(i)[:n])
	return out, d.ords[i]
}

// Index validates m against the descriptor's shape and returns its rank in
// the by-order table To.
func (d *Desc) Index(m mono.Mono) int {
	ensure.That(len(m) == d.nv, "desc: invalid monomial length %d, want %d", len(m), d.nv)
	ensure.That(d.isValidMono(m), "desc: invalid monomial %s", m)
	return d.tv2to[d.indexH(m)]
}

// IndexSparse is the sparse-pair form of Index.
func (d *Desc) IndexSparse(pairs []VarExp) int {
	ensure.That(d.isValidSparse(pairs), "desc: invalid sparse monomial")
	return d.tv2to[d.indexHSparse(pairs)]
}

// MaxSize returns nc, the total count of enumerated monomials.
func (d *Desc) MaxSize() int { return d.nc }

// MaxOrder returns mo, the overall maximum order.
func (d *Desc) MaxOrder() uint8 { return d.mo }

// GTrunc atomically reads, and optionally updates, the runtime truncation.
// to == TruncSame leaves it unchanged; to == TruncDefault resets it to mo.
// GTrunc returns the value in effect before this call.
func (d *Desc) GTrunc(to uint8) uint8 {
	orig := uint8(d.trunc.Load())
	if to == TruncSame {
		return orig
	}
	if to == TruncDefault {
		to = d.mo
	} else {
		ensure.That(to <= d.mo, "desc: trunc=%d exceeds mo=%d", to, d.mo)
	}
	d.trunc.Store(uint32(to))
	return orig
}

// Stats reports diagnostic information about a built descriptor.
type Stats struct {
	NC        int
	NV        int
	MaxOrder  uint8
	SizeBytes uint64
}

// Stats returns diagnostic sizing information about d.
func (d *Desc) Stats() Stats {
	return Stats{NC: d.nc, NV: d.nv, MaxOrder: d.mo, SizeBytes: d.size}
}

// Plan returns d's thread-dispatch plan, built once at construction time
// for runtime.NumCPU() lanes.
func (d *Desc) Plan() *Plan { return d.plan }

// Close clears d's registry slot. It does not need to free memory
// explicitly (the garbage collector reclaims d's tables once unreferenced)
// but mirrors the original's mad_desc_del by making the slot immediately
// reusable.
func (d *Desc) Close() {
	releaseDesc(d)
}
