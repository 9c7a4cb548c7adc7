// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desc implements the TPSA descriptor: the combinatorial and
// indexing substrate shared by every truncated power series of a given
// shape. A Desc enumerates all monomials up to a per-variable and
// per-combination truncation, assigns each monomial a stable rank in two
// canonical orderings, and precomputes the lookup tables
// (H for monomial-to-index, L for product-to-index, see [Desc.LTable]) that
// let polynomial multiplication reduce to array reads instead of
// combinatorial search.
//
// Construction is single-threaded and happens once per distinct set of
// parameters; built descriptors are interned in a process-wide registry
// (see [New] and [Desc.Close]) and are safe to share read-only across
// goroutines. The descriptor never runs a thread itself — [Plan] (see
// [Desc.Plan]) only describes how an external multiplier should split its
// work across lanes.
package desc
