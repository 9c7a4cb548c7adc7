// Copyright ©2026 The tpsadesc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"sync"

	"github.com/accelgo/tpsadesc/internal/ensure"
	"github.com/accelgo/tpsadesc/mono"
)

// maxDescs bounds the process-wide registry: descriptors are expensive to
// build and few are expected to coexist, so a fixed small table (and a
// fatal error on exhaustion) is simpler than a growable one.
const maxDescs = 100

var (
	registryMu sync.Mutex
	registry   [maxDescs]*Desc
)

// equivDesc reports whether d was built from the same defining parameters
// as the candidate, including optional variable names.
func equivDesc(d *Desc, nmv int, mapOrds []uint8, varNames []string, nv int, varOrds []uint8, ko uint8) bool {
	if varNames != nil {
		if d.varNames == nil || len(d.varNames) != len(varNames) {
			return false
		}
		for i := range varNames {
			if d.varNames[i] != varNames[i] {
				return false
			}
		}
	} else if d.varNames != nil {
		return false
	}

	return d.nmv == nmv && mono.Equal(d.mapOrds, mapOrds) &&
		d.nv == nv && mono.Equal(d.varOrds, varOrds) &&
		d.ko == ko
}

// internDesc returns an existing registry entry equivalent to the given
// parameters, or builds and registers a new one.
func internDesc(nmv int, mapOrds []uint8, varNames []string, nv int, varOrds []uint8, ko uint8, logger Logger) *Desc {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, d := range registry {
		if d != nil && equivDesc(d, nmv, mapOrds, varNames, nv, varOrds, ko) {
			return d
		}
	}

	slot := -1
	for i, d := range registry {
		if d == nil {
			slot = i
			break
		}
	}
	ensure.That(slot >= 0, "desc: registry full (max %d descriptors)", maxDescs)

	d := buildDesc(nmv, mapOrds, varNames, nv, varOrds, ko, logger)
	d.id = slot
	registry[slot] = d
	return d
}

// releaseDesc clears d's registry slot, making it reusable.
func releaseDesc(d *Desc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if registry[d.id] == d {
		registry[d.id] = nil
	}
}
