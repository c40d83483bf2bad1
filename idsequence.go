// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import "sync/atomic"

// idSequence is the process-wide id allocator. Every pass, resource, edge
// and synthesized aliased slot draws from the same sequence, so ids are
// unique across kinds.
var idSequence atomic.Int32

// NextID returns the next id from the global sequence.
//
// NextID is safe for concurrent use: simultaneous callers each receive a
// distinct value.
func NextID() ID {
	return ID(idSequence.Add(1) - 1)
}

// ResetIDSequence restarts the global sequence at zero. It exists so tests
// and tools can produce reproducible graphs; resetting while graphs built
// from the old sequence are still alive forfeits id uniqueness.
func ResetIDSequence() {
	idSequence.Store(0)
}
