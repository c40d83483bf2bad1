// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

// Edge is a typed data-flow arrow from a resource on one pass to a resource
// on another. Edges carry their own id so duplicates between the same
// endpoints stay distinguishable.
//
// Passes and resources are referenced by stable ids; the owning
// [RenderGraph] resolves them. Several edges between the same pass pair are
// permitted at input. The scheduler's multi-edge filter does not remove
// them, so every connector takes part in its parallelism analysis.
type Edge struct {
	ID ID

	SrcPass     ID
	DstPass     ID
	SrcResource ID
	DstResource ID

	// SrcResName and DstResName duplicate the resource names for legacy
	// export paths.
	//
	// Deprecated: resolve SrcResource / DstResource through the graph
	// instead.
	SrcResName string
	DstResName string
}
